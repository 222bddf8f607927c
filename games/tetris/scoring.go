package tetris

// BasePoints is the score for clearing lines rows with one lock.
func BasePoints(lines int) int {
	switch lines {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	case 4:
		return 800
	default:
		return 0
	}
}

// ComboBonus pays 50 per line beyond the fourth consecutive one.
func ComboBonus(combo int) int {
	if combo < 5 {
		return 0
	}
	return (combo - 4) * 50
}

// ScoreForLock is the total awarded for a lock that cleared lines while the
// running combo stands at combo.
func ScoreForLock(lines, combo int) int {
	return BasePoints(lines) + ComboBonus(combo)
}

// ScoreState tracks score, the running combo and total lines.
type ScoreState struct {
	Score int `json:"score"`
	// Combo counts lines cleared by consecutive locks that each cleared at
	// least one line.
	Combo int `json:"combo"`
	Lines int `json:"lines"`
}

// Apply records one lock and returns the points it earned.
func (s *ScoreState) Apply(lines int) int {
	if lines <= 0 {
		s.Combo = 0
		return 0
	}

	s.Combo += lines
	s.Lines += lines
	points := ScoreForLock(lines, s.Combo)
	s.Score += points
	return points
}
