package tetris

// Piece is the falling piece. X and Y locate the top-left corner of its
// shape on the board.
type Piece struct {
	Shape Shape `json:"shape"`
	Color Color `json:"color"`
	X     int   `json:"x"`
	Y     int   `json:"y"`
}

func (p *Piece) clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}

// RotateShape turns a shape 90 degrees clockwise.
func RotateShape(shape Shape) Shape {
	rows := len(shape)
	cols := len(shape[0])
	rotated := make(Shape, cols)

	for i := range rotated {
		rotated[i] = make([]int, rows)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rotated[c][rows-1-r] = shape[r][c]
		}
	}

	return rotated
}

// MoveLeft shifts the piece one column left if there is room.
func (t *Tetris) MoveLeft() GameState {
	t.movePiece(-1)
	return t.GetState()
}

// MoveRight shifts the piece one column right if there is room.
func (t *Tetris) MoveRight() GameState {
	t.movePiece(1)
	return t.GetState()
}

// Rotate turns the piece clockwise in place. There is no wall kick: a
// rotation that would collide is dropped.
func (t *Tetris) Rotate() GameState {
	if !t.gameOver {
		rotated := RotateShape(t.current.Shape)
		if !t.board.Collides(rotated, t.current.X, t.current.Y) {
			t.current.Shape = rotated
		}
	}
	return t.GetState()
}

// SoftDropTick moves the piece down one row, locking it if it cannot move.
func (t *Tetris) SoftDropTick() GameState {
	t.StepDown(false)
	return t.GetState()
}

// HardDrop drops the piece as far as it goes and locks it.
func (t *Tetris) HardDrop() GameState {
	if !t.gameOver {
		for !t.board.Collides(t.current.Shape, t.current.X, t.current.Y+1) {
			t.current.Y++
		}
		t.StepDown(true)
	}
	return t.GetState()
}

// StepDown advances the piece one row. When the row below is blocked the
// piece locks: it merges into the board, full lines clear, the score is
// updated and the next piece spawns. forceLock marks a lock coming from a
// hard drop. It reports whether the piece moved.
func (t *Tetris) StepDown(forceLock bool) bool {
	if t.gameOver {
		return false
	}

	newY := t.current.Y + 1
	if !t.board.Collides(t.current.Shape, t.current.X, newY) {
		t.current.Y = newY
		return true
	}

	t.lock(forceLock)
	return false
}

func (t *Tetris) movePiece(dir int) bool {
	if t.gameOver {
		return false
	}

	newX := t.current.X + dir
	if t.board.Collides(t.current.Shape, newX, t.current.Y) {
		return false
	}
	t.current.X = newX
	return true
}

func (t *Tetris) lock(hardDrop bool) {
	t.phase = PhaseLocking
	t.board.Merge(t.current.Shape, t.current.X, t.current.Y, t.current.Color)
	linesCleared := t.board.ClearLines()

	points := t.score.Apply(linesCleared)
	if linesCleared > 0 {
		t.lastClear = &ClearEvent{Lines: linesCleared, Points: points, Combo: t.score.Combo}
	} else {
		t.lastClear = nil
	}
	t.locks++
	if hardDrop {
		t.hardDrops++
	}

	t.spawnPiece()
}
