package tetris

// HeldPiece is the piece stashed in the hold slot.
type HeldPiece struct {
	Shape Shape `json:"shape"`
	Color Color `json:"color"`
}

func (h *HeldPiece) clone() *HeldPiece {
	if h == nil {
		return nil
	}
	return &HeldPiece{Shape: h.Shape.Clone(), Color: h.Color}
}

// HoldSwap stashes the active piece. The first hold spawns a fresh piece;
// later holds exchange the active and held pieces and bring the held one
// back at the top center without checking for collision.
func (t *Tetris) HoldSwap() GameState {
	if t.gameOver {
		return t.GetState()
	}

	if t.held == nil {
		t.held = &HeldPiece{Shape: t.current.Shape, Color: t.current.Color}
		t.spawnPiece()
		return t.GetState()
	}

	held := t.held
	t.held = &HeldPiece{Shape: t.current.Shape, Color: t.current.Color}
	t.current = &Piece{
		Shape: held.Shape,
		Color: held.Color,
		X:     t.spawnX(held.Shape),
		Y:     0,
	}
	return t.GetState()
}
