package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacjstriker/notris/games/tetris"
)

func TestFrameDrawsActivePiece(t *testing.T) {
	game := newTestGame(t, tetris.KindI)
	r := NewRenderer(&bytes.Buffer{}, false, tetris.DefaultPalette)

	frame := r.Frame(game.GetState())
	lines := strings.Split(frame, "\n")

	// Header, clear line, top border, then row 0.
	require.Greater(t, len(lines), 3)
	assert.Equal(t, "║........########........║", lines[3])
	assert.Contains(t, frame, "(empty)")
}

func TestFrameShowsLockedCellsAndHold(t *testing.T) {
	game := newTestGame(t, tetris.KindO)
	game.HoldSwap()
	state := game.HardDrop()
	r := NewRenderer(&bytes.Buffer{}, false, tetris.DefaultPalette)

	frame := r.Frame(state)
	lines := strings.Split(frame, "\n")

	assert.Equal(t, "║..........@@@@..........║", lines[3+19])
	assert.Contains(t, frame, "Hold:\n  @@@@\n  @@@@\n")
}

func TestFrameFormatsScore(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, false, tetris.DefaultPalette)
	state := tetris.GameState{
		Board:     [][]tetris.Color{{0, 0, 0, 0}},
		Score:     12500,
		Lines:     3,
		LastClear: &tetris.ClearEvent{Lines: 1, Points: 1150, Combo: 7},
		GameOver:  true,
	}

	frame := r.Frame(state)
	assert.Contains(t, frame, "Score: 12,500 | Lines: 3")
	assert.Contains(t, frame, "+1,150 (Combo x7)")
	assert.Contains(t, frame, "GAME OVER! Final Score: 12,500")
}

func TestColorCells(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, true, tetris.DefaultPalette)

	assert.Equal(t, "\033[48;2;255;165;0m  \033[0m", r.cell(0xffa500))
	assert.Equal(t, "  ", r.cell(tetris.Empty))
}

func TestUnknownColorGlyph(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, false, tetris.DefaultPalette)
	assert.Equal(t, "[]", r.cell(0x123456))
}

func TestRenderClearsScreen(t *testing.T) {
	var buf bytes.Buffer
	game := newTestGame(t, tetris.KindT)

	require.NoError(t, NewRenderer(&buf, false, tetris.DefaultPalette).Render(game.GetState()))
	assert.True(t, strings.HasPrefix(buf.String(), clearScreen))
}

func TestFrameSize(t *testing.T) {
	cols, rows := FrameSize(12, 20)
	assert.Equal(t, runewidth.StringWidth(controlsHelp), cols)
	assert.Equal(t, 32, rows)

	cols, _ = FrameSize(60, 20)
	assert.Equal(t, 122, cols)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
}
