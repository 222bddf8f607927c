package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/isaacjstriker/notris/games/tetris"
)

// Glyphs used when the terminal has no color, one per piece kind.
var pieceGlyphs = [tetris.NumKinds]string{"##", "@@", "**", "%%", "&&", "++", "=="}

const controlsHelp = "Controls: ←/→ or A/D move, ↑/W rotate, ↓/S drop, Space hard drop, C hold, Q quit"

// ControlsText lists the key bindings, one per line.
var ControlsText = []string{
	"Left/Right arrow keys (A/D) to move",
	"Down arrow key (S) to drop",
	"Up arrow key (W) to rotate",
	"C to swap pieces",
	"Spacebar to drop immediately",
	"Q or Esc to quit",
}

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber groups digits the way the score line does, e.g. 12,500.
func FormatNumber(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// Renderer draws game snapshots as text.
type Renderer struct {
	out     io.Writer
	color   bool
	glyphs map[tetris.Color]string
}

// NewRenderer builds a renderer. palette maps colors to ASCII glyphs when
// color is off.
func NewRenderer(out io.Writer, color bool, palette tetris.Palette) *Renderer {
	glyphs := make(map[tetris.Color]string, tetris.NumKinds)
	for k, c := range palette {
		glyphs[c] = pieceGlyphs[k]
	}
	return &Renderer{
		out:    out,
		color:  color,
		glyphs: glyphs,
	}
}

// Render clears the screen and draws the state.
func (r *Renderer) Render(state tetris.GameState) error {
	_, err := io.WriteString(r.out, clearScreen+r.Frame(state))
	return err
}

// Frame returns the text for one state without the clear-screen prefix.
func (r *Renderer) Frame(state tetris.GameState) string {
	var sb strings.Builder

	numberPrinter.Fprintf(&sb, "NOTRIS | Score: %d | Lines: %d\n", state.Score, state.Lines)
	if state.LastClear != nil {
		numberPrinter.Fprintf(&sb, "+%d (Combo x%d)\n", state.LastClear.Points, state.LastClear.Combo)
	} else {
		sb.WriteString("\n")
	}

	display := composite(state)
	width := 0
	if len(display) > 0 {
		width = len(display[0])
	}

	sb.WriteString("╔" + strings.Repeat("═", width*2) + "╗\n")
	for _, row := range display {
		sb.WriteString("║")
		for _, cell := range row {
			sb.WriteString(r.cell(cell))
		}
		sb.WriteString("║\n")
	}
	sb.WriteString("╚" + strings.Repeat("═", width*2) + "╝\n")

	sb.WriteString("\nHold:\n")
	if state.Held != nil {
		for _, row := range state.Held.Shape {
			sb.WriteString("  ")
			for _, v := range row {
				if v == 1 {
					sb.WriteString(r.cell(state.Held.Color))
				} else {
					sb.WriteString("  ")
				}
			}
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString("  (empty)\n")
	}

	if state.GameOver {
		numberPrinter.Fprintf(&sb, "\nGAME OVER! Final Score: %d\n", state.Score)
	}
	fmt.Fprintf(&sb, "\n%s\n", controlsHelp)

	return sb.String()
}

func (r *Renderer) cell(c tetris.Color) string {
	if c == tetris.Empty {
		if r.color {
			return "  "
		}
		return ".."
	}
	if r.color {
		red, green, blue := c.RGB()
		return fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m", red, green, blue)
	}
	if g, ok := r.glyphs[c]; ok {
		return g
	}
	return "[]"
}

// composite draws the active piece onto a copy of the board.
func composite(state tetris.GameState) [][]tetris.Color {
	display := make([][]tetris.Color, len(state.Board))
	for i := range state.Board {
		display[i] = make([]tetris.Color, len(state.Board[i]))
		copy(display[i], state.Board[i])
	}

	p := state.Current
	if p == nil || state.GameOver {
		return display
	}
	for py := range p.Shape {
		for px := range p.Shape[py] {
			if p.Shape[py][px] != 1 {
				continue
			}
			boardY := p.Y + py
			boardX := p.X + px
			if boardY >= 0 && boardY < len(display) && boardX >= 0 && boardX < len(display[boardY]) {
				display[boardY][boardX] = p.Color
			}
		}
	}
	return display
}

// FrameSize is the number of terminal columns and rows a frame needs for a
// board of the given size.
func FrameSize(boardWidth, boardHeight int) (cols, rows int) {
	cols = boardWidth*2 + 2
	if w := runewidth.StringWidth(controlsHelp); w > cols {
		cols = w
	}
	// header, clear line, borders, hold block, controls
	rows = boardHeight + 2 + 2 + 6 + 2
	return cols, rows
}
