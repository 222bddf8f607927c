package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eiannone/keyboard"
	"github.com/mattn/go-runewidth"
)

type MenuItem struct {
	Label string
	Value string
}

type Menu struct {
	Title    string
	Lines    []string
	Items    []MenuItem
	Selected int
	Width    int

	out io.Writer
}

func NewMenu(title string, items []MenuItem) *Menu {
	return &Menu{
		Title:    title,
		Items:    items,
		Selected: 0,
		Width:    60,
		out:      os.Stdout,
	}
}

// WithLines adds text shown between the title and the items.
func (m *Menu) WithLines(lines ...string) *Menu {
	m.Lines = append(m.Lines, lines...)
	return m
}

// WithOutput redirects rendering, mostly for tests.
func (m *Menu) WithOutput(w io.Writer) *Menu {
	m.out = w
	return m
}

func (m *Menu) drawTopBorder() {
	fmt.Fprintln(m.out, "╔"+strings.Repeat("═", m.Width-2)+"╗")
}

func (m *Menu) drawSeparator() {
	fmt.Fprintln(m.out, "╠"+strings.Repeat("═", m.Width-2)+"╣")
}

func (m *Menu) drawBottomBorder() {
	fmt.Fprintln(m.out, "╚"+strings.Repeat("═", m.Width-2)+"╝")
}

// centerText pads text to the inner width of the box. Width is measured in
// terminal cells so emoji and box-drawing runes line up.
func (m *Menu) centerText(text string, width int) string {
	inner := width - 4
	w := runewidth.StringWidth(text)
	if w >= inner {
		return runewidth.Truncate(text, inner, "")
	}
	padding := (inner - w) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", inner-w-padding)
}

func (m *Menu) render() {
	fmt.Fprint(m.out, clearScreen)

	fmt.Fprint(m.out, `
 _   _  ___ _____ ____  ___ ____
| \ | |/ _ \_   _|  _ \|_ _/ ___|
|  \| | | | || | | |_) || |\___ \
| |\  | |_| || | |  _ < | | ___) |
|_| \_|\___/ |_| |_| \_\___|____/
`)
	fmt.Fprintln(m.out)

	m.drawTopBorder()
	fmt.Fprintf(m.out, "║ %s ║\n", m.centerText(m.Title, m.Width))

	if len(m.Lines) > 0 {
		m.drawSeparator()
		for _, line := range m.Lines {
			fmt.Fprintf(m.out, "║ %s ║\n", m.centerText(line, m.Width))
		}
	}

	m.drawSeparator()

	for i, item := range m.Items {
		prefix := "  "
		if i == m.Selected {
			prefix = "► "
		}

		paddedText := m.centerText(prefix+item.Label, m.Width)

		if i == m.Selected {
			fmt.Fprintf(m.out, "║ \033[7m%s\033[0m ║\n", paddedText) // Highlighted
		} else {
			fmt.Fprintf(m.out, "║ %s ║\n", paddedText)
		}
	}

	m.drawBottomBorder()

	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Use ↑/↓ arrows to navigate, Enter to select, 'q' to quit")
}

func (m *Menu) moveUp() {
	if m.Selected > 0 {
		m.Selected--
	} else {
		m.Selected = len(m.Items) - 1 // Wrap to bottom
	}
}

func (m *Menu) moveDown() {
	if m.Selected < len(m.Items)-1 {
		m.Selected++
	} else {
		m.Selected = 0 // Wrap to top
	}
}

// handleKey applies one key press. It returns the chosen value and true
// once the menu is done.
func (m *Menu) handleKey(char rune, key keyboard.Key) (string, bool) {
	switch key {
	case keyboard.KeyArrowUp:
		m.moveUp()
	case keyboard.KeyArrowDown:
		m.moveDown()
	case keyboard.KeyEnter:
		return m.Items[m.Selected].Value, true
	case keyboard.KeyEsc:
		return "exit", true
	}

	switch char {
	case 'q', 'Q':
		return "exit", true
	case 'w', 'W':
		m.moveUp()
	case 's', 'S':
		m.moveDown()
	}
	return "", false
}

// Show draws the menu and blocks until an item is picked. It returns
// "exit" on q/Esc and "" if the keyboard cannot be read.
func (m *Menu) Show() string {
	if err := keyboard.Open(); err != nil {
		fmt.Fprintf(m.out, "Failed to open keyboard: %v\n", err)
		return ""
	}
	defer keyboard.Close()

	for {
		m.render()

		char, key, err := keyboard.GetKey()
		if err != nil {
			fmt.Fprintf(m.out, "Error reading key: %v\n", err)
			return ""
		}

		if value, done := m.handleKey(char, key); done {
			return value
		}
	}
}
