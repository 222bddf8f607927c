package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func testMenu() *Menu {
	return NewMenu("Main Menu", []MenuItem{
		{Label: "Start Game", Value: "start"},
		{Label: "Controls", Value: "controls"},
		{Label: "Quit", Value: "exit"},
	})
}

func TestMenuNavigationWraps(t *testing.T) {
	m := testMenu()

	_, done := m.handleKey(0, keyboard.KeyArrowUp)
	assert.False(t, done)
	assert.Equal(t, 2, m.Selected)

	m.handleKey(0, keyboard.KeyArrowDown)
	assert.Equal(t, 0, m.Selected)

	m.handleKey('s', 0)
	assert.Equal(t, 1, m.Selected)

	value, done := m.handleKey(0, keyboard.KeyEnter)
	assert.True(t, done)
	assert.Equal(t, "controls", value)
}

func TestMenuQuitKeys(t *testing.T) {
	value, done := testMenu().handleKey('q', 0)
	assert.True(t, done)
	assert.Equal(t, "exit", value)

	value, done = testMenu().handleKey(0, keyboard.KeyEsc)
	assert.True(t, done)
	assert.Equal(t, "exit", value)
}

func TestCenterTextUsesCellWidth(t *testing.T) {
	m := testMenu()

	for _, text := range []string{"Score: 100", "🎮 Game Over 🎮", "► Restart"} {
		got := m.centerText(text, m.Width)
		assert.Equal(t, m.Width-4, runewidth.StringWidth(got), "text %q", text)
	}

	long := strings.Repeat("x", 100)
	assert.Equal(t, m.Width-4, runewidth.StringWidth(m.centerText(long, m.Width)))
}

func TestMenuRender(t *testing.T) {
	var buf bytes.Buffer
	m := testMenu().WithLines("Score: 1,200").WithOutput(&buf)
	m.Selected = 1

	m.render()

	out := buf.String()
	assert.Contains(t, out, "Main Menu")
	assert.Contains(t, out, "Score: 1,200")
	assert.Contains(t, out, "\033[7m")
	assert.Contains(t, out, "► Controls")
	assert.Contains(t, out, "  Start Game")
}
