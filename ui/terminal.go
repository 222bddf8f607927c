package ui

import (
	"os"

	"golang.org/x/term"
)

const clearScreen = "\033[2J\033[H"

// SupportsColor reports whether stdout is a terminal that can show colors.
func SupportsColor() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// FitsTerminal reports whether a frame of the given size in cells fits the
// current terminal. It returns true when the size cannot be determined.
func FitsTerminal(cols, rows int) bool {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return true
	}
	return w >= cols && h >= rows
}
