package tetris

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// Tuning holds the settings a Lua script may override.
type Tuning struct {
	BoardWidth  int
	BoardHeight int
	Palette     Palette
}

// DefaultTuning is a 12x20 board with the default palette.
func DefaultTuning() Tuning {
	return Tuning{
		BoardWidth:  BoardWidth,
		BoardHeight: BoardHeight,
		Palette:     DefaultPalette,
	}
}

// Options turns the tuning into session options.
func (tu Tuning) Options() []Option {
	return []Option{
		WithBoardSize(tu.BoardWidth, tu.BoardHeight),
		WithPalette(tu.Palette),
	}
}

// LoadTuning reads a script such as:
//
//	return {
//	  board = { width = 12, height = 20 },
//	  colors = { I = 0x00ffff, O = 0xffff00 },
//	}
//
// A missing file yields the defaults. Keys the script leaves out keep
// their default value.
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("[INFO] %s not found, using default tuning", path)
		return tuning, nil
	}

	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return tuning, fmt.Errorf("failed to run tuning script %s: %w", path, err)
	}

	// The script returns its table, which is left on top of the stack.
	tbl, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return tuning, fmt.Errorf("tuning script %s must return a table", path)
	}

	if boardTbl, ok := tbl.RawGetString("board").(*lua.LTable); ok {
		var err error
		if tuning.BoardWidth, err = getLuaInt(boardTbl, "width", tuning.BoardWidth); err != nil {
			return DefaultTuning(), fmt.Errorf("tuning script %s: board %w", path, err)
		}
		if tuning.BoardHeight, err = getLuaInt(boardTbl, "height", tuning.BoardHeight); err != nil {
			return DefaultTuning(), fmt.Errorf("tuning script %s: board %w", path, err)
		}
	}

	if colorsTbl, ok := tbl.RawGetString("colors").(*lua.LTable); ok {
		var badColor error
		colorsTbl.ForEach(func(key, value lua.LValue) {
			if badColor != nil {
				return
			}
			kind, ok := KindByName(key.String())
			if !ok {
				badColor = fmt.Errorf("unknown piece %q in colors", key.String())
				return
			}
			color, err := luaColor(value)
			if err != nil {
				badColor = fmt.Errorf("color of %s: %w", kind, err)
				return
			}
			tuning.Palette[kind] = color
		})
		if badColor != nil {
			return DefaultTuning(), fmt.Errorf("tuning script %s: %w", path, badColor)
		}
	}

	if err := tuning.validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("tuning script %s: %w", path, err)
	}

	return tuning, nil
}

func (tu Tuning) validate() error {
	if err := checkBoardSize(tu.BoardWidth, tu.BoardHeight); err != nil {
		return err
	}
	if err := tu.Palette.validate(); err != nil {
		return fmt.Errorf("invalid palette: %w", err)
	}
	return nil
}

// getLuaInt reads a whole-number field from a Lua table. A missing field
// yields fallback.
func getLuaInt(tbl *lua.LTable, key string, fallback int) (int, error) {
	val := tbl.RawGetString(key)
	if val == lua.LNil {
		return fallback, nil
	}
	num, ok := val.(lua.LNumber)
	if !ok {
		return fallback, fmt.Errorf("%s must be a number, got %s", key, val.Type())
	}
	f := float64(num)
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fallback, fmt.Errorf("%s must be a whole number, got %v", key, num)
	}
	return int(f), nil
}

// luaColor converts a Lua number to a 0xRRGGBB color.
func luaColor(val lua.LValue) (Color, error) {
	num, ok := val.(lua.LNumber)
	if !ok {
		return Empty, fmt.Errorf("must be a number, got %s", val.Type())
	}
	f := float64(num)
	if f != math.Trunc(f) || f < 1 || f > float64(MaxColor) {
		return Empty, fmt.Errorf("%v is not in 0x000001..0xffffff", num)
	}
	return Color(f), nil
}
