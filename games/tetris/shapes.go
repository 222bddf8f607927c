package tetris

import (
	"fmt"
)

// Color identifies the color of an occupied cell as 0xRRGGBB.
// Empty marks a free cell.
type Color uint32

const (
	Empty    Color = 0
	MaxColor Color = 0xffffff
)

// RGB splits the color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Shape is a rectangular 0/1 matrix relative to the piece's top-left origin.
type Shape [][]int

// Width returns the number of columns of the shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows of the shape.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	shape := make(Shape, len(s))
	for i := range s {
		shape[i] = make([]int, len(s[i]))
		copy(shape[i], s[i])
	}
	return shape
}

// Equal reports whether both shapes have the same cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

func (s Shape) validate() error {
	if len(s) == 0 || len(s[0]) == 0 {
		return fmt.Errorf("shape is empty")
	}
	occupied := 0
	for y, row := range s {
		if len(row) != len(s[0]) {
			return fmt.Errorf("row %d has %d cells, want %d", y, len(row), len(s[0]))
		}
		for x, cell := range row {
			switch cell {
			case 0:
			case 1:
				occupied++
			default:
				return fmt.Errorf("cell (%d,%d) is %d, want 0 or 1", x, y, cell)
			}
		}
	}
	if occupied == 0 {
		return fmt.Errorf("shape has no occupied cells")
	}
	return nil
}

// Kind names one of the seven pieces.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// NumKinds is the number of pieces in the catalog.
const NumKinds = 7

var kindNames = [NumKinds]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindByName resolves "I", "O", ... to a Kind.
func KindByName(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Tetris pieces (7 standard pieces)
var shapes = [NumKinds]Shape{
	// I-piece
	{
		{1, 1, 1, 1},
	},
	// O-piece
	{
		{1, 1},
		{1, 1},
	},
	// T-piece
	{
		{0, 1, 0},
		{1, 1, 1},
	},
	// S-piece
	{
		{0, 1, 1},
		{1, 1, 0},
	},
	// Z-piece
	{
		{1, 1, 0},
		{0, 1, 1},
	},
	// J-piece
	{
		{1, 0, 0},
		{1, 1, 1},
	},
	// L-piece
	{
		{0, 0, 1},
		{1, 1, 1},
	},
}

// ShapeOf returns a copy of the spawn shape of k.
func ShapeOf(k Kind) Shape {
	return shapes[k].Clone()
}

// Palette assigns one color per Kind.
type Palette [NumKinds]Color

// DefaultPalette is cyan, yellow, magenta, green, red, blue, orange.
var DefaultPalette = Palette{
	0x00ffff,
	0xffff00,
	0xff00ff,
	0x00ff00,
	0xff0000,
	0x0000ff,
	0xffa500,
}

// validate checks that every kind has its own non-empty 0xRRGGBB color.
func (p Palette) validate() error {
	owner := make(map[Color]Kind, NumKinds)
	for i, c := range p {
		k := Kind(i)
		if c == Empty {
			return fmt.Errorf("%s has no color", k)
		}
		if c > MaxColor {
			return fmt.Errorf("color %#x of %s is not 0xRRGGBB", uint32(c), k)
		}
		if prev, ok := owner[c]; ok {
			return fmt.Errorf("%s and %s share color %#06x", prev, k, uint32(c))
		}
		owner[c] = k
	}
	return nil
}

// Randomizer is the random source consumed by the catalog. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Catalog hands out random pieces with their fixed color.
type Catalog struct {
	rng     Randomizer
	palette Palette
}

// NewCatalog validates the built-in shapes and the palette.
func NewCatalog(rng Randomizer, palette Palette) (*Catalog, error) {
	if rng == nil {
		return nil, fmt.Errorf("catalog needs a random source")
	}
	for k, s := range shapes {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("invalid %s shape: %w", Kind(k), err)
		}
	}
	if err := palette.validate(); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}
	return &Catalog{rng: rng, palette: palette}, nil
}

// RandomPiece picks one of the seven shapes uniformly.
func (c *Catalog) RandomPiece() (Shape, Color) {
	k := Kind(c.rng.Intn(NumKinds))
	return ShapeOf(k), c.palette[k]
}
