package tetris

// Board is the playfield, indexed [row][col]. Empty cells hold Empty.
type Board struct {
	cells         [][]Color
	width, height int
}

// NewBoard creates an empty board of the given size.
func NewBoard(width, height int) *Board {
	b := &Board{
		cells:  make([][]Color, height),
		width:  width,
		height: height,
	}
	for i := range b.cells {
		b.cells[i] = make([]Color, width)
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Cell returns the color at column x, row y.
func (b *Board) Cell(x, y int) Color {
	return b.cells[y][x]
}

// Set writes a color at column x, row y.
func (b *Board) Set(x, y int, c Color) {
	b.cells[y][x] = c
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, b.height)
	for i := range b.cells {
		rows[i] = make([]Color, b.width)
		copy(rows[i], b.cells[i])
	}
	return rows
}

// Collides reports whether shape placed at (offsetX, offsetY) leaves the
// board sideways or below, or overlaps an occupied cell. Cells above the
// top edge never collide so pieces can spawn partly off-screen.
func (b *Board) Collides(shape Shape, offsetX, offsetY int) bool {
	for y := range shape {
		for x := range shape[y] {
			if shape[y][x] == 0 {
				continue
			}
			newX := offsetX + x
			newY := offsetY + y

			if newX < 0 || newX >= b.width || newY >= b.height {
				return true
			}
			if newY >= 0 && b.cells[newY][newX] != Empty {
				return true
			}
		}
	}
	return false
}

// Merge writes color into every cell covered by shape. The position must
// already be known not to collide; cells above the board are dropped.
func (b *Board) Merge(shape Shape, offsetX, offsetY int, color Color) {
	for y := range shape {
		for x := range shape[y] {
			if shape[y][x] == 0 {
				continue
			}
			if offsetY+y < 0 {
				continue
			}
			b.cells[offsetY+y][offsetX+x] = color
		}
	}
}

// ClearLines removes every full row, shifting the rows above it down, and
// returns how many rows were removed.
func (b *Board) ClearLines() int {
	linesCleared := 0

	for y := b.height - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		copy(b.cells[1:y+1], b.cells[0:y])
		b.cells[0] = make([]Color, b.width)
		y++ // rows shifted, check the same index again
		linesCleared++
	}

	return linesCleared
}

func (b *Board) rowFull(y int) bool {
	for _, cell := range b.cells[y] {
		if cell == Empty {
			return false
		}
	}
	return true
}
