package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand returns the values of seq in order, wrapping around.
type seqRand struct {
	seq []int
	i   int
}

func (r *seqRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)] % n
	r.i++
	return v
}

func kinds(ks ...Kind) *seqRand {
	seq := make([]int, len(ks))
	for i, k := range ks {
		seq[i] = int(k)
	}
	return &seqRand{seq: seq}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for k := Kind(0); k < NumKinds; k++ {
		t.Run(k.String(), func(t *testing.T) {
			orig := ShapeOf(k)
			s := orig
			for i := 0; i < 4; i++ {
				s = RotateShape(s)
			}
			assert.True(t, orig.Equal(s), "got %v want %v", s, orig)
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	got := RotateShape(ShapeOf(KindJ))
	want := Shape{
		{1, 1},
		{1, 0},
		{1, 0},
	}
	assert.Equal(t, want, got)

	i := RotateShape(ShapeOf(KindI))
	assert.Equal(t, 1, i.Width())
	assert.Equal(t, 4, i.Height())
}

func TestRotateDoesNotMutateInput(t *testing.T) {
	s := ShapeOf(KindL)
	before := s.Clone()
	RotateShape(s)
	assert.Equal(t, before, s)
}

func TestShapeOfReturnsCopy(t *testing.T) {
	s := ShapeOf(KindO)
	s[0][0] = 0
	assert.Equal(t, 1, ShapeOf(KindO)[0][0])
}

func TestCatalogRandomPiece(t *testing.T) {
	c, err := NewCatalog(kinds(KindT, KindI, KindL), DefaultPalette)
	require.NoError(t, err)

	shape, color := c.RandomPiece()
	assert.Equal(t, ShapeOf(KindT), shape)
	assert.Equal(t, Color(0xff00ff), color)

	shape, color = c.RandomPiece()
	assert.Equal(t, ShapeOf(KindI), shape)
	assert.Equal(t, Color(0x00ffff), color)

	shape, color = c.RandomPiece()
	assert.Equal(t, ShapeOf(KindL), shape)
	assert.Equal(t, Color(0xffa500), color)
}

func TestCatalogSeededIsDeterministic(t *testing.T) {
	a, err := NewCatalog(rand.New(rand.NewSource(42)), DefaultPalette)
	require.NoError(t, err)
	b, err := NewCatalog(rand.New(rand.NewSource(42)), DefaultPalette)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		sa, ca := a.RandomPiece()
		sb, cb := b.RandomPiece()
		require.Equal(t, sa, sb)
		require.Equal(t, ca, cb)
	}
}

func TestCatalogCoversEveryKind(t *testing.T) {
	c, err := NewCatalog(rand.New(rand.NewSource(1)), DefaultPalette)
	require.NoError(t, err)

	seen := map[Color]bool{}
	for i := 0; i < 500; i++ {
		_, color := c.RandomPiece()
		seen[color] = true
	}
	assert.Len(t, seen, NumKinds)
}

func TestNewCatalogRejectsBadInput(t *testing.T) {
	_, err := NewCatalog(nil, DefaultPalette)
	assert.Error(t, err)

	tests := []struct {
		name  string
		kind  Kind
		color Color
		want  string
	}{
		{"empty color", KindZ, Empty, "Z has no color"},
		{"shared color", KindO, DefaultPalette[KindI], "I and O share color"},
		{"beyond 0xRRGGBB", KindL, 0x1ffffff, "not 0xRRGGBB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			palette := DefaultPalette
			palette[tt.kind] = tt.color
			_, err := NewCatalog(kinds(KindI), palette)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, ShapeOf(KindT).validate())
	assert.Error(t, Shape{}.validate())
	assert.Error(t, Shape{{0, 0}}.validate())
	assert.Error(t, Shape{{1, 1}, {1}}.validate())
	assert.Error(t, Shape{{2}}.validate())
}

func TestKindByName(t *testing.T) {
	k, ok := KindByName("S")
	assert.True(t, ok)
	assert.Equal(t, KindS, k)

	_, ok = KindByName("X")
	assert.False(t, ok)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestColorRGB(t *testing.T) {
	r, g, b := Color(0xffa500).RGB()
	assert.Equal(t, uint8(0xff), r)
	assert.Equal(t, uint8(0xa5), g)
	assert.Equal(t, uint8(0x00), b)
}
