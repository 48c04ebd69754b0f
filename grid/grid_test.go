// File: grid/grid_test.go
package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegen/geom"
)

// TestIndex_RoundTrip checks that coordinate inverts index over the whole
// volume, i.e. index(x,y,z) = x*H*L + y*L + z.
func TestIndex_RoundTrip(t *testing.T) {
	g := New(3, 4, 2)
	for x := 0; x < 3; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 2; z++ {
				i := g.index(x, y, z)
				require.Equal(t, x*4*2+y*2+z, i)
				require.Equal(t, geom.Pt(x, y, z), g.coordinate(i))
			}
		}
	}
}

func TestCell_SetGet(t *testing.T) {
	g := New(2, 2, 2)
	assert.Equal(t, Empty, g.Cell(1, 1, 1))

	g.SetCell(1, 1, 1, Wire)
	g.Set(geom.Pt(0, 1, 0), Pin)
	assert.Equal(t, Wire, g.Cell(1, 1, 1))
	assert.Equal(t, Pin, g.At(geom.Pt(0, 1, 0)))
	assert.Equal(t, 1, g.Count(Wire))
	assert.Equal(t, 6, g.Count(Empty))
}

// TestOutOfRange_Panics verifies that every accessor treats a bad coordinate
// as a fatal contract violation.
func TestOutOfRange_Panics(t *testing.T) {
	g := New(2, 3, 2)
	assert.PanicsWithValue(t, "grid: (2, 0, 0) out of range 2x3x2", func() { g.Cell(2, 0, 0) })
	assert.Panics(t, func() { g.SetCell(0, -1, 0, Wire) })
	assert.Panics(t, func() { g.Visited(0, 0, 2) })
	assert.Panics(t, func() { g.SetVisited(0, 3, 0) })
	assert.Panics(t, func() { New(0, 1, 1) })
}

func TestVisited_Reset(t *testing.T) {
	g := New(2, 2, 1)
	g.SetVisited(1, 0, 0)
	require.True(t, g.Visited(1, 0, 0))

	g.ResetVisited()
	assert.False(t, g.Visited(1, 0, 0))
}

func TestBottomEmpty(t *testing.T) {
	g := New(2, 2, 2)
	g.SetCell(0, 1, 0, Obstacle)
	g.SetCell(1, 0, 1, Wire) // upper layer, not a candidate

	got := g.BottomEmpty()
	assert.Equal(t, []geom.Point{geom.Pt(0, 0, 0), geom.Pt(1, 0, 0), geom.Pt(1, 1, 0)}, got)
}

func TestRelease(t *testing.T) {
	g := New(2, 2, 1)
	g.Release()
	assert.True(t, g.Released())
	assert.Equal(t, 2, g.Width)
	assert.PanicsWithValue(t, "grid: access after Release", func() { g.Cell(0, 0, 0) })
	assert.Panics(t, g.ResetVisited)
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "obstacle", Obstacle.String())
	assert.Equal(t, "pin", Pin.String())
	assert.Equal(t, "unknown", Cell(9).String())
}
