package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/routegen/geom"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := geom.Pt(3, 1, 0)
	q := geom.Pt(1, 4, 1)

	assert.Equal(t, geom.Pt(2, -3, -1), p.Sub(q))
	assert.Equal(t, geom.Pt(4, 5, 1), p.Add(q))
	assert.Equal(t, 6, p.Sub(q).Manhattan())
	assert.Equal(t, 6, p.Dist(q))
	assert.Equal(t, "(3, 1, 0)", p.String())
}

func TestPoint_Less(t *testing.T) {
	assert.True(t, geom.Pt(0, 9, 9).Less(geom.Pt(1, 0, 0)))
	assert.True(t, geom.Pt(1, 0, 9).Less(geom.Pt(1, 1, 0)))
	assert.True(t, geom.Pt(1, 1, 0).Less(geom.Pt(1, 1, 1)))
	assert.False(t, geom.Pt(1, 1, 1).Less(geom.Pt(1, 1, 1)))
}

func TestBox_Cells(t *testing.T) {
	b := geom.Box{Lo: geom.Pt(1, 2, 0), Hi: geom.Pt(3, 3, 0)}
	assert.True(t, b.Valid())

	var got []geom.Point
	b.Cells(func(p geom.Point) bool {
		got = append(got, p)
		return true
	})
	assert.Equal(t, []geom.Point{geom.Pt(1, 2, 0), geom.Pt(2, 2, 0)}, got)

	assert.False(t, geom.Box{Lo: geom.Pt(2, 0, 0), Hi: geom.Pt(1, 1, 0)}.Valid())
}

func TestSegment_SpanAndCells(t *testing.T) {
	h := geom.HSegment(2, 5, 1, 0)
	assert.Equal(t, geom.Segment{2, 1, 0, 5, 2, 0}, h)
	assert.Equal(t, 3, h.Span())

	v := geom.VSegment(4, 0, 2, 1)
	assert.Equal(t, geom.Segment{4, 0, 1, 5, 2, 1}, v)
	assert.Equal(t, 1, v.Layer())

	var cells []geom.Point
	v.Cells(func(p geom.Point) { cells = append(cells, p) })
	assert.Equal(t, []geom.Point{geom.Pt(4, 0, 1), geom.Pt(4, 1, 1)}, cells)
}
