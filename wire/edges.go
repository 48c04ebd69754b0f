package wire

import (
	"fmt"

	"github.com/katalvlaran/routegen/geom"
)

// EdgeMap holds one flag per unit edge along each layer's preferred axis.
//
// Even layer z, row y:   flags[z][y*(W-1)+x] is the edge (x,y)–(x+1,y).
// Odd layer z, column x: flags[z][x*(H-1)+y] is the edge (x,y)–(x,y+1).
type EdgeMap struct {
	Width, Height, Layers int

	flags [][]bool
}

// NewEdgeMap allocates cleared flags for a width×height×layers volume.
func NewEdgeMap(width, height, layers int) *EdgeMap {
	m := &EdgeMap{Width: width, Height: height, Layers: layers, flags: make([][]bool, layers)}
	for z := range m.flags {
		if z%2 == 0 {
			m.flags[z] = make([]bool, height*(width-1))
		} else {
			m.flags[z] = make([]bool, width*(height-1))
		}
	}
	return m
}

// Mark records the step a→b. It returns the via point (lower layer) and true
// when the step is a layer change. A step that is not unit length, or that
// runs against the layer's preferred axis, panics.
func (m *EdgeMap) Mark(a, b geom.Point) (geom.Point, bool) {
	if m.flags == nil {
		panic("wire: EdgeMap used after Release")
	}
	if a.Dist(b) != 1 {
		panic(fmt.Sprintf("wire: step %v→%v is not unit length", a, b))
	}
	switch {
	case a.Z != b.Z:
		return geom.Point{X: a.X, Y: a.Y, Z: min(a.Z, b.Z)}, true
	case a.X != b.X && a.Z%2 == 0:
		m.flags[a.Z][a.Y*(m.Width-1)+min(a.X, b.X)] = true
	case a.Y != b.Y && a.Z%2 == 1:
		m.flags[a.Z][a.X*(m.Height-1)+min(a.Y, b.Y)] = true
	default:
		panic(fmt.Sprintf("wire: step %v→%v runs against layer %d direction", a, b, a.Z))
	}
	return geom.Point{}, false
}

// Marked reports the flag of the edge starting at p along its layer's axis.
func (m *EdgeMap) Marked(p geom.Point) bool {
	if p.Z%2 == 0 {
		return m.flags[p.Z][p.Y*(m.Width-1)+p.X]
	}
	return m.flags[p.Z][p.X*(m.Height-1)+p.Y]
}

// Count returns the number of set flags.
func (m *EdgeMap) Count() int {
	n := 0
	for _, layer := range m.flags {
		for _, f := range layer {
			if f {
				n++
			}
		}
	}
	return n
}

// Clear resets every flag.
func (m *EdgeMap) Clear() {
	for _, layer := range m.flags {
		clear(layer)
	}
}

// Release drops the flags; further use panics.
func (m *EdgeMap) Release() {
	m.flags = nil
}
