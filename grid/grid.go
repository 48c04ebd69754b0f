package grid

import (
	"fmt"

	"github.com/katalvlaran/routegen/geom"
)

// New allocates an all-Empty grid of the given dimensions.
// Panics if any dimension is not positive.
// Complexity: O(W×H×L) time and memory.
func New(width, height, layers int) *Grid {
	if width <= 0 || height <= 0 || layers <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%dx%d", width, height, layers))
	}
	n := width * height * layers
	return &Grid{
		Width:   width,
		Height:  height,
		Layers:  layers,
		cells:   make([]Cell, n),
		visited: make([]bool, n),
	}
}

// InBounds reports whether (x,y,z) lies within the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && z >= 0 && z < g.Layers
}

// index maps (x,y,z) to the flat buffer, panicking when out of range.
func (g *Grid) index(x, y, z int) int {
	if g.cells == nil {
		panic("grid: access after Release")
	}
	if !g.InBounds(x, y, z) {
		panic(fmt.Sprintf("grid: (%d, %d, %d) out of range %dx%dx%d",
			x, y, z, g.Width, g.Height, g.Layers))
	}
	return x*g.Height*g.Layers + y*g.Layers + z
}

// coordinate is the inverse of index.
func (g *Grid) coordinate(i int) geom.Point {
	return geom.Point{
		X: i / (g.Height * g.Layers),
		Y: (i % (g.Height * g.Layers)) / g.Layers,
		Z: i % g.Layers,
	}
}

// Cell returns the state at (x,y,z).
func (g *Grid) Cell(x, y, z int) Cell {
	return g.cells[g.index(x, y, z)]
}

// SetCell overwrites the state at (x,y,z).
func (g *Grid) SetCell(x, y, z int, c Cell) {
	g.cells[g.index(x, y, z)] = c
}

// At is Cell addressed by point.
func (g *Grid) At(p geom.Point) Cell {
	return g.Cell(p.X, p.Y, p.Z)
}

// Set is SetCell addressed by point.
func (g *Grid) Set(p geom.Point, c Cell) {
	g.SetCell(p.X, p.Y, p.Z, c)
}

// Visited reports the search mark at (x,y,z).
func (g *Grid) Visited(x, y, z int) bool {
	return g.visited[g.index(x, y, z)]
}

// SetVisited marks (x,y,z) as visited by the running search.
func (g *Grid) SetVisited(x, y, z int) {
	g.visited[g.index(x, y, z)] = true
}

// ResetVisited clears every search mark.
func (g *Grid) ResetVisited() {
	if g.visited == nil {
		panic("grid: access after Release")
	}
	clear(g.visited)
}

// BottomEmpty lists the Empty cells of layer 0 in buffer order.
func (g *Grid) BottomEmpty() []geom.Point {
	var out []geom.Point
	for i, c := range g.cells {
		if c == Empty && i%g.Layers == 0 {
			out = append(out, g.coordinate(i))
		}
	}
	return out
}

// Count returns how many cells hold state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Released reports whether Release has run.
func (g *Grid) Released() bool {
	return g.cells == nil
}

// Release drops both buffers. Dimensions stay readable.
func (g *Grid) Release() {
	g.cells = nil
	g.visited = nil
}
