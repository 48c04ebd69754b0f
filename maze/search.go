package maze

import (
	"fmt"

	"github.com/katalvlaran/routegen/geom"
	"github.com/katalvlaran/routegen/grid"
	"github.com/katalvlaran/routegen/rng"
)

// walker encapsulates state during one search.
type walker struct {
	g        *grid.Grid
	opts     Options
	start    geom.Point
	maxLayer int

	frontier []frame      // explicit DFS stack
	path     []geom.Point // committed walk from start
	steps    int
	unwinds  int
}

// Search grows one route from start. The walk must reach at least minLen
// cells before it may terminate and fails once it exceeds maxLen cells.
// momentum is the probability of trying an in-plane step before a layer change.
//
// On success every cell of Route.Path is grid.Wire (start keeps its state if
// it was not Empty) and Route.End lies on layer 0.
func Search(g *grid.Grid, start geom.Point, minLen, maxLen int, momentum float64, opts ...Option) (Route, bool) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	o.resolve()

	maxLayer := g.Layers
	if o.MaxLayer > 0 && o.MaxLayer < maxLayer {
		maxLayer = o.MaxLayer
	}

	w := &walker{
		g:        g,
		opts:     o,
		start:    start,
		maxLayer: maxLayer,
		frontier: []frame{{cell: start, from: start}},
	}

	// 2. Fresh visited mask for this independent search
	g.ResetVisited()

	end, ok := w.run(minLen, maxLen, momentum)
	if !ok {
		return Route{Start: start, Steps: w.steps, Backtracks: w.unwinds}, false
	}
	w.checkPath()

	return Route{
		Start:      start,
		End:        end,
		Path:       w.path,
		Steps:      w.steps,
		Backtracks: w.unwinds,
	}, true
}

func (w *walker) run(minLen, maxLen int, momentum float64) (geom.Point, bool) {
	for len(w.frontier) > 0 {
		// 1. Pop and commit the most recent candidate
		top := w.frontier[len(w.frontier)-1]
		w.frontier = w.frontier[:len(w.frontier)-1]
		before := len(w.frontier)
		curr := top.cell

		w.steps++
		w.path = append(w.path, curr)
		w.g.SetVisited(curr.X, curr.Y, curr.Z)
		if w.g.At(curr) == grid.Empty {
			w.g.Set(curr, grid.Wire)
		}
		if w.opts.OnVisit != nil {
			w.opts.OnVisit(curr)
		}

		// 2. Termination: stack a via down to layer 0
		if len(w.path) >= minLen && w.stackDown(curr) {
			return geom.Point{X: curr.X, Y: curr.Y, Z: 0}, true
		}

		// 3. Hard cap
		if len(w.path) > maxLen {
			return geom.Point{}, false
		}

		// 4-6. Candidates, ordering and momentum
		inPlane, layered := w.neighbors(curr)
		w.order(inPlane)
		w.order(layered)
		if rng.Float(w.opts.Rand) > momentum {
			w.push(curr, inPlane)
			w.push(curr, layered)
		} else {
			w.push(curr, layered)
			w.push(curr, inPlane)
		}

		// 7. Dead end: unwind to the origin of the next frontier entry
		if len(w.frontier) == before && len(w.frontier) > 0 {
			if !w.unwind(w.frontier[len(w.frontier)-1].from) {
				return geom.Point{}, false
			}
		}
	}
	return geom.Point{}, false
}

// stackDown tries to claim every cell below curr down to layer 0. On failure
// only the cells claimed by this attempt are released.
func (w *walker) stackDown(curr geom.Point) bool {
	mark := len(w.path)
	for z := curr.Z - 1; z >= 0; z-- {
		if w.g.Cell(curr.X, curr.Y, z) != grid.Empty {
			for len(w.path) > mark {
				w.g.Set(w.path[len(w.path)-1], grid.Empty)
				w.path = w.path[:len(w.path)-1]
			}
			return false
		}
		p := geom.Point{X: curr.X, Y: curr.Y, Z: z}
		w.g.Set(p, grid.Wire)
		w.path = append(w.path, p)
	}
	return true
}

// neighbors returns the qualifying in-plane and layer-change candidates.
func (w *walker) neighbors(p geom.Point) (inPlane, layered []geom.Point) {
	if p.Z%2 == 1 {
		inPlane = w.appendFree(inPlane, p.X, p.Y-1, p.Z)
		inPlane = w.appendFree(inPlane, p.X, p.Y+1, p.Z)
	} else {
		inPlane = w.appendFree(inPlane, p.X-1, p.Y, p.Z)
		inPlane = w.appendFree(inPlane, p.X+1, p.Y, p.Z)
	}
	if p.Z+1 < w.maxLayer {
		layered = w.appendFree(layered, p.X, p.Y, p.Z+1)
	}
	layered = w.appendFree(layered, p.X, p.Y, p.Z-1)
	return inPlane, layered
}

func (w *walker) appendFree(dst []geom.Point, x, y, z int) []geom.Point {
	if !w.g.InBounds(x, y, z) || w.g.Cell(x, y, z) != grid.Empty || w.g.Visited(x, y, z) {
		return dst
	}
	return append(dst, geom.Point{X: x, Y: y, Z: z})
}

// order puts the candidate closer to start first so the farther one is
// pushed last and popped first. Ties are decided by a coin flip.
func (w *walker) order(c []geom.Point) {
	if len(c) != 2 {
		return
	}
	d0, d1 := c[0].Dist(w.start), c[1].Dist(w.start)
	if d0 > d1 || (d0 == d1 && rng.Coin(w.opts.Rand)) {
		c[0], c[1] = c[1], c[0]
	}
}

func (w *walker) push(from geom.Point, cells []geom.Point) {
	for _, c := range cells {
		w.frontier = append(w.frontier, frame{cell: c, from: from})
	}
}

// unwind pops the walk until its tail is origin, clearing each popped cell.
// The start cell is never cleared; reaching it without meeting origin
// reports false.
func (w *walker) unwind(origin geom.Point) bool {
	w.unwinds++
	for len(w.path) > 1 {
		tail := w.path[len(w.path)-1]
		if tail == origin {
			return true
		}
		w.g.Set(tail, grid.Empty)
		w.path = w.path[:len(w.path)-1]
	}
	return len(w.path) == 1 && w.path[0] == origin
}

// checkPath enforces the unit-step invariant of a committed walk.
func (w *walker) checkPath() {
	for i := 1; i < len(w.path); i++ {
		if d := w.path[i].Dist(w.path[i-1]); d != 1 {
			panic(fmt.Sprintf("maze: path step %d from %v to %v has length %d",
				i, w.path[i-1], w.path[i], d))
		}
	}
}
