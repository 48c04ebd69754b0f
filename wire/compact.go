package wire

import "github.com/katalvlaran/routegen/geom"

// Result is the compacted wiring of one net.
type Result struct {
	Vias      []geom.Point
	HSegments []geom.Segment
	VSegments []geom.Segment
	WL        int
}

// Compact converts the consumed edges of m into segments and clears m.
//
// Rows of even layers are scanned left to right and columns of odd layers
// top to bottom. Each maximal run of k ≥ 1 set flags spans k+1 cells and
// becomes one segment contributing k to WL; cells touched by no consumed edge
// yield nothing. WL starts at len(vias).
//
// Complexity: O(W·H·L).
func Compact(m *EdgeMap, vias []geom.Point) Result {
	res := Result{Vias: vias, WL: len(vias)}
	for z, layer := range m.flags {
		if z%2 == 0 {
			for y := 0; y < m.Height; y++ {
				row := layer[y*(m.Width-1) : (y+1)*(m.Width-1)]
				scan(row, func(lo, hi int) {
					res.HSegments = append(res.HSegments, geom.HSegment(lo, hi, y, z))
					res.WL += hi - lo - 1
				})
			}
			continue
		}
		for x := 0; x < m.Width; x++ {
			col := layer[x*(m.Height-1) : (x+1)*(m.Height-1)]
			scan(col, func(lo, hi int) {
				res.VSegments = append(res.VSegments, geom.VSegment(x, lo, hi, z))
				res.WL += hi - lo - 1
			})
		}
	}
	return res
}

// scan emits [lo, hi) cell ranges for every maximal run of set flags and
// clears each flag it passes.
func scan(flags []bool, emit func(lo, hi int)) {
	beg := -1
	for j, f := range flags {
		if !f {
			if j-beg >= 2 {
				emit(beg+1, j+1)
			}
			beg = j
		}
		flags[j] = false
	}
	if n := len(flags); n-beg >= 2 {
		emit(beg+1, n+1)
	}
}
