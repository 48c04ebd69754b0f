package grid

import "github.com/katalvlaran/routegen/geom"

// planarOffsets are the 4-neighbour steps within one layer.
var planarOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// FreeRegions finds the contiguous islands of Empty cells on layer z under
// 4-connectivity. Each region lists its cells in BFS order; regions are
// ordered by their first cell in x-major scan.
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) FreeRegions(z int) [][]geom.Point {
	if z < 0 || z >= g.Layers {
		panic("grid: FreeRegions layer out of range")
	}
	seen := make([]bool, g.Width*g.Height)
	at := func(x, y int) int { return x*g.Height + y }
	var regions [][]geom.Point

	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if seen[at(x, y)] || g.Cell(x, y, z) != Empty {
				continue
			}
			seen[at(x, y)] = true
			queue := []geom.Point{{X: x, Y: y, Z: z}}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range planarOffsets {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !g.InBounds(vx, vy, z) || seen[at(vx, vy)] || g.Cell(vx, vy, z) != Empty {
						continue
					}
					seen[at(vx, vy)] = true
					queue = append(queue, geom.Point{X: vx, Y: vy, Z: z})
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}
