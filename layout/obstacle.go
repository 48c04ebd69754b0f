package layout

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/routegen/geom"
	"github.com/katalvlaran/routegen/grid"
	"github.com/katalvlaran/routegen/netcfg"
	"github.com/katalvlaran/routegen/rng"
)

// MaxObstacleRejects bounds the rejected samples per layer.
const MaxObstacleRejects = 10

// PlaceStats reports per-layer placement outcomes.
type PlaceStats struct {
	Placed   []int
	Rejected []int
}

// PlaceObstacles samples counts[z] obstacles on each layer z. Even layers
// vary the width within sizes[z], odd layers the height; the other side is 1.
// A layer stops at its count or after MaxObstacleRejects rejected samples.
//
// Panics if len(counts) exceeds the layer count or differs from len(sizes).
func (l *Layout) PlaceObstacles(counts []int, sizes []netcfg.SizeRange) PlaceStats {
	l.mustActive("PlaceObstacles")
	assertf(len(counts) <= l.Layers, "%d obstacle layers for a %d-layer grid", len(counts), l.Layers)
	assertf(len(counts) == len(sizes), "%d counts but %d size ranges", len(counts), len(sizes))

	st := PlaceStats{Placed: make([]int, len(counts)), Rejected: make([]int, len(counts))}
	for z, want := range counts {
		for st.Placed[z] < want && st.Rejected[z] < MaxObstacleRejects {
			w, h := 1, 1
			if z%2 == 1 {
				h = rng.IntRange(l.rand, sizes[z].Min, sizes[z].Max)
			} else {
				w = rng.IntRange(l.rand, sizes[z].Min, sizes[z].Max)
			}
			if w >= l.Width || h >= l.Height {
				st.Rejected[z]++
				continue
			}
			x := rng.IntRange(l.rand, 0, l.Width-w-1)
			y := rng.IntRange(l.rand, 0, l.Height-h-1)
			if l.AddObstacle(geom.Pt(x, y, z), geom.Pt(x+w, y+h, z)) {
				st.Placed[z]++
			} else {
				st.Rejected[z]++
			}
		}
	}
	l.log.Debug("obstacles placed",
		zap.Ints("placed", st.Placed),
		zap.Ints("rejected", st.Rejected),
		zap.Int("total", len(l.obstacles)))
	return st
}

// AddObstacle blocks the box [lo.x,hi.x)×[lo.y,hi.y)×[lo.z,hi.z]. It returns
// false and changes nothing if any covered cell is not Empty.
// Inverted corners or out-of-range cells panic.
func (l *Layout) AddObstacle(lo, hi geom.Point) bool {
	l.mustActive("AddObstacle")
	box := geom.Box{Lo: lo, Hi: hi}
	assertf(box.Valid(), "invalid obstacle %v–%v", lo, hi)

	free := true
	box.Cells(func(p geom.Point) bool {
		free = l.grid.At(p) == grid.Empty
		return free
	})
	if !free {
		return false
	}
	box.Cells(func(p geom.Point) bool {
		l.grid.Set(p, grid.Obstacle)
		return true
	})
	l.obstacles = append(l.obstacles, box)
	return true
}
