package layout

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/routegen/geom"
)

// Overlap is a cell claimed by more than one committed segment.
type Overlap struct {
	At geom.Point
	// Kind is "H" or "V" for the segment family that hit the cell again.
	Kind  string
	NetID int
}

// CheckLegal replays every committed net, segments first and then pins, into
// a shadow grid and reports each segment cell that was already claimed.
// Overlaps are diagnostics, logged at warn level; they never abort.
func (l *Layout) CheckLegal() []Overlap {
	l.mustActive("CheckLegal")
	seen := make([]bool, l.Width*l.Height*l.Layers)
	at := func(p geom.Point) int {
		assertf(l.grid.InBounds(p.X, p.Y, p.Z), "segment cell %v out of range", p)
		return (p.X*l.Height+p.Y)*l.Layers + p.Z
	}

	var out []Overlap
	claim := func(n *Net, kind string, segs []geom.Segment) {
		for _, s := range segs {
			s.Cells(func(p geom.Point) {
				i := at(p)
				if seen[i] {
					out = append(out, Overlap{At: p, Kind: kind, NetID: n.ID})
				}
				seen[i] = true
			})
		}
	}
	for _, n := range l.nets {
		claim(n, "H", n.HSegments)
		claim(n, "V", n.VSegments)
		for _, p := range n.Pins {
			seen[at(p)] = true
		}
	}

	for _, o := range out {
		l.log.Warn("overlap", zap.String("kind", o.Kind), zap.Int("net", o.NetID), zap.Stringer("at", o.At))
	}
	return out
}
