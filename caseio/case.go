package caseio

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/routegen/geom"
	"github.com/katalvlaran/routegen/layout"
)

// Via is a layer change as stored on disk; the layer is not recorded.
type Via struct {
	X, Y int
}

// Net is one serialized net.
type Net struct {
	ID        int
	Pins      []geom.Point
	Vias      []Via
	HSegments []geom.Segment
	VSegments []geom.Segment
}

// Case is the in-memory form of one case file.
type Case struct {
	Width, Height, Layers int
	TotalWL, TotalVias    int
	Obstacles             []geom.Box
	Nets                  []Net
	// Wired is false for router input, where nets carry pins only.
	Wired bool
}

// FromLayout snapshots l. The result shares no memory with l.
func FromLayout(l *layout.Layout) *Case {
	c := &Case{
		Width:     l.Width,
		Height:    l.Height,
		Layers:    l.Layers,
		TotalWL:   l.TotalWL(),
		TotalVias: l.TotalVias(),
		Obstacles: slices.Clone(l.Obstacles()),
		Wired:     true,
	}
	for _, n := range l.Nets() {
		vias := make([]Via, len(n.Vias))
		for i, v := range n.Vias {
			vias[i] = Via{X: v.X, Y: v.Y}
		}
		c.Nets = append(c.Nets, Net{
			ID:        n.ID,
			Pins:      slices.Clone(n.Pins),
			Vias:      vias,
			HSegments: slices.Clone(n.HSegments),
			VSegments: slices.Clone(n.VSegments),
		})
	}
	return c
}

// RouterInput returns a copy of c with the wiring stripped. Totals are kept.
func (c *Case) RouterInput() *Case {
	out := *c
	out.Wired = false
	out.Obstacles = slices.Clone(c.Obstacles)
	out.Nets = make([]Net, len(c.Nets))
	for i, n := range c.Nets {
		out.Nets[i] = Net{ID: n.ID, Pins: slices.Clone(n.Pins)}
	}
	return &out
}

// WL recomputes the wirelength of n from its vias and segments.
func (n Net) WL() int {
	wl := len(n.Vias)
	for _, s := range n.HSegments {
		wl += s.Span() - 1
	}
	for _, s := range n.VSegments {
		wl += s.Span() - 1
	}
	return wl
}

// Validate checks that every coordinate lies inside the grid, that pins sit
// on layer 0 without repeats inside a net, and, for wired cases, that the
// totals match the nets. Failures wrap ErrInconsistent.
func (c *Case) Validate() error {
	in := func(p geom.Point) bool {
		return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height && p.Z >= 0 && p.Z < c.Layers
	}
	for i, b := range c.Obstacles {
		if !b.Valid() || !in(b.Lo) || !in(geom.Pt(b.Hi.X-1, b.Hi.Y-1, b.Hi.Z)) {
			return fmt.Errorf("obstacle %d %v–%v: %w", i, b.Lo, b.Hi, ErrInconsistent)
		}
	}

	wl, vias := 0, 0
	for _, n := range c.Nets {
		for j, p := range n.Pins {
			if !in(p) || p.Z != 0 {
				return fmt.Errorf("net %d pin %v: %w", n.ID, p, ErrInconsistent)
			}
			if slices.Contains(n.Pins[:j], p) {
				return fmt.Errorf("net %d repeats pin %v: %w", n.ID, p, ErrInconsistent)
			}
		}
		wl += n.WL()
		vias += len(n.Vias)
	}
	if !c.Wired {
		return nil
	}
	if wl != c.TotalWL || vias != c.TotalVias {
		return fmt.Errorf("totals wl=%d via=%d, nets sum to wl=%d via=%d: %w",
			c.TotalWL, c.TotalVias, wl, vias, ErrInconsistent)
	}
	return nil
}
