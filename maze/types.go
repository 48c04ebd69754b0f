package maze

import (
	"math/rand"

	"github.com/katalvlaran/routegen/geom"
	"github.com/katalvlaran/routegen/rng"
)

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds the knobs of a single search.
type Options struct {
	// Rand drives tie-break coins and momentum draws.
	// Defaults to a stream seeded with rng.DefaultSeed.
	Rand *rand.Rand

	// MaxLayer caps layer changes to z < MaxLayer. Zero means the grid's
	// layer count.
	MaxLayer int

	// OnVisit, if non-nil, observes each cell popped from the frontier.
	OnVisit func(p geom.Point)
}

// DefaultOptions returns Options with a deterministic default stream and no
// layer cap.
func DefaultOptions() Options {
	return Options{
		Rand:     nil,
		MaxLayer: 0,
		OnVisit:  nil,
	}
}

// WithRand installs the random stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithMaxLayer restricts routing to layers [0, n). Panics if n < 1.
func WithMaxLayer(n int) Option {
	if n < 1 {
		panic("maze: WithMaxLayer(n<1)")
	}
	return func(o *Options) {
		o.MaxLayer = n
	}
}

// WithOnVisit installs a hook observing every popped cell.
func WithOnVisit(fn func(p geom.Point)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

func (o *Options) resolve() {
	if o.Rand == nil {
		o.Rand = rng.FromSeed(rng.DefaultSeed)
	}
}

// Route is the outcome of a successful search.
type Route struct {
	// Start is the search origin.
	Start geom.Point
	// End is the new terminal; always on layer 0.
	End geom.Point
	// Path walks from Start to End, stacked via cells included. Consecutive
	// points are exactly one unit apart.
	Path []geom.Point
	// Steps counts frontier pops; Backtracks counts dead-end unwinds.
	Steps, Backtracks int
}

// frame is one frontier entry: a candidate cell and the cell that proposed it.
type frame struct {
	cell, from geom.Point
}
