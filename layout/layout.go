package layout

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/routegen/geom"
	"github.com/katalvlaran/routegen/grid"
	"github.com/katalvlaran/routegen/wire"
)

// State is the lifecycle stage of a Layout.
type State int

const (
	// Active layouts accept obstacles and nets.
	Active State = iota
	// Archived layouts keep only net pins; further generation panics.
	Archived
)

// Layout is one routing scenario. It exclusively owns its grid, edge maps,
// obstacles and committed nets.
type Layout struct {
	Width, Height, Layers int

	index    int
	maxLayer int
	rand     *rand.Rand
	log      *zap.Logger
	state    State

	grid      *grid.Grid
	edges     *wire.EdgeMap
	obstacles []geom.Box
	nets      []*Net
}

// New builds an Active layout. Panics if width or height is below 2 or
// layers is below 1.
func New(width, height, layers int, opts ...Option) *Layout {
	if width < 2 || height < 2 || layers < 1 {
		panic(fmt.Sprintf("layout: invalid dimensions %dx%dx%d", width, height, layers))
	}
	cfg := newConfig(opts...)
	return &Layout{
		Width:    width,
		Height:   height,
		Layers:   layers,
		index:    cfg.index,
		maxLayer: min(cfg.maxLayer, layers),
		rand:     cfg.rand,
		log:      cfg.logger.With(zap.Int("layout", cfg.index)),
		state:    Active,
		grid:     grid.New(width, height, layers),
		edges:    wire.NewEdgeMap(width, height, layers),
	}
}

// Index returns the layout's position within its batch.
func (l *Layout) Index() int { return l.index }

// MaxLayer returns the effective routing layer cap.
func (l *Layout) MaxLayer() int { return l.maxLayer }

// State returns the lifecycle stage.
func (l *Layout) State() State { return l.state }

// Obstacles returns the placed obstacle boxes in placement order.
func (l *Layout) Obstacles() []geom.Box { return l.obstacles }

// Nets returns the committed nets in ID order.
func (l *Layout) Nets() []*Net { return l.nets }

// Cell reports the state of p. Panics after Archive or when p is out of range.
func (l *Layout) Cell(p geom.Point) grid.Cell {
	l.mustActive("Cell")
	return l.grid.At(p)
}

// TotalWL sums the wirelength of every committed net.
func (l *Layout) TotalWL() int {
	wl := 0
	for _, n := range l.nets {
		wl += n.WL
	}
	return wl
}

// TotalVias counts the vias of every committed net.
func (l *Layout) TotalVias() int {
	v := 0
	for _, n := range l.nets {
		v += len(n.Vias)
	}
	return v
}

// Archive moves the layout to Archived: wiring is dropped from every net,
// the grid and edge maps are released, and only pins remain. Irreversible.
func (l *Layout) Archive() {
	l.mustActive("Archive")
	for _, n := range l.nets {
		n.reset()
	}
	l.grid.Release()
	l.edges.Release()
	l.state = Archived
	l.log.Debug("layout archived", zap.Int("nets", len(l.nets)))
}

// Stats summarizes a layout.
type Stats struct {
	Obstacles int
	Nets      int
	WL        int
	Vias      int
	// FreeRegions and LargestFreeRegion describe Empty islands on layer 0;
	// both are zero once archived.
	FreeRegions       int
	LargestFreeRegion int
}

// Stats reports the current totals.
func (l *Layout) Stats() Stats {
	s := Stats{
		Obstacles: len(l.obstacles),
		Nets:      len(l.nets),
		WL:        l.TotalWL(),
		Vias:      l.TotalVias(),
	}
	if l.state == Active {
		regions := l.grid.FreeRegions(0)
		s.FreeRegions = len(regions)
		for _, r := range regions {
			s.LargestFreeRegion = max(s.LargestFreeRegion, len(r))
		}
	}
	return s
}

func (l *Layout) mustActive(op string) {
	if l.state != Active {
		panic(fmt.Sprintf("layout: %s after Archive", op))
	}
}

// assertf panics with a "layout: " diagnostic when cond is false.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("layout: " + fmt.Sprintf(format, args...))
	}
}
