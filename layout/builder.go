package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/routegen/geom"
	"github.com/katalvlaran/routegen/grid"
	"github.com/katalvlaran/routegen/maze"
	"github.com/katalvlaran/routegen/netcfg"
	"github.com/katalvlaran/routegen/rng"
	"github.com/katalvlaran/routegen/wire"
)

// GenerateNets builds every entry of s in order and returns how many nets
// were committed. Individual build failures are expected and only counted;
// an invalid schedule is rejected before any work.
func (l *Layout) GenerateNets(s netcfg.Schedule) (int, error) {
	l.mustActive("GenerateNets")
	if err := s.Validate(); err != nil {
		return 0, fmt.Errorf("layout: GenerateNets: %w", err)
	}

	total := 0
	for _, e := range s {
		created := 0
		for i := 0; i < e.Count; i++ {
			if _, ok := l.BuildNet(e.Config); ok {
				created++
			}
		}
		total += created
		l.log.Info("nets created",
			zap.Int("pin_num", e.Config.PinNum),
			zap.Int("requested", e.Count),
			zap.Int("created", created))
	}
	return total, nil
}

// BuildNet routes one net of cfg.PinNum pins and commits it.
//
//  1. Up to RerouteNum shuffled Empty bottom cells are tried as the origin of
//     a Momentum1 search; the first success fixes pins 1 and 2.
//  2. Each further pin re-enters the net: up to RerouteNum shuffled Wire/Pin
//     cells of the routes so far are tried as origins of Momentum2 searches.
//
// If any stage runs out of attempts, every cell of the recorded routes is
// reset to Empty and false is returned; nothing is committed.
//
// A second pin directly beside the first on the same row, or a later pin with
// a Pin cell directly left or right of it, is rejected and its route undone.
//
// Panics if cfg is invalid.
func (l *Layout) BuildNet(cfg netcfg.Config) (*Net, bool) {
	l.mustActive("BuildNet")
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("layout: BuildNet: %v", err))
	}

	tr := wire.NewTracker(l.edges)
	pins, ok := l.firstPair(cfg, tr)
	if !ok {
		l.rollback(tr)
		l.log.Debug("net abandoned", zap.Int("pins_routed", 0))
		return nil, false
	}
	for len(pins) < cfg.PinNum {
		end, ok := l.nextPin(cfg, tr)
		if !ok {
			l.rollback(tr)
			l.log.Debug("net abandoned", zap.Int("pins_routed", len(pins)))
			return nil, false
		}
		pins = append(pins, end)
	}
	assertf(len(pins) == cfg.PinNum, "net has %d pins, want %d", len(pins), cfg.PinNum)

	res := wire.Compact(l.edges, tr.Vias())
	net := &Net{
		ID:        len(l.nets),
		Pins:      pins,
		Vias:      res.Vias,
		HSegments: res.HSegments,
		VSegments: res.VSegments,
		WL:        res.WL,
	}
	l.nets = append(l.nets, net)
	return net, true
}

// firstPair grows the initial two-pin route.
func (l *Layout) firstPair(cfg netcfg.Config, tr *wire.Tracker) ([]geom.Point, bool) {
	starts := l.grid.BottomEmpty()
	rng.Shuffle(l.rand, starts)

	for _, beg := range starts[:min(cfg.RerouteNum, len(starts))] {
		// An earlier failed search may have consumed this cell.
		if l.grid.At(beg) != grid.Empty {
			continue
		}
		route, ok := l.search(beg, cfg, cfg.Momentum1)
		if !ok {
			continue
		}
		end := route.End
		if abs(beg.X-end.X) == 1 && beg.Y == end.Y {
			l.unmark(route.Path)
			continue
		}
		assertf(end.Z == 0, "terminal %v off the pin layer", end)
		tr.Record(route.Path)
		l.grid.Set(beg, grid.Pin)
		l.grid.Set(end, grid.Pin)
		return []geom.Point{beg, end}, true
	}
	return nil, false
}

// nextPin grows one more terminal from the routes recorded so far.
func (l *Layout) nextPin(cfg netcfg.Config, tr *wire.Tracker) (geom.Point, bool) {
	var starts []geom.Point
	for _, p := range tr.Cells() {
		if c := l.grid.At(p); c == grid.Wire || c == grid.Pin {
			starts = append(starts, p)
		}
	}
	rng.Shuffle(l.rand, starts)

	for _, beg := range starts[:min(cfg.RerouteNum, len(starts))] {
		route, ok := l.search(beg, cfg, cfg.Momentum2)
		if !ok {
			continue
		}
		if l.pinBeside(route.End) {
			l.unmark(route.Path[1:])
			continue
		}
		assertf(route.End.Z == 0, "terminal %v off the pin layer", route.End)
		tr.Record(route.Path)
		l.grid.Set(route.End, grid.Pin)
		return route.End, true
	}
	return geom.Point{}, false
}

func (l *Layout) search(beg geom.Point, cfg netcfg.Config, momentum float64) (maze.Route, bool) {
	target := rng.HalfNormal(l.rand, cfg.MinWL, cfg.MaxWL)
	return maze.Search(l.grid, beg, target, cfg.WLLimit, momentum,
		maze.WithRand(l.rand),
		maze.WithMaxLayer(l.maxLayer))
}

// pinBeside reports a Pin cell directly left or right of p.
func (l *Layout) pinBeside(p geom.Point) bool {
	if p.X-1 >= 0 && l.grid.Cell(p.X-1, p.Y, p.Z) == grid.Pin {
		return true
	}
	return p.X+1 < l.Width && l.grid.Cell(p.X+1, p.Y, p.Z) == grid.Pin
}

// unmark releases the cells of a rejected route.
func (l *Layout) unmark(cells []geom.Point) {
	for _, p := range cells {
		l.grid.Set(p, grid.Empty)
	}
}

// rollback releases every recorded cell of an abandoned net and clears its
// edge flags.
func (l *Layout) rollback(tr *wire.Tracker) {
	for _, p := range tr.Cells() {
		l.grid.Set(p, grid.Empty)
	}
	tr.Discard()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
