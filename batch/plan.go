package batch

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/routegen/layout"
	"github.com/katalvlaran/routegen/netcfg"
)

// Plan is one level of generated cases.
type Plan struct {
	// Dir receives the case files; it is created if missing.
	Dir   string
	Level netcfg.Level
	Seed  int64
	// Workers bounds concurrent layouts; 0 means runtime.NumCPU().
	Workers int
	// MaxLayer caps routing layers; 0 means layout.DefaultMaxLayer.
	MaxLayer int
	// RouterDir, when set, also receives the wiring-free form of case i as
	// id_<IDOffset+i>.txt.
	RouterDir string
	IDOffset  int
	// CheckLegal replays every layout before writing and counts overlaps.
	CheckLegal bool
}

// Validate reports the first unusable field, wrapped in ErrInvalidPlan.
func (p Plan) Validate() error {
	switch {
	case p.Dir == "":
		return fmt.Errorf("empty output dir: %w", ErrInvalidPlan)
	case p.Workers < 0:
		return fmt.Errorf("workers=%d: %w", p.Workers, ErrInvalidPlan)
	case p.MaxLayer < 0:
		return fmt.Errorf("max_layer=%d: %w", p.MaxLayer, ErrInvalidPlan)
	case p.IDOffset < 0:
		return fmt.Errorf("id_offset=%d: %w", p.IDOffset, ErrInvalidPlan)
	}
	if err := p.Level.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if err := p.Level.Schedule().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return nil
}

func (p Plan) workers() int {
	n := p.Workers
	if n == 0 {
		n = runtime.NumCPU()
	}
	return max(1, min(n, p.Level.Tests))
}

func (p Plan) layoutOptions(i int) []layout.Option {
	opts := []layout.Option{layout.WithSeed(p.Seed), layout.WithIndex(i)}
	if p.MaxLayer > 0 {
		opts = append(opts, layout.WithMaxLayer(p.MaxLayer))
	}
	return opts
}
