package batch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/routegen/caseio"
	"github.com/katalvlaran/routegen/netcfg"
	"github.com/katalvlaran/routegen/rng"
)

// TrainIDStride separates the router-input ids of consecutive train levels.
const TrainIDStride = 10000

// Suite is a set of levels sharing one directory and manifest.
type Suite struct {
	Dir    string
	Levels []netcfg.Level
	// Type is caseio.TypeTrain or caseio.TypeTest.
	Type int
	// Level k numbers its router-input files from (k+1)*IDStride.
	IDStride   int
	Seed       int64
	Workers    int
	MaxLayer   int
	CheckLegal bool
}

// TrainSuite returns the five-level training suite for a size×size grid.
func TrainSuite(dir string, size, layers int) Suite {
	return Suite{Dir: dir, Levels: netcfg.TrainLevels(size, layers), Type: caseio.TypeTrain, IDStride: TrainIDStride}
}

// EvalSuite returns the single-level evaluation suite.
func EvalSuite(dir string, size, layers int) Suite {
	return Suite{Dir: dir, Levels: []netcfg.Level{netcfg.EvalLevel(size, layers)}, Type: caseio.TypeTrain}
}

// TestSuite returns the single-level test suite.
func TestSuite(dir string, size, layers int) Suite {
	return Suite{Dir: dir, Levels: []netcfg.Level{netcfg.TestLevel(size, layers)}, Type: caseio.TypeTest}
}

// plans expands s into one Plan per level. Level seeds are derived from
// s.Seed so levels never share a stream.
func (s Suite) plans() []Plan {
	out := make([]Plan, len(s.Levels))
	for k, lv := range s.Levels {
		name := fmt.Sprintf("level_%d", k)
		out[k] = Plan{
			Dir:        filepath.Join(s.Dir, "raw", name),
			RouterDir:  filepath.Join(s.Dir, name),
			IDOffset:   (k + 1) * s.IDStride,
			Level:      lv,
			Seed:       rng.DeriveSeed(s.Seed, uint64(k)),
			Workers:    s.Workers,
			MaxLayer:   s.MaxLayer,
			CheckLegal: s.CheckLegal,
		}
	}
	return out
}

// Manifest describes s as written to config.txt. In multi-level suites a
// first level of single-net cases is marked as training.
func (s Suite) Manifest(id uuid.UUID) caseio.Manifest {
	m := caseio.Manifest{RunID: id}
	for k, lv := range s.Levels {
		m.Levels = append(m.Levels, caseio.ManifestLevel{
			Index:    (k + 1) * s.IDStride,
			Type:     s.Type,
			Training: k == 0 && lv.Nets == 1 && len(s.Levels) > 1,
			Number:   lv.Tests,
		})
	}
	return m
}

// RunSuite validates every level, runs them in order and writes config.txt.
// A failing level does not stop later ones.
func RunSuite(ctx context.Context, s Suite, log *zap.Logger) ([]Report, error) {
	if s.Dir == "" || len(s.Levels) == 0 || s.IDStride < 0 {
		return nil, fmt.Errorf("suite dir=%q levels=%d stride=%d: %w", s.Dir, len(s.Levels), s.IDStride, ErrInvalidPlan)
	}
	plans := s.plans()
	for k, p := range plans {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", k, err)
		}
	}
	if log == nil {
		log = zap.NewNop()
	}

	id := uuid.New()
	var errs error
	reports := make([]Report, 0, len(plans))
	for k, p := range plans {
		rep, err := run(ctx, p, id, log.With(zap.Int("level", k)))
		reports = append(reports, rep)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("level %d: %w", k, err))
		}
	}

	path := filepath.Join(s.Dir, "config.txt")
	errs = multierr.Append(errs, writeFile(path, func(w io.Writer) error {
		return caseio.WriteManifest(w, s.Manifest(id))
	}))
	return reports, errs
}
