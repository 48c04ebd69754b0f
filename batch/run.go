package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/routegen/caseio"
	"github.com/katalvlaran/routegen/layout"
)

// Report totals one Run.
type Report struct {
	RunID uuid.UUID
	// Cases counts the case files written.
	Cases int
	// Nets counts committed nets against Requested.
	Nets, Requested int
	WL, Vias        int
	Obstacles       int
	// Overlaps is only counted when Plan.CheckLegal is set.
	Overlaps int
}

type result struct {
	stats    layout.Stats
	overlaps int
	skipped  bool
	err      error
}

// Run generates every layout of p. Cancelling ctx stops workers from
// starting new layouts; the context error is then part of the result.
func Run(ctx context.Context, p Plan, log *zap.Logger) (Report, error) {
	return run(ctx, p, uuid.New(), log)
}

func run(ctx context.Context, p Plan, id uuid.UUID, log *zap.Logger) (Report, error) {
	rep := Report{RunID: id}
	if err := p.Validate(); err != nil {
		return rep, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.Stringer("run", id))
	for _, dir := range []string{p.Dir, p.RouterDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return rep, fmt.Errorf("batch: %w", err)
		}
	}

	n := p.Level.Tests
	results := make([]result, n)
	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < p.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					results[i].skipped = true
					continue
				}
				results[i] = generate(p, i, log)
			}
		}()
	}
	wg.Wait()

	var errs error
	skipped := 0
	for i, r := range results {
		if r.skipped {
			skipped++
			continue
		}
		if r.err != nil {
			errs = multierr.Append(errs, fmt.Errorf("case %d: %w", i, r.err))
			continue
		}
		rep.Cases++
		rep.Nets += r.stats.Nets
		rep.WL += r.stats.WL
		rep.Vias += r.stats.Vias
		rep.Obstacles += r.stats.Obstacles
		rep.Overlaps += r.overlaps
	}
	if skipped > 0 {
		errs = multierr.Append(errs, fmt.Errorf("batch: %d cases skipped: %w", skipped, ctx.Err()))
	}
	rep.Requested = n * p.Level.Nets

	log.Info("batch done",
		zap.String("dir", p.Dir),
		zap.Int("cases", rep.Cases),
		zap.Int("nets", rep.Nets),
		zap.Int("requested", rep.Requested),
		zap.Int("wl", rep.WL),
		zap.Int("vias", rep.Vias),
		zap.Int("overlaps", rep.Overlaps),
		zap.Int("errors", len(multierr.Errors(errs))))
	return rep, errs
}

// generate builds, writes and archives layout i.
func generate(p Plan, i int, log *zap.Logger) result {
	lv := p.Level
	l := layout.New(lv.Width, lv.Height, lv.Layers,
		append(p.layoutOptions(i), layout.WithLogger(log))...)
	l.PlaceObstacles(lv.ObstaclePlan())
	if _, err := l.GenerateNets(lv.Schedule()); err != nil {
		return result{err: err}
	}

	var res result
	if p.CheckLegal {
		res.overlaps = len(l.CheckLegal())
	}
	c := caseio.FromLayout(l)
	res.stats = l.Stats()
	l.Archive()

	raw := filepath.Join(p.Dir, fmt.Sprintf("%d.txt", i))
	if err := writeFile(raw, func(w io.Writer) error { return caseio.Encode(w, c) }); err != nil {
		res.err = err
		return res
	}
	if p.RouterDir != "" {
		in := filepath.Join(p.RouterDir, fmt.Sprintf("id_%d.txt", p.IDOffset+i))
		if err := writeFile(in, func(w io.Writer) error { return caseio.WriteRouterInput(w, c) }); err != nil {
			res.err = err
			return res
		}
	}

	log.Debug("case written",
		zap.Int("layout", i),
		zap.String("path", raw),
		zap.Int("nets", res.stats.Nets),
		zap.Int("wl", res.stats.WL))
	return res
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return write(f)
}
