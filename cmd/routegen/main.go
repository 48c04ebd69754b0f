// Command routegen generates synthetic routing cases.
//
//	routegen -dir out -tests 10 -width 50 -height 50 -nets 20 -pins 3
//	routegen -suite train -size 500 -layers 3
//	routegen -verify out/0.txt
//	routegen -manifest train_500x500x2 -type train
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/routegen/batch"
	"github.com/katalvlaran/routegen/caseio"
	"github.com/katalvlaran/routegen/netcfg"
)

func main() {
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")

	var (
		dir       = flag.String("dir", "", "output directory (default derived from the suite or shape)")
		routerDir = flag.String("router-dir", "", "also write router input files here")
		idOffset  = flag.Int("id-offset", 0, "first router input file id")
		suite     = flag.String("suite", "", "generate a preset suite: train, eval or test")
		size      = flag.Int("size", 500, "grid side for -suite")
		verify    = flag.String("verify", "", "parse and check one case file, then exit")
		manifest  = flag.String("manifest", "", "rebuild config.txt of an existing suite directory, then exit")
		kind      = flag.String("type", "train", "suite kind for -manifest: train, eval or test")

		tests     = flag.Int("tests", 1, "number of layouts")
		width     = flag.Int("width", 50, "grid width")
		height    = flag.Int("height", 50, "grid height")
		layers    = flag.Int("layers", 2, "grid layers")
		obstacles = flag.Int("obstacles", 3, "obstacles per layer")
		minObs    = flag.Int("min-obs", 2, "minimum obstacle length")
		maxObs    = flag.Int("max-obs", 8, "maximum obstacle length")
		nets      = flag.Int("nets", 20, "nets per layout")
		pins      = flag.Int("pins", 2, "pins per net")

		seed       = flag.Int64("seed", 1, "base random seed")
		workers    = flag.Int("workers", 0, "concurrent layouts (0: one per CPU)")
		maxLayer   = flag.Int("max-layer", 0, "routing layer cap (0: default)")
		checkLegal = flag.Bool("check-legal", false, "replay every layout for overlaps before writing")
	)
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*level)
	dev, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(dev)
	defer zap.L().Sync()

	if *verify != "" {
		if err := verifyCase(*verify); err != nil {
			zap.S().Fatalf("verify %s: %v", *verify, err)
		}
		return
	}

	if *manifest != "" {
		m, err := batch.RebuildManifest(*manifest, *kind)
		if err != nil {
			zap.S().Fatalf("manifest %s: %v", *manifest, err)
		}
		zap.S().Infow("manifest written", "dir", *manifest, "type", *kind, "levels", len(m.Levels))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *suite != "" {
		var s batch.Suite
		name := *dir
		if name == "" {
			name = fmt.Sprintf("%s_%dx%dx%d", *suite, *size, *size, *layers)
		}
		switch *suite {
		case "train":
			s = batch.TrainSuite(name, *size, *layers)
		case "eval":
			s = batch.EvalSuite(name, *size, *layers)
		case "test":
			s = batch.TestSuite(name, *size, *layers)
		default:
			zap.S().Fatalf("unknown suite %q", *suite)
		}
		s.Seed, s.Workers, s.MaxLayer, s.CheckLegal = *seed, *workers, *maxLayer, *checkLegal
		if _, err := batch.RunSuite(ctx, s, zap.L()); err != nil {
			zap.S().Fatalf("suite %s: %v", *suite, err)
		}
		return
	}

	p := batch.Plan{
		Dir: *dir,
		Level: netcfg.Level{
			Tests: *tests, Width: *width, Height: *height, Layers: *layers,
			Obstacles: *obstacles, MinObsSize: *minObs, MaxObsSize: *maxObs,
			Nets: *nets, Pins: *pins,
		},
		Seed:       *seed,
		Workers:    *workers,
		MaxLayer:   *maxLayer,
		RouterDir:  *routerDir,
		IDOffset:   *idOffset,
		CheckLegal: *checkLegal,
	}
	if p.Dir == "" {
		p.Dir = fmt.Sprintf("cases_%dx%dx%d", *width, *height, *layers)
	}
	rep, err := batch.Run(ctx, p, zap.L())
	if err != nil {
		zap.S().Fatalf("generate: %v", err)
	}
	zap.S().Infof("wrote %d cases to %s (%d/%d nets)", rep.Cases, p.Dir, rep.Nets, rep.Requested)
}

func verifyCase(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	c, err := caseio.Read(f)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	zap.S().Infow("case ok",
		"path", path,
		"shape", fmt.Sprintf("%dx%dx%d", c.Width, c.Height, c.Layers),
		"obstacles", len(c.Obstacles),
		"nets", len(c.Nets),
		"wired", c.Wired,
		"total_wl", c.TotalWL,
		"total_via", c.TotalVias)
	return nil
}
