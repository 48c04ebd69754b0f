package batch_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/routegen/batch"
	"github.com/katalvlaran/routegen/caseio"
	"github.com/katalvlaran/routegen/netcfg"
)

func smallLevel(tests int) netcfg.Level {
	return netcfg.Level{
		Tests: tests, Width: 16, Height: 16, Layers: 2,
		Obstacles: 3, MinObsSize: 1, MaxObsSize: 4,
		Nets: 4, Pins: 3,
	}
}

func readCase(t *testing.T, path string) *caseio.Case {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	c, err := caseio.Read(f)
	require.NoError(t, err, path)
	return c
}

func TestPlan_Validate(t *testing.T) {
	ok := batch.Plan{Dir: "out", Level: smallLevel(1)}
	assert.NoError(t, ok.Validate())

	bad := []batch.Plan{
		{Level: smallLevel(1)},
		{Dir: "out", Level: smallLevel(1), Workers: -1},
		{Dir: "out", Level: smallLevel(1), MaxLayer: -2},
		{Dir: "out", Level: smallLevel(1), IDOffset: -1},
		{Dir: "out", Level: netcfg.Level{Tests: 1, Width: 1, Height: 4, Layers: 2, Pins: 2}},
	}
	for i, p := range bad {
		assert.ErrorIs(t, p.Validate(), batch.ErrInvalidPlan, "plan %d", i)
	}
	assert.ErrorIs(t, bad[4].Validate(), netcfg.ErrInvalidLevel)
}

func TestRun_WritesEveryCase(t *testing.T) {
	dir := t.TempDir()
	p := batch.Plan{
		Dir:        filepath.Join(dir, "raw"),
		RouterDir:  filepath.Join(dir, "in"),
		IDOffset:   100,
		Level:      smallLevel(6),
		Seed:       42,
		Workers:    3,
		CheckLegal: true,
	}
	rep, err := batch.Run(context.Background(), p, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, rep.Cases)
	assert.Equal(t, 24, rep.Requested)
	assert.Zero(t, rep.Overlaps)

	nets, wl := 0, 0
	for i := 0; i < 6; i++ {
		c := readCase(t, filepath.Join(p.Dir, fmt.Sprintf("%d.txt", i)))
		require.True(t, c.Wired)
		require.NoError(t, c.Validate())
		nets += len(c.Nets)
		wl += c.TotalWL

		in := readCase(t, filepath.Join(p.RouterDir, fmt.Sprintf("id_%d.txt", 100+i)))
		assert.False(t, in.Wired)
		assert.Equal(t, len(c.Nets), len(in.Nets))
	}
	assert.Equal(t, rep.Nets, nets)
	assert.Equal(t, rep.WL, wl)
}

func TestRun_IndependentOfWorkers(t *testing.T) {
	dir := t.TempDir()
	gen := func(workers int) string {
		p := batch.Plan{Dir: filepath.Join(dir, fmt.Sprint(workers)), Level: smallLevel(5), Seed: 7, Workers: workers}
		_, err := batch.Run(context.Background(), p, nil)
		require.NoError(t, err)
		return p.Dir
	}
	a, b := gen(1), gen(4)
	for i := 0; i < 5; i++ {
		x, err := os.ReadFile(filepath.Join(a, fmt.Sprintf("%d.txt", i)))
		require.NoError(t, err)
		y, err := os.ReadFile(filepath.Join(b, fmt.Sprintf("%d.txt", i)))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(x, y), "case %d differs between worker counts", i)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := batch.Plan{Dir: t.TempDir(), Level: smallLevel(4), Workers: 2}
	rep, err := batch.Run(ctx, p, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rep.Cases)

	entries, rerr := os.ReadDir(p.Dir)
	require.NoError(t, rerr)
	assert.Empty(t, entries)
}

func TestRun_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := batch.Run(context.Background(), batch.Plan{Dir: filepath.Join(file, "sub"), Level: smallLevel(1)}, nil)
	assert.Error(t, err)
}

func TestRun_RouterDirErrorsAreCombined(t *testing.T) {
	dir := t.TempDir()
	router := filepath.Join(dir, "in")
	require.NoError(t, os.MkdirAll(router, 0o755))
	// Directories squatting on two output names make those writes fail.
	require.NoError(t, os.Mkdir(filepath.Join(router, "id_0.txt"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(router, "id_2.txt"), 0o755))

	p := batch.Plan{Dir: filepath.Join(dir, "raw"), RouterDir: router, Level: smallLevel(3), Workers: 2}
	rep, err := batch.Run(context.Background(), p, nil)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, 1, rep.Cases)
}

func TestRun_LogsRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	rep, err := batch.Run(context.Background(), batch.Plan{Dir: t.TempDir(), Level: smallLevel(2)}, zap.New(core))
	require.NoError(t, err)

	done := logs.FilterMessage("batch done").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	assert.Equal(t, rep.RunID.String(), fields["run"])
	assert.EqualValues(t, 2, fields["cases"])
	assert.NotEmpty(t, logs.FilterMessage("nets created").All())
}

func TestRunSuite(t *testing.T) {
	dir := t.TempDir()
	s := batch.Suite{
		Dir: dir,
		Levels: []netcfg.Level{
			{Tests: 2, Width: 12, Height: 12, Layers: 2, Obstacles: 2, MinObsSize: 1, MaxObsSize: 3, Nets: 1, Pins: 4},
			{Tests: 3, Width: 12, Height: 12, Layers: 2, Obstacles: 2, MinObsSize: 1, MaxObsSize: 3, Nets: 3, Pins: 2},
		},
		Type:     caseio.TypeTrain,
		IDStride: 1000,
		Seed:     3,
	}
	reports, err := batch.RunSuite(context.Background(), s, nil)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, reports[0].RunID, reports[1].RunID)

	for _, name := range []string{"raw/level_0/1.txt", "raw/level_1/2.txt", "level_0/id_1001.txt", "level_1/id_2002.txt"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	f, err := os.Open(filepath.Join(dir, "config.txt"))
	require.NoError(t, err)
	defer f.Close()
	m, err := caseio.ReadManifest(f)
	require.NoError(t, err)
	assert.Equal(t, reports[0].RunID, m.RunID)
	assert.Equal(t, []caseio.ManifestLevel{
		{Index: 1000, Type: caseio.TypeTrain, Training: true, Number: 2},
		{Index: 2000, Type: caseio.TypeTrain, Training: false, Number: 3},
	}, m.Levels)
}

func TestPresetSuites(t *testing.T) {
	train := batch.TrainSuite("t", 50, 2)
	require.Len(t, train.Levels, 5)
	m := train.Manifest(uuid.Nil)
	assert.True(t, m.Levels[0].Training)
	assert.Equal(t, 5*batch.TrainIDStride, m.Levels[4].Index)

	eval := batch.EvalSuite("e", 50, 2).Manifest(uuid.Nil)
	assert.Equal(t, []caseio.ManifestLevel{{Index: 0, Type: caseio.TypeTrain, Number: 40}}, eval.Levels)

	test := batch.TestSuite("x", 50, 2).Manifest(uuid.Nil)
	assert.Equal(t, caseio.TypeTest, test.Levels[0].Type)

	_, err := batch.RunSuite(context.Background(), batch.Suite{}, nil)
	assert.ErrorIs(t, err, batch.ErrInvalidPlan)
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

// TestRebuildManifest lays out a suite by hand:
//
//	level_0/id_10002.txt id_10000.txt id_10001.txt
//	level_2/id_30005.txt id_30004.txt
//	level_x/id_1.txt          ignored directory
//	level_0/notes.txt         ignored file
func TestRebuildManifest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"level_0/id_10002.txt", "level_0/id_10000.txt", "level_0/id_10001.txt",
		"level_2/id_30005.txt", "level_2/id_30004.txt",
		"level_x/id_1.txt", "level_0/notes.txt",
	} {
		touch(t, filepath.Join(dir, name))
	}

	levels, err := batch.ScanSuite(dir)
	require.NoError(t, err)
	assert.Equal(t, []caseio.ManifestLevel{{Index: 10000, Number: 3}, {Index: 30004, Number: 2}}, levels)

	cases := []struct {
		kind     string
		typ      int
		training []bool
	}{
		{"train", caseio.TypeTrain, []bool{true, false}},
		{"eval", caseio.TypeTrain, []bool{false, false}},
		{"test", caseio.TypeTest, []bool{false, false}},
	}
	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			m, err := batch.RebuildManifest(dir, tc.kind)
			require.NoError(t, err)
			assert.Equal(t, uuid.Nil, m.RunID)

			f, err := os.Open(filepath.Join(dir, "config.txt"))
			require.NoError(t, err)
			defer f.Close()
			got, err := caseio.ReadManifest(f)
			require.NoError(t, err)
			assert.Equal(t, m, got)
			for k, lv := range got.Levels {
				assert.Equal(t, tc.typ, lv.Type)
				assert.Equal(t, tc.training[k], lv.Training)
			}
		})
	}

	_, err = batch.RebuildManifest(dir, "warmup")
	assert.ErrorIs(t, err, batch.ErrInvalidPlan)
}

func TestRebuildManifest_AfterSuite(t *testing.T) {
	dir := t.TempDir()
	s := batch.Suite{
		Dir: dir,
		Levels: []netcfg.Level{
			{Tests: 2, Width: 10, Height: 10, Layers: 2, Obstacles: 1, MinObsSize: 1, MaxObsSize: 2, Nets: 1, Pins: 2},
			{Tests: 1, Width: 10, Height: 10, Layers: 2, Obstacles: 1, MinObsSize: 1, MaxObsSize: 2, Nets: 2, Pins: 2},
		},
		Type:     caseio.TypeTrain,
		IDStride: 100,
	}
	_, err := batch.RunSuite(context.Background(), s, nil)
	require.NoError(t, err)

	m, err := batch.RebuildManifest(dir, "train")
	require.NoError(t, err)
	want := s.Manifest(uuid.Nil)
	assert.Equal(t, want.Levels, m.Levels)
}

func TestScanSuite_NoCases(t *testing.T) {
	dir := t.TempDir()
	_, err := batch.ScanSuite(dir)
	assert.ErrorIs(t, err, batch.ErrNoCases)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "level_0"), 0o755))
	_, err = batch.ScanSuite(dir)
	assert.ErrorIs(t, err, batch.ErrNoCases)

	_, err = batch.ScanSuite(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
