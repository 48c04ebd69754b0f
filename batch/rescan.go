package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/routegen/caseio"
)

var (
	levelDir = regexp.MustCompile(`^level_[0-9]+$`)
	caseFile = regexp.MustCompile(`^id_[0-9]+\.txt$`)
)

// ScanSuite counts the router-input files of every level_<k> directory in
// dir. Levels are returned in ascending k; each carries the smallest file id
// as Index and the file count as Number. Type and Training are left zero.
func ScanSuite(dir string) ([]caseio.ManifestLevel, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: scan: %w", err)
	}

	found := map[int]caseio.ManifestLevel{}
	var keys []int
	for _, e := range entries {
		if !e.IsDir() || !levelDir.MatchString(e.Name()) {
			continue
		}
		k, _ := strconv.Atoi(strings.TrimPrefix(e.Name(), "level_"))
		lv, err := scanLevel(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		found[k] = lv
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%s has no level directories: %w", dir, ErrNoCases)
	}

	slices.Sort(keys)
	out := make([]caseio.ManifestLevel, len(keys))
	for i, k := range keys {
		out[i] = found[k]
	}
	return out, nil
}

func scanLevel(dir string) (caseio.ManifestLevel, error) {
	var lv caseio.ManifestLevel
	entries, err := os.ReadDir(dir)
	if err != nil {
		return lv, fmt.Errorf("batch: scan: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !caseFile.MatchString(e.Name()) {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(e.Name(), "id_"), ".txt"))
		if err != nil {
			return lv, fmt.Errorf("batch: scan %s: %w", e.Name(), err)
		}
		if lv.Number == 0 || id < lv.Index {
			lv.Index = id
		}
		lv.Number++
	}
	if lv.Number == 0 {
		return lv, fmt.Errorf("%s: %w", dir, ErrNoCases)
	}
	return lv, nil
}

// RebuildManifest rewrites dir/config.txt from the files already on disk.
// kind selects the level flags:
//
//	train – type 0, the first level marked as training
//	eval  – type 0
//	test  – type 1
//
// The rebuilt manifest carries no run id.
func RebuildManifest(dir, kind string) (caseio.Manifest, error) {
	var m caseio.Manifest
	typ, training := caseio.TypeTrain, false
	switch kind {
	case "train":
		training = true
	case "eval":
	case "test":
		typ = caseio.TypeTest
	default:
		return m, fmt.Errorf("suite kind %q: %w", kind, ErrInvalidPlan)
	}

	levels, err := ScanSuite(dir)
	if err != nil {
		return m, err
	}
	for k := range levels {
		levels[k].Type = typ
		levels[k].Training = training && k == 0
	}
	m.Levels = levels

	err = writeFile(filepath.Join(dir, "config.txt"), func(w io.Writer) error {
		return caseio.WriteManifest(w, m)
	})
	return m, err
}
