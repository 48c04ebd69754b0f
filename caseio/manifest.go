package caseio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Suite types recorded per manifest level.
const (
	TypeTrain = 0 // training and evaluation suites
	TypeTest  = 1
)

// ManifestLevel describes one level directory of a suite.
type ManifestLevel struct {
	// Index is the id offset of the level's case files.
	Index int
	Type  int
	// Training marks the single-net warm-up level.
	Training bool
	// Number is the case count.
	Number int
}

// Manifest is the content of a suite's config.txt.
type Manifest struct {
	Levels []ManifestLevel
	// RunID identifies the generating run; uuid.Nil omits the line.
	RunID uuid.UUID
}

// WriteManifest emits
//
//	level_num <n>
//	level_<i> <index> <type> <True|False> <number>
//	run_id <uuid>
func WriteManifest(w io.Writer, m Manifest) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "level_num %d\n", len(m.Levels))
	for i, lv := range m.Levels {
		fmt.Fprintf(bw, "level_%d %d %d %s %d\n", i, lv.Index, lv.Type, titleBool(lv.Training), lv.Number)
	}
	if m.RunID != uuid.Nil {
		fmt.Fprintf(bw, "run_id %s\n", m.RunID)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("caseio: write manifest: %w", err)
	}
	return nil
}

// ReadManifest parses a config.txt written by WriteManifest.
func ReadManifest(r io.Reader) (Manifest, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	var m Manifest
	n, err := p.count("level_num")
	if err != nil {
		return m, err
	}
	for i := 0; i < n; i++ {
		f, err := p.next()
		if err != nil {
			return m, err
		}
		if len(f) != 5 || f[0] != fmt.Sprintf("level_%d", i) {
			return m, p.errorf("want level_%d <index> <type> <training> <number>", i)
		}
		v, err := p.atoi([]string{f[1], f[2], f[4]}, 3)
		if err != nil {
			return m, err
		}
		training, ok := parseTitleBool(f[3])
		if !ok {
			return m, p.errorf("training flag %q", f[3])
		}
		m.Levels = append(m.Levels, ManifestLevel{Index: v[0], Type: v[1], Training: training, Number: v[2]})
	}

	f, err := p.next()
	if err != nil {
		if p.eof {
			return m, nil
		}
		return m, err
	}
	if len(f) != 2 || f[0] != "run_id" {
		return m, p.errorf("trailing %q", f[0])
	}
	if m.RunID, err = uuid.Parse(f[1]); err != nil {
		return m, p.errorf("run_id: %v", err)
	}
	return m, nil
}

func titleBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func parseTitleBool(s string) (bool, bool) {
	switch s {
	case "True":
		return true, true
	case "False":
		return false, true
	}
	return false, false
}
