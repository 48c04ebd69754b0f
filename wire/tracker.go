package wire

import "github.com/katalvlaran/routegen/geom"

// Tracker accumulates every route of one net attempt.
type Tracker struct {
	edges *EdgeMap
	cells []geom.Point
	vias  []geom.Point
}

// NewTracker records into edges.
func NewTracker(edges *EdgeMap) *Tracker {
	return &Tracker{edges: edges}
}

// Record appends a routed walk: its cells, its consumed edges and its vias.
func (t *Tracker) Record(path []geom.Point) {
	if len(path) == 0 {
		return
	}
	t.cells = append(t.cells, path[0])
	for i := 1; i < len(path); i++ {
		if via, ok := t.edges.Mark(path[i-1], path[i]); ok {
			t.vias = append(t.vias, via)
		}
		t.cells = append(t.cells, path[i])
	}
}

// Cells returns every recorded cell in routing order. A re-entry origin
// appears once per route that starts from it.
func (t *Tracker) Cells() []geom.Point { return t.cells }

// Vias returns the recorded layer changes, each at its lower layer.
func (t *Tracker) Vias() []geom.Point { return t.vias }

// Discard forgets the recorded routes and clears the edge flags.
func (t *Tracker) Discard() {
	t.cells = nil
	t.vias = nil
	t.edges.Clear()
}
