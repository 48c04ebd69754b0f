// Package wire turns routed cell walks into the compact wire description of
// a net.
//
// What:
//
//   - EdgeMap records which unit edges of each layer are consumed by the net
//     being built: row edges on even (horizontal) layers, column edges on odd
//     (vertical) layers.
//   - Tracker accumulates the cells, edges and vias of every route of one net
//     attempt.
//   - Compact scans the edge flags and emits one segment per maximal run of
//     consumed edges, clearing the flags for the next net.
//
// Wirelength:
//
//	wl = len(vias) + Σ (segment span − 1)
//
// i.e. every consumed edge counts once and every layer change counts once,
// independent of how many cells the raw walks revisited.
package wire
