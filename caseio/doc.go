// Package caseio reads and writes routing cases in their line-oriented text
// form.
//
// What:
//
//   - FromLayout snapshots a layout.Layout into a Case.
//   - Encode / Write emit the full case: header, tracks, obstacles and every
//     net with pins, vias and compacted segments.
//   - WriteRouterInput emits the same case without wiring, the form fed to
//     routers under benchmark.
//   - Read parses either form back into a Case.
//   - WriteManifest / ReadManifest handle the per-suite config.txt.
//
// Format:
//
//	Width 0 <w>
//	Height 0 <h>
//	total_WL <wl>
//	total_via <vias>
//	Layer <l>
//	track<i> 0 1 <i%2>                  one line per layer
//	Obstacle_num <n>
//	<x0> <y0> <z0> <x1> <y1> <z1>       one line per obstacle
//	Net_num <n>
//	Net_id <id>
//	pin_num <k>
//	pin_id <j>
//	ap_num 1
//	<x> <y> <z>
//	Via_num <n>                         omitted in router input
//	<x> <y>
//	H_segment_num <n>
//	<x0> <y0> <z0> <x1> <y1> <z1>
//	V_segment_num <n>
//	<x0> <y0> <z0> <x1> <y1> <z1>
//
// Errors:
//
//   - ErrMalformed wraps every parse failure together with its line number.
//   - Write errors from the underlying io.Writer are returned wrapped.
package caseio
