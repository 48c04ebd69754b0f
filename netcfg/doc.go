// Package netcfg holds the per-pin-count routing parameters consumed by the
// net builder, the policy that derives them from grid and workload size, and
// the workload presets ("levels") used to generate benchmark suites.
//
// What:
//
//   - Config is an immutable bundle: target wirelength window, hard search
//     ceiling, pin count, retry budget and two momentum probabilities.
//   - Schedule is an ordered list of (count, Config) pairs.
//   - Auto derives a single-entry Schedule from the grid size.
//   - Level describes one generated suite tier; TrainLevels, EvalLevel and
//     TestLevel reproduce the standard tiers for a square grid.
//
// Errors:
//
//   - ErrInvalidConfig: a Config field is outside its domain.
//   - ErrInvalidLevel:  a Level cannot describe any layout.
package netcfg
