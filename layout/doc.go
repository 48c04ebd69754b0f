// Package layout owns one synthetic routing scenario: the grid, its
// obstacles and the nets routed through it.
//
// What:
//
//   - New(width, height, layers, opts...) builds an Active, empty layout with
//     its own random stream (WithSeed/WithIndex/WithRand).
//   - PlaceObstacles/AddObstacle drop rectangular blockages layer by layer.
//   - BuildNet grows one multi-pin net with maze searches; GenerateNets runs a
//     netcfg.Schedule of them.
//   - CheckLegal replays every committed net into a shadow grid and reports
//     cells claimed twice.
//   - Archive frees the grid and wiring, keeping only net pins.
//
// Failure classes:
//
//   - Programmer errors (out-of-range cells, inverted obstacles, a net with
//     the wrong pin count, work after Archive) panic with a "layout: ..."
//     message.
//   - Stochastic failures (no room for an obstacle, a net that cannot reach
//     all its pins) are ordinary results: false, or fewer items than asked.
//
// Concurrency:
//
//	A Layout is not safe for concurrent use. Independent layouts share
//	nothing and may run on separate goroutines.
package layout
