// Package grid stores the 3D routing volume of a layout: one cell state per
// (x, y, z) plus a same-shaped visited mask scratched by each maze search.
//
// What:
//
//   - Grid owns a flat width×height×layers buffer addressed through a single
//     bounds-checked index helper; raw indices never leave the package.
//   - Cell values are Empty, Obstacle, Wire, Pin and the reserved InSearch.
//   - FreeRegions reports connected islands of Empty cells on one layer.
//
// Contract:
//
//   - Every accessor validates its coordinates. An out-of-range access is a
//     programmer error and panics with the offending coordinate and the grid
//     dimensions; it is never returned as an error.
//   - ResetVisited must run before every independent search.
//   - After Release the grid holds no memory and every access panics.
//
// Complexity:
//
//   - Cell/SetCell/Visited/SetVisited: O(1).
//   - ResetVisited, BottomEmpty, Count: O(W×H×L).
//   - FreeRegions: O(W×H) time and memory for one layer.
package grid
