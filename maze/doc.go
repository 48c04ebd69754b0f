// Package maze implements the momentum-biased randomized depth-first search
// that grows one terminal-to-terminal route through a grid.Grid.
//
// Key features:
//   - Search(g, start, minLen, maxLen, momentum, opts...): one route from start
//     to a new layer-0 terminal, or no result.
//   - Layer rules: even layers step along x, odd layers along y; layer changes
//     are ±1 in z below the configurable cap (WithMaxLayer).
//   - Momentum: probability of trying an in-plane step before a layer change.
//   - Outward bias: of two in-plane (or two layer) candidates the one farther
//     from start is explored first; exact ties are broken by a coin flip.
//   - Termination: once the walk is at least minLen cells long, a via stack
//     down to layer 0 is attempted at every step; success ends the search.
//   - Backtracking: a dead end unwinds the walk to the origin of the next
//     frontier entry, clearing the unwound cells.
//
// Side effects:
//
//	Every visited cell is marked grid.Wire. A failed search (hard cap or an
//	exhausted frontier) leaves its marks in place; callers retry from fresh
//	origins instead of undoing them.
//
// Complexity:
//
//   - Time:   O(W·H·L) per call, bounded further by maxLen on the walk.
//   - Memory: O(W·H·L) worst case for the frontier and walk.
package maze
