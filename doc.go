// Package routegen generates synthetic chip-routing cases: a layered grid
// with rectangular obstacles and multi-pin nets wired by randomized maze
// search, written as text for benchmarking routers.
//
// What is routegen?
//
//	A batch generator built from small, single-purpose packages:
//		• geom    – points, obstacle boxes and wire segments
//		• rng     – seeded streams, per-layout seed derivation, half-normal draws
//		• grid    – the 3D cell grid with a visited mask and free-region scan
//		• netcfg  – net parameter bundles, the automatic policy and level presets
//		• maze    – momentum-biased depth-first search with via stacking
//		• wire    – per-layer edge maps and run-length segment compaction
//		• layout  – one scenario: obstacles, net building, legality, archive
//		• caseio  – case and manifest reader/writer, router-input form
//		• batch   – parallel generation of levels and suites
//
// Determinism:
//
//	Every stochastic step draws from a *rand.Rand owned by its Layout and
//	derived from (seed, layout index). The same seed always yields the same
//	files, whatever the worker count.
//
// Quick start:
//
//	l := layout.New(50, 50, 2, layout.WithSeed(7))
//	l.PlaceObstacles([]int{3, 3}, []netcfg.SizeRange{{Min: 2, Max: 8}, {Min: 2, Max: 8}})
//	l.GenerateNets(netcfg.Auto(50, 50, 20, 3))
//	caseio.Write(os.Stdout, l)
//
// See cmd/routegen for the command-line front end.
package routegen
