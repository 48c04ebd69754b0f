// Package batch generates many independent layouts in parallel and writes
// them to disk.
//
// What:
//
//   - Run generates one Plan: Level.Tests layouts spread over a fixed number
//     of workers, written as <dir>/<i>.txt and, optionally, router input
//     <router-dir>/id_<offset+i>.txt.
//   - RunSuite generates a list of levels (raw cases under <dir>/raw/level_<k>,
//     router input under <dir>/level_<k>) and writes the suite's config.txt.
//   - RebuildManifest rewrites config.txt of an existing suite directory
//     from the id_<n>.txt files found under its level_<k> directories.
//
// Determinism:
//
//	Layout i of a plan draws from a stream derived from (Plan.Seed, i), so
//	output does not depend on Workers or on scheduling.
//
// Errors:
//
//   - ErrInvalidPlan for plans that cannot run.
//   - Per-case I/O failures do not stop other cases; they are combined with
//     multierr and returned together.
package batch
