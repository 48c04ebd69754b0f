// Package geom defines the integer value types shared by every routegen
// package: grid points, obstacle boxes and compacted wire segments.
//
// What:
//
//   - Point is an (x, y, z) triple; z is the routing layer.
//   - Box is an obstacle footprint: half-open in x and y, inclusive in z.
//   - Segment is a compacted wire as (x0, y0, z0, x1, y1, z1), half-open in
//     x and y and one layer thick.
//
// All types are plain values; copy them freely.
package geom
