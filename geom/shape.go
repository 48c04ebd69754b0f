package geom

// Box is an axis-aligned obstacle footprint.
// Lo is inclusive; Hi is exclusive in x and y and inclusive in z.
type Box struct {
	Lo, Hi Point
}

// Valid reports whether no corner coordinate is inverted.
func (b Box) Valid() bool {
	return b.Lo.X <= b.Hi.X && b.Lo.Y <= b.Hi.Y && b.Lo.Z <= b.Hi.Z
}

// Cells calls fn for every cell covered by b in x, y, z order.
// Iteration stops early when fn returns false.
func (b Box) Cells(fn func(p Point) bool) {
	for x := b.Lo.X; x < b.Hi.X; x++ {
		for y := b.Lo.Y; y < b.Hi.Y; y++ {
			for z := b.Lo.Z; z <= b.Hi.Z; z++ {
				if !fn(Point{X: x, Y: y, Z: z}) {
					return
				}
			}
		}
	}
}

// Segment is a compacted wire (x0, y0, z0, x1, y1, z1).
// x1 and y1 are exclusive, so a horizontal run of cells x∈[a,b] on row y and
// layer z is {a, y, z, b+1, y+1, z}.
type Segment [6]int

// HSegment builds a horizontal segment covering cells x0..x1-1 of row y.
func HSegment(x0, x1, y, z int) Segment {
	return Segment{x0, y, z, x1, y + 1, z}
}

// VSegment builds a vertical segment covering cells y0..y1-1 of column x.
func VSegment(x, y0, y1, z int) Segment {
	return Segment{x, y0, z, x + 1, y1, z}
}

// Layer returns z0.
func (s Segment) Layer() int { return s[2] }

// Span returns the number of cells the segment covers.
func (s Segment) Span() int {
	return (s[3] - s[0]) * (s[4] - s[1])
}

// Cells calls fn for every cell covered by s.
func (s Segment) Cells(fn func(p Point)) {
	for x := s[0]; x < s[3]; x++ {
		for y := s[1]; y < s[4]; y++ {
			fn(Point{X: x, Y: y, Z: s[2]})
		}
	}
}
