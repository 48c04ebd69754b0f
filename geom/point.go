package geom

import "fmt"

// Point is a cell coordinate. Z is the routing layer; layer 0 carries pins.
type Point struct {
	X, Y, Z int
}

// Pt is shorthand for Point{x, y, z}.
func Pt(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Manhattan returns |x| + |y| + |z|.
func (p Point) Manhattan() int {
	return abs(p.X) + abs(p.Y) + abs(p.Z)
}

// Dist returns the Manhattan distance between p and q.
func (p Point) Dist(q Point) int {
	return p.Sub(q).Manhattan()
}

// Less orders points lexicographically by x, then y, then z.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// String renders the point as "(x, y, z)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
