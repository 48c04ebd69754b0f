package grid

// Cell is the occupancy state of one grid cell.
type Cell int8

const (
	// Obstacle cells are permanent blockages.
	Obstacle Cell = -1
	// Empty cells are free for routing.
	Empty Cell = 0
	// Wire cells are consumed by a route, committed or in progress.
	Wire Cell = 1
	// Pin cells are net terminals; they live on layer 0.
	Pin Cell = 2
	// InSearch is reserved for transient compaction overlays.
	InSearch Cell = 3
)

// String returns a lower-case label for c.
func (c Cell) String() string {
	switch c {
	case Obstacle:
		return "obstacle"
	case Empty:
		return "empty"
	case Wire:
		return "wire"
	case Pin:
		return "pin"
	case InSearch:
		return "in-search"
	}
	return "unknown"
}

// Grid is the routing volume. Width, Height and Layers are fixed at New.
type Grid struct {
	Width, Height, Layers int

	cells   []Cell
	visited []bool
}
