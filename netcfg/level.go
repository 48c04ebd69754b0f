package netcfg

import "fmt"

// SizeRange is an inclusive obstacle length range.
type SizeRange struct {
	Min, Max int
}

// Level is one tier of a generated suite: Tests layouts of the given shape.
type Level struct {
	Tests                  int
	Width, Height, Layers  int
	Obstacles              int // per layer
	MinObsSize, MaxObsSize int
	Nets, Pins             int
}

// Validate reports whether the level describes at least one layout.
func (lv Level) Validate() error {
	switch {
	case lv.Tests < 0:
		return fmt.Errorf("tests=%d: %w", lv.Tests, ErrInvalidLevel)
	case lv.Width < 2 || lv.Height < 2 || lv.Layers < 1:
		return fmt.Errorf("shape %dx%dx%d: %w", lv.Width, lv.Height, lv.Layers, ErrInvalidLevel)
	case lv.Obstacles < 0 || lv.MaxObsSize < lv.MinObsSize:
		return fmt.Errorf("obstacles=%d size=[%d,%d]: %w", lv.Obstacles, lv.MinObsSize, lv.MaxObsSize, ErrInvalidLevel)
	case lv.Nets < 0 || lv.Pins < 2:
		return fmt.Errorf("nets=%d pins=%d: %w", lv.Nets, lv.Pins, ErrInvalidLevel)
	}
	return nil
}

// ObstaclePlan expands the level into per-layer counts and size ranges.
// Sizes are clamped to [1, side-1] so every sample fits the grid.
func (lv Level) ObstaclePlan() ([]int, []SizeRange) {
	counts := make([]int, lv.Layers)
	sizes := make([]SizeRange, lv.Layers)
	for z := range counts {
		side := lv.Width
		if z%2 == 1 {
			side = lv.Height
		}
		hi := min(max(lv.MaxObsSize, 1), side-1)
		lo := min(max(lv.MinObsSize, 1), hi)
		counts[z] = lv.Obstacles
		sizes[z] = SizeRange{Min: lo, Max: hi}
	}
	return counts, sizes
}

// Schedule is Auto for the level's shape and workload.
func (lv Level) Schedule() Schedule {
	return Auto(lv.Width, lv.Height, lv.Nets, lv.Pins)
}

func squareLevel(tests, size, layers int, obsRatio float64, nets, pins int) Level {
	return Level{
		Tests:      tests,
		Width:      size,
		Height:     size,
		Layers:     layers,
		Obstacles:  int(float64(size) * obsRatio),
		MinObsSize: int(float64(size) * 0.05),
		MaxObsSize: int(float64(size) * 0.5),
		Nets:       nets,
		Pins:       pins,
	}
}

// TrainLevels returns the five training tiers for a size×size grid. Tier 0
// is single-net; the rest grow the net count while thinning obstacles.
func TrainLevels(size, layers int) []Level {
	return []Level{
		squareLevel(2000, size, layers, 0.50, 1, 4),
		squareLevel(800, size, layers, 0.50, 15, 5),
		squareLevel(160, size, layers, 0.25, 75, 5),
		squareLevel(80, size, layers, 0.10, 150, 5),
		squareLevel(40, size, layers, 0.05, 300, 5),
	}
}

// EvalLevel is the single-net evaluation tier.
func EvalLevel(size, layers int) Level {
	return squareLevel(40, size, layers, 0.50, 1, 5)
}

// TestLevel is the dense test tier.
func TestLevel(size, layers int) Level {
	return squareLevel(40, size, layers, 0.05, 300, 5)
}
