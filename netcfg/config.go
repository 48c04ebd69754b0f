package netcfg

import (
	"fmt"
	"math"
)

// Config is the routing parameter bundle for one class of nets.
type Config struct {
	// MinWL and MaxWL bound the target path length drawn per search.
	MinWL, MaxWL int
	// WLLimit is the hard path-length ceiling of a single search.
	WLLimit int
	// PinNum is the terminal count of each net (≥2).
	PinNum int
	// RerouteNum is the retry budget per pin.
	RerouteNum int
	// Momentum1 applies to the first two-pin search, Momentum2 to the rest.
	// Both are probabilities of keeping the movement category.
	Momentum1, Momentum2 float64
}

// Entry asks for Count nets built with Config.
type Entry struct {
	Count  int
	Config Config
}

// Schedule is processed in order by the net generator.
type Schedule []Entry

// Policy constants of Auto.
const (
	autoMinWL       = 5
	autoMaxWLRatio  = 0.75
	autoLimitRatio  = 1.5
	autoRerouteRate = 0.15
	autoMomentum    = 0.85
	// DefaultMomentum2 keeps re-entry searches going straight.
	DefaultMomentum2 = 1.0
)

// Validate reports the first field outside its domain, wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.PinNum < 2:
		return fmt.Errorf("pin_num=%d (must be ≥ 2): %w", c.PinNum, ErrInvalidConfig)
	case c.MinWL < 2:
		return fmt.Errorf("min_wl=%d (must be ≥ 2): %w", c.MinWL, ErrInvalidConfig)
	case c.MaxWL < c.MinWL:
		return fmt.Errorf("max_wl=%d < min_wl=%d: %w", c.MaxWL, c.MinWL, ErrInvalidConfig)
	case c.WLLimit < c.MinWL:
		return fmt.Errorf("wl_limit=%d < min_wl=%d: %w", c.WLLimit, c.MinWL, ErrInvalidConfig)
	case c.RerouteNum < 1:
		return fmt.Errorf("reroute_num=%d (must be ≥ 1): %w", c.RerouteNum, ErrInvalidConfig)
	case !unit(c.Momentum1) || !unit(c.Momentum2):
		return fmt.Errorf("momentum (%g, %g) outside [0,1]: %w", c.Momentum1, c.Momentum2, ErrInvalidConfig)
	}
	return nil
}

func unit(v float64) bool {
	return v >= 0 && v <= 1 && !math.IsNaN(v)
}

// Auto derives a one-entry Schedule for netNum nets of pinNum pins on a
// width×height grid. With size = max(width, height):
//
//	min_wl      = 5
//	max_wl      = ⌊0.75·size⌋               (at least min_wl)
//	wl_limit    = ⌊1.5·size⌋                (at least max_wl)
//	reroute_num = ⌊0.15·size·netNum·pinNum⌋ (at least 1)
//	momentum1   = 0.85, momentum2 = 1.0
func Auto(width, height, netNum, pinNum int) Schedule {
	size := max(width, height)
	minWL := autoMinWL
	maxWL := max(int(float64(size)*autoMaxWLRatio), minWL)
	limit := max(int(float64(size)*autoLimitRatio), maxWL)
	reroute := max(int(float64(size)*autoRerouteRate*float64(netNum)*float64(pinNum)), 1)

	return Schedule{{
		Count: netNum,
		Config: Config{
			MinWL:      minWL,
			MaxWL:      maxWL,
			WLLimit:    limit,
			PinNum:     pinNum,
			RerouteNum: reroute,
			Momentum1:  autoMomentum,
			Momentum2:  DefaultMomentum2,
		},
	}}
}

// Validate checks every entry.
func (s Schedule) Validate() error {
	for i, e := range s {
		if e.Count < 0 {
			return fmt.Errorf("entry %d: count=%d: %w", i, e.Count, ErrInvalidConfig)
		}
		if err := e.Config.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

// Nets returns the total number of requested nets.
func (s Schedule) Nets() int {
	n := 0
	for _, e := range s {
		n += e.Count
	}
	return n
}
