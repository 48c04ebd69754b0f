package layout

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/routegen/rng"
)

// Option customizes a Layout before construction.
type Option func(*config)

// config aggregates every knob of New. Later options override earlier ones.
type config struct {
	seed     int64
	index    int
	rand     *rand.Rand
	maxLayer int
	logger   *zap.Logger
}

// DefaultMaxLayer limits routing to layers 0 and 1.
const DefaultMaxLayer = 2

func newConfig(opts ...Option) config {
	cfg := config{
		seed:     rng.DefaultSeed,
		index:    0,
		rand:     nil,
		maxLayer: DefaultMaxLayer,
		logger:   nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rand == nil {
		cfg.rand = rng.ForIndex(cfg.seed, cfg.index)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}

// WithSeed sets the base seed; the layout stream is derived from it and the
// layout index.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithIndex sets the layout index within a batch. Panics on negative values.
func WithIndex(idx int) Option {
	if idx < 0 {
		panic("layout: WithIndex(idx<0)")
	}
	return func(c *config) {
		c.index = idx
	}
}

// WithRand installs an explicit stream, overriding WithSeed/WithIndex.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *config) {
		c.rand = r
	}
}

// WithMaxLayer caps the layers searches may route on to [0, n).
// Values above the layer count are clamped. Panics if n < 1.
func WithMaxLayer(n int) Option {
	if n < 1 {
		panic("layout: WithMaxLayer(n<1)")
	}
	return func(c *config) {
		c.maxLayer = n
	}
}

// WithLogger sets the structured logger. Panics on nil; the default is a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("layout: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
