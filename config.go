package treap

import "math/rand/v2"

// Config holds configuration for a Map.
type Config struct {
	// seed seeds the built-in priority source when seeded is set.
	seed   uint64
	seeded bool

	// source replaces the built-in priority source when non-nil.
	source rand.Source

	// checkInvariants turns on merge precondition assertions and full
	// validation after every mutation.
	checkInvariants bool
}

// NewConfig creates a Config with default values: a time-seeded priority
// source and no invariant checks.
func NewConfig() Config {
	return Config{}
}

// WithSeed makes the built-in priority source deterministic.
func WithSeed(seed uint64) func(*Config) {
	return func(c *Config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithRandSource draws priorities from src instead of the built-in source.
// Priorities should be uniform over uint64; a poor source degrades the tree
// towards linear height.
func WithRandSource(src rand.Source) func(*Config) {
	return func(c *Config) { c.source = src }
}

// WithInvariantChecks enables debug assertions. Violations panic with an
// AssertError.
func WithInvariantChecks(enabled bool) func(*Config) {
	return func(c *Config) { c.checkInvariants = enabled }
}

func buildConfig(opts []func(*Config)) Config {
	cfg := NewConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// prioritySource returns the source a new map draws priorities from.
func (c Config) prioritySource() rand.Source {
	switch {
	case c.source != nil:
		return c.source
	case c.seeded:
		return newRNGWithSeed(c.seed)
	default:
		return newRNG()
	}
}
