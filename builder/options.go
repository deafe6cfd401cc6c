// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption mutates the builder configuration before constructors run.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and shared by every
// constructor in that call.
type builderConfig struct {
	idFn     IDFn       // location naming
	rng      *rand.Rand // nil unless WithSeed/WithRand
	weightFn WeightFn   // edge distance source
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme names location i with fn(i). Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn draws every edge distance from fn. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
