// SPDX-License-Identifier: MIT
// Package: votesim/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit: WithSeed or WithRand. No hidden globals.

package builder

import "math/rand"

// BuilderOption customizes a builder call by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the voter naming function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Share one *rand.Rand across several
// builder calls to draw graph and scores from a single stream. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScoreFn overrides the per-candidate score generator. Panics on nil.
func WithScoreFn(fn ScoreFn) BuilderOption {
	if fn == nil {
		panic("builder: WithScoreFn(nil)")
	}
	return func(c *builderConfig) {
		c.scoreFn = fn
	}
}

// WithNormalScores draws scores from N(mean, stddev) clipped to [0,100].
func WithNormalScores(mean, stddev float64) BuilderOption {
	return WithScoreFn(NormalScoreFn(mean, stddev))
}

// WithUniformScores draws scores from U[min, max].
func WithUniformScores(min, max float64) BuilderOption {
	return WithScoreFn(UniformScoreFn(min, max))
}

// WithTenthsScores uses the legacy round(U[0,100])/10 draw.
func WithTenthsScores() BuilderOption {
	return WithScoreFn(TenthsScoreFn)
}
