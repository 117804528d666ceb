// SPDX-License-Identifier: MIT
// Package: votesim/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = DefaultIDFn         ("V0","V1",...)
//   • rng     = nil                 (stochastic builders refuse to run)
//   • scoreFn = NormalScoreFn(50,20)

package builder

import "math/rand"

// Default score distribution parameters.
const (
	DefaultScoreMean   = 50.0
	DefaultScoreStdDev = 20.0
)

// builderConfig aggregates all knobs used by constructors and score builders.
// It is passed by value to constructors.
type builderConfig struct {
	idFn    IDFn
	rng     *rand.Rand
	scoreFn ScoreFn
}

// newBuilderConfig applies opts over the defaults, last option wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		rng:     nil,
		scoreFn: NormalScoreFn(DefaultScoreMean, DefaultScoreStdDev),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
