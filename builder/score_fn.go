// Package builder provides the score distributions used to fill voter ballots.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// Score domain accepted by ranking.Store.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// DefaultScore is returned by stochastic ScoreFns when handed a nil RNG.
const DefaultScore = MaxScore / 2

// ScoreFn produces one cardinal score in [MinScore, MaxScore].
// It must be deterministic for a given RNG state.
type ScoreFn func(rng *rand.Rand) float64

// ConstantScoreFn returns a ScoreFn that always yields value.
// Panics if value is outside [0,100].
func ConstantScoreFn(value float64) ScoreFn {
	if value < MinScore || value > MaxScore {
		panic(fmt.Sprintf("ConstantScoreFn: value must be in [0,100], got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformScoreFn returns a ScoreFn sampling uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max ≤ 100. A nil RNG yields DefaultScore.
func UniformScoreFn(min, max float64) ScoreFn {
	if min < MinScore || max < min || max > MaxScore {
		panic(fmt.Sprintf("UniformScoreFn: require 0 ≤ min ≤ max ≤ 100, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultScore
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalScoreFn returns a ScoreFn sampling N(mean, stddev) and clipping the
// sample into [0,100]. Panics if stddev < 0. A nil RNG yields DefaultScore.
func NormalScoreFn(mean, stddev float64) ScoreFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalScoreFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultScore
		}

		return clip(rng.NormFloat64()*stddev + mean)
	}
}

// TenthsScoreFn draws round(U[0,100])/10, giving scores in {0.0, 0.1, ..., 10.0}.
// A nil RNG yields DefaultScore/10.
func TenthsScoreFn(rng *rand.Rand) float64 {
	if rng == nil {
		return DefaultScore / 10
	}

	return math.Round(rng.Float64()*MaxScore) / 10
}

func clip(x float64) float64 {
	if x < MinScore {
		return MinScore
	}
	if x > MaxScore {
		return MaxScore
	}

	return x
}
