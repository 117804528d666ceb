// SPDX-License-Identifier: MIT
// Package: votesim/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, prefixed by the method name.
//   • Build functions never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVoters indicates a voter count below the constructor's minimum.
var ErrTooFewVoters = errors.New("builder: too few voters")

// ErrTooFewCandidates indicates a candidate count below one.
var ErrTooFewCandidates = errors.New("builder: too few candidates")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic builder ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidDegree indicates an out-degree outside the constructor's range.
var ErrInvalidDegree = errors.New("builder: degree out of range")

// ErrInvalidHub indicates a hub index outside [0,n).
var ErrInvalidHub = errors.New("builder: hub out of range")
