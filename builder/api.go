// SPDX-License-Identifier: MIT
// Package: votesim/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   - BuildGraph(n, bopts, cons...) creates an edgeless socialgraph.Graph,
//     resolves cfg and runs cons in order.
//   - BuildScores(voters, candidates, bopts...) draws a voters×candidates score
//     matrix row by row, candidate by candidate.
//   - Determinism: same inputs/options/seed and call order ⇒ identical outputs.
//   - Safety: never panic; return sentinel errors wrapped with the method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/votesim/ranking"
	"github.com/katalvlaran/votesim/socialgraph"
)

const (
	methodBuildGraph  = "BuildGraph"
	methodBuildScores = "BuildScores"
)

// Constructor applies a deterministic mutation to a social graph using the
// resolved builderConfig. Constructors validate early, return sentinel errors
// and consume RNG draws in a documented, stable order.
type Constructor func(g *socialgraph.Graph, cfg builderConfig) error

// BuildGraph creates an edgeless graph over n voters, resolves the builder
// configuration from bopts and applies all constructors in order.
//
// Errors:
//   - ErrTooFewVoters if n < 1.
//   - ErrConstructFailed for a nil constructor.
//   - any constructor error, wrapped with "BuildGraph: ".
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*socialgraph.Graph, error) {
	g, err := socialgraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodBuildGraph, err, ErrTooFewVoters)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// BuildScores draws scores[v][c-1] for every voter v and candidate c, voter
// by voter, in ascending candidate order. Requires WithSeed or WithRand.
// Complexity: O(voters·candidates).
func BuildScores(voters, candidates int, bopts ...BuilderOption) ([][]float64, error) {
	if voters < 1 {
		return nil, fmt.Errorf("%s: voters=%d: %w", methodBuildScores, voters, ErrTooFewVoters)
	}
	if candidates < 1 {
		return nil, fmt.Errorf("%s: candidates=%d: %w", methodBuildScores, candidates, ErrTooFewCandidates)
	}

	cfg := newBuilderConfig(bopts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodBuildScores, ErrNeedRandSource)
	}

	out := make([][]float64, voters)
	for v := range out {
		row := make([]float64, candidates)
		for c := range row {
			row[c] = cfg.scoreFn(cfg.rng)
		}
		out[v] = row
	}

	return out, nil
}

// ScoreSource adapts BuildScores to ranking.New: scores are drawn up front and
// served per voter. Voters outside the drawn range get nil, which ranking.New
// rejects with ErrScoreCount.
func ScoreSource(voters, candidates int, bopts ...BuilderOption) (ranking.ScoreSource, error) {
	scores, err := BuildScores(voters, candidates, bopts...)
	if err != nil {
		return nil, err
	}

	return func(v int) []float64 {
		if v < 0 || v >= len(scores) {
			return nil
		}
		return scores[v]
	}, nil
}
