// SPDX-License-Identifier: MIT
// Package: votesim/ranking
//
// store.go — Store constructors.
//
// Contract:
//   • New and FromScores validate counts and score ranges and always yield a
//     store that passes Validate.
//   • FromPreferences and FromBallots load caller data as-is; they check only
//     the dimensions, so Validate stays meaningful for external input.
//   • Every constructor deep-copies its input.

package ranking

import (
	"fmt"
	"math"
	"sort"
)

const (
	methodNew             = "New"
	methodFromScores      = "FromScores"
	methodFromPreferences = "FromPreferences"
	methodFromBallots     = "FromBallots"
	minVoters             = 1
	minCandidates         = 1
)

// New builds a store of `voters` ballots over `candidates` candidates, asking
// src for each voter's scores in voter order.
func New(voters, candidates int, src ScoreSource) (*Store, error) {
	if err := checkDims(methodNew, voters, candidates); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilScoreSource)
	}

	scores := make([][]float64, voters)
	for v := 0; v < voters; v++ {
		scores[v] = src(v)
	}

	s, err := FromScores(candidates, scores)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return s, nil
}

// FromScores builds a store from a voters×candidates score matrix, where
// scores[v][c-1] is voter v's utility for candidate c.
func FromScores(candidates int, scores [][]float64) (*Store, error) {
	if err := checkDims(methodFromScores, len(scores), candidates); err != nil {
		return nil, err
	}

	s := &Store{candidates: candidates, ballots: make([]Ballot, len(scores))}
	for v, row := range scores {
		if len(row) != candidates {
			return nil, fmt.Errorf("%s: voter %d has %d scores, want %d: %w",
				methodFromScores, v, len(row), candidates, ErrScoreCount)
		}
		for c, x := range row {
			if math.IsNaN(x) || x < MinScore || x > MaxScore {
				return nil, fmt.Errorf("%s: voter %d candidate %d score %g: %w",
					methodFromScores, v, c+1, x, ErrScoreOutOfRange)
			}
		}
		s.ballots[v] = rankScores(row)
	}

	return s, nil
}

// FromPreferences builds a store from explicit preference orders, one slice of
// candidate ids per voter, most preferred first. Entry at position p gets
// Rank p+1 and a synthetic, strictly decreasing score so that welfare figures
// stay meaningful. Ids are not checked; call Validate before resolving.
func FromPreferences(candidates int, orders [][]int) (*Store, error) {
	if err := checkDims(methodFromPreferences, len(orders), candidates); err != nil {
		return nil, err
	}

	step := MaxScore / float64(candidates)
	s := &Store{candidates: candidates, ballots: make([]Ballot, len(orders))}
	for v, order := range orders {
		b := make(Ballot, len(order))
		for p, c := range order {
			b[p] = Entry{Candidate: c, Score: float64(candidates-p) * step, Rank: p + 1}
		}
		s.ballots[v] = b
	}

	return s, nil
}

// FromBallots copies caller-built ballots into a new store without further checks.
func FromBallots(candidates int, ballots []Ballot) (*Store, error) {
	if err := checkDims(methodFromBallots, len(ballots), candidates); err != nil {
		return nil, err
	}

	s := &Store{candidates: candidates, ballots: make([]Ballot, len(ballots))}
	for v, b := range ballots {
		s.ballots[v] = append(Ballot(nil), b...)
	}

	return s, nil
}

// rankScores turns one score row into a Ballot sorted by descending score.
// SliceStable keeps generation order on ties.
func rankScores(row []float64) Ballot {
	b := make(Ballot, len(row))
	for c, x := range row {
		b[c] = Entry{Candidate: c + 1, Score: x}
	}
	sort.SliceStable(b, func(i, j int) bool { return b[i].Score > b[j].Score })
	for p := range b {
		b[p].Rank = p + 1
	}

	return b
}

func checkDims(method string, voters, candidates int) error {
	if voters < minVoters {
		return fmt.Errorf("%s: voters=%d < min=%d: %w", method, voters, minVoters, ErrTooFewVoters)
	}
	if candidates < minCandidates {
		return fmt.Errorf("%s: candidates=%d < min=%d: %w", method, candidates, minCandidates, ErrTooFewCandidates)
	}

	return nil
}
