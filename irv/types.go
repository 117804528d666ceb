package irv

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/votesim/logging"
	"github.com/katalvlaran/votesim/ranking"
)

var (
	// ErrNilStore is returned when Resolve receives a nil store.
	ErrNilStore = errors.New("irv: store is nil")

	// ErrInvalidStore is returned when the store fails validation. Nothing
	// has been tallied or mutated when it is returned.
	ErrInvalidStore = errors.New("irv: invalid store")
)

// Rule names how a round's loser was chosen.
type Rule string

const (
	// RuleUniqueMinimum: one candidate had the fewest first-choice votes.
	RuleUniqueMinimum Rule = "unique-minimum"

	// RuleLastChoice: tied losers separated by most last-place mentions.
	RuleLastChoice Rule = "last-choice"

	// RuleLowestID: last-place mentions also tied; lowest id eliminated.
	RuleLowestID Rule = "lowest-id"
)

// Count pairs a candidate with a vote count.
type Count struct {
	Candidate int `json:"candidate"`
	Votes     int `json:"votes"`
}

// Round records one elimination step.
type Round struct {
	// Number is 1-based.
	Number int `json:"number"`

	// Tally holds first-choice votes per active candidate, ascending id.
	Tally []Count `json:"tally"`

	// Ballots is the number of voters that counted toward Tally.
	Ballots int `json:"ballots"`

	// Tied lists the minimum-tally candidates, ascending id.
	Tied []Count `json:"tied"`

	// LastPlace holds last-choice mentions among Tied; empty unless len(Tied) > 1.
	LastPlace []Count `json:"last_place,omitempty"`

	// Eliminated is the candidate removed this round.
	Eliminated int `json:"eliminated"`

	// Rule is how Eliminated was chosen.
	Rule Rule `json:"rule"`
}

// Result is the outcome of Resolve.
type Result struct {
	// Winner is the last active candidate.
	Winner int

	// EliminationOrder lists eliminated candidates in order; len == candidates-1.
	EliminationOrder []int

	// Rounds records every elimination step.
	Rounds []Round

	// Final is the working clone with eliminated entries stripped.
	Final *ranking.Store
}

// Option configures Resolve.
type Option func(*Options)

// Options holds Resolve's configurable parameters.
type Options struct {
	// Logger receives one Debug record per round. Defaults to logging.Discard().
	Logger *slog.Logger

	// OnRound, if non-nil, is invoked after each elimination with that round's
	// record. Returning an error aborts the run with that error.
	OnRound func(Round) error
}

// DefaultOptions returns Options with a discarding logger and no hook.
func DefaultOptions() Options {
	return Options{
		Logger:  logging.Discard(),
		OnRound: nil,
	}
}

// WithLogger routes per-round records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("irv: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnRound installs fn as the per-round hook.
func WithOnRound(fn func(Round) error) Option {
	return func(o *Options) {
		o.OnRound = fn
	}
}
