package strategic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/votesim/logging"
	"github.com/katalvlaran/votesim/ranking"
)

var (
	// ErrNilGraph is returned when Simulate receives a nil graph.
	ErrNilGraph = errors.New("strategic: graph is nil")

	// ErrNilStore is returned when Simulate receives a nil store.
	ErrNilStore = errors.New("strategic: store is nil")

	// ErrInvalidStore is returned when the store fails validation.
	ErrInvalidStore = errors.New("strategic: invalid store")

	// ErrSizeMismatch is returned when graph and store voter counts differ.
	ErrSizeMismatch = errors.New("strategic: graph and store sizes differ")

	// ErrNotConverged is returned alongside a partial Result when the round
	// cap is reached before a change-free round.
	ErrNotConverged = errors.New("strategic: round cap reached without convergence")
)

// Semantics selects how updates within a round interact.
type Semantics int

const (
	// EarlyBreak ends each round at the first voter that changes.
	EarlyBreak Semantics = iota

	// Batched commits every voter's decision at the end of the round.
	Batched
)

// String returns the configuration name of s.
func (s Semantics) String() string {
	switch s {
	case EarlyBreak:
		return "early-break"
	case Batched:
		return "batched"
	default:
		return fmt.Sprintf("Semantics(%d)", int(s))
	}
}

// ParseSemantics maps "early-break" or "batched" to a Semantics.
func ParseSemantics(name string) (Semantics, error) {
	switch name {
	case "early-break", "":
		return EarlyBreak, nil
	case "batched":
		return Batched, nil
	default:
		return EarlyBreak, fmt.Errorf("strategic: unknown semantics %q", name)
	}
}

// DefaultRoundsPerVoter scales the default round cap.
const DefaultRoundsPerVoter = 10

// Switch records one voter adopting a new first choice.
type Switch struct {
	Voter int `json:"voter"`
	From  int `json:"from"`
	To    int `json:"to"`
}

// Round records one pass over the voters.
type Round struct {
	// Number is 1-based.
	Number int `json:"number"`

	// Switches lists the changes committed this round, ascending voter.
	Switches []Switch `json:"switches,omitempty"`
}

// Changes returns how many voters switched this round.
func (r Round) Changes() int {
	return len(r.Switches)
}

// Result is the outcome of Simulate.
type Result struct {
	// Final is the working clone after the last committed round.
	Final *ranking.Store

	// Rounds is the number of rounds run, including the final change-free one.
	Rounds int

	// Changes holds the per-round change counts; len == Rounds.
	Changes []int

	// Converged reports whether a change-free round was reached.
	Converged bool
}

// TotalChanges sums Changes.
func (r *Result) TotalChanges() int {
	total := 0
	for _, c := range r.Changes {
		total += c
	}

	return total
}

// Option configures Simulate.
type Option func(*Options)

// Options holds Simulate's configurable parameters.
type Options struct {
	// Ctx allows cancellation between rounds; defaults to context.Background().
	Ctx context.Context

	// Logger defaults to logging.Discard().
	Logger *slog.Logger

	// OnRound, if non-nil, is invoked after each round. Returning an error
	// aborts the run with that error.
	OnRound func(Round) error

	// MaxRounds caps the number of rounds; 0 means DefaultRoundsPerVoter × voters.
	MaxRounds int

	// Semantics selects the round model.
	Semantics Semantics
}

// DefaultOptions returns Options with background context, discarding logger,
// no hook, the voter-scaled round cap and EarlyBreak semantics.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    logging.Discard(),
		OnRound:   nil,
		MaxRounds: 0,
		Semantics: EarlyBreak,
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes round records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("strategic: WithLogger(nil)")
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

// WithMaxRounds caps the number of rounds. Panics if n < 1.
func WithMaxRounds(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("strategic: WithMaxRounds(%d)", n))
	}
	return func(o *Options) {
		o.MaxRounds = n
	}
}

// WithSemantics selects the round model.
func WithSemantics(s Semantics) Option {
	return func(o *Options) {
		o.Semantics = s
	}
}
