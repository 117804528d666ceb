package simulation

import (
	"errors"

	"github.com/katalvlaran/votesim/config"
	"github.com/katalvlaran/votesim/irv"
	"github.com/katalvlaran/votesim/ranking"
	"github.com/katalvlaran/votesim/socialgraph"
	"github.com/katalvlaran/votesim/welfare"
)

var (
	// ErrNilConfig is returned when Run receives a nil config.
	ErrNilConfig = errors.New("simulation: config is nil")

	// ErrInvalidConfig wraps a Config.Validate failure.
	ErrInvalidConfig = errors.New("simulation: invalid config")

	// ErrNilElectorate is returned when Evaluate receives a nil graph or store.
	ErrNilElectorate = errors.New("simulation: graph or ballots are nil")

	// ErrNoPipeline is returned when Run is asked to run nothing.
	ErrNoPipeline = errors.New("simulation: no pipeline selected")
)

// Pipeline selects which resolvers Run executes. Values combine with |.
type Pipeline uint8

const (
	// PipelineIRV runs Instant-Runoff.
	PipelineIRV Pipeline = 1 << iota

	// PipelineStrategic runs strategic voting.
	PipelineStrategic

	// PipelineAll runs both.
	PipelineAll = PipelineIRV | PipelineStrategic
)

// Has reports whether p includes q.
func (p Pipeline) Has(q Pipeline) bool {
	return p&q == q
}

// Baseline is the plurality outcome on the generated, unmodified ballots.
type Baseline struct {
	Winner  int             `json:"winner"`
	Tally   []int           `json:"tally"`
	Welfare welfare.Welfare `json:"welfare"`
}

// IRVOutcome summarises an Instant-Runoff run.
type IRVOutcome struct {
	Winner           int         `json:"winner"`
	EliminationOrder []int       `json:"elimination_order"`
	Rounds           []irv.Round `json:"rounds"`

	// Welfare is measured on the sincere ballots, before any elimination.
	Welfare welfare.Welfare `json:"welfare"`

	// FromInitial is measured on the sincere ballots against each voter's
	// generated first choice.
	FromInitial welfare.Welfare `json:"welfare_from_initial"`

	Result *irv.Result `json:"-"`
}

// StrategicOutcome summarises a strategic voting run.
type StrategicOutcome struct {
	// Winner is the plurality winner of the converged ballots.
	Winner    int    `json:"winner"`
	Semantics string `json:"semantics"`
	Rounds    int    `json:"rounds"`
	Changes   []int  `json:"changes"`
	Converged bool   `json:"converged"`

	// FirstChoices are the declared first choices after the last round.
	FirstChoices []int `json:"first_choices"`

	Welfare     welfare.Welfare `json:"welfare"`
	FromInitial welfare.Welfare `json:"welfare_from_initial"`

	Final *ranking.Store `json:"-"`
}

// Outcome is everything one run produced.
type Outcome struct {
	RunID  string        `json:"run_id"`
	Config config.Config `json:"config"`

	// Names labels voters for reports.
	Names []string `json:"names"`

	// Edges is the number of observation links in Graph.
	Edges int `json:"edges"`

	// InitialFirstChoices are the sincere first choices, voter order.
	InitialFirstChoices []int `json:"initial_first_choices"`

	Plurality Baseline          `json:"plurality"`
	IRV       *IRVOutcome       `json:"irv,omitempty"`
	Strategic *StrategicOutcome `json:"strategic,omitempty"`

	Graph   *socialgraph.Graph `json:"-"`
	Initial *ranking.Store     `json:"-"`
}
