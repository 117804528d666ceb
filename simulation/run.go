package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/votesim/builder"
	"github.com/katalvlaran/votesim/config"
	"github.com/katalvlaran/votesim/irv"
	"github.com/katalvlaran/votesim/logging"
	"github.com/katalvlaran/votesim/ranking"
	"github.com/katalvlaran/votesim/socialgraph"
	"github.com/katalvlaran/votesim/strategic"
	"github.com/katalvlaran/votesim/welfare"
)

// Run generates one electorate from cfg and resolves it with the selected
// pipelines. A nil logger discards. Strategic non-convergence is reported in
// the outcome, not as an error.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, pipelines Pipeline) (*Outcome, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if pipelines&PipelineAll == 0 {
		return nil, ErrNoPipeline
	}
	if logger == nil {
		logger = logging.Discard()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g, err := buildGraph(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("simulation: graph: %w", err)
	}
	s, err := buildStore(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("simulation: ballots: %w", err)
	}
	logger.Info("simulation: generated electorate",
		"voters", cfg.Voters, "candidates", cfg.Candidates, "seed", cfg.Seed,
		"graph", cfg.Graph.Model, "scores", cfg.Scores.Distribution)

	return Evaluate(ctx, cfg, g, s, logger, pipelines)
}

// Evaluate resolves a caller-supplied electorate. cfg contributes the
// strategic settings and is echoed into the outcome; its generator settings
// are not consulted. s is validated and never modified.
func Evaluate(ctx context.Context, cfg *config.Config, g *socialgraph.Graph, s *ranking.Store, logger *slog.Logger, pipelines Pipeline) (*Outcome, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if g == nil || s == nil {
		return nil, ErrNilElectorate
	}
	if pipelines&PipelineAll == 0 {
		return nil, ErrNoPipeline
	}
	if g.Voters() != s.Voters() {
		return nil, fmt.Errorf("simulation: graph has %d voters, ballots %d: %w", g.Voters(), s.Voters(), strategic.ErrSizeMismatch)
	}
	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("simulation: ballots: %w", err)
	}
	if logger == nil {
		logger = logging.Discard()
	}

	runID := uuid.Must(uuid.NewV7()).String()
	logger = logger.With("run_id", runID)

	out := &Outcome{
		RunID:               runID,
		Config:              *cfg,
		Names:               builder.Names(s.Voters(), builder.WithNames()),
		Edges:               g.EdgeCount(),
		InitialFirstChoices: s.FirstChoices(),
		Graph:               g,
		Initial:             s,
	}

	winner, _ := welfare.PluralityWinner(s)
	out.Plurality = Baseline{
		Winner:  winner,
		Tally:   welfare.Tally(s),
		Welfare: welfare.SocialWelfare(s, winner),
	}
	logger.Info("simulation: plurality baseline", "winner", winner, "edges", out.Edges)

	var err error
	if pipelines.Has(PipelineIRV) {
		if out.IRV, err = runIRV(s, out.InitialFirstChoices, logger); err != nil {
			return out, err
		}
	}

	if pipelines.Has(PipelineStrategic) {
		if out.Strategic, err = runStrategic(ctx, cfg, g, s, out.InitialFirstChoices, logger); err != nil {
			return out, err
		}
	}

	return out, nil
}

func runIRV(s *ranking.Store, initial []int, logger *slog.Logger) (*IRVOutcome, error) {
	res, err := irv.Resolve(s, irv.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("simulation: irv: %w", err)
	}

	o := &IRVOutcome{
		Winner:           res.Winner,
		EliminationOrder: res.EliminationOrder,
		Rounds:           res.Rounds,
		Welfare:          welfare.SocialWelfare(s, res.Winner),
		FromInitial:      welfare.SocialWelfareFromInitial(s, res.Winner, initial),
		Result:           res,
	}
	logger.Info("simulation: instant runoff resolved",
		"winner", o.Winner, "order", o.EliminationOrder,
		"cardinal", o.FromInitial.Cardinal, "ordinal", o.FromInitial.Ordinal)

	return o, nil
}

func runStrategic(ctx context.Context, cfg *config.Config, g *socialgraph.Graph, s *ranking.Store, initial []int, logger *slog.Logger) (*StrategicOutcome, error) {
	sem, err := strategic.ParseSemantics(cfg.Strategic.Semantics)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	opts := []strategic.Option{
		strategic.WithContext(ctx),
		strategic.WithLogger(logger),
		strategic.WithSemantics(sem),
	}
	if cfg.Strategic.MaxRounds > 0 {
		opts = append(opts, strategic.WithMaxRounds(cfg.Strategic.MaxRounds))
	}

	res, err := strategic.Simulate(g, s, opts...)
	if err != nil && !errors.Is(err, strategic.ErrNotConverged) {
		return nil, fmt.Errorf("simulation: strategic: %w", err)
	}

	winner, _ := welfare.PluralityWinner(res.Final)
	o := &StrategicOutcome{
		Winner:       winner,
		Semantics:    sem.String(),
		Rounds:       res.Rounds,
		Changes:      res.Changes,
		Converged:    res.Converged,
		FirstChoices: res.Final.FirstChoices(),
		Welfare:      welfare.SocialWelfare(res.Final, winner),
		FromInitial:  welfare.SocialWelfareFromInitial(res.Final, winner, initial),
		Final:        res.Final,
	}
	logger.Info("simulation: strategic voting finished",
		"winner", winner, "rounds", o.Rounds, "changes", res.TotalChanges(), "converged", o.Converged)

	return o, nil
}

// buildGraph draws the social graph from rng per cfg.Graph.Model.
func buildGraph(cfg *config.Config, rng *rand.Rand) (*socialgraph.Graph, error) {
	var cons []builder.Constructor
	switch cfg.Graph.Model {
	case config.GraphDegree:
		cons = append(cons, builder.RandomDegree())
	case config.GraphSparse:
		cons = append(cons, builder.RandomSparse(cfg.Graph.Probability))
	case config.GraphRegular:
		cons = append(cons, builder.RandomRegular(cfg.Graph.Degree))
	case config.GraphRing:
		cons = append(cons, builder.Ring(cfg.Graph.Degree))
	case config.GraphStar:
		cons = append(cons, builder.Star(cfg.Graph.Hub))
	case config.GraphComplete:
		cons = append(cons, builder.Complete())
	case config.GraphEmpty:
	default:
		return nil, fmt.Errorf("unknown graph model %q", cfg.Graph.Model)
	}

	return builder.BuildGraph(cfg.Voters, []builder.BuilderOption{builder.WithRand(rng)}, cons...)
}

// buildStore draws scores from rng per cfg.Scores and ranks them.
func buildStore(cfg *config.Config, rng *rand.Rand) (*ranking.Store, error) {
	bopts := []builder.BuilderOption{builder.WithRand(rng)}
	switch cfg.Scores.Distribution {
	case config.DistNormal:
		bopts = append(bopts, builder.WithNormalScores(cfg.Scores.Mean, cfg.Scores.StdDev))
	case config.DistUniform:
		bopts = append(bopts, builder.WithUniformScores(cfg.Scores.Min, cfg.Scores.Max))
	case config.DistTenths:
		bopts = append(bopts, builder.WithTenthsScores())
	default:
		return nil, fmt.Errorf("unknown score distribution %q", cfg.Scores.Distribution)
	}

	src, err := builder.ScoreSource(cfg.Voters, cfg.Candidates, bopts...)
	if err != nil {
		return nil, err
	}

	return ranking.New(cfg.Voters, cfg.Candidates, src)
}
