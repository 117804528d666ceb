package simulation_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/votesim/config"
	"github.com/katalvlaran/votesim/logging"
	"github.com/katalvlaran/votesim/ranking"
	"github.com/katalvlaran/votesim/simulation"
	"github.com/katalvlaran/votesim/socialgraph"
	"github.com/katalvlaran/votesim/strategic"
	"github.com/katalvlaran/votesim/welfare"
)

func TestRun_InputErrors(t *testing.T) {
	_, err := simulation.Run(context.Background(), nil, nil, simulation.PipelineAll)
	assert.ErrorIs(t, err, simulation.ErrNilConfig)

	bad := config.Default()
	bad.Voters = 0
	_, err = simulation.Run(context.Background(), bad, nil, simulation.PipelineAll)
	assert.ErrorIs(t, err, simulation.ErrInvalidConfig)
	assert.ErrorContains(t, err, "voters must be at least 1")

	_, err = simulation.Run(context.Background(), config.Default(), nil, 0)
	assert.ErrorIs(t, err, simulation.ErrNoPipeline)
}

func TestRun_Default(t *testing.T) {
	cfg := config.Default()

	out, err := simulation.Run(context.Background(), cfg, nil, simulation.PipelineAll)
	require.NoError(t, err)

	id, err := uuid.Parse(out.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	assert.Len(t, out.Names, cfg.Voters)
	assert.Equal(t, "Alice", out.Names[0])
	assert.Equal(t, cfg.Voters, out.Graph.Voters())
	assert.Equal(t, out.Graph.EdgeCount(), out.Edges)
	assert.True(t, out.Initial.Validate())
	assert.Equal(t, out.InitialFirstChoices, out.Initial.FirstChoices(), "resolvers must not touch the generated ballots")

	sum := 0
	for _, n := range out.Plurality.Tally {
		sum += n
	}
	assert.Equal(t, cfg.Voters, sum)
	assert.GreaterOrEqual(t, out.Plurality.Winner, 1)

	require.NotNil(t, out.IRV)
	assert.Len(t, out.IRV.EliminationOrder, cfg.Candidates-1)
	assert.NotContains(t, out.IRV.EliminationOrder, out.IRV.Winner)
	assert.GreaterOrEqual(t, out.IRV.FromInitial.Cardinal, 0.0)
	assert.GreaterOrEqual(t, out.IRV.FromInitial.Ordinal, 0)
	assert.Equal(t, welfare.SocialWelfare(out.Initial, out.IRV.Winner), out.IRV.Welfare)
	assert.Equal(t, welfare.SocialWelfareFromInitial(out.Initial, out.IRV.Winner, out.InitialFirstChoices), out.IRV.FromInitial)

	require.NotNil(t, out.Strategic)
	assert.Equal(t, "early-break", out.Strategic.Semantics)
	assert.Len(t, out.Strategic.Changes, out.Strategic.Rounds)
	if out.Strategic.Converged {
		assert.Zero(t, out.Strategic.Changes[len(out.Strategic.Changes)-1])
	}
	assert.Equal(t, out.Strategic.FirstChoices, out.Strategic.Final.FirstChoices())
}

func TestRun_Deterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Voters, cfg.Candidates = 30, 4

	a, err := simulation.Run(context.Background(), cfg, nil, simulation.PipelineAll)
	require.NoError(t, err)
	b, err := simulation.Run(context.Background(), cfg, nil, simulation.PipelineAll)
	require.NoError(t, err)

	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, a.Graph.Matrix(), b.Graph.Matrix())
	assert.Equal(t, a.InitialFirstChoices, b.InitialFirstChoices)
	assert.Equal(t, a.Plurality, b.Plurality)
	assert.Equal(t, a.IRV.EliminationOrder, b.IRV.EliminationOrder)
	assert.Equal(t, a.Strategic.Changes, b.Strategic.Changes)
	assert.Equal(t, a.Strategic.FirstChoices, b.Strategic.FirstChoices)
}

func TestRun_SeedChangesElectorate(t *testing.T) {
	cfg := config.Default()
	a, err := simulation.Run(context.Background(), cfg, nil, simulation.PipelineIRV)
	require.NoError(t, err)

	cfg.Seed++
	b, err := simulation.Run(context.Background(), cfg, nil, simulation.PipelineIRV)
	require.NoError(t, err)

	assert.NotEqual(t, a.Graph.Matrix(), b.Graph.Matrix())
}

func TestRun_SinglePipeline(t *testing.T) {
	out, err := simulation.Run(context.Background(), config.Default(), nil, simulation.PipelineIRV)
	require.NoError(t, err)
	assert.NotNil(t, out.IRV)
	assert.Nil(t, out.Strategic)

	out, err = simulation.Run(context.Background(), config.Default(), nil, simulation.PipelineStrategic)
	require.NoError(t, err)
	assert.Nil(t, out.IRV)
	assert.NotNil(t, out.Strategic)
}

func TestRun_EmptyGraphKeepsSincereBallots(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.Model = config.GraphEmpty

	out, err := simulation.Run(context.Background(), cfg, nil, simulation.PipelineStrategic)
	require.NoError(t, err)

	assert.Zero(t, out.Edges)
	s := out.Strategic
	assert.True(t, s.Converged)
	assert.Equal(t, 1, s.Rounds)
	assert.Equal(t, out.InitialFirstChoices, s.FirstChoices)
	assert.Equal(t, out.Plurality.Winner, s.Winner)
	assert.Equal(t, out.Plurality.Welfare, s.FromInitial)
	assert.Equal(t, welfare.SocialWelfare(out.Initial, s.Winner), s.Welfare)
}

func TestRun_NonConvergenceIsReported(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.Model = config.GraphComplete
	cfg.Strategic.Semantics = "batched"
	cfg.Strategic.MaxRounds = 1

	out, err := simulation.Run(context.Background(), cfg, nil, simulation.PipelineStrategic)
	require.NoError(t, err)
	assert.False(t, out.Strategic.Converged)
	assert.Equal(t, 1, out.Strategic.Rounds)
	assert.Equal(t, "batched", out.Strategic.Semantics)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := simulation.Run(ctx, config.Default(), nil, simulation.PipelineAll)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, out)
	assert.NotNil(t, out.IRV, "irv does not observe the context")
	assert.Nil(t, out.Strategic)
}

func TestRun_LogsCarryRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger("info", logging.FormatText, &buf)

	out, err := simulation.Run(context.Background(), config.Default(), logger, simulation.PipelineAll)
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "run_id="+out.RunID)
	assert.Contains(t, logs, "simulation: plurality baseline")
	assert.Contains(t, logs, "simulation: instant runoff resolved")
	assert.Contains(t, logs, "simulation: strategic voting finished")
}

func TestPipeline_Has(t *testing.T) {
	assert.True(t, simulation.PipelineAll.Has(simulation.PipelineIRV))
	assert.True(t, simulation.PipelineAll.Has(simulation.PipelineStrategic))
	assert.False(t, simulation.PipelineIRV.Has(simulation.PipelineStrategic))
}

func TestEvaluate_SuppliedElectorate(t *testing.T) {
	g, err := socialgraph.FromBinary([][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 0, 0},
	})
	require.NoError(t, err)
	s, err := ranking.FromPreferences(3, [][]int{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}})
	require.NoError(t, err)

	out, err := simulation.Evaluate(context.Background(), config.Default(), g, s, nil, simulation.PipelineAll)
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Bart", "Cindy"}, out.Names)
	assert.Equal(t, 3, out.Edges)
	assert.Equal(t, 1, out.Plurality.Winner)
	assert.Equal(t, 2, out.IRV.Winner)
	assert.Equal(t, []int{1, 3}, out.IRV.EliminationOrder)
	assert.Equal(t, 3, out.IRV.Welfare.Ordinal)
	assert.InDelta(t, 100.0, out.IRV.Welfare.Cardinal, 1e-9)
	assert.Equal(t, out.IRV.Welfare, out.IRV.FromInitial)
	assert.Equal(t, []int{1, 0}, out.Strategic.Changes)
	assert.Equal(t, []int{2, 2, 3}, out.Strategic.FirstChoices)
	assert.Equal(t, 2, out.Strategic.Winner)
	assert.Equal(t, 3, out.Strategic.FromInitial.Ordinal)
	assert.InDelta(t, 100.0, out.Strategic.FromInitial.Cardinal, 1e-9)
}

// TestRun_IRVWelfareUsesSincereBallots guards against measuring IRV regret on
// the post-elimination store, where every ballot holds only the winner and
// the regret collapses to zero.
func TestRun_IRVWelfareUsesSincereBallots(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := config.Default()
		cfg.Seed = seed

		out, err := simulation.Run(context.Background(), cfg, nil, simulation.PipelineIRV)
		require.NoError(t, err)

		want := welfare.SocialWelfare(out.Initial, out.IRV.Winner)
		assert.Equal(t, want, out.IRV.Welfare, "seed %d", seed)
		assert.Equal(t, want, out.IRV.FromInitial, "seed %d", seed)
		assert.Greater(t, out.IRV.Welfare.Cardinal, 0.0, "seed %d", seed)
		assert.Greater(t, out.IRV.Welfare.Ordinal, 0, "seed %d", seed)
	}
}

func TestEvaluate_InputErrors(t *testing.T) {
	g, err := socialgraph.New(2)
	require.NoError(t, err)
	valid, err := ranking.FromPreferences(2, [][]int{{1, 2}, {2, 1}})
	require.NoError(t, err)
	dup, err := ranking.FromPreferences(2, [][]int{{1, 2}, {2, 2}})
	require.NoError(t, err)
	g3, err := socialgraph.New(3)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = simulation.Evaluate(ctx, nil, g, valid, nil, simulation.PipelineAll)
	assert.ErrorIs(t, err, simulation.ErrNilConfig)
	_, err = simulation.Evaluate(ctx, config.Default(), nil, valid, nil, simulation.PipelineAll)
	assert.ErrorIs(t, err, simulation.ErrNilElectorate)
	_, err = simulation.Evaluate(ctx, config.Default(), g3, valid, nil, simulation.PipelineAll)
	assert.ErrorIs(t, err, strategic.ErrSizeMismatch)
	_, err = simulation.Evaluate(ctx, config.Default(), g, dup, nil, simulation.PipelineAll)
	assert.ErrorIs(t, err, ranking.ErrDuplicateCandidate)
}

func TestRun_StarFollowsHub(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.Model = config.GraphStar
	cfg.Graph.Hub = 3

	out, err := simulation.Run(context.Background(), cfg, nil, simulation.PipelineStrategic)
	require.NoError(t, err)

	hub := out.InitialFirstChoices[3]
	assert.True(t, out.Strategic.Converged)
	assert.Equal(t, hub, out.Strategic.Winner)
	for v, c := range out.Strategic.FirstChoices {
		assert.Equal(t, hub, c, "voter %d", v)
	}
	assert.Equal(t, cfg.Voters-1, out.Edges)
}

func TestRun_GraphModels(t *testing.T) {
	for _, model := range []string{
		config.GraphDegree, config.GraphSparse, config.GraphRegular,
		config.GraphRing, config.GraphStar, config.GraphComplete, config.GraphEmpty,
	} {
		t.Run(model, func(t *testing.T) {
			cfg := config.Default()
			cfg.Graph.Model = model
			cfg.Scores.Distribution = config.DistTenths

			out, err := simulation.Run(context.Background(), cfg, nil, simulation.PipelineAll)
			require.NoError(t, err)
			assert.Equal(t, cfg.Voters, out.Graph.Voters())
			assert.Len(t, out.IRV.EliminationOrder, cfg.Candidates-1)
		})
	}
}
