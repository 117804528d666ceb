package strategic

import (
	"fmt"

	"github.com/katalvlaran/votesim/logging"
	"github.com/katalvlaran/votesim/ranking"
	"github.com/katalvlaran/votesim/socialgraph"
)

// simulator carries state across rounds.
type simulator struct {
	graph *socialgraph.Graph
	work  *ranking.Store
	opts  Options
	votes []int // popularity scratch, indexed by candidate id
}

// Simulate runs strategic voting over a validated clone of s until a round
// with no change, the round cap, cancellation, or a hook error.
// Except for the input checks, every return carries a non-nil Result.
func Simulate(g *socialgraph.Graph, s *ranking.Store, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if s == nil {
		return nil, ErrNilStore
	}
	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStore, err)
	}
	if g.Voters() != s.Voters() {
		return nil, fmt.Errorf("graph has %d voters, store %d: %w", g.Voters(), s.Voters(), ErrSizeMismatch)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	maxRounds := o.MaxRounds
	if maxRounds == 0 {
		maxRounds = DefaultRoundsPerVoter * s.Voters()
	}

	sim := &simulator{
		graph: g,
		work:  s.Clone(),
		opts:  o,
		votes: make([]int, s.Candidates()+1),
	}
	res := &Result{Final: sim.work}

	for n := 1; n <= maxRounds; n++ {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		var (
			round Round
			err   error
		)
		if o.Semantics == Batched {
			round, err = sim.batchedRound(n)
		} else {
			round, err = sim.earlyBreakRound(n)
		}
		if err != nil {
			return res, err
		}

		res.Rounds = n
		res.Changes = append(res.Changes, round.Changes())
		o.Logger.Debug("strategic: round", "round", n, "changes", round.Changes(), "semantics", o.Semantics.String())

		if o.OnRound != nil {
			if err = o.OnRound(round); err != nil {
				return res, fmt.Errorf("strategic: OnRound hook for round %d: %w", n, err)
			}
		}

		if round.Changes() == 0 {
			res.Converged = true
			o.Logger.Debug("strategic: converged", "rounds", n, "changes", res.TotalChanges())
			return res, nil
		}
	}

	o.Logger.Warn("strategic: round cap reached", "max_rounds", maxRounds, "changes", res.TotalChanges())

	return res, fmt.Errorf("after %d rounds: %w", maxRounds, ErrNotConverged)
}

// earlyBreakRound scans voters in index order against live first choices and
// commits the first change found.
func (sim *simulator) earlyBreakRound(n int) (Round, error) {
	round := Round{Number: n}
	for i := 0; i < sim.work.Voters(); i++ {
		to, ok := sim.mostPopular(i, sim.work.FirstChoice)
		if !ok {
			continue
		}
		from, _ := sim.work.FirstChoice(i)
		if to == from {
			continue
		}
		if err := sim.commit(i, from, to); err != nil {
			return round, err
		}
		round.Switches = append(round.Switches, Switch{Voter: i, From: from, To: to})
		break
	}

	return round, nil
}

// batchedRound decides every voter against the round's starting first choices,
// then commits all decisions.
func (sim *simulator) batchedRound(n int) (Round, error) {
	round := Round{Number: n}
	firsts := sim.work.FirstChoices()
	snapshot := func(j int) (int, bool) { return firsts[j], firsts[j] != 0 }

	for i := range firsts {
		to, ok := sim.mostPopular(i, snapshot)
		if ok && to != firsts[i] {
			round.Switches = append(round.Switches, Switch{Voter: i, From: firsts[i], To: to})
		}
	}
	for _, sw := range round.Switches {
		if err := sim.commit(sw.Voter, sw.From, sw.To); err != nil {
			return round, err
		}
	}

	return round, nil
}

// mostPopular returns the most common first choice among the voters i
// observes, lowest id on ties. ok is false when i observes nobody with a
// first choice.
func (sim *simulator) mostPopular(i int, first func(int) (int, bool)) (int, bool) {
	clear(sim.votes)
	seen := false
	for j := 0; j < sim.graph.Voters(); j++ {
		if !sim.graph.Observes(i, j) {
			continue
		}
		if c, ok := first(j); ok && c < len(sim.votes) {
			sim.votes[c]++
			seen = true
		}
	}
	if !seen {
		return 0, false
	}

	best, top := 0, 0
	for c := 1; c < len(sim.votes); c++ {
		if sim.votes[c] > top {
			best, top = c, sim.votes[c]
		}
	}

	return best, true
}

func (sim *simulator) commit(voter, from, to int) error {
	if _, err := sim.work.Promote(voter, to); err != nil {
		return fmt.Errorf("strategic: voter %d: %w", voter, err)
	}
	sim.opts.Logger.Log(sim.opts.Ctx, logging.LevelTrace, "strategic: switch", "voter", voter, "from", from, "to", to)

	return nil
}
