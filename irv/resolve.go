package irv

import (
	"fmt"

	"github.com/katalvlaran/votesim/ranking"
)

// resolver carries state across rounds.
type resolver struct {
	work   *ranking.Store
	active []bool // active[c]: candidate c not yet eliminated; index 0 unused
	left   int    // number of active candidates
	opts   Options
}

// Resolve runs Instant-Runoff over a validated clone of s.
// On hook failure it returns the partial Result alongside the error.
func Resolve(s *ranking.Store, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStore, err)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	c := s.Candidates()
	r := &resolver{work: s.Clone(), active: make([]bool, c+1), left: c, opts: o}
	for id := 1; id <= c; id++ {
		r.active[id] = true
	}

	res := &Result{
		EliminationOrder: make([]int, 0, c-1),
		Rounds:           make([]Round, 0, c-1),
		Final:            r.work,
	}

	for r.left > 1 {
		round := r.step(len(res.Rounds) + 1)
		res.EliminationOrder = append(res.EliminationOrder, round.Eliminated)
		res.Rounds = append(res.Rounds, round)

		o.Logger.Debug("irv: eliminated",
			"round", round.Number,
			"candidate", round.Eliminated,
			"rule", string(round.Rule),
			"votes", round.Tied[0].Votes,
			"remaining", r.left)

		if o.OnRound != nil {
			if err := o.OnRound(round); err != nil {
				return res, fmt.Errorf("irv: OnRound hook for round %d: %w", round.Number, err)
			}
		}
	}

	res.Winner = r.survivor()
	o.Logger.Debug("irv: winner", "candidate", res.Winner, "rounds", len(res.Rounds))

	return res, nil
}

// step tallies, picks a loser, and strips it from the working store.
func (r *resolver) step(number int) Round {
	tally, ballots := r.tally()
	round := Round{Number: number, Tally: tally, Ballots: ballots}

	minVotes := tally[0].Votes
	for _, t := range tally[1:] {
		if t.Votes < minVotes {
			minVotes = t.Votes
		}
	}
	for _, t := range tally {
		if t.Votes == minVotes {
			round.Tied = append(round.Tied, t)
		}
	}

	if len(round.Tied) == 1 {
		round.Eliminated, round.Rule = round.Tied[0].Candidate, RuleUniqueMinimum
	} else {
		round.LastPlace = r.lastPlace(round.Tied)
		round.Eliminated, round.Rule = pickMostLast(round.LastPlace)
	}

	r.work.Remove(round.Eliminated)
	r.active[round.Eliminated] = false
	r.left--

	return round
}

// tally counts, per active candidate, the voters whose first active entry it
// is. Returned counts are in ascending candidate id, zero counts included.
func (r *resolver) tally() ([]Count, int) {
	votes := make([]int, len(r.active))
	ballots := 0
	for v := 0; v < r.work.Voters(); v++ {
		for _, e := range r.work.Ballot(v) {
			if r.isActive(e.Candidate) {
				votes[e.Candidate]++
				ballots++
				break
			}
		}
	}

	out := make([]Count, 0, r.left)
	for id := 1; id < len(r.active); id++ {
		if r.active[id] {
			out = append(out, Count{Candidate: id, Votes: votes[id]})
		}
	}

	return out, ballots
}

// lastPlace counts, for each tied candidate, the voters whose ballot read back
// to front meets it before any other tied candidate.
func (r *resolver) lastPlace(tied []Count) []Count {
	inTie := make(map[int]int, len(tied)) // candidate → index in out
	out := make([]Count, len(tied))
	for i, t := range tied {
		inTie[t.Candidate] = i
		out[i] = Count{Candidate: t.Candidate}
	}

	for v := 0; v < r.work.Voters(); v++ {
		b := r.work.Ballot(v)
		for k := len(b) - 1; k >= 0; k-- {
			if i, ok := inTie[b[k].Candidate]; ok {
				out[i].Votes++
				break
			}
		}
	}

	return out
}

// pickMostLast returns the candidate with the most last-place mentions; the
// first such candidate in ascending id wins a tie.
func pickMostLast(counts []Count) (int, Rule) {
	best := counts[0]
	ties := 1
	for _, c := range counts[1:] {
		switch {
		case c.Votes > best.Votes:
			best, ties = c, 1
		case c.Votes == best.Votes:
			ties++
		}
	}
	if ties > 1 {
		return best.Candidate, RuleLowestID
	}

	return best.Candidate, RuleLastChoice
}

func (r *resolver) isActive(c int) bool {
	return c >= 1 && c < len(r.active) && r.active[c]
}

func (r *resolver) survivor() int {
	for id := 1; id < len(r.active); id++ {
		if r.active[id] {
			return id
		}
	}

	return 0
}
