package welfare

import (
	"math"

	"github.com/katalvlaran/votesim/ranking"
)

// Welfare is an aggregate regret. Both fields are non-negative.
type Welfare struct {
	// Cardinal is the summed absolute score gap.
	Cardinal float64 `json:"cardinal" yaml:"cardinal"`

	// Ordinal is the summed absolute rank gap.
	Ordinal int `json:"ordinal" yaml:"ordinal"`
}

func (w *Welfare) add(from, to ranking.Entry) {
	w.Cardinal += math.Abs(from.Score - to.Score)
	w.Ordinal += absInt(from.Rank - to.Rank)
}

// SocialWelfare returns the regret of electing winner, measured from each
// voter's current first choice. Voters with an empty ballot contribute nothing.
// An absent winner reads as Entry{Score: 0, Rank: 0}.
// Complexity: O(V·C).
func SocialWelfare(s *ranking.Store, winner int) Welfare {
	var w Welfare
	for v := 0; v < s.Voters(); v++ {
		b := s.Ballot(v)
		if len(b) == 0 {
			continue
		}
		won, _ := s.Find(v, winner) // zero Entry when absent
		w.add(b[0], won)
	}

	return w
}

// SocialWelfareFromInitial returns the regret of electing winner, measured
// from initial[v], voter v's originally recorded first choice. A voter is
// skipped when initial has no slot for it, or when either the initial choice
// or the winner is missing from its current ballot.
// Complexity: O(V·C).
func SocialWelfareFromInitial(s *ranking.Store, winner int, initial []int) Welfare {
	var w Welfare
	for v := 0; v < s.Voters() && v < len(initial); v++ {
		first, ok := s.Find(v, initial[v])
		if !ok {
			continue
		}
		won, ok := s.Find(v, winner)
		if !ok {
			continue
		}
		w.add(first, won)
	}

	return w
}

// Tally counts current first choices. The result is indexed by candidate id
// (index 0 unused) and has length Candidates()+1.
func Tally(s *ranking.Store) []int {
	counts := make([]int, s.Candidates()+1)
	for _, c := range s.FirstChoices() {
		if c >= 1 && c < len(counts) {
			counts[c]++
		}
	}

	return counts
}

// PluralityWinner returns the candidate with the most first-choice votes,
// lowest id on ties. ok is false when no voter has a first choice.
func PluralityWinner(s *ranking.Store) (winner int, ok bool) {
	counts := Tally(s)
	best := 0
	for c := 1; c < len(counts); c++ {
		if counts[c] > best {
			best, winner = counts[c], c
		}
	}

	return winner, best > 0
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
