package ranking

// Score bounds accepted by New and FromScores.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Entry is a single (candidate, score, rank) triple.
type Entry struct {
	// Candidate is the candidate id, in [1, candidates].
	Candidate int

	// Score is the voter's cardinal utility for Candidate.
	Score float64

	// Rank is the sincere ordinal position, 1 = most preferred.
	Rank int
}

// Ballot is one voter's entries in current declared order.
type Ballot []Entry

// Candidates returns the candidate ids of b in order.
func (b Ballot) Candidates() []int {
	out := make([]int, len(b))
	for i, e := range b {
		out[i] = e.Candidate
	}

	return out
}

// ScoreSource produces one voter's scores, indexed by candidate id minus one.
// It is the generator collaborator's hook into New and must return exactly
// `candidates` values in [MinScore, MaxScore].
type ScoreSource func(voter int) []float64

// Store maps voter index to Ballot.
type Store struct {
	candidates int
	ballots    []Ballot
}
