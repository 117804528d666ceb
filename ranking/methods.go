package ranking

import "fmt"

// Voters returns the number of ballots.
func (s *Store) Voters() int {
	return len(s.ballots)
}

// Candidates returns the candidate count the store was built for. It does not
// shrink as entries are removed.
func (s *Store) Candidates() int {
	return s.candidates
}

// Ballot returns voter v's ballot in declared order, or nil if v is out of
// range. The slice aliases the store and must be treated as read-only; Clone
// first if you need to keep it.
func (s *Store) Ballot(v int) Ballot {
	if v < 0 || v >= len(s.ballots) {
		return nil
	}

	return s.ballots[v]
}

// FirstChoice returns voter v's current first choice. ok is false when v is
// out of range or the ballot is empty.
func (s *Store) FirstChoice(v int) (candidate int, ok bool) {
	b := s.Ballot(v)
	if len(b) == 0 {
		return 0, false
	}

	return b[0].Candidate, true
}

// FirstChoices returns every voter's current first choice in voter order,
// with 0 standing in for an empty ballot.
func (s *Store) FirstChoices() []int {
	out := make([]int, len(s.ballots))
	for v, b := range s.ballots {
		if len(b) > 0 {
			out[v] = b[0].Candidate
		}
	}

	return out
}

// Find returns voter v's entry for candidate, if present.
func (s *Store) Find(v, candidate int) (Entry, bool) {
	for _, e := range s.Ballot(v) {
		if e.Candidate == candidate {
			return e, true
		}
	}

	return Entry{}, false
}

// Remove drops candidate from every ballot, compacting in place and keeping
// the relative order of the remaining entries. Ranks are not renumbered.
// It returns how many ballots contained the candidate.
func (s *Store) Remove(candidate int) int {
	removed := 0
	for v, b := range s.ballots {
		for i := range b {
			if b[i].Candidate == candidate {
				copy(b[i:], b[i+1:])
				s.ballots[v] = b[:len(b)-1]
				removed++
				break
			}
		}
	}

	return removed
}

// Promote moves voter v's entry for candidate to the front of the ballot,
// shifting the entries ahead of it back by one. moved is false when the
// candidate was already first.
func (s *Store) Promote(v, candidate int) (moved bool, err error) {
	if v < 0 || v >= len(s.ballots) {
		return false, fmt.Errorf("Promote: voter %d with %d voters: %w", v, len(s.ballots), ErrVoterOutOfRange)
	}

	b := s.ballots[v]
	for k := range b {
		if b[k].Candidate != candidate {
			continue
		}
		if k == 0 {
			return false, nil
		}
		e := b[k]
		copy(b[1:k+1], b[:k])
		b[0] = e

		return true, nil
	}

	return false, fmt.Errorf("Promote: voter %d candidate %d: %w", v, candidate, ErrCandidateAbsent)
}

// Clone returns a deep copy of s.
func (s *Store) Clone() *Store {
	c := &Store{candidates: s.candidates, ballots: make([]Ballot, len(s.ballots))}
	for v, b := range s.ballots {
		c.ballots[v] = append(make(Ballot, 0, len(b)), b...)
	}

	return c
}
