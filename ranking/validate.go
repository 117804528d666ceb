package ranking

import "fmt"

// Validate reports whether every ballot holds exactly Candidates() entries
// with distinct ids in [1, Candidates()]. A false result is fatal for a run:
// no resolver may execute against the store.
func (s *Store) Validate() bool {
	return s.Check() == nil
}

// Check is Validate with a reason: it returns the first violation found,
// scanning voters in index order, or nil.
// Complexity: O(V·C) time, O(C) space.
func (s *Store) Check() error {
	if len(s.ballots) < minVoters {
		return fmt.Errorf("Check: %w", ErrTooFewVoters)
	}

	seen := make([]bool, s.candidates+1)
	for v, b := range s.ballots {
		if len(b) != s.candidates {
			return fmt.Errorf("Check: voter %d has %d entries, want %d: %w",
				v, len(b), s.candidates, ErrEntryCount)
		}
		clear(seen)
		for _, e := range b {
			if e.Candidate < 1 || e.Candidate > s.candidates {
				return fmt.Errorf("Check: voter %d candidate %d: %w", v, e.Candidate, ErrUnknownCandidate)
			}
			if seen[e.Candidate] {
				return fmt.Errorf("Check: voter %d candidate %d: %w", v, e.Candidate, ErrDuplicateCandidate)
			}
			seen[e.Candidate] = true
		}
	}

	return nil
}
