// Package ranking implements the per-voter preference store shared by every
// resolver in votesim.
//
// What:
//
//   - Entry is one (candidate, score, rank) triple. Score is the voter's
//     cardinal utility in [MinScore, MaxScore]; Rank is its sincere ordinal
//     position, 1 = most preferred.
//   - Ballot is one voter's entries in current declared order (index 0 is the
//     current first choice).
//   - Store maps voter index (0-based, insertion order) to Ballot.
//
// Ranks are assigned once, at construction, by sorting a voter's scores in
// descending order with ties kept in generation order (candidate id order).
// They are never renumbered afterwards: Remove drops entries and Promote moves
// one entry to the front, but Rank keeps recording the sincere preference.
//
// Validation:
//
//	Validate() reports whether every ballot holds exactly Candidates() entries
//	with distinct ids in [1, Candidates()]. Check() returns the first violation
//	as an error wrapping ErrEntryCount, ErrDuplicateCandidate or
//	ErrUnknownCandidate. Resolvers call Check once on entry and never again.
//
// Ownership:
//
//	Resolvers Clone the store they are handed and return the mutated clone, so
//	the caller's "before" state survives for welfare comparison.
//
// Complexity:
//
//   - New/FromScores: O(V·C log C).
//   - Remove: O(V·C). Promote, Find: O(C). Clone, Check: O(V·C).
package ranking
