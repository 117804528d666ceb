// Package irv resolves an election by Instant-Runoff (ranked-choice) elimination.
//
// What:
//
//   - Resolve(store, opts...) repeatedly tallies first choices over the
//     shrinking active candidate set, eliminates the plurality loser and strips
//     it from every ballot, until one candidate remains.
//
// Per round:
//
//  1. Each voter counts for the first entry of its ballot whose candidate is
//     still active. Voters with no active entry are exhausted.
//  2. The active candidates with the minimum tally are the losers.
//  3. A unique loser is eliminated (RuleUniqueMinimum).
//  4. Tied losers are separated by last-choice count: every voter scans its
//     ballot back to front and credits the first tied candidate it meets. The
//     candidate with the most last-place mentions goes (RuleLastChoice). If
//     that is still tied, the lowest candidate id goes (RuleLowestID).
//  5. The eliminated candidate is removed from every ballot; remaining ranks
//     are not renumbered.
//
// Exactly candidates−1 rounds run; the survivor is the winner. With a single
// candidate the winner is candidate 1 and the elimination order is empty.
//
// Ownership:
//
//	Resolve validates the store once, then works on a clone. The caller's
//	store is never modified; the stripped clone comes back as Result.Final.
//
// Options:
//
//   - WithLogger(l)     per-round Debug records.
//   - WithOnRound(fn)   hook after each elimination; an error aborts the run.
//
// Complexity:
//
//   - Time:   O(C · V · C) overall (C rounds, each scanning V ballots of ≤ C entries).
//   - Memory: O(V · C) for the working clone.
//
// Errors:
//
//   - ErrNilStore       store is nil
//   - ErrInvalidStore   store fails ranking.Store.Check
//   - any error returned by the OnRound hook
package irv
