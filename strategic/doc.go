// Package strategic simulates network-influenced strategic voting.
//
// Each voter watches the current first choices of the voters it observes in a
// socialgraph.Graph and adopts the most popular one, promoting that candidate
// to the front of its ballot. Rounds repeat until a full round produces no
// change, which is a local fixed point of the update rule, not a global
// equilibrium.
//
// Update rule for voter i:
//
//	popularity[c] = |{ j : i observes j, first(j) = c }|
//	most popular  = argmax popularity, lowest candidate id on ties
//
// A voter with no observed neighbours never changes. If the most popular
// candidate differs from i's current first choice, i's entry for it moves to
// index 0; the relative order of every other entry is preserved and ranks
// keep their sincere values.
//
// Round semantics (WithSemantics):
//
//   - EarlyBreak (default): voters are scanned in index order against live
//     first choices; the first voter that changes ends the round. Every round
//     therefore records 0 or 1 change.
//   - Batched: every voter decides against the first choices as they stood at
//     the start of the round; all decisions are committed together.
//
// Termination:
//
//	A round with zero changes ends the simulation (Converged = true). The
//	update rule has no static termination proof, so rounds are capped at
//	WithMaxRounds (default 10 × voters). Hitting the cap returns the partial
//	Result with Converged = false and an error wrapping ErrNotConverged.
//
// Ownership:
//
//	Simulate validates the store, then works on a clone returned as
//	Result.Final. The graph is only read.
//
// Options:
//
//   - WithContext(ctx)      checked once per round.
//   - WithLogger(l)         per-round Debug, per-switch Trace, cap Warn.
//   - WithOnRound(fn)       hook after each round; an error aborts the run.
//   - WithMaxRounds(n)      round cap, n ≥ 1.
//   - WithSemantics(s)      EarlyBreak or Batched.
//
// Complexity:
//
//   - EarlyBreak round: O(k · V) for the k voters scanned before a change.
//   - Batched round:    O(V²) reads plus O(V · C) promotions.
//
// Errors:
//
//   - ErrNilGraph, ErrNilStore
//   - ErrInvalidStore       store fails ranking.Store.Check
//   - ErrSizeMismatch       graph and store disagree on the voter count
//   - ErrNotConverged       round cap reached
//   - context.Canceled / context.DeadlineExceeded
//   - any error returned by the OnRound hook
package strategic
