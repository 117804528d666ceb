// Package builder generates the synthetic inputs a votesim run consumes:
// per-voter cardinal scores and the directed social graph between voters.
//
// It is the "generator" collaborator of the resolver core. Everything random
// flows through an explicit *rand.Rand supplied with WithSeed or WithRand, so
// the resolvers themselves stay deterministic functions of their inputs.
//
// Key components:
//
//   - Configuration primitives:
//     – BuilderOption:    a function that mutates builderConfig before use.
//     – builderConfig:    holds RNG, voter ID scheme and score function.
//   - Score distributions (ScoreFn implementations):
//     – NormalScoreFn:    N(mean, stddev) clipped to [0,100]; default N(50,20).
//     – UniformScoreFn:   U[min,max] within [0,100].
//     – ConstantScoreFn:  a fixed value.
//     – TenthsScoreFn:    round(U[0,100])/10, the legacy simulator's draw.
//   - Social graph constructors (Constructor implementations):
//     – RandomDegree:     per voter, round(U[0,n/2]) attempts to link to a
//     uniformly drawn peer; self-targets are dropped.
//     – RandomSparse(p):  each ordered pair i≠j linked independently with
//     probability p; p=0.5 gives the i.i.d. uniform {0,1} matrix.
//     – RandomRegular(d): every voter observes exactly d distinct peers.
//     – Ring(k):          voter i observes its k successors modulo n.
//     – Star(hub):        every voter observes hub; hub observes nobody.
//     – Complete:         every voter observes every other voter.
//   - Voter naming (IDFn implementations):
//     – DefaultIDFn, NameIDFn, SymbolNumberIDFn.
//
// Guarantees:
//
//   - Determinism: same options, seed and call order ⇒ identical outputs.
//   - Option constructors panic on meaningless inputs (nil RNG, inverted
//     ranges); constructors and Build* functions return sentinel errors and
//     never panic.
package builder
