// Package simulation wires votesim's pieces into one run.
//
// Run follows the legacy driver's control flow:
//
//	seed → social graph → scores → ranking.Store → validate
//	     → plurality baseline
//	     → Instant-Runoff   (irv.Resolve)      → welfare
//	     → strategic voting (strategic.Simulate) → plurality winner → welfare
//
// A single *rand.Rand seeded from Config.Seed is shared by the graph and
// score generators, graph first, so a seed reproduces the whole run. The two
// resolvers each work on their own clone of the generated store; the
// generated store itself is kept untouched in Outcome.Initial.
//
// Every run gets a UUIDv7 RunID, attached to each log record and to the
// rendered report.
package simulation
