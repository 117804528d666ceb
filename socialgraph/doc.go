// Package socialgraph holds the directed "who observes whom" relation over voters.
//
// What:
//
//   - Graph is a square boolean adjacency matrix over voter indices 0..n-1.
//     Observes(i, j) == true means voter i sees voter j's current first choice.
//   - The relation need not be symmetric. Self-loops may be stored (FromMatrix
//     accepts whatever the caller hands in) but are never reported: a voter
//     does not observe itself.
//   - A Graph is built once per simulation run and only read afterwards.
//
// Construction:
//
//   - New(n)               empty graph over n voters (no edges)
//   - FromMatrix(m)        copy of a square [][]bool
//   - FromBinary(m)        copy of a square {0,1} [][]int, as produced by generators
//   - Connect(i, j)        add the edge i→j
//
// Queries:
//
//   - Observes(i, j), Neighbors(i), OutDegree(i), EdgeCount(), Matrix(), Clone()
//
// Complexity:
//
//   - Storage O(n²) bits held as [][]bool.
//   - Neighbors/OutDegree O(n) per voter; EdgeCount O(n²).
//
// Errors:
//
//   - ErrTooFewVoters    n < 1
//   - ErrNotSquare       ragged or non-square input matrix
//   - ErrBadCell         FromBinary cell other than 0 or 1
//   - ErrVoterOutOfRange index outside [0,n)
package socialgraph
