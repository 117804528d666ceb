// SPDX-License-Identifier: MIT
// Package: votesim/socialgraph
//
// graph.go — the Graph type, constructors and read-only queries.
//
// Contract:
//   • Rows and columns are voter indices in [0, n).
//   • Constructors deep-copy their input; callers keep ownership of their slices.
//   • Self-loops are stored if present but never observed.
//   • Queries never panic on a well-formed Graph; out-of-range indices read as
//     "no edge" (Observes) or empty (Neighbors), mirroring a voter with no peers.

package socialgraph

import "fmt"

const (
	methodNew        = "New"
	methodFromMatrix = "FromMatrix"
	methodFromBinary = "FromBinary"
	methodConnect    = "Connect"
	minVoters        = 1
)

// Graph is a dense directed adjacency matrix over voters.
type Graph struct {
	n   int      // number of voters (matrix dimension)
	adj [][]bool // adj[i][j]: voter i observes voter j
}

// New returns an edgeless graph over n voters.
// Complexity: O(n²) time and space.
func New(n int) (*Graph, error) {
	if n < minVoters {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodNew, n, minVoters, ErrTooFewVoters)
	}

	return &Graph{n: n, adj: allocate(n)}, nil
}

// FromMatrix copies a square boolean matrix into a new Graph.
// Complexity: O(n²).
func FromMatrix(m [][]bool) (*Graph, error) {
	n := len(m)
	if n < minVoters {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodFromMatrix, n, minVoters, ErrTooFewVoters)
	}

	g := &Graph{n: n, adj: allocate(n)}
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				methodFromMatrix, i, len(row), n, ErrNotSquare)
		}
		copy(g.adj[i], row)
	}

	return g, nil
}

// FromBinary copies a square {0,1} matrix into a new Graph. Generators and
// external fixtures tend to speak in integers; any other value is rejected.
// Complexity: O(n²).
func FromBinary(m [][]int) (*Graph, error) {
	n := len(m)
	if n < minVoters {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodFromBinary, n, minVoters, ErrTooFewVoters)
	}

	g := &Graph{n: n, adj: allocate(n)}
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				methodFromBinary, i, len(row), n, ErrNotSquare)
		}
		for j, cell := range row {
			switch cell {
			case 0:
			case 1:
				g.adj[i][j] = true
			default:
				return nil, fmt.Errorf("%s: cell (%d,%d)=%d: %w", methodFromBinary, i, j, cell, ErrBadCell)
			}
		}
	}

	return g, nil
}

// Connect adds the edge i→j. Adding an existing edge is a no-op, and so is a
// self-loop in effect, since Observes ignores the diagonal.
func (g *Graph) Connect(i, j int) error {
	if !g.inRange(i) || !g.inRange(j) {
		return fmt.Errorf("%s: (%d,%d) with n=%d: %w", methodConnect, i, j, g.n, ErrVoterOutOfRange)
	}
	g.adj[i][j] = true

	return nil
}

// Voters returns the number of voters (matrix dimension).
func (g *Graph) Voters() int {
	return g.n
}

// Observes reports whether voter i sees voter j's first choice.
// The diagonal is always false regardless of what was stored.
func (g *Graph) Observes(i, j int) bool {
	if i == j || !g.inRange(i) || !g.inRange(j) {
		return false
	}

	return g.adj[i][j]
}

// Neighbors returns the voters i observes, in ascending index order.
// Complexity: O(n).
func (g *Graph) Neighbors(i int) []int {
	if !g.inRange(i) {
		return nil
	}

	out := make([]int, 0, defaultReserve)
	for j := 0; j < g.n; j++ {
		if g.Observes(i, j) {
			out = append(out, j)
		}
	}

	return out
}

// OutDegree returns how many voters i observes.
func (g *Graph) OutDegree(i int) int {
	if !g.inRange(i) {
		return 0
	}

	d := 0
	for j := 0; j < g.n; j++ {
		if g.Observes(i, j) {
			d++
		}
	}

	return d
}

// EdgeCount returns the number of observed (off-diagonal) edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for i := 0; i < g.n; i++ {
		total += g.OutDegree(i)
	}

	return total
}

// Matrix returns a {0,1} copy of the stored matrix, diagonal included as stored.
// This is the shape the connections report prints.
func (g *Graph) Matrix() [][]int {
	out := make([][]int, g.n)
	for i := range out {
		out[i] = make([]int, g.n)
		for j, on := range g.adj[i] {
			if on {
				out[i][j] = 1
			}
		}
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{n: g.n, adj: allocate(g.n)}
	for i := range g.adj {
		copy(c.adj[i], g.adj[i])
	}

	return c
}

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 8

func (g *Graph) inRange(i int) bool {
	return i >= 0 && i < g.n
}

// allocate returns an n×n false matrix backed by one contiguous slab.
func allocate(n int) [][]bool {
	slab := make([]bool, n*n)
	rows := make([][]bool, n)
	for i := range rows {
		rows[i] = slab[i*n : (i+1)*n : (i+1)*n]
	}

	return rows
}
