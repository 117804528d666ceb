// SPDX-License-Identifier: MIT
// Package: votesim/builder
//
// impl_cycle.go — implementation of Ring(k).
//
// Canonical model:
//   - Directed ring lattice: voter i observes its k successors
//     (i+1)%n, ..., (i+k)%n. k = 1 is the simple cycle C_n.
//
// Contract:
//   - 1 ≤ k < n (else ErrInvalidDegree).
//   - No RNG is consumed.
//
// Complexity:
//   - O(n·k) edges, emitted i asc, then step asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/votesim/socialgraph"
)

const methodRing = "Ring"

// Ring returns a Constructor in which each voter observes its next k voters.
func Ring(k int) Constructor {
	return func(g *socialgraph.Graph, _ builderConfig) error {
		n := g.Voters()
		if k < 1 || k >= n {
			return fmt.Errorf("%s: k must be in [1,%d), got %d: %w", methodRing, n, k, ErrInvalidDegree)
		}

		for i := 0; i < n; i++ {
			for step := 1; step <= k; step++ {
				j := (i + step) % n
				if err := g.Connect(i, j); err != nil {
					return fmt.Errorf("%s: Connect(%d→%d): %v: %w", methodRing, i, j, err, ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
