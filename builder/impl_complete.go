// SPDX-License-Identifier: MIT
// Package: votesim/builder
//
// impl_complete.go — implementation of Complete().
//
// Contract:
//   • Every ordered pair (i,j), i≠j, is linked. No RNG is consumed.
//   • Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/votesim/socialgraph"
)

const methodComplete = "Complete"

// Complete returns a Constructor in which every voter observes every other voter.
func Complete() Constructor {
	return func(g *socialgraph.Graph, _ builderConfig) error {
		n := g.Voters()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := g.Connect(i, j); err != nil {
					return fmt.Errorf("%s: Connect(%d→%d): %v: %w", methodComplete, i, j, err, ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
