// SPDX-License-Identifier: MIT
// Package: votesim/builder
//
// impl_star.go - implementation of Star(hub).
//
// Canonical model:
//   - One influencer: every voter except hub observes hub; hub observes nobody.
//     Under strategic voting the whole population drifts to hub's first choice.
//
// Contract:
//   - 0 ≤ hub < n (else ErrInvalidHub).
//   - No RNG is consumed.
//
// Complexity:
//   - O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/votesim/socialgraph"
)

const methodStar = "Star"

// Star returns a Constructor in which every other voter observes hub.
func Star(hub int) Constructor {
	return func(g *socialgraph.Graph, _ builderConfig) error {
		n := g.Voters()
		if hub < 0 || hub >= n {
			return fmt.Errorf("%s: hub=%d with n=%d: %w", methodStar, hub, n, ErrInvalidHub)
		}

		for i := 0; i < n; i++ {
			if i == hub {
				continue
			}
			if err := g.Connect(i, hub); err != nil {
				return fmt.Errorf("%s: Connect(%d→%d): %v: %w", methodStar, i, hub, err, ErrConstructFailed)
			}
		}

		return nil
	}
}
