// SPDX-License-Identifier: MIT
// Package: votesim/builder
//
// impl_random_regular.go — implementation of RandomRegular(d).
//
// Canonical model:
//   - Directed d-out-regular graph: every voter observes exactly d distinct
//     other voters, chosen uniformly without replacement. In-degrees vary.
//
// Contract:
//   - 0 ≤ d < n (else ErrInvalidDegree).
//   - cfg.rng must be non-nil when 0 < d (else ErrNeedRandSource).
//
// Complexity:
//   - O(n²) time (one permutation of the n-1 others per voter), O(n) scratch.
//
// Determinism:
//   - Voters in ascending order; one rng.Perm(n-1) per voter. Permutation
//     index k maps to voter k, or k+1 when k ≥ i, so i is never drawn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/votesim/socialgraph"
)

const methodRandomRegular = "RandomRegular"

// RandomRegular returns a Constructor in which every voter observes exactly d
// others.
func RandomRegular(d int) Constructor {
	return func(g *socialgraph.Graph, cfg builderConfig) error {
		n := g.Voters()
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrInvalidDegree)
		}
		if d == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for _, k := range cfg.rng.Perm(n - 1)[:d] {
				j := k
				if j >= i {
					j++
				}
				if err := g.Connect(i, j); err != nil {
					return fmt.Errorf("%s: Connect(%d→%d): %v: %w", methodRandomRegular, i, j, err, ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
