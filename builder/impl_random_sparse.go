// SPDX-License-Identifier: MIT
// Package: votesim/builder
//
// impl_random_sparse.go — implementation of RandomSparse(p).
//
// Canonical model:
//   - Erdős–Rényi-like directed generator: every ordered pair (i,j), i≠j, is
//     linked independently with probability p.
//   - p = 0.5 reproduces the i.i.d. uniform {0,1} connection matrix.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trial order: i asc, then j asc, skipping j == i. One Float64 draw per trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/votesim/socialgraph"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor linking each ordered voter pair with probability p.
func RandomSparse(p float64) Constructor {
	return func(g *socialgraph.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		n := g.Voters()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				var link bool
				if cfg.rng == nil {
					link = p == probMax
				} else {
					link = cfg.rng.Float64() < p
				}
				if !link {
					continue
				}
				if err := g.Connect(i, j); err != nil {
					return fmt.Errorf("%s: Connect(%d→%d): %v: %w", methodRandomSparse, i, j, err, ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
