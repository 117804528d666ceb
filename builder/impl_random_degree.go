// SPDX-License-Identifier: MIT
// Package: votesim/builder
//
// impl_random_degree.go — implementation of RandomDegree().
//
// Canonical model (legacy simulator's connection generator):
//   - For each voter i in ascending order, draw k = round(U[0, n/2]) and make
//     k attempts; each attempt picks a target uniformly from [0,n).
//   - Attempts landing on i itself are dropped; repeated targets collapse, so
//     the realised out-degree is at most k.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - Per voter: one Float64 draw for k, then k Intn(n) draws.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/votesim/socialgraph"
)

const methodRandomDegree = "RandomDegree"

// RandomDegree returns a Constructor drawing a sparse directed graph whose
// per-voter attempt count is uniform on [0, n/2].
func RandomDegree() Constructor {
	return func(g *socialgraph.Graph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomDegree, ErrNeedRandSource)
		}

		n := g.Voters()
		half := float64(n) / 2
		for i := 0; i < n; i++ {
			k := int(math.Round(cfg.rng.Float64() * half))
			for a := 0; a < k; a++ {
				target := cfg.rng.Intn(n)
				if target == i {
					continue
				}
				if err := g.Connect(i, target); err != nil {
					return fmt.Errorf("%s: Connect(%d→%d): %v: %w", methodRandomDegree, i, target, err, ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
