package irv_test

import (
	"fmt"

	"github.com/katalvlaran/votesim/irv"
	"github.com/katalvlaran/votesim/ranking"
)

// ExampleResolve runs Instant-Runoff on a Condorcet cycle. Every candidate has
// one first-choice vote and one last-place mention, so the lowest id goes first.
func ExampleResolve() {
	s, err := ranking.FromPreferences(3, [][]int{
		{1, 2, 3},
		{2, 3, 1},
		{3, 1, 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := irv.Resolve(s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range res.Rounds {
		fmt.Printf("round %d: eliminate %d (%s)\n", r.Number, r.Eliminated, r.Rule)
	}
	fmt.Println("winner:", res.Winner)
	fmt.Println("order:", res.EliminationOrder)

	// Output:
	// round 1: eliminate 1 (lowest-id)
	// round 2: eliminate 3 (unique-minimum)
	// winner: 2
	// order: [1 3]
}
