// SPDX-License-Identifier: MIT
// Package: votesim/socialgraph
//
// errors.go — sentinel errors for the socialgraph package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Call sites attach context with %w; messages here stay parameter-free.

package socialgraph

import "errors"

var (
	// ErrTooFewVoters indicates a graph was requested over fewer than one voter.
	ErrTooFewVoters = errors.New("socialgraph: too few voters")

	// ErrNotSquare indicates the input matrix is ragged or not n×n.
	ErrNotSquare = errors.New("socialgraph: matrix is not square")

	// ErrBadCell indicates a binary matrix cell outside {0,1}.
	ErrBadCell = errors.New("socialgraph: cell must be 0 or 1")

	// ErrVoterOutOfRange indicates a voter index outside [0,n).
	ErrVoterOutOfRange = errors.New("socialgraph: voter index out of range")
)
