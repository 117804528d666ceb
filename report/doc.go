// Package report renders simulation outcomes for people and for machines.
//
// The text form keeps the legacy console layout for the electorate:
//
//	CONNECTIONS
//	     Alice 0 1 0
//	...
//	CANDIDATE Rankings
//	Alice  [1, 100.0, 1][2, 66.7, 2][3, 33.3, 3] ORDER [1, 2, 3]
//
// followed by one block per resolver. Ranking entries are printed in
// candidate-id order as [candidate, score, rank]; ORDER lists the declared
// preference order. The JSON form is the Outcome itself, indented.
package report
