// Package welfare measures how far an election outcome sits from voters'
// preferences ("social welfare loss") and finds the plurality winner.
//
// Every function is pure: the store is only read.
//
// Regret formulas, summed over voters:
//
//	cardinal = |score(first choice) − score(winner)|
//	ordinal  = |rank(first choice)  − rank(winner)|
//
// SocialWelfare compares against each voter's current first choice. When the
// winner has no entry left in a voter's ballot (Instant-Runoff strips
// eliminated candidates) the winner's score and rank read as 0. This is a
// designed degenerate case, not an error.
//
// SocialWelfareFromInitial compares against each voter's originally recorded
// first choice and skips the voter entirely if either that choice or the
// winner is missing from the current ballot.
//
// PluralityWinner tallies current first choices and breaks ties by the lowest
// candidate id.
//
// Ranks are the sincere ranks carried by ranking.Entry, so after strategic
// promotion a voter's declared first choice still reports its true rank.
package welfare
