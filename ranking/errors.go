package ranking

import "errors"

// Sentinel errors for the ranking package. Branch with errors.Is.
var (
	// ErrTooFewVoters indicates a store over zero voters was requested.
	ErrTooFewVoters = errors.New("ranking: too few voters")

	// ErrTooFewCandidates indicates fewer than one candidate was requested.
	ErrTooFewCandidates = errors.New("ranking: too few candidates")

	// ErrNilScoreSource indicates New was called without a score generator.
	ErrNilScoreSource = errors.New("ranking: score source is nil")

	// ErrScoreCount indicates a generated score row has the wrong length.
	ErrScoreCount = errors.New("ranking: wrong number of scores")

	// ErrScoreOutOfRange indicates a score outside [MinScore, MaxScore] or NaN.
	ErrScoreOutOfRange = errors.New("ranking: score out of range")

	// ErrEntryCount indicates a ballot whose length differs from Candidates().
	ErrEntryCount = errors.New("ranking: wrong number of entries")

	// ErrDuplicateCandidate indicates a candidate id listed twice in one ballot.
	ErrDuplicateCandidate = errors.New("ranking: duplicate candidate")

	// ErrUnknownCandidate indicates a candidate id outside [1, Candidates()].
	ErrUnknownCandidate = errors.New("ranking: unknown candidate")

	// ErrVoterOutOfRange indicates a voter index outside [0, Voters()).
	ErrVoterOutOfRange = errors.New("ranking: voter index out of range")

	// ErrCandidateAbsent indicates the candidate has no entry in that ballot.
	ErrCandidateAbsent = errors.New("ranking: candidate absent from ballot")
)
