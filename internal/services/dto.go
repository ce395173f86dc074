package services

import "github.com/renato0307/shotbook/internal/domain"

// DefaultStatsWindowDays is the range used by stats when "from" is omitted
const DefaultStatsWindowDays = 30

// StatsResult is the attendance report over a resolved range
type StatsResult struct {
	From string
	Rows []domain.ParticipantSummary
	To   string
}

// SuggestRequest contains parameters for a suggestion.
// An empty Today means the current local date.
type SuggestRequest struct {
	Candidates   []domain.Participant
	IgnoreDays   int
	LookbackDays int
	Slots        int
	Today        string
}

// SuggestResult contains the ranking and the window it was computed over
type SuggestResult struct {
	Considered   int
	LookbackFrom string
	Ranking      []domain.RankedCandidate
	Request      SuggestRequest
	Today        string
}

// SuggestOptions are the operator's suggest parameters; nil means use the default
type SuggestOptions struct {
	IgnoreDays   *int
	LookbackDays *int
	Slots        *int
}

// ConfirmResult is the outcome of a flow's terminal step.
// Shot is set for record flows, Suggestion for suggest flows.
type ConfirmResult struct {
	Kind       domain.FlowKind
	Shot       *domain.Shot
	Suggestion *SuggestResult
}
