package domain

import (
	"cmp"
	"slices"
)

// CandidateStats is the history of one candidate as gathered from the store
type CandidateStats struct {
	LastPlayed         LastPlayed
	Participant        Participant
	RecentSessionCount int
}

// RankParams controls filtering and selection. Today is the reference date.
type RankParams struct {
	IgnoreDays int
	Slots      int
	Today      string
}

// CandidateScore is a candidate with its derived recency statistics
type CandidateScore struct {
	DaysSinceLastPlayed int // meaningful only when LastPlayed.Valid
	LastPlayed          LastPlayed
	Participant         Participant
	RecentSessionCount  int
}

// NeverPlayed reports whether the candidate has no attendance at all
func (c CandidateScore) NeverPlayed() bool {
	return !c.LastPlayed.Valid
}

// RankedCandidate is one row of a suggestion
type RankedCandidate struct {
	DaysSinceLastPlayed *int
	LastPlayed          LastPlayed
	ParticipantID       string
	ParticipantName     string
	Rank                int
	RecentSessionCount  int
}

// ScoreCandidates derives days since last played for every candidate
func ScoreCandidates(stats []CandidateStats, today string) ([]CandidateScore, error) {
	scores := make([]CandidateScore, 0, len(stats))
	for _, st := range stats {
		score := CandidateScore{
			LastPlayed:         st.LastPlayed,
			Participant:        st.Participant,
			RecentSessionCount: st.RecentSessionCount,
		}
		if st.LastPlayed.Valid {
			days, err := DaysBetween(st.LastPlayed.Date, today)
			if err != nil {
				return nil, err
			}
			score.DaysSinceLastPlayed = days
		}
		scores = append(scores, score)
	}
	return scores, nil
}

// CompareScores orders candidates by priority: longer absence first (never
// played beats any date), then fewer recent shots, then display name.
// The participant id breaks ties between identical names.
func CompareScores(a, b CandidateScore) int {
	switch {
	case a.NeverPlayed() && !b.NeverPlayed():
		return -1
	case !a.NeverPlayed() && b.NeverPlayed():
		return 1
	case !a.NeverPlayed() && !b.NeverPlayed():
		if c := cmp.Compare(b.DaysSinceLastPlayed, a.DaysSinceLastPlayed); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(a.RecentSessionCount, b.RecentSessionCount); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Participant.DisplayName(), b.Participant.DisplayName()); c != 0 {
		return c
	}
	return cmp.Compare(a.Participant.ID, b.Participant.ID)
}

// RankCandidates filters out candidates who played within IgnoreDays, sorts
// the rest by priority and returns the first max(1, Slots).
func RankCandidates(stats []CandidateStats, params RankParams) ([]RankedCandidate, error) {
	if !IsValidDate(params.Today) {
		return nil, NewValidationError("today", "invalid reference date")
	}

	scores, err := ScoreCandidates(stats, params.Today)
	if err != nil {
		return nil, err
	}

	eligible := slices.DeleteFunc(scores, func(s CandidateScore) bool {
		return !s.NeverPlayed() && s.DaysSinceLastPlayed < params.IgnoreDays
	})
	slices.SortStableFunc(eligible, CompareScores)

	limit := max(1, params.Slots)
	if len(eligible) > limit {
		eligible = eligible[:limit]
	}

	ranked := make([]RankedCandidate, len(eligible))
	for i, s := range eligible {
		row := RankedCandidate{
			LastPlayed:         s.LastPlayed,
			ParticipantID:      s.Participant.ID,
			ParticipantName:    s.Participant.DisplayName(),
			Rank:               i + 1,
			RecentSessionCount: s.RecentSessionCount,
		}
		if !s.NeverPlayed() {
			days := s.DaysSinceLastPlayed
			row.DaysSinceLastPlayed = &days
		}
		ranked[i] = row
	}
	return ranked, nil
}
