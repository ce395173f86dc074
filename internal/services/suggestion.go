package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/shotbook/internal/domain"
	"github.com/renato0307/shotbook/internal/logging"
	"github.com/renato0307/shotbook/internal/ports"
)

// SuggestionService ranks candidates by how much they deserve a slot
type SuggestionService struct {
	clock  domain.Clock
	reader ports.AttendanceReader
}

// NewSuggestionService creates a new SuggestionService
func NewSuggestionService(reader ports.AttendanceReader, clock domain.Clock) *SuggestionService {
	if clock == nil {
		clock = time.Now
	}
	return &SuggestionService{
		clock:  clock,
		reader: reader,
	}
}

// Suggest gathers each candidate's history and returns the priority ranking
func (s *SuggestionService) Suggest(ctx context.Context, req SuggestRequest) (*SuggestResult, error) {
	if req.LookbackDays < 0 {
		return nil, domain.NewValidationError("lookback_days", "must not be negative")
	}
	if req.IgnoreDays < 0 {
		return nil, domain.NewValidationError("ignore_days", "must not be negative")
	}

	candidates := uniqueCandidates(req.Candidates)
	if len(candidates) == 0 {
		return nil, domain.NewValidationError("candidates", "no candidates selected")
	}

	today := req.Today
	if today == "" {
		today = domain.TodayFrom(s.clock)
	}
	lookbackFrom, err := domain.MinusDays(today, req.LookbackDays)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	var (
		last   map[string]domain.LastPlayedRecord
		counts map[string]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		last, err = s.reader.LastPlayed(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.reader.RecentCounts(gctx, ids, lookbackFrom, today)
		return err
	})
	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to load candidate history", "error", err)
		return nil, fmt.Errorf("failed to load candidate history: %w", err)
	}

	stats := make([]domain.CandidateStats, len(candidates))
	for i, c := range candidates {
		st := domain.CandidateStats{
			Participant:        c,
			RecentSessionCount: counts[c.ID],
		}
		if rec, ok := last[c.ID]; ok {
			st.LastPlayed = domain.PlayedOn(rec.LastDate)
			if st.Participant.Name == "" {
				st.Participant.Name = rec.Name
			}
		}
		stats[i] = st
	}

	ranking, err := domain.RankCandidates(stats, domain.RankParams{
		IgnoreDays: req.IgnoreDays,
		Slots:      req.Slots,
		Today:      today,
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Suggestion computed",
		"candidates", len(candidates),
		"ranked", len(ranking),
		"slots", req.Slots,
		"lookback_days", req.LookbackDays,
		"ignore_days", req.IgnoreDays)

	req.Candidates = candidates
	return &SuggestResult{
		Considered:   len(candidates),
		LookbackFrom: lookbackFrom,
		Ranking:      ranking,
		Request:      req,
		Today:        today,
	}, nil
}

// uniqueCandidates drops empty ids and collapses duplicates, keeping the first
// non-empty name seen for each id
func uniqueCandidates(in []domain.Participant) []domain.Participant {
	out := make([]domain.Participant, 0, len(in))
	index := make(map[string]int, len(in))
	for _, p := range in {
		if p.ID == "" {
			continue
		}
		if i, ok := index[p.ID]; ok {
			if out[i].Name == "" {
				out[i].Name = p.Name
			}
			continue
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}
