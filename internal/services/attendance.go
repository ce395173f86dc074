package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/renato0307/shotbook/internal/domain"
	"github.com/renato0307/shotbook/internal/logging"
	"github.com/renato0307/shotbook/internal/ports"
)

// AttendanceService records shots and reports attendance
type AttendanceService struct {
	clock domain.Clock
	repo  ports.AttendanceRepository
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(repo ports.AttendanceRepository, clock domain.Clock) *AttendanceService {
	if clock == nil {
		clock = time.Now
	}
	return &AttendanceService{
		clock: clock,
		repo:  repo,
	}
}

// RecordShot stores a shot and its participants in one transaction.
// The master is not recorded as a participant.
func (s *AttendanceService) RecordShot(ctx context.Context, shot domain.NewShot, participants []domain.Participant) (*domain.Shot, error) {
	if err := shot.Validate(); err != nil {
		return nil, err
	}
	if shot.CreatedAt.IsZero() {
		shot.CreatedAt = s.clock()
	}

	players := make([]domain.Participant, 0, len(participants))
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if p.ID == "" || p.ID == shot.MasterID || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		players = append(players, p)
	}
	if len(players) == 0 {
		return nil, domain.NewValidationError("participants", "no participants selected")
	}

	logging.Logger.Info("Recording shot",
		"date", shot.Date,
		"master", shot.MasterID,
		"participants", len(players))

	var shotID int64
	err := s.repo.WithinTransaction(ctx, func(w ports.AttendanceWriter) error {
		id, err := w.CreateShot(ctx, shot)
		if err != nil {
			return err
		}
		for _, p := range players {
			if err := w.RecordAttendance(ctx, id, p.ID, p.DisplayName()); err != nil {
				return err
			}
		}
		shotID = id
		return nil
	})
	if err != nil {
		logging.Logger.Error("Failed to record shot", "date", shot.Date, "error", err)
		return nil, fmt.Errorf("failed to record shot: %w", err)
	}

	logging.Logger.Info("Shot recorded", "id", shotID, "date", shot.Date)

	// The shot is committed from here on; a failed reload must not look like a failed write
	stored, err := s.repo.GetShot(ctx, shotID)
	if err != nil {
		logging.Logger.Warn("Failed to reload recorded shot, returning written values", "id", shotID, "error", err)
		return recordedShot(shotID, shot, players), nil
	}
	return stored, nil
}

func recordedShot(id int64, shot domain.NewShot, players []domain.Participant) *domain.Shot {
	participants := make([]domain.Participant, len(players))
	for i, p := range players {
		participants[i] = domain.Participant{ID: p.ID, Name: p.DisplayName()}
	}
	sort.Slice(participants, func(i, j int) bool { return participants[i].ID < participants[j].ID })

	return &domain.Shot{
		CreatedAt:    shot.CreatedAt,
		CreatedByID:  shot.CreatedByID,
		Date:         shot.Date,
		ID:           id,
		MasterID:     shot.MasterID,
		MasterName:   shot.MasterName,
		Participants: participants,
	}
}

// Stats returns the attendance summary. Empty "to" means today and empty
// "from" means DefaultStatsWindowDays before "to".
func (s *AttendanceService) Stats(ctx context.Context, from, to string) (*StatsResult, error) {
	from, to, err := s.resolveRange(from, to, DefaultStatsWindowDays)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.AttendanceSummary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance summary: %w", err)
	}

	logging.Logger.Debug("Attendance summary loaded", "from", from, "to", to, "rows", len(rows))
	return &StatsResult{From: from, Rows: rows, To: to}, nil
}

// ListShots returns shots in range, newest first, with the same defaults as Stats
func (s *AttendanceService) ListShots(ctx context.Context, from, to string) ([]domain.Shot, error) {
	from, to, err := s.resolveRange(from, to, DefaultStatsWindowDays)
	if err != nil {
		return nil, err
	}

	shots, err := s.repo.ListShots(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shots: %w", err)
	}
	return shots, nil
}

// GetShot returns one shot with its participants
func (s *AttendanceService) GetShot(ctx context.Context, id int64) (*domain.Shot, error) {
	shot, err := s.repo.GetShot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shot %d: %w", id, err)
	}
	return shot, nil
}

// DeleteShot removes a shot and its attendance
func (s *AttendanceService) DeleteShot(ctx context.Context, isGM bool, id int64) error {
	if !isGM {
		return domain.ErrPermissionDenied
	}

	logging.Logger.Info("Deleting shot", "id", id)
	if err := s.repo.DeleteShot(ctx, id); err != nil {
		logging.Logger.Error("Failed to delete shot", "id", id, "error", err)
		return fmt.Errorf("failed to delete shot %d: %w", id, err)
	}
	return nil
}

func (s *AttendanceService) resolveRange(from, to string, windowDays int) (string, string, error) {
	if to == "" {
		to = domain.TodayFrom(s.clock)
	}
	if from == "" {
		if !domain.IsValidDate(to) {
			return "", "", domain.NewValidationError("to", fmt.Sprintf("invalid date %q, use YYYY-MM-DD", to))
		}
		var err error
		from, err = domain.MinusDays(to, windowDays)
		if err != nil {
			return "", "", err
		}
	}
	if err := domain.ValidateRange(from, to); err != nil {
		return "", "", err
	}
	return from, to, nil
}
