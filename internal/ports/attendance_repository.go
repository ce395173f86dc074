package ports

import (
	"context"

	"github.com/renato0307/shotbook/internal/domain"
)

// AttendanceReader queries recorded shots and attendance
type AttendanceReader interface {
	AttendanceSummary(ctx context.Context, from, to string) ([]domain.ParticipantSummary, error)
	GetShot(ctx context.Context, id int64) (*domain.Shot, error)
	LastPlayed(ctx context.Context, participantIDs []string) (map[string]domain.LastPlayedRecord, error)
	ListShots(ctx context.Context, from, to string) ([]domain.Shot, error)
	RecentCounts(ctx context.Context, participantIDs []string, from, to string) (map[string]int, error)
}

// AttendanceWriter records shots and attendance
type AttendanceWriter interface {
	CreateShot(ctx context.Context, shot domain.NewShot) (int64, error)
	DeleteShot(ctx context.Context, id int64) error
	RecordAttendance(ctx context.Context, shotID int64, participantID, participantName string) error
}

// AttendanceRepository is the composite interface
type AttendanceRepository interface {
	AttendanceReader
	AttendanceWriter
	// WithinTransaction runs fn against a writer bound to one transaction
	WithinTransaction(ctx context.Context, fn func(w AttendanceWriter) error) error
	Close() error
}
