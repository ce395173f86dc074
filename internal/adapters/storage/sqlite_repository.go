package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/shotbook/internal/domain"
	"github.com/renato0307/shotbook/internal/logging"
	"github.com/renato0307/shotbook/internal/ports"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// SQLRepository implements ports.AttendanceRepository using GORM
type SQLRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.AttendanceRepository = (*SQLRepository)(nil)

// gormLogger wraps the shotbook logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("SHOTBOOK_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and creates if needed) a SQLite database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Connection-level pragmas go in the DSN so every pooled connection gets them
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", dbPath)
	return open(sqlite.Open(dsn), DriverSQLite)
}

// NewPostgresRepository connects to a Postgres database
func NewPostgresRepository(dsn string) (*SQLRepository, error) {
	return open(postgres.Open(dsn), DriverPostgres)
}

// NewRepository opens the repository for the configured driver
func NewRepository(driver, dsn string) (*SQLRepository, error) {
	switch driver {
	case DriverSQLite, "":
		return NewSQLiteRepository(dsn)
	case DriverPostgres:
		return NewPostgresRepository(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func open(dialector gorm.Dialector, driver string) (*SQLRepository, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&ShotModel{}, &AttendanceModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Attendance store opened", "driver", driver)
	return &SQLRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithinTransaction implements AttendanceRepository.WithinTransaction
func (r *SQLRepository) WithinTransaction(ctx context.Context, fn func(w ports.AttendanceWriter) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SQLRepository{db: tx})
	})
	if err != nil {
		if domain.IsValidation(err) || domain.IsNotFound(err) || domain.IsStore(err) {
			return err
		}
		return domain.NewStoreError("transaction", err)
	}
	return nil
}

// CreateShot implements AttendanceWriter.CreateShot
func (r *SQLRepository) CreateShot(ctx context.Context, shot domain.NewShot) (int64, error) {
	if err := shot.Validate(); err != nil {
		return 0, err
	}

	model := newShotToModel(shot)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		return 0, domain.NewStoreError("create shot", err)
	}

	logging.Logger.Debug("Shot created", "id", model.ID, "date", model.ShotDate)
	return model.ID, nil
}

// RecordAttendance implements AttendanceWriter.RecordAttendance.
// A duplicate (shot, participant) pair is ignored.
func (r *SQLRepository) RecordAttendance(ctx context.Context, shotID int64, participantID, participantName string) error {
	model := AttendanceModel{
		PlayerID:   participantID,
		PlayerName: participantName,
		ShotID:     shotID,
	}
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model).Error
	}, 3)
	if err != nil {
		return domain.NewStoreError("record attendance", err)
	}
	return nil
}

// DeleteShot implements AttendanceWriter.DeleteShot
func (r *SQLRepository) DeleteShot(ctx context.Context, id int64) error {
	var affected int64
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// Cascade is declared on the foreign key; deleting the rows here as
			// well keeps the behavior identical on databases with FKs disabled
			if err := tx.Where("shot_id = ?", id).Delete(&AttendanceModel{}).Error; err != nil {
				return err
			}
			result := tx.Where("id = ?", id).Delete(&ShotModel{})
			affected = result.RowsAffected
			return result.Error
		})
	}, 3)
	if err != nil {
		return domain.NewStoreError("delete shot", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("shot", fmt.Sprintf("%d", id))
	}
	return nil
}

// GetShot implements AttendanceReader.GetShot
func (r *SQLRepository) GetShot(ctx context.Context, id int64) (*domain.Shot, error) {
	var model ShotModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Attendance", func(db *gorm.DB) *gorm.DB {
				return db.Order("player_name ASC")
			}).
			Where("id = ?", id).
			First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("shot", fmt.Sprintf("%d", id))
		}
		return nil, domain.NewStoreError("get shot", err)
	}

	shot := shotModelToDomain(model)
	return &shot, nil
}

// ListShots implements AttendanceReader.ListShots, newest first
func (r *SQLRepository) ListShots(ctx context.Context, from, to string) ([]domain.Shot, error) {
	if err := domain.ValidateRange(from, to); err != nil {
		return nil, err
	}

	var models []ShotModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Attendance", func(db *gorm.DB) *gorm.DB {
				return db.Order("player_name ASC")
			}).
			Where("shot_date BETWEEN ? AND ?", from, to).
			Order("shot_date DESC, id DESC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, domain.NewStoreError("list shots", err)
	}

	shots := make([]domain.Shot, len(models))
	for i, m := range models {
		shots[i] = shotModelToDomain(m)
	}
	return shots, nil
}

// AttendanceSummary implements AttendanceReader.AttendanceSummary
func (r *SQLRepository) AttendanceSummary(ctx context.Context, from, to string) ([]domain.ParticipantSummary, error) {
	if err := domain.ValidateRange(from, to); err != nil {
		return nil, err
	}

	var rows []summaryRow
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Table("attendance AS a").
			Select("a.player_id AS participant_id, COUNT(*) AS session_count, MAX(s.shot_date) AS last_date").
			Joins("JOIN shots s ON s.id = a.shot_id").
			Where("s.shot_date BETWEEN ? AND ?", from, to).
			Group("a.player_id").
			Order("session_count DESC, last_date DESC, participant_id ASC").
			Scan(&rows).Error
	}, 3)
	if err != nil {
		return nil, domain.NewStoreError("attendance summary", err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ParticipantID
	}
	latest, err := r.latestInRange(ctx, ids, from, to)
	if err != nil {
		return nil, err
	}

	summary := make([]domain.ParticipantSummary, len(rows))
	for i, row := range rows {
		summary[i] = domain.ParticipantSummary{
			LastDate:        row.LastDate,
			ParticipantID:   row.ParticipantID,
			ParticipantName: latest[row.ParticipantID].PlayerName,
			SessionCount:    row.SessionCount,
		}
	}
	return summary, nil
}

// LastPlayed implements AttendanceReader.LastPlayed. Participants who never
// played are absent from the result.
func (r *SQLRepository) LastPlayed(ctx context.Context, participantIDs []string) (map[string]domain.LastPlayedRecord, error) {
	latest, err := r.latestInRange(ctx, participantIDs, "", "")
	if err != nil {
		return nil, err
	}

	result := make(map[string]domain.LastPlayedRecord, len(latest))
	for id, row := range latest {
		result[id] = domain.LastPlayedRecord{LastDate: row.ShotDate, Name: row.PlayerName}
	}
	return result, nil
}

// RecentCounts implements AttendanceReader.RecentCounts. Every requested
// participant is present in the result, with zero when they did not play.
func (r *SQLRepository) RecentCounts(ctx context.Context, participantIDs []string, from, to string) (map[string]int, error) {
	if err := domain.ValidateRange(from, to); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(participantIDs))
	for _, id := range participantIDs {
		counts[id] = 0
	}
	if len(participantIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Table("attendance AS a").
			Select("a.player_id AS player_id, COUNT(*) AS session_count").
			Joins("JOIN shots s ON s.id = a.shot_id").
			Where("a.player_id IN ?", participantIDs).
			Where("s.shot_date BETWEEN ? AND ?", from, to).
			Group("a.player_id").
			Scan(&rows).Error
	}, 3)
	if err != nil {
		return nil, domain.NewStoreError("recent counts", err)
	}

	for _, row := range rows {
		counts[row.PlayerID] = row.SessionCount
	}
	return counts, nil
}

// latestInRange returns the most recent attendance row per participant.
// Empty from/to means the whole history.
func (r *SQLRepository) latestInRange(ctx context.Context, participantIDs []string, from, to string) (map[string]latestRow, error) {
	result := make(map[string]latestRow, len(participantIDs))
	if len(participantIDs) == 0 {
		return result, nil
	}

	var rows []latestRow
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).
			Table("attendance AS a").
			Select("a.player_id AS player_id, a.player_name AS player_name, s.shot_date AS shot_date").
			Joins("JOIN shots s ON s.id = a.shot_id").
			Where("a.player_id IN ?", participantIDs)
		if from != "" && to != "" {
			query = query.Where("s.shot_date BETWEEN ? AND ?", from, to)
		}
		return query.Order("s.shot_date DESC, s.id DESC").Scan(&rows).Error
	}, 3)
	if err != nil {
		return nil, domain.NewStoreError("last played", err)
	}

	for _, row := range rows {
		if _, seen := result[row.PlayerID]; !seen {
			result[row.PlayerID] = row
		}
	}
	return result, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			lastErr = err
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, lastErr)
}
