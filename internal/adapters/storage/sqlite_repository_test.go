package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shotbook/internal/domain"
	"github.com/renato0307/shotbook/internal/ports"
)

func newTestRepository(t *testing.T) *SQLRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "shots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func seedShot(t *testing.T, repo *SQLRepository, date string, participants ...domain.Participant) int64 {
	t.Helper()
	ctx := context.Background()
	id, err := repo.CreateShot(ctx, domain.NewShot{
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		CreatedByID: "op",
		Date:        date,
		MasterID:    "gm",
		MasterName:  "Greta",
	})
	require.NoError(t, err)
	for _, p := range participants {
		require.NoError(t, repo.RecordAttendance(ctx, id, p.ID, p.Name))
	}
	return id
}

var (
	alice = domain.Participant{ID: "a", Name: "Alice"}
	bob   = domain.Participant{ID: "b", Name: "Bob"}
	carol = domain.Participant{ID: "c", Name: "Carol"}
)

func TestCreateShot_AssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepository(t)

	first := seedShot(t, repo, "2024-05-01")
	second := seedShot(t, repo, "2024-05-02")

	assert.Positive(t, first)
	assert.Greater(t, second, first)
}

func TestCreateShot_InvalidDate(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.CreateShot(context.Background(), domain.NewShot{Date: "2024-02-30", MasterID: "gm"})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestRecordAttendance_DuplicateIsIgnored(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	id := seedShot(t, repo, "2024-05-01", alice)

	require.NoError(t, repo.RecordAttendance(ctx, id, alice.ID, alice.Name))
	require.NoError(t, repo.RecordAttendance(ctx, id, alice.ID, "Renamed"))

	shot, err := repo.GetShot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []domain.Participant{alice}, shot.Participants)
}

func TestGetShot(t *testing.T) {
	repo := newTestRepository(t)
	id := seedShot(t, repo, "2024-05-01", bob, alice)

	shot, err := repo.GetShot(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, shot.ID)
	assert.Equal(t, "2024-05-01", shot.Date)
	assert.Equal(t, "gm", shot.MasterID)
	assert.Equal(t, "Greta", shot.MasterName)
	assert.Equal(t, "op", shot.CreatedByID)
	assert.Equal(t, []domain.Participant{alice, bob}, shot.Participants)
}

func TestGetShot_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetShot(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestListShots_NewestFirstWithinRange(t *testing.T) {
	repo := newTestRepository(t)
	seedShot(t, repo, "2024-04-30", alice)
	may1 := seedShot(t, repo, "2024-05-01", alice)
	may3 := seedShot(t, repo, "2024-05-03", bob)
	seedShot(t, repo, "2024-06-01", carol)

	shots, err := repo.ListShots(context.Background(), "2024-05-01", "2024-05-31")

	require.NoError(t, err)
	require.Len(t, shots, 2)
	assert.Equal(t, may3, shots[0].ID)
	assert.Equal(t, may1, shots[1].ID)
	assert.Equal(t, []domain.Participant{bob}, shots[0].Participants)
}

func TestDeleteShot_CascadesAttendance(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	id := seedShot(t, repo, "2024-05-01", alice, bob)

	require.NoError(t, repo.DeleteShot(ctx, id))

	_, err := repo.GetShot(ctx, id)
	assert.True(t, domain.IsNotFound(err))

	summary, err := repo.AttendanceSummary(ctx, "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Empty(t, summary)

	var count int64
	require.NoError(t, repo.db.Model(&AttendanceModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteShot_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.DeleteShot(context.Background(), 7)

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestAttendanceSummary_EmptyStore(t *testing.T) {
	repo := newTestRepository(t)

	summary, err := repo.AttendanceSummary(context.Background(), "2024-01-01", "2024-12-31")

	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestAttendanceSummary_CountsAndOrder(t *testing.T) {
	repo := newTestRepository(t)
	seedShot(t, repo, "2024-05-01", alice, bob, carol)
	seedShot(t, repo, "2024-05-05", bob, carol)
	seedShot(t, repo, "2024-05-09", bob)
	// outside the range
	seedShot(t, repo, "2024-06-01", alice, alice)

	summary, err := repo.AttendanceSummary(context.Background(), "2024-05-01", "2024-05-31")

	require.NoError(t, err)
	assert.Equal(t, []domain.ParticipantSummary{
		{LastDate: "2024-05-09", ParticipantID: "b", ParticipantName: "Bob", SessionCount: 3},
		{LastDate: "2024-05-05", ParticipantID: "c", ParticipantName: "Carol", SessionCount: 2},
		{LastDate: "2024-05-01", ParticipantID: "a", ParticipantName: "Alice", SessionCount: 1},
	}, summary)
}

func TestAttendanceSummary_RangeIsInclusive(t *testing.T) {
	repo := newTestRepository(t)
	seedShot(t, repo, "2024-05-01", alice)
	seedShot(t, repo, "2024-05-31", bob)

	summary, err := repo.AttendanceSummary(context.Background(), "2024-05-01", "2024-05-31")

	require.NoError(t, err)
	assert.Len(t, summary, 2)
}

func TestAttendanceSummary_SameCountOrderedByLastDate(t *testing.T) {
	repo := newTestRepository(t)
	seedShot(t, repo, "2024-05-01", alice)
	seedShot(t, repo, "2024-05-03", bob)

	summary, err := repo.AttendanceSummary(context.Background(), "2024-05-01", "2024-05-31")

	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "b", summary[0].ParticipantID)
	assert.Equal(t, "a", summary[1].ParticipantID)
}

func TestAttendanceSummary_UsesLatestNameInRange(t *testing.T) {
	repo := newTestRepository(t)
	seedShot(t, repo, "2024-05-01", domain.Participant{ID: "a", Name: "Ally"})
	seedShot(t, repo, "2024-05-10", alice)

	summary, err := repo.AttendanceSummary(context.Background(), "2024-05-01", "2024-05-31")

	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "Alice", summary[0].ParticipantName)
	assert.Equal(t, 2, summary[0].SessionCount)
}

func TestAttendanceSummary_InvalidRange(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.AttendanceSummary(context.Background(), "2024-06-01", "2024-05-01")

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestLastPlayed(t *testing.T) {
	repo := newTestRepository(t)
	seedShot(t, repo, "2024-05-01", alice, bob)
	seedShot(t, repo, "2024-05-09", bob)

	last, err := repo.LastPlayed(context.Background(), []string{"a", "b", "c"})

	require.NoError(t, err)
	assert.Equal(t, map[string]domain.LastPlayedRecord{
		"a": {LastDate: "2024-05-01", Name: "Alice"},
		"b": {LastDate: "2024-05-09", Name: "Bob"},
	}, last)
}

func TestLastPlayed_NoIDs(t *testing.T) {
	repo := newTestRepository(t)

	last, err := repo.LastPlayed(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, last)
}

func TestRecentCounts_ZeroFilled(t *testing.T) {
	repo := newTestRepository(t)
	seedShot(t, repo, "2024-04-01", alice)
	seedShot(t, repo, "2024-05-01", alice, bob)
	seedShot(t, repo, "2024-05-09", bob)

	counts, err := repo.RecentCounts(context.Background(), []string{"a", "b", "c"}, "2024-04-11", "2024-05-11")

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 0}, counts)
}

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.WithinTransaction(ctx, func(w ports.AttendanceWriter) error {
		id, err := w.CreateShot(ctx, domain.NewShot{Date: "2024-05-01", MasterID: "gm", MasterName: "Greta"})
		if err != nil {
			return err
		}
		if err := w.RecordAttendance(ctx, id, alice.ID, alice.Name); err != nil {
			return err
		}
		return boom
	})

	require.Error(t, err)
	assert.True(t, domain.IsStore(err))
	assert.ErrorIs(t, err, boom)

	shots, err := repo.ListShots(ctx, "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Empty(t, shots)
}

func TestWithinTransaction_PassesDomainErrorsThrough(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.WithinTransaction(ctx, func(w ports.AttendanceWriter) error {
		_, err := w.CreateShot(ctx, domain.NewShot{Date: "bad", MasterID: "gm"})
		return err
	})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.False(t, domain.IsStore(err))
}

func TestNewRepository_UnsupportedDriver(t *testing.T) {
	_, err := NewRepository("mysql", "whatever")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}
