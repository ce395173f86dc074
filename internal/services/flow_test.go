package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shotbook/internal/config"
	"github.com/renato0307/shotbook/internal/domain"
	portsmocks "github.com/renato0307/shotbook/internal/ports/mocks"
)

var testDefaults = config.SuggestDefaults{
	IgnoreDays:   domain.DefaultIgnoreDays,
	LookbackDays: domain.DefaultLookbackDays,
	Slots:        domain.DefaultSlots,
}

func newTestFlowService(t *testing.T) (*FlowService, *portsmocks.MockAttendanceRepository, *StagingService) {
	repo := portsmocks.NewMockAttendanceRepository(t)
	staging := NewStagingService(0, fixedClock)
	flows := NewFlowService(
		staging,
		NewAttendanceService(repo, fixedClock),
		NewSuggestionService(repo, fixedClock),
		testDefaults,
		fixedClock,
	)
	return flows, repo, staging
}

func TestFlow_RequiresGM(t *testing.T) {
	flows, _, staging := newTestFlowService(t)

	_, err := flows.StartRecord(false, opKey, "2024-05-10", master)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = flows.StartSuggest(false, opKey, SuggestOptions{})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = flows.Select(false, opKey, []domain.Participant{{ID: "a"}})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = flows.Confirm(context.Background(), false, opKey, "op")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	assert.Zero(t, staging.Len())
}

func TestFlow_StartRecordValidation(t *testing.T) {
	flows, _, staging := newTestFlowService(t)

	_, err := flows.StartRecord(true, opKey, "2024-02-30", master)
	assert.True(t, domain.IsValidation(err))

	_, err = flows.StartRecord(true, opKey, "2024-05-10", domain.Participant{})
	assert.True(t, domain.IsValidation(err))

	assert.Zero(t, staging.Len())
}

func TestFlow_StartSuggestDefaults(t *testing.T) {
	flows, _, _ := newTestFlowService(t)
	slots := 2

	sel, err := flows.StartSuggest(true, opKey, SuggestOptions{Slots: &slots})

	require.NoError(t, err)
	assert.Equal(t, 2, sel.Params.Slots)
	assert.Equal(t, 30, sel.Params.LookbackDays)
	assert.Equal(t, 0, sel.Params.IgnoreDays)
}

func TestFlow_StartSuggestNegative(t *testing.T) {
	flows, _, _ := newTestFlowService(t)
	negative := -1

	_, err := flows.StartSuggest(true, opKey, SuggestOptions{IgnoreDays: &negative})
	assert.True(t, domain.IsValidation(err))

	_, err = flows.StartSuggest(true, opKey, SuggestOptions{LookbackDays: &negative})
	assert.True(t, domain.IsValidation(err))
}

func TestFlow_ConfirmRecord(t *testing.T) {
	flows, repo, staging := newTestFlowService(t)

	repo.EXPECT().WithinTransaction(mock.Anything, mock.Anything).RunAndReturn(runInline(repo))
	repo.EXPECT().CreateShot(mock.Anything, mock.MatchedBy(func(s domain.NewShot) bool {
		return s.CreatedByID == "op" && s.MasterID == "gm" && s.Date == "2024-05-10"
	})).Return(1, nil)
	repo.EXPECT().RecordAttendance(mock.Anything, int64(1), "a", "Alice").Return(nil)
	repo.EXPECT().GetShot(mock.Anything, int64(1)).Return(&domain.Shot{ID: 1}, nil)

	_, err := flows.StartRecord(true, opKey, "2024-05-10", master)
	require.NoError(t, err)
	_, err = flows.Select(true, opKey, []domain.Participant{{ID: "a", Name: "Alice"}, master})
	require.NoError(t, err)

	result, err := flows.Confirm(context.Background(), true, opKey, "op")

	require.NoError(t, err)
	assert.Equal(t, domain.FlowRecord, result.Kind)
	assert.Equal(t, int64(1), result.Shot.ID)
	assert.Zero(t, staging.Len())
}

func TestFlow_ConfirmSuggest(t *testing.T) {
	flows, repo, staging := newTestFlowService(t)

	repo.EXPECT().LastPlayed(mock.Anything, []string{"a", "b"}).Return(map[string]domain.LastPlayedRecord{
		"a": {LastDate: "2024-05-01", Name: "Alice"},
	}, nil)
	repo.EXPECT().RecentCounts(mock.Anything, []string{"a", "b"}, "2024-04-11", "2024-05-11").
		Return(map[string]int{"a": 1, "b": 0}, nil)

	_, err := flows.StartSuggest(true, opKey, SuggestOptions{})
	require.NoError(t, err)
	_, err = flows.Select(true, opKey, []domain.Participant{{ID: "b", Name: "Bob"}, {ID: "a", Name: "Alice"}})
	require.NoError(t, err)

	result, err := flows.Confirm(context.Background(), true, opKey, "op")

	require.NoError(t, err)
	assert.Equal(t, domain.FlowSuggest, result.Kind)
	require.Len(t, result.Suggestion.Ranking, 2)
	assert.Equal(t, "b", result.Suggestion.Ranking[0].ParticipantID)
	assert.Zero(t, staging.Len())
}

func TestFlow_ConfirmEmptySelectionKeepsIt(t *testing.T) {
	flows, _, staging := newTestFlowService(t)

	_, err := flows.StartRecord(true, opKey, "2024-05-10", master)
	require.NoError(t, err)

	_, err = flows.Confirm(context.Background(), true, opKey, "op")

	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, 1, staging.Len())
}

func TestFlow_ConfirmWithoutStart(t *testing.T) {
	flows, _, _ := newTestFlowService(t)

	_, err := flows.Confirm(context.Background(), true, opKey, "op")

	assert.True(t, domain.IsNotFound(err))
}

func TestFlow_StoreFailureRestoresSelection(t *testing.T) {
	flows, repo, staging := newTestFlowService(t)

	repo.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		Return(domain.NewStoreError("transaction", errors.New("database is locked")))

	started, err := flows.StartRecord(true, opKey, "2024-05-10", master)
	require.NoError(t, err)
	_, err = flows.Select(true, opKey, []domain.Participant{{ID: "a", Name: "Alice"}})
	require.NoError(t, err)

	_, err = flows.Confirm(context.Background(), true, opKey, "op")

	require.Error(t, err)
	assert.True(t, domain.IsStore(err))

	sel, err := staging.Get(opKey)
	require.NoError(t, err)
	assert.Equal(t, started.FlowID, sel.FlowID)
	assert.Equal(t, map[string]string{"a": "Alice"}, sel.Participants)
}

func TestFlow_ResetAndCancel(t *testing.T) {
	flows, _, _ := newTestFlowService(t)

	_, err := flows.StartRecord(true, opKey, "2024-05-10", master)
	require.NoError(t, err)
	_, err = flows.Select(true, opKey, []domain.Participant{{ID: "a"}})
	require.NoError(t, err)

	require.NoError(t, flows.Reset(opKey))
	sel, err := flows.Current(opKey)
	require.NoError(t, err)
	assert.Empty(t, sel.Participants)

	assert.True(t, flows.Cancel(opKey))
	assert.Zero(t, flows.Pending())
	_, err = flows.Current(opKey)
	assert.True(t, domain.IsNotFound(err))
}
