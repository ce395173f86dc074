package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shotbook/internal/domain"
	portsmocks "github.com/renato0307/shotbook/internal/ports/mocks"
)

func TestSuggest_RanksByRecency(t *testing.T) {
	reader := portsmocks.NewMockAttendanceReader(t)
	ids := []string{"a", "b", "c"}

	reader.EXPECT().LastPlayed(mock.Anything, ids).Return(map[string]domain.LastPlayedRecord{
		"a": {LastDate: "2024-05-01", Name: "Alice"},
		"b": {LastDate: "2024-05-09", Name: "Bob"},
	}, nil)
	reader.EXPECT().RecentCounts(mock.Anything, ids, "2024-04-11", "2024-05-11").
		Return(map[string]int{"a": 2, "b": 1, "c": 0}, nil)

	service := NewSuggestionService(reader, fixedClock)

	result, err := service.Suggest(context.Background(), SuggestRequest{
		Candidates:   []domain.Participant{{ID: "a"}, {ID: "b"}, {ID: "c", Name: "Carol"}},
		LookbackDays: 30,
		Slots:        4,
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-05-11", result.Today)
	assert.Equal(t, "2024-04-11", result.LookbackFrom)
	assert.Equal(t, 3, result.Considered)
	require.Len(t, result.Ranking, 3)

	assert.Equal(t, "Carol", result.Ranking[0].ParticipantName)
	assert.Nil(t, result.Ranking[0].DaysSinceLastPlayed)
	assert.Equal(t, "Alice", result.Ranking[1].ParticipantName)
	assert.Equal(t, 10, *result.Ranking[1].DaysSinceLastPlayed)
	assert.Equal(t, 2, result.Ranking[1].RecentSessionCount)
	assert.Equal(t, "Bob", result.Ranking[2].ParticipantName)
}

func TestSuggest_ExplicitTodayAndIgnore(t *testing.T) {
	reader := portsmocks.NewMockAttendanceReader(t)
	ids := []string{"a", "b"}

	reader.EXPECT().LastPlayed(mock.Anything, ids).Return(map[string]domain.LastPlayedRecord{
		"a": {LastDate: "2024-01-01", Name: "Alice"},
		"b": {LastDate: "2024-01-09", Name: "Bob"},
	}, nil)
	reader.EXPECT().RecentCounts(mock.Anything, ids, "2024-01-03", "2024-01-10").
		Return(map[string]int{"a": 0, "b": 1}, nil)

	service := NewSuggestionService(reader, fixedClock)

	result, err := service.Suggest(context.Background(), SuggestRequest{
		Candidates:   []domain.Participant{{ID: "a"}, {ID: "b"}},
		IgnoreDays:   5,
		LookbackDays: 7,
		Slots:        4,
		Today:        "2024-01-10",
	})

	require.NoError(t, err)
	require.Len(t, result.Ranking, 1)
	assert.Equal(t, "a", result.Ranking[0].ParticipantID)
}

func TestSuggest_UnknownNameFallsBack(t *testing.T) {
	reader := portsmocks.NewMockAttendanceReader(t)
	reader.EXPECT().LastPlayed(mock.Anything, []string{"42"}).Return(map[string]domain.LastPlayedRecord{}, nil)
	reader.EXPECT().RecentCounts(mock.Anything, []string{"42"}, mock.Anything, mock.Anything).Return(map[string]int{"42": 0}, nil)

	service := NewSuggestionService(reader, fixedClock)

	result, err := service.Suggest(context.Background(), SuggestRequest{
		Candidates: []domain.Participant{{ID: "42"}},
		Slots:      1,
	})

	require.NoError(t, err)
	assert.Equal(t, "user:42", result.Ranking[0].ParticipantName)
}

func TestSuggest_DuplicateCandidatesCollapsed(t *testing.T) {
	reader := portsmocks.NewMockAttendanceReader(t)
	reader.EXPECT().LastPlayed(mock.Anything, []string{"a"}).Return(nil, nil)
	reader.EXPECT().RecentCounts(mock.Anything, []string{"a"}, mock.Anything, mock.Anything).Return(map[string]int{"a": 0}, nil)

	service := NewSuggestionService(reader, fixedClock)

	result, err := service.Suggest(context.Background(), SuggestRequest{
		Candidates: []domain.Participant{{ID: "a"}, {ID: "a", Name: "Alice"}, {ID: ""}},
		Slots:      4,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Considered)
	assert.Equal(t, "Alice", result.Ranking[0].ParticipantName)
}

func TestSuggest_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  SuggestRequest
	}{
		{"no candidates", SuggestRequest{Slots: 4}},
		{"only empty ids", SuggestRequest{Candidates: []domain.Participant{{ID: ""}}, Slots: 4}},
		{"negative lookback", SuggestRequest{Candidates: []domain.Participant{{ID: "a"}}, LookbackDays: -1}},
		{"negative ignore", SuggestRequest{Candidates: []domain.Participant{{ID: "a"}}, IgnoreDays: -1}},
		{"invalid today", SuggestRequest{Candidates: []domain.Participant{{ID: "a"}}, Today: "2024-02-30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := portsmocks.NewMockAttendanceReader(t)
			service := NewSuggestionService(reader, fixedClock)

			_, err := service.Suggest(context.Background(), tt.req)

			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestSuggest_StoreFailure(t *testing.T) {
	reader := portsmocks.NewMockAttendanceReader(t)
	reader.EXPECT().LastPlayed(mock.Anything, mock.Anything).Return(nil, domain.NewStoreError("last played", errors.New("locked")))
	reader.EXPECT().RecentCounts(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(map[string]int{}, nil).Maybe()

	service := NewSuggestionService(reader, fixedClock)

	_, err := service.Suggest(context.Background(), SuggestRequest{
		Candidates: []domain.Participant{{ID: "a"}},
		Slots:      4,
	})

	require.Error(t, err)
	assert.True(t, domain.IsStore(err))
}
