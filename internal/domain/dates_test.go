package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"2024-05-10", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-04-31", false},
		{"2024-5-10", false},
		{"10-05-2024", false},
		{"2024-05-10T00:00:00Z", false},
		{"", false},
		{"abcd-ef-gh", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidDate(tt.input))
		})
	}
}

func TestTodayFrom(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local) }

	assert.Equal(t, "2024-05-10", TodayFrom(clock))
}

func TestMinusDays(t *testing.T) {
	tests := []struct {
		date     string
		n        int
		expected string
	}{
		{"2024-05-10", 0, "2024-05-10"},
		{"2024-05-10", 30, "2024-04-10"},
		{"2024-03-01", 1, "2024-02-29"},
		{"2024-01-01", 1, "2023-12-31"},
		{"2024-05-10", -5, "2024-05-15"},
	}

	for _, tt := range tests {
		got, err := MinusDays(tt.date, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "MinusDays(%s, %d)", tt.date, tt.n)
	}
}

func TestMinusDays_InvalidDate(t *testing.T) {
	_, err := MinusDays("2024-02-30", 1)

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"2024-05-10", "2024-05-10", 0},
		{"2024-05-01", "2024-05-10", 9},
		{"2024-05-10", "2024-05-01", -9},
		{"2024-02-28", "2024-03-01", 2},
		{"2023-12-31", "2024-01-01", 1},
		// crosses a DST change in most zones; UTC arithmetic is unaffected
		{"2024-03-30", "2024-04-02", 3},
	}

	for _, tt := range tests {
		got, err := DaysBetween(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "DaysBetween(%s, %s)", tt.a, tt.b)
	}
}

func TestDaysBetween_InverseOfMinusDays(t *testing.T) {
	for _, n := range []int{0, 1, 7, 30, 365, 1000} {
		from, err := MinusDays("2024-05-10", n)
		require.NoError(t, err)

		forward, err := DaysBetween(from, "2024-05-10")
		require.NoError(t, err)
		backward, err := DaysBetween("2024-05-10", from)
		require.NoError(t, err)

		assert.Equal(t, n, forward)
		assert.Equal(t, -n, backward)
	}
}

func TestDaysBetween_InvalidDate(t *testing.T) {
	_, err := DaysBetween("2024-05-10", "nope")

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange("2024-05-01", "2024-05-31"))
	assert.NoError(t, ValidateRange("2024-05-01", "2024-05-01"))

	err := ValidateRange("2024-06-01", "2024-05-01")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	err = ValidateRange("2024-06-31", "2024-07-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from")

	err = ValidateRange("2024-06-01", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to")
}
