package service_test

import (
	"testing"
	"time"

	"payroll-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestWeekBounds(t *testing.T) {
	testCases := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "Monday maps to its own week",
			input:     time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), // Monday
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "Wednesday maps back to Monday",
			input:     time.Date(2024, 1, 3, 23, 59, 59, 0, time.UTC),
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "Sunday still belongs to the preceding Monday",
			input:     time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "next Monday starts a new week",
			input:     time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "week spanning a month boundary",
			input:     time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), // Thursday
			wantStart: time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 4, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := service.WeekBounds(tc.input)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestAnchorToDate(t *testing.T) {
	scheduleDate := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("keeps time of day, replaces date", func(t *testing.T) {
		entry := time.Date(2023, 12, 25, 9, 15, 30, 0, time.UTC)
		anchored := service.AnchorToDate(scheduleDate, entry)
		assert.Equal(t, time.Date(2024, 1, 2, 9, 15, 30, 0, time.UTC), anchored)
	})

	t.Run("same date is unchanged", func(t *testing.T) {
		entry := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)
		assert.Equal(t, entry, service.AnchorToDate(scheduleDate, entry))
	})
}

func TestDurationSeconds(t *testing.T) {
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	t.Run("eight hour day", func(t *testing.T) {
		end := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)
		assert.Equal(t, int64(28800), service.DurationSeconds(start, end))
	})

	t.Run("one second interval", func(t *testing.T) {
		assert.Equal(t, int64(1), service.DurationSeconds(start, start.Add(time.Second)))
	})

	t.Run("sub-second remainder truncates", func(t *testing.T) {
		assert.Equal(t, int64(1), service.DurationSeconds(start, start.Add(1900*time.Millisecond)))
	})
}
