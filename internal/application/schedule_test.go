package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock pins "now" for deterministic schedule tests.
type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

var practiceDays = []time.Weekday{time.Tuesday, time.Wednesday, time.Friday}

func newTestSchedule(now time.Time) *ScheduleService {
	return NewScheduleService(fakeClock{now: now}, time.UTC, practiceDays, 7)
}

func TestNextOccurrences(t *testing.T) {
	// Reference "now": Monday 2026-01-05. Practices land on Tue/Wed/Fri.
	monday := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected []string
	}{
		{
			name:     "scan starts tomorrow on a non-practice day",
			now:      monday,
			expected: []string{"2026-01-06", "2026-01-07", "2026-01-09", "2026-01-13", "2026-01-14", "2026-01-16"},
		},
		{
			name:     "today included before the cutoff hour",
			now:      time.Date(2026, 1, 6, 6, 59, 0, 0, time.UTC), // Tuesday 06:59
			expected: []string{"2026-01-06", "2026-01-07", "2026-01-09", "2026-01-13", "2026-01-14", "2026-01-16"},
		},
		{
			name:     "today excluded from the cutoff hour on",
			now:      time.Date(2026, 1, 6, 7, 0, 0, 0, time.UTC), // Tuesday 07:00
			expected: []string{"2026-01-07", "2026-01-09", "2026-01-13", "2026-01-14", "2026-01-16", "2026-01-20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestSchedule(tt.now).NextOccurrences(6)
			require.Len(t, got, 6)
			keys := make([]string, len(got))
			for i, occ := range got {
				keys[i] = occ.Key
			}
			assert.Equal(t, tt.expected, keys)
		})
	}
}

func TestNextOccurrencesProperties(t *testing.T) {
	s := newTestSchedule(time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC))
	allowed := map[time.Weekday]bool{time.Tuesday: true, time.Wednesday: true, time.Friday: true}

	for _, n := range []int{1, 6, 20} {
		got := s.NextOccurrences(n)
		require.Len(t, got, n)
		for i, occ := range got {
			assert.True(t, allowed[occ.Date.Weekday()], "weekday %s not in practice set", occ.Date.Weekday())
			assert.Equal(t, occ.Date.Format(DateKeyLayout), occ.Key)
			if i > 0 {
				assert.True(t, got[i-1].Date.Before(occ.Date), "dates must be strictly increasing")
			}
		}
	}
}

func TestFormatDateUsesConfiguredLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	s := NewScheduleService(fakeClock{}, loc, practiceDays, 7)

	// 01:00 UTC is still the previous day at UTC-5.
	key := s.FormatDate(time.Date(2026, 1, 6, 1, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-01-05", key)
}

func TestReminderDue(t *testing.T) {
	t.Run("due when tomorrow is a practice day", func(t *testing.T) {
		s := newTestSchedule(time.Date(2026, 1, 5, 19, 0, 0, 0, time.UTC)) // Monday evening
		occ, due := s.ReminderDue()
		require.True(t, due)
		assert.Equal(t, "2026-01-06", occ.Key)
		assert.Equal(t, "Tuesday", occ.Weekday())
	})

	t.Run("not due when tomorrow is not a practice day", func(t *testing.T) {
		s := newTestSchedule(time.Date(2026, 1, 9, 19, 0, 0, 0, time.UTC)) // Friday evening
		_, due := s.ReminderDue()
		assert.False(t, due)
	})

	t.Run("suppressed by cancellation, restored by double toggle", func(t *testing.T) {
		s := newTestSchedule(time.Date(2026, 1, 5, 19, 0, 0, 0, time.UTC))

		assert.True(t, s.Toggle("2026-01-06"))
		_, due := s.ReminderDue()
		assert.False(t, due)

		assert.False(t, s.Toggle("2026-01-06"))
		_, due = s.ReminderDue()
		assert.True(t, due)
	})
}

func TestToggleTracksMembership(t *testing.T) {
	s := newTestSchedule(time.Now())

	assert.False(t, s.IsCancelled("2026-02-03"))
	assert.True(t, s.Toggle("2026-02-03"))
	assert.True(t, s.IsCancelled("2026-02-03"))
	assert.False(t, s.Toggle("2026-02-03"))
	assert.False(t, s.IsCancelled("2026-02-03"))
}
