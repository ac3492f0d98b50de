package holidays

import (
	"testing"
	"time"

	"Backend-EduSync/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(year int, month time.Month, dayNum int) time.Time {
	return time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
}

func TestExpand(t *testing.T) {
	t.Run("plain ranges are clipped to the window", func(t *testing.T) {
		hs := []models.Holiday{{Name: "Spring Break", FromDate: d(2026, 3, 28), ToDate: d(2026, 4, 5)}}

		out := Expand(hs, d(2026, 4, 1), d(2026, 4, 30))
		require.Len(t, out, 1)
		assert.Equal(t, d(2026, 4, 1), out[0].From)
		assert.Equal(t, d(2026, 4, 5), out[0].To)

		assert.Empty(t, Expand(hs, d(2026, 5, 1), d(2026, 5, 31)))
	})

	t.Run("yearly repeats the month and day every year", func(t *testing.T) {
		hs := []models.Holiday{{
			Name:              "National Day",
			FromDate:          d(2020, 8, 15),
			ToDate:            d(2020, 8, 16),
			IsRecurring:       true,
			RecurrencePattern: models.RecurrenceYearly,
		}}

		out := Expand(hs, d(2026, 1, 1), d(2027, 12, 31))
		require.Len(t, out, 2)
		assert.Equal(t, d(2026, 8, 15), out[0].From)
		assert.Equal(t, d(2026, 8, 16), out[0].To)
		assert.Equal(t, d(2027, 8, 15), out[1].From)
	})

	t.Run("yearly Feb 29 observes Feb 28 in non-leap years", func(t *testing.T) {
		hs := []models.Holiday{{
			Name:              "Leap Day",
			FromDate:          d(2024, 2, 29),
			ToDate:            d(2024, 2, 29),
			IsRecurring:       true,
			RecurrencePattern: models.RecurrenceYearly,
		}}

		out := Expand(hs, d(2026, 1, 1), d(2026, 12, 31))
		require.Len(t, out, 1)
		assert.Equal(t, d(2026, 2, 28), out[0].From)
		assert.Equal(t, d(2026, 2, 28), out[0].To)

		// leap years keep the real date
		out = Expand(hs, d(2028, 1, 1), d(2028, 12, 31))
		require.Len(t, out, 1)
		assert.Equal(t, d(2028, 2, 29), out[0].From)
	})

	t.Run("weekly emits every such weekday", func(t *testing.T) {
		hs := []models.Holiday{{
			Name:              "Staff Meeting",
			IsRecurring:       true,
			RecurrencePattern: "WEEKLY:WED",
		}}

		out := Expand(hs, d(2026, 3, 1), d(2026, 3, 31))
		require.Len(t, out, 4)
		for _, r := range out {
			assert.Equal(t, time.Wednesday, r.From.Weekday())
		}
	})

	t.Run("monthly nth weekday", func(t *testing.T) {
		hs := []models.Holiday{{
			Name:              "Second Saturday",
			IsRecurring:       true,
			RecurrencePattern: "MONTHLY:2:SAT",
		}}

		out := Expand(hs, d(2026, 3, 1), d(2026, 4, 30))
		require.Len(t, out, 2)
		assert.Equal(t, d(2026, 3, 14), out[0].From)
		assert.Equal(t, d(2026, 4, 11), out[1].From)
	})

	t.Run("n=5 clamps to the last occurrence", func(t *testing.T) {
		hs := []models.Holiday{{
			Name:              "Last Friday",
			IsRecurring:       true,
			RecurrencePattern: "MONTHLY:5:FRI",
		}}

		// February 2026 has only four Fridays; the 5th clamps to Feb 27
		out := Expand(hs, d(2026, 2, 1), d(2026, 2, 28))
		require.Len(t, out, 1)
		assert.Equal(t, d(2026, 2, 27), out[0].From)
	})

	t.Run("garbage patterns expand to nothing", func(t *testing.T) {
		for _, pattern := range []string{"DAILY", "WEEKLY:XYZ", "MONTHLY:0:MON", "MONTHLY:6:MON", "MONTHLY:2", ""} {
			hs := []models.Holiday{{Name: "Bad", IsRecurring: true, RecurrencePattern: pattern}}
			assert.Empty(t, Expand(hs, d(2026, 1, 1), d(2026, 12, 31)), pattern)
		}
	})
}

func TestWorkingDays(t *testing.T) {
	// March 2026: 22 weekdays, no holidays
	assert.Equal(t, 22, WorkingDays(2026, time.March, nil))

	t.Run("holidays on weekdays reduce the count", func(t *testing.T) {
		hs := []models.Holiday{{Name: "Break", FromDate: d(2026, 3, 2), ToDate: d(2026, 3, 4)}}
		assert.Equal(t, 19, WorkingDays(2026, time.March, hs))
	})

	t.Run("weekend holidays change nothing", func(t *testing.T) {
		hs := []models.Holiday{{Name: "Sunday Fair", FromDate: d(2026, 3, 1), ToDate: d(2026, 3, 1)}}
		assert.Equal(t, 22, WorkingDays(2026, time.March, hs))
	})

	t.Run("overlapping holidays do not double count", func(t *testing.T) {
		hs := []models.Holiday{
			{Name: "A", FromDate: d(2026, 3, 2), ToDate: d(2026, 3, 3)},
			{Name: "B", FromDate: d(2026, 3, 3), ToDate: d(2026, 3, 4)},
		}
		assert.Equal(t, 19, WorkingDays(2026, time.March, hs))
	})
}

func TestIsWorkingDay(t *testing.T) {
	hs := []models.Holiday{{Name: "Break", FromDate: d(2026, 3, 2), ToDate: d(2026, 3, 2)}}

	assert.False(t, IsWorkingDay(d(2026, 3, 1), hs), "Sunday")
	assert.False(t, IsWorkingDay(d(2026, 3, 2), hs), "holiday")
	assert.True(t, IsWorkingDay(d(2026, 3, 3), hs))
}
