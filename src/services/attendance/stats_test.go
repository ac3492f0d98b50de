package attendance

import (
	"context"
	"testing"
	"time"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	data map[string]string
	sets int
	dels int
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]string{}} }

func (c *fakeCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := c.data[key]
	return v, ok
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) {
	c.data[key] = value
	c.sets++
}

func (c *fakeCache) Del(_ context.Context, keys ...string) {
	for _, k := range keys {
		delete(c.data, k)
	}
	c.dels++
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("computes working days and averages", func(t *testing.T) {
		store := newFakeStore()
		// March 2026 has 22 weekdays; one single-day holiday on a Monday
		store.holidays = []models.Holiday{{
			Name:     "Founders Day",
			FromDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			ToDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		}}
		svc := NewService(store, nil)

		alice := store.addStudent("Alice", 1)
		bob := store.addStudent("Bob", 2)

		markDays(t, svc, store, alice, 2026, time.March, map[int]string{
			3: models.AttendancePresent,
			4: models.AttendancePresent,
		})
		markDays(t, svc, store, bob, 2026, time.March, map[int]string{
			3: models.AttendancePresent,
			4: models.AttendanceAbsent,
		})

		stats, err := svc.GetStats(ctx, store.classID, store.sectionID, 3, 2026)
		require.NoError(t, err)

		assert.Equal(t, 21, stats.WorkingDays)
		assert.Equal(t, 2, stats.TotalStudents)
		// Alice 100%, Bob 50% -> 75%
		assert.Equal(t, 75.0, stats.AverageAttendance)

		require.Len(t, stats.DailyBreakdown, 2)
		assert.Equal(t, "2026-03-03", stats.DailyBreakdown[0].Date)
		assert.Equal(t, 2, stats.DailyBreakdown[0].Present)
		assert.Equal(t, "2026-03-04", stats.DailyBreakdown[1].Date)
		assert.Equal(t, 1, stats.DailyBreakdown[1].Present)
		assert.Equal(t, 1, stats.DailyBreakdown[1].Absent)
	})

	t.Run("empty month yields zeros", func(t *testing.T) {
		store := newFakeStore()
		store.addStudent("Alice", 1)
		svc := NewService(store, nil)

		stats, err := svc.GetStats(ctx, store.classID, store.sectionID, 4, 2026)
		require.NoError(t, err)
		assert.Equal(t, 0.0, stats.AverageAttendance)
		assert.Empty(t, stats.DailyBreakdown)
	})

	t.Run("rejects bad months", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, nil)

		_, err := svc.GetStats(ctx, store.classID, store.sectionID, 13, 2026)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("serves from cache and invalidates on marking", func(t *testing.T) {
		store := newFakeStore()
		cache := newFakeCache()
		svc := NewService(store, cache)
		alice := store.addStudent("Alice", 1)

		markDays(t, svc, store, alice, 2026, time.March, map[int]string{3: models.AttendancePresent})

		first, err := svc.GetStats(ctx, store.classID, store.sectionID, 3, 2026)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets)

		// second read comes from the cache, not another recompute
		second, err := svc.GetStats(ctx, store.classID, store.sectionID, 3, 2026)
		require.NoError(t, err)
		assert.Equal(t, first.AverageAttendance, second.AverageAttendance)
		assert.Equal(t, 1, cache.sets)

		// marking drops the cached month
		markDays(t, svc, store, alice, 2026, time.March, map[int]string{4: models.AttendanceAbsent})
		_, cached := cache.data[statsCacheKey(store.classID, store.sectionID, 3, 2026)]
		assert.False(t, cached)

		refreshed, err := svc.GetStats(ctx, store.classID, store.sectionID, 3, 2026)
		require.NoError(t, err)
		assert.Equal(t, 50.0, refreshed.AverageAttendance)
	})
}
