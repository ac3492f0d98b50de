package attendance

import (
	"context"
	"testing"
	"time"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore keeps everything in maps, mimicking the unique-index upsert
// behavior of the mongo repo.
type fakeStore struct {
	classID   primitive.ObjectID
	sectionID primitive.ObjectID
	students  []models.Student
	daily     map[string]models.DailyAttendanceRecord // studentHex|date
	monthly   map[string]models.MonthlyAttendanceSummary
	holidays  []models.Holiday
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		classID:   primitive.NewObjectID(),
		sectionID: primitive.NewObjectID(),
		daily:     map[string]models.DailyAttendanceRecord{},
		monthly:   map[string]models.MonthlyAttendanceSummary{},
	}
}

func (f *fakeStore) addStudent(name string, rollNo int) primitive.ObjectID {
	st := models.Student{
		ID:        primitive.NewObjectID(),
		Name:      name,
		RollNo:    rollNo,
		ClassID:   f.classID,
		SectionID: f.sectionID,
		IsActive:  true,
	}
	f.students = append(f.students, st)
	return st.ID
}

func dailyKey(studentID primitive.ObjectID, date time.Time) string {
	return studentID.Hex() + "|" + date.Format("2006-01-02")
}

func (f *fakeStore) SectionInClass(_ context.Context, classID, sectionID primitive.ObjectID) (bool, error) {
	return classID == f.classID && sectionID == f.sectionID, nil
}

func (f *fakeStore) StudentsBySection(_ context.Context, classID, sectionID primitive.ObjectID) ([]models.Student, error) {
	if classID != f.classID || sectionID != f.sectionID {
		return nil, nil
	}
	return f.students, nil
}

func (f *fakeStore) UpsertDaily(_ context.Context, rec *models.DailyAttendanceRecord) error {
	key := dailyKey(rec.StudentID, rec.Date)
	if old, ok := f.daily[key]; ok {
		rec.ID = old.ID
	} else {
		rec.ID = primitive.NewObjectID()
	}
	f.daily[key] = *rec
	return nil
}

func (f *fakeStore) DailyByStudentRange(_ context.Context, studentID primitive.ObjectID, from, to time.Time) ([]models.DailyAttendanceRecord, error) {
	var out []models.DailyAttendanceRecord
	for _, r := range f.daily {
		if r.StudentID == studentID && !r.Date.Before(from) && r.Date.Before(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) DailyBySectionRange(_ context.Context, classID, sectionID primitive.ObjectID, from, to time.Time) ([]models.DailyAttendanceRecord, error) {
	var out []models.DailyAttendanceRecord
	for _, r := range f.daily {
		if r.ClassID == classID && r.SectionID == sectionID && !r.Date.Before(from) && r.Date.Before(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) UpsertMonthly(_ context.Context, sum *models.MonthlyAttendanceSummary) error {
	key := sum.StudentID.Hex() + "|" + sum.Month.Format("2006-01")
	if old, ok := f.monthly[key]; ok {
		sum.ID = old.ID
	} else {
		sum.ID = primitive.NewObjectID()
	}
	f.monthly[key] = *sum
	return nil
}

func (f *fakeStore) MonthlyByStudentYear(_ context.Context, studentID primitive.ObjectID, year int) ([]models.MonthlyAttendanceSummary, error) {
	var out []models.MonthlyAttendanceSummary
	for _, s := range f.monthly {
		if s.StudentID == studentID && s.Year == year {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) HolidaysIntersecting(_ context.Context, _, _ time.Time) ([]models.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeStore) monthlyOf(studentID primitive.ObjectID, month time.Time) (models.MonthlyAttendanceSummary, bool) {
	s, ok := f.monthly[studentID.Hex()+"|"+month.Format("2006-01")]
	return s, ok
}

func markDays(t *testing.T, svc *Service, store *fakeStore, studentID primitive.ObjectID, year int, month time.Month, statuses map[int]string) {
	t.Helper()
	for dayNum, status := range statuses {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
		_, err := svc.MarkDaily(context.Background(), store.classID, store.sectionID, date,
			primitive.NewObjectID(), []MarkEntry{{StudentID: studentID, Status: status}})
		require.NoError(t, err)
	}
}

func TestMarkDaily(t *testing.T) {
	ctx := context.Background()

	t.Run("marks and rolls up the month", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, nil)
		studentID := store.addStudent("Alice", 1)

		// March 2026 weekdays, first 20 of them
		weekdays := []int{2, 3, 4, 5, 6, 9, 10, 11, 12, 13, 16, 17, 18, 19, 20, 23, 24, 25, 26, 27}
		statuses := map[int]string{}
		for _, d := range weekdays[:18] {
			statuses[d] = models.AttendancePresent
		}
		for _, d := range weekdays[18:] {
			statuses[d] = models.AttendanceAbsent
		}
		markDays(t, svc, store, studentID, 2026, time.March, statuses)

		sum, ok := store.monthlyOf(studentID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		require.True(t, ok)
		assert.Equal(t, 18, sum.PresentCount)
		assert.Equal(t, 2, sum.AbsentCount)
		assert.Equal(t, 90.0, sum.Percentage)
	})

	t.Run("late and half day count as present", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, nil)
		studentID := store.addStudent("Bob", 2)

		markDays(t, svc, store, studentID, 2026, time.March, map[int]string{
			2: models.AttendanceLate,
			3: models.AttendanceHalfDay,
			4: models.AttendanceExcused,
		})

		sum, ok := store.monthlyOf(studentID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		require.True(t, ok)
		assert.Equal(t, 2, sum.PresentCount)
		assert.Equal(t, 1, sum.AbsentCount)
	})

	t.Run("remarking the same day updates not duplicates", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, nil)
		studentID := store.addStudent("Carol", 3)
		date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

		for _, status := range []string{models.AttendanceAbsent, models.AttendancePresent} {
			_, err := svc.MarkDaily(ctx, store.classID, store.sectionID, date,
				primitive.NewObjectID(), []MarkEntry{{StudentID: studentID, Status: status}})
			require.NoError(t, err)
		}

		assert.Len(t, store.daily, 1)
		sum, ok := store.monthlyOf(studentID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		require.True(t, ok)
		assert.Equal(t, 1, sum.PresentCount)
		assert.Equal(t, 0, sum.AbsentCount)
		assert.Equal(t, 100.0, sum.Percentage)
	})

	t.Run("skips unknown students and bad statuses", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, nil)
		studentID := store.addStudent("Dave", 4)
		outsider := primitive.NewObjectID()

		result, err := svc.MarkDaily(ctx, store.classID, store.sectionID,
			time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), primitive.NewObjectID(),
			[]MarkEntry{
				{StudentID: studentID, Status: models.AttendancePresent},
				{StudentID: outsider, Status: models.AttendancePresent},
				{StudentID: studentID, Status: "SLEEPING"},
			})
		require.NoError(t, err)

		assert.Len(t, result.Applied, 1)
		require.Len(t, result.Skipped, 2)
		assert.Equal(t, outsider, result.Skipped[0].StudentID)
	})

	t.Run("rejects weekends", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, nil)
		studentID := store.addStudent("Frank", 6)

		// 2026-03-07 is a Saturday
		_, err := svc.MarkDaily(ctx, store.classID, store.sectionID,
			time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), primitive.NewObjectID(),
			[]MarkEntry{{StudentID: studentID, Status: models.AttendancePresent}})
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Empty(t, store.daily)
		assert.Empty(t, store.monthly)
	})

	t.Run("rejects holidays", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, nil)
		studentID := store.addStudent("Grace", 7)
		store.holidays = []models.Holiday{{
			Name:     "Founders Day",
			FromDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			ToDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		}}

		_, err := svc.MarkDaily(ctx, store.classID, store.sectionID,
			time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), primitive.NewObjectID(),
			[]MarkEntry{{StudentID: studentID, Status: models.AttendancePresent}})
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Empty(t, store.daily)
	})

	t.Run("monthly counts never exceed working days", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, nil)
		studentID := store.addStudent("Heidi", 8)

		// mark every calendar day of March 2026; only the 22 weekdays stick
		for d := 1; d <= 31; d++ {
			_, err := svc.MarkDaily(ctx, store.classID, store.sectionID,
				time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC), primitive.NewObjectID(),
				[]MarkEntry{{StudentID: studentID, Status: models.AttendancePresent}})
			if err != nil {
				assert.ErrorIs(t, err, errs.ErrValidation)
			}
		}

		assert.Len(t, store.daily, 22)
		sum, ok := store.monthlyOf(studentID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		require.True(t, ok)
		assert.Equal(t, 22, sum.PresentCount)
		assert.Equal(t, 0, sum.AbsentCount)
	})

	t.Run("rejects empty batches", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, nil)

		_, err := svc.MarkDaily(ctx, store.classID, store.sectionID, time.Now(), primitive.NewObjectID(), nil)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("unknown section is not found", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, nil)
		studentID := store.addStudent("Eve", 5)

		_, err := svc.MarkDaily(ctx, store.classID, primitive.NewObjectID(),
			time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), primitive.NewObjectID(),
			[]MarkEntry{{StudentID: studentID, Status: models.AttendancePresent}})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestGetDaily(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)
	marked := store.addStudent("Alice", 1)
	unmarked := store.addStudent("Bob", 2)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err := svc.MarkDaily(context.Background(), store.classID, store.sectionID, date,
		primitive.NewObjectID(), []MarkEntry{{StudentID: marked, Status: models.AttendanceLate}})
	require.NoError(t, err)

	views, err := svc.GetDaily(context.Background(), store.classID, store.sectionID, date)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byID := map[primitive.ObjectID]DailyView{}
	for _, v := range views {
		byID[v.StudentID] = v
	}
	assert.Equal(t, models.AttendanceLate, byID[marked].Status)
	assert.True(t, byID[marked].Marked)

	// no record shows as ABSENT but is never persisted
	assert.Equal(t, models.AttendanceAbsent, byID[unmarked].Status)
	assert.False(t, byID[unmarked].Marked)
	assert.Len(t, store.daily, 1)

	_, ok := store.monthlyOf(unmarked, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok, "recompute covers every enrolled student")
}

func TestRecomputeMonthlyIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)
	studentID := store.addStudent("Alice", 1)
	ref := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	markDays(t, svc, store, studentID, 2026, time.March, map[int]string{
		2: models.AttendancePresent,
		3: models.AttendanceAbsent,
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.RecomputeMonthly(context.Background(), store.classID, store.sectionID, ref))
	}

	assert.Len(t, store.monthly, 1)
	sum, _ := store.monthlyOf(studentID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 50.0, sum.Percentage)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, percentage(0, 0), "no records means 0, not NaN")
	assert.Equal(t, 90.0, percentage(18, 2))
	assert.Equal(t, 66.67, percentage(2, 1), "rounded to 2 decimals")
}
