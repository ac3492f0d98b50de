package reports

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	classes   []models.Class
	summaries map[primitive.ObjectID][]models.MonthlyAttendanceSummary
	names     map[primitive.ObjectID]string
	overalls  []models.OverallResult
	payments  []models.FeePayment
	exams     []models.ExamSchedule
	reports   []models.Report

	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		summaries: map[primitive.ObjectID][]models.MonthlyAttendanceSummary{},
		names:     map[primitive.ObjectID]string{},
	}
}

func (f *fakeStore) Classes(_ context.Context) ([]models.Class, error) { return f.classes, nil }

func (f *fakeStore) ClassByID(_ context.Context, id primitive.ObjectID) (*models.Class, error) {
	for _, c := range f.classes {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errs.NotFound("class")
}

func (f *fakeStore) MonthlySummariesByClass(_ context.Context, classID primitive.ObjectID, _, _ int) ([]models.MonthlyAttendanceSummary, error) {
	return f.summaries[classID], nil
}

func (f *fakeStore) OverallResults(_ context.Context, _, _ string) ([]models.OverallResult, error) {
	return f.overalls, nil
}

func (f *fakeStore) StudentNames(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return f.names, nil
}

func (f *fakeStore) SubjectNames(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return f.names, nil
}

func (f *fakeStore) FeePayments(_ context.Context, _, _ time.Time) ([]models.FeePayment, error) {
	return f.payments, nil
}

func (f *fakeStore) ExamSchedules(_ context.Context, _, _ string) ([]models.ExamSchedule, error) {
	return f.exams, nil
}

func (f *fakeStore) InsertReport(_ context.Context, r *models.Report) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	r.ID = primitive.NewObjectID()
	f.reports = append(f.reports, *r)
	return nil
}

func (f *fakeStore) ReportByID(_ context.Context, id primitive.ObjectID) (*models.Report, error) {
	for _, r := range f.reports {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, errs.NotFound("report")
}

func (f *fakeStore) RecentReports(_ context.Context, userID primitive.ObjectID, limit int) ([]models.Report, error) {
	var out []models.Report
	for i := len(f.reports) - 1; i >= 0 && len(out) < limit; i-- {
		if f.reports[i].UserID == userID {
			out = append(out, f.reports[i])
		}
	}
	return out, nil
}

// seedAttendance adds one class with two monthly summaries.
func (f *fakeStore) seedAttendance() {
	classID := primitive.NewObjectID()
	f.classes = []models.Class{{ID: classID, Name: "Grade 5"}}

	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()
	f.names[alice] = "Alice"
	f.names[bob] = "Bob"
	f.summaries[classID] = []models.MonthlyAttendanceSummary{
		{StudentID: alice, ClassID: classID, PresentCount: 18, AbsentCount: 2, Percentage: 90},
		{StudentID: bob, ClassID: classID, PresentCount: 10, AbsentCount: 10, Percentage: 50},
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("csv report round trip", func(t *testing.T) {
		store := newFakeStore()
		store.seedAttendance()
		svc := NewService(store, t.TempDir())
		userID := primitive.NewObjectID()

		report, err := svc.Generate(ctx, models.ReportAttendance, models.FormatCSV,
			Options{Month: 3, Year: 2026}, userID)
		require.NoError(t, err)

		assert.Equal(t, models.ReportAttendance, report.Type)
		assert.Equal(t, userID, report.UserID)
		assert.Equal(t, "/reports/attendance/"+report.FileName, report.DownloadURL)
		assert.Equal(t, ".csv", filepath.Ext(report.FileName))

		file, err := os.Open(report.FilePath)
		require.NoError(t, err)
		defer file.Close()

		rows, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3, "header plus one row per student")
		assert.Equal(t, []string{"Student", "Class", "Present", "Absent", "Percentage"}, rows[0])
		assert.Equal(t, []string{"Alice", "Grade 5", "18", "2", "90.00"}, rows[1])
	})

	t.Run("pdf and excel render without error", func(t *testing.T) {
		store := newFakeStore()
		store.seedAttendance()
		svc := NewService(store, t.TempDir())

		for _, format := range []string{models.FormatPDF, models.FormatExcel} {
			report, err := svc.Generate(ctx, models.ReportAttendance, format,
				Options{Month: 3, Year: 2026}, primitive.NewObjectID())
			require.NoError(t, err, format)

			info, err := os.Stat(report.FilePath)
			require.NoError(t, err, format)
			assert.Greater(t, info.Size(), int64(0), format)
		}
	})

	t.Run("unknown format and type are rejected", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, t.TempDir())

		_, err := svc.Generate(ctx, models.ReportAttendance, "docx", Options{}, primitive.NewObjectID())
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = svc.Generate(ctx, "gradebook", models.FormatCSV, Options{}, primitive.NewObjectID())
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("empty attendance data is a valid report", func(t *testing.T) {
		store := newFakeStore()
		store.classes = []models.Class{{ID: primitive.NewObjectID(), Name: "Grade 6"}}
		svc := NewService(store, t.TempDir())

		report, err := svc.Generate(ctx, models.ReportAttendance, models.FormatCSV,
			Options{Month: 3, Year: 2026}, primitive.NewObjectID())
		require.NoError(t, err)

		file, err := os.Open(report.FilePath)
		require.NoError(t, err)
		defer file.Close()
		rows, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 1, "header only")
	})

	t.Run("performance report needs year and term", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, t.TempDir())

		_, err := svc.Generate(ctx, models.ReportPerformance, models.FormatCSV, Options{}, primitive.NewObjectID())
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("failed persist leaves no file behind", func(t *testing.T) {
		store := newFakeStore()
		store.seedAttendance()
		store.insertErr = errors.New("mongo down")
		dir := t.TempDir()
		svc := NewService(store, dir)

		_, err := svc.Generate(ctx, models.ReportAttendance, models.FormatCSV,
			Options{Month: 3, Year: 2026}, primitive.NewObjectID())
		require.Error(t, err)

		entries, err := os.ReadDir(filepath.Join(dir, models.ReportAttendance))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("assembly errors write nothing at all", func(t *testing.T) {
		store := newFakeStore()
		dir := t.TempDir()
		svc := NewService(store, dir)

		_, err := svc.Generate(ctx, models.ReportPerformance, models.FormatCSV, Options{}, primitive.NewObjectID())
		require.Error(t, err)

		_, statErr := os.Stat(filepath.Join(dir, models.ReportPerformance))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestDownload(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.seedAttendance()
	svc := NewService(store, t.TempDir())

	report, err := svc.Generate(ctx, models.ReportAttendance, models.FormatCSV,
		Options{Month: 3, Year: 2026}, primitive.NewObjectID())
	require.NoError(t, err)

	got, err := svc.Download(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.FilePath, got.FilePath)

	t.Run("missing file is not found", func(t *testing.T) {
		require.NoError(t, os.Remove(report.FilePath))
		_, err := svc.Download(ctx, report.ID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.Download(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestListRecent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.seedAttendance()
	svc := NewService(store, t.TempDir())
	userID := primitive.NewObjectID()

	for i := 0; i < 12; i++ {
		_, err := svc.Generate(ctx, models.ReportAttendance, models.FormatCSV,
			Options{Month: 3, Year: 2026}, userID)
		require.NoError(t, err)
	}
	_, err := svc.Generate(ctx, models.ReportAttendance, models.FormatCSV,
		Options{Month: 3, Year: 2026}, primitive.NewObjectID())
	require.NoError(t, err)

	recent, err := svc.ListRecent(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, recent, 10, "capped at the 10 newest")
	for _, r := range recent {
		assert.Equal(t, userID, r.UserID)
	}
}
