// Package attendance rolls up daily attendance marks into monthly summaries
// and class-level statistics. The store is injected so tests can run against
// an in-memory implementation.
package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"
	"Backend-EduSync/src/services/holidays"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the query surface the aggregator needs from the data store.
// The mongo-backed implementation lives in src/database.
type Store interface {
	SectionInClass(ctx context.Context, classID, sectionID primitive.ObjectID) (bool, error)
	StudentsBySection(ctx context.Context, classID, sectionID primitive.ObjectID) ([]models.Student, error)
	UpsertDaily(ctx context.Context, rec *models.DailyAttendanceRecord) error
	DailyByStudentRange(ctx context.Context, studentID primitive.ObjectID, from, to time.Time) ([]models.DailyAttendanceRecord, error)
	DailyBySectionRange(ctx context.Context, classID, sectionID primitive.ObjectID, from, to time.Time) ([]models.DailyAttendanceRecord, error)
	UpsertMonthly(ctx context.Context, sum *models.MonthlyAttendanceSummary) error
	MonthlyByStudentYear(ctx context.Context, studentID primitive.ObjectID, year int) ([]models.MonthlyAttendanceSummary, error)
	HolidaysIntersecting(ctx context.Context, from, to time.Time) ([]models.Holiday, error)
}

// Cache is an optional stats cache. A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Del(ctx context.Context, keys ...string)
}

type Service struct {
	store Store
	cache Cache
}

func NewService(store Store, cache Cache) *Service {
	return &Service{store: store, cache: cache}
}

// MarkEntry is one (student, status) tuple in a batch marking request.
type MarkEntry struct {
	StudentID primitive.ObjectID `json:"studentId"`
	Status    string             `json:"status"`
	Remarks   string             `json:"remarks,omitempty"`
}

// SkippedEntry names a rejected batch entry and why it was rejected.
type SkippedEntry struct {
	StudentID primitive.ObjectID `json:"studentId"`
	Reason    string             `json:"reason"`
}

// MarkDailyResult reports which entries were applied and which were skipped,
// so callers can tell the difference.
type MarkDailyResult struct {
	Applied []models.DailyAttendanceRecord `json:"applied"`
	Skipped []SkippedEntry                 `json:"skipped"`
}

// MarkDaily creates or updates one DailyAttendanceRecord per entry for the
// given date. Weekends and holidays are rejected outright so monthly counts
// can never exceed the month's working days. Entries for students outside the
// class/section or with an unknown status are skipped and reported. After
// processing, the monthly summaries for the affected month are recomputed.
func (s *Service) MarkDaily(ctx context.Context, classID, sectionID primitive.ObjectID, date time.Time, markedBy primitive.ObjectID, entries []MarkEntry) (*MarkDailyResult, error) {
	if len(entries) == 0 {
		return nil, errs.Validation("no attendance entries given")
	}

	day := truncateDay(date)
	hs, err := s.store.HolidaysIntersecting(ctx, day, day)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}
	if !holidays.IsWorkingDay(day, hs) {
		return nil, errs.Validation(day.Format("2006-01-02") + " is not a working day")
	}

	ok, err := s.store.SectionInClass(ctx, classID, sectionID)
	if err != nil {
		return nil, fmt.Errorf("check section: %w", err)
	}
	if !ok {
		return nil, errs.NotFound("class/section")
	}

	students, err := s.store.StudentsBySection(ctx, classID, sectionID)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	enrolled := make(map[primitive.ObjectID]bool, len(students))
	for _, st := range students {
		enrolled[st.ID] = true
	}

	result := &MarkDailyResult{}

	for _, e := range entries {
		if !enrolled[e.StudentID] {
			result.Skipped = append(result.Skipped, SkippedEntry{StudentID: e.StudentID, Reason: "student not in class/section"})
			continue
		}
		if !models.ValidAttendanceStatus(e.Status) {
			result.Skipped = append(result.Skipped, SkippedEntry{StudentID: e.StudentID, Reason: "invalid status " + e.Status})
			continue
		}

		rec := models.DailyAttendanceRecord{
			StudentID:  e.StudentID,
			ClassID:    classID,
			SectionID:  sectionID,
			Date:       day,
			Status:     e.Status,
			Remarks:    e.Remarks,
			MarkedByID: markedBy,
		}
		if err := s.store.UpsertDaily(ctx, &rec); err != nil {
			return nil, fmt.Errorf("upsert daily record: %w", err)
		}
		result.Applied = append(result.Applied, rec)
	}

	if len(result.Applied) > 0 {
		if err := s.RecomputeMonthly(ctx, classID, sectionID, day); err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Del(ctx, statsCacheKey(classID, sectionID, int(day.Month()), day.Year()))
		}
	}

	return result, nil
}

// RecomputeMonthly rebuilds the MonthlyAttendanceSummary of every student in
// the class/section for the calendar month containing refDate. Safe to call
// repeatedly: summaries are upserted by (studentId, month, year).
func (s *Service) RecomputeMonthly(ctx context.Context, classID, sectionID primitive.ObjectID, refDate time.Time) error {
	students, err := s.store.StudentsBySection(ctx, classID, sectionID)
	if err != nil {
		return fmt.Errorf("load students: %w", err)
	}

	from, to := monthWindow(refDate)
	for _, st := range students {
		records, err := s.store.DailyByStudentRange(ctx, st.ID, from, to)
		if err != nil {
			return fmt.Errorf("load daily records for %s: %w", st.ID.Hex(), err)
		}

		present, absent := 0, 0
		for _, r := range records {
			if countsAsPresent(r.Status) {
				present++
			} else {
				absent++
			}
		}

		sum := models.MonthlyAttendanceSummary{
			StudentID:    st.ID,
			ClassID:      classID,
			SectionID:    sectionID,
			Month:        from,
			Year:         from.Year(),
			PresentCount: present,
			AbsentCount:  absent,
			Percentage:   percentage(present, absent),
		}
		if err := s.store.UpsertMonthly(ctx, &sum); err != nil {
			return fmt.Errorf("upsert monthly summary: %w", err)
		}
	}
	return nil
}

// DailyView is one row of the daily register. Students with no record for the
// date are shown as ABSENT; that default is display-only and never persisted.
type DailyView struct {
	StudentID   primitive.ObjectID `json:"studentId"`
	StudentName string             `json:"studentName"`
	RollNo      int                `json:"rollNo"`
	Status      string             `json:"status"`
	Remarks     string             `json:"remarks,omitempty"`
	Marked      bool               `json:"marked"`
}

// GetDaily returns one row per enrolled student for the given date.
func (s *Service) GetDaily(ctx context.Context, classID, sectionID primitive.ObjectID, date time.Time) ([]DailyView, error) {
	ok, err := s.store.SectionInClass(ctx, classID, sectionID)
	if err != nil {
		return nil, fmt.Errorf("check section: %w", err)
	}
	if !ok {
		return nil, errs.NotFound("class/section")
	}

	students, err := s.store.StudentsBySection(ctx, classID, sectionID)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}

	from := truncateDay(date)
	records, err := s.store.DailyBySectionRange(ctx, classID, sectionID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("load daily records: %w", err)
	}
	byStudent := make(map[primitive.ObjectID]models.DailyAttendanceRecord, len(records))
	for _, r := range records {
		byStudent[r.StudentID] = r
	}

	views := make([]DailyView, 0, len(students))
	for _, st := range students {
		v := DailyView{
			StudentID:   st.ID,
			StudentName: st.Name,
			RollNo:      st.RollNo,
			Status:      models.AttendanceAbsent,
		}
		if r, found := byStudent[st.ID]; found {
			v.Status = r.Status
			v.Remarks = r.Remarks
			v.Marked = true
		}
		views = append(views, v)
	}
	return views, nil
}

// GetMonthly returns the stored monthly summaries of a student for a year.
func (s *Service) GetMonthly(ctx context.Context, studentID primitive.ObjectID, year int) ([]models.MonthlyAttendanceSummary, error) {
	return s.store.MonthlyByStudentYear(ctx, studentID, year)
}

func countsAsPresent(status string) bool {
	switch status {
	case models.AttendancePresent, models.AttendanceLate, models.AttendanceHalfDay:
		return true
	}
	return false
}

// percentage is present/(present+absent)*100 rounded to 2 decimals, 0 when
// there are no records at all.
func percentage(present, absent int) float64 {
	total := present + absent
	if total == 0 {
		return 0
	}
	return round2(float64(present) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// monthWindow returns [first of month, first of next month).
func monthWindow(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
