package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/services/holidays"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const statsCacheTTL = 10 * time.Minute

// DayBreakdown is the present/absent count of one calendar day.
type DayBreakdown struct {
	Date       string  `json:"date"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
}

// Stats is the class/section attendance view of one month.
type Stats struct {
	ClassID           primitive.ObjectID `json:"classId"`
	SectionID         primitive.ObjectID `json:"sectionId"`
	Month             int                `json:"month"`
	Year              int                `json:"year"`
	WorkingDays       int                `json:"workingDays"`
	TotalStudents     int                `json:"totalStudents"`
	AverageAttendance float64            `json:"averageAttendance"`
	DailyBreakdown    []DayBreakdown     `json:"dailyBreakdown"`
}

// GetStats computes working days, the average attendance percentage across
// students and a per-day breakdown for one month. Results are cached in Redis
// for a few minutes; MarkDaily invalidates the affected key.
func (s *Service) GetStats(ctx context.Context, classID, sectionID primitive.ObjectID, month, year int) (*Stats, error) {
	if month < 1 || month > 12 {
		return nil, errs.Validation("month must be 1-12")
	}

	key := statsCacheKey(classID, sectionID, month, year)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var st Stats
			if err := json.Unmarshal([]byte(cached), &st); err == nil {
				return &st, nil
			}
		}
	}

	ok, err := s.store.SectionInClass(ctx, classID, sectionID)
	if err != nil {
		return nil, fmt.Errorf("check section: %w", err)
	}
	if !ok {
		return nil, errs.NotFound("class/section")
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	hs, err := s.store.HolidaysIntersecting(ctx, from, to.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}

	students, err := s.store.StudentsBySection(ctx, classID, sectionID)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}

	records, err := s.store.DailyBySectionRange(ctx, classID, sectionID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load daily records: %w", err)
	}

	type counts struct{ present, absent int }
	perDay := make(map[string]*counts)
	perStudent := make(map[primitive.ObjectID]*counts)
	for _, r := range records {
		dk := r.Date.Format("2006-01-02")
		if perDay[dk] == nil {
			perDay[dk] = &counts{}
		}
		if perStudent[r.StudentID] == nil {
			perStudent[r.StudentID] = &counts{}
		}
		if countsAsPresent(r.Status) {
			perDay[dk].present++
			perStudent[r.StudentID].present++
		} else {
			perDay[dk].absent++
			perStudent[r.StudentID].absent++
		}
	}

	stats := &Stats{
		ClassID:       classID,
		SectionID:     sectionID,
		Month:         month,
		Year:          year,
		WorkingDays:   holidays.WorkingDays(year, time.Month(month), hs),
		TotalStudents: len(students),
	}

	// average of per-student percentages, 0 when nothing is marked
	if len(perStudent) > 0 {
		var sum float64
		for _, c := range perStudent {
			sum += percentage(c.present, c.absent)
		}
		stats.AverageAttendance = round2(sum / float64(len(perStudent)))
	}

	days := make([]string, 0, len(perDay))
	for dk := range perDay {
		days = append(days, dk)
	}
	sort.Strings(days)
	for _, dk := range days {
		c := perDay[dk]
		stats.DailyBreakdown = append(stats.DailyBreakdown, DayBreakdown{
			Date:       dk,
			Present:    c.present,
			Absent:     c.absent,
			Percentage: percentage(c.present, c.absent),
		})
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			s.cache.Set(ctx, key, string(raw), statsCacheTTL)
		}
	}
	return stats, nil
}

func statsCacheKey(classID, sectionID primitive.ObjectID, month, year int) string {
	return fmt.Sprintf("attstats:%s:%s:%d-%02d", classID.Hex(), sectionID.Hex(), year, month)
}
