package reports

import (
	"context"
	"fmt"
	"math"
	"time"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// assembleAttendance builds the monthly attendance report: per-class average
// percentages plus one record row per student summary. A class with zero
// attendance records yields averageAttendance 0 and no class-wise lines, not
// an error.
func (s *Service) assembleAttendance(ctx context.Context, opts Options) (*Data, error) {
	month, year := opts.Month, opts.Year
	if month == 0 || year == 0 {
		now := time.Now().UTC()
		month, year = int(now.Month()), now.Year()
	}

	var classes []models.Class
	if opts.ClassID != nil {
		class, err := s.store.ClassByID(ctx, *opts.ClassID)
		if err != nil {
			return nil, err
		}
		classes = []models.Class{*class}
	} else {
		all, err := s.store.Classes(ctx)
		if err != nil {
			return nil, fmt.Errorf("load classes: %w", err)
		}
		classes = all
	}

	data := &Data{
		Title:       fmt.Sprintf("Attendance Report - %s %d", time.Month(month), year),
		GeneratedAt: time.Now().UTC(),
		Columns:     []string{"Student", "Class", "Present", "Absent", "Percentage"},
	}

	var grandSum float64
	var grandCount int

	for _, class := range classes {
		summaries, err := s.store.MonthlySummariesByClass(ctx, class.ID, month, year)
		if err != nil {
			return nil, fmt.Errorf("load summaries for class %s: %w", class.ID.Hex(), err)
		}
		if len(summaries) == 0 {
			continue
		}

		ids := make([]primitive.ObjectID, 0, len(summaries))
		for _, sum := range summaries {
			ids = append(ids, sum.StudentID)
		}
		names, err := s.store.StudentNames(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("load student names: %w", err)
		}

		var classSum float64
		for _, sum := range summaries {
			classSum += sum.Percentage
			grandSum += sum.Percentage
			grandCount++
			data.Records = append(data.Records, []string{
				names[sum.StudentID],
				class.Name,
				fmt.Sprintf("%d", sum.PresentCount),
				fmt.Sprintf("%d", sum.AbsentCount),
				fmt.Sprintf("%.2f", sum.Percentage),
			})
		}

		data.Sections = append(data.Sections, Section{
			Heading: class.Name,
			Lines: []string{
				fmt.Sprintf("Students: %d", len(summaries)),
				fmt.Sprintf("Average attendance: %.2f%%", round2(classSum/float64(len(summaries)))),
			},
		})
	}

	average := 0.0
	if grandCount > 0 {
		average = round2(grandSum / float64(grandCount))
	}
	data.Summary = []Line{
		{Label: "Month", Value: fmt.Sprintf("%s %d", time.Month(month), year)},
		{Label: "Students covered", Value: fmt.Sprintf("%d", grandCount)},
		{Label: "Average attendance", Value: fmt.Sprintf("%.2f%%", average)},
	}
	return data, nil
}

// assemblePerformance builds the term performance report from overall results.
func (s *Service) assemblePerformance(ctx context.Context, opts Options) (*Data, error) {
	if opts.AcademicYear == "" || opts.Term == "" {
		return nil, errs.Validation("academicYear and term are required for a performance report")
	}

	overalls, err := s.store.OverallResults(ctx, opts.AcademicYear, opts.Term)
	if err != nil {
		return nil, fmt.Errorf("load overall results: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(overalls))
	for _, o := range overalls {
		ids = append(ids, o.StudentID)
	}
	names, err := s.store.StudentNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load student names: %w", err)
	}

	data := &Data{
		Title:       fmt.Sprintf("Performance Report - %s %s", opts.Term, opts.AcademicYear),
		GeneratedAt: time.Now().UTC(),
		Columns:     []string{"Student", "Academic Year", "Term", "Percentage", "Status"},
	}

	passed := 0
	var pctSum float64
	for _, o := range overalls {
		if o.Status == models.ResultPassed {
			passed++
		}
		pctSum += o.TotalPercentage
		data.Records = append(data.Records, []string{
			names[o.StudentID],
			o.AcademicYear,
			o.Term,
			fmt.Sprintf("%.2f", o.TotalPercentage),
			o.Status,
		})
	}

	average := 0.0
	if len(overalls) > 0 {
		average = round2(pctSum / float64(len(overalls)))
	}
	data.Summary = []Line{
		{Label: "Students", Value: fmt.Sprintf("%d", len(overalls))},
		{Label: "Passed", Value: fmt.Sprintf("%d", passed)},
		{Label: "Failed", Value: fmt.Sprintf("%d", len(overalls)-passed)},
		{Label: "Average percentage", Value: fmt.Sprintf("%.2f%%", average)},
	}
	return data, nil
}

// assembleFinancial builds the fee collection report for a date window.
func (s *Service) assembleFinancial(ctx context.Context, opts Options) (*Data, error) {
	from, to := feeWindow(opts)

	payments, err := s.store.FeePayments(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load fee payments: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.StudentID)
	}
	names, err := s.store.StudentNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load student names: %w", err)
	}

	data := &Data{
		Title:       fmt.Sprintf("Financial Report - %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02")),
		GeneratedAt: time.Now().UTC(),
		Columns:     []string{"Student", "Title", "Amount", "Status", "Paid At"},
	}

	var collected, pending float64
	for _, p := range payments {
		paidAt := "-"
		if p.PaidAt != nil {
			paidAt = p.PaidAt.Format("2006-01-02")
		}
		if p.Status == models.FeePaid {
			collected += p.Amount
		} else {
			pending += p.Amount
		}
		data.Records = append(data.Records, []string{
			names[p.StudentID],
			p.Title,
			fmt.Sprintf("%.2f", p.Amount),
			p.Status,
			paidAt,
		})
	}

	data.Summary = []Line{
		{Label: "Payments", Value: fmt.Sprintf("%d", len(payments))},
		{Label: "Collected", Value: fmt.Sprintf("%.2f", collected)},
		{Label: "Pending", Value: fmt.Sprintf("%.2f", pending)},
	}
	return data, nil
}

// assembleExam builds the exam schedule report for a term.
func (s *Service) assembleExam(ctx context.Context, opts Options) (*Data, error) {
	if opts.AcademicYear == "" || opts.Term == "" {
		return nil, errs.Validation("academicYear and term are required for an exam report")
	}

	exams, err := s.store.ExamSchedules(ctx, opts.AcademicYear, opts.Term)
	if err != nil {
		return nil, fmt.Errorf("load exam schedules: %w", err)
	}

	subjectIDs := make([]primitive.ObjectID, 0, len(exams))
	for _, e := range exams {
		subjectIDs = append(subjectIDs, e.SubjectID)
	}
	subjects, err := s.store.SubjectNames(ctx, subjectIDs)
	if err != nil {
		return nil, fmt.Errorf("load subject names: %w", err)
	}

	data := &Data{
		Title:       fmt.Sprintf("Exam Schedule - %s %s", opts.Term, opts.AcademicYear),
		GeneratedAt: time.Now().UTC(),
		Columns:     []string{"Exam", "Subject", "Date", "Start", "End", "Room"},
	}

	for _, e := range exams {
		data.Records = append(data.Records, []string{
			e.Name,
			subjects[e.SubjectID],
			e.Date.Format("2006-01-02"),
			e.StartTime,
			e.EndTime,
			e.RoomNo,
		})
	}

	data.Summary = []Line{
		{Label: "Exams scheduled", Value: fmt.Sprintf("%d", len(exams))},
		{Label: "Term", Value: fmt.Sprintf("%s %s", opts.Term, opts.AcademicYear)},
	}
	return data, nil
}

// feeWindow defaults to the current calendar month when no range is given.
func feeWindow(opts Options) (time.Time, time.Time) {
	if opts.FromDate != nil && opts.ToDate != nil {
		return *opts.FromDate, *opts.ToDate
	}
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0).AddDate(0, 0, -1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
