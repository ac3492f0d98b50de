// Package reports assembles aggregated school data into downloadable
// PDF/Excel/CSV artifacts and keeps an append-only log of what was generated.
package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the query surface report assembly needs from the data store.
type Store interface {
	Classes(ctx context.Context) ([]models.Class, error)
	ClassByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	MonthlySummariesByClass(ctx context.Context, classID primitive.ObjectID, month, year int) ([]models.MonthlyAttendanceSummary, error)
	OverallResults(ctx context.Context, academicYear, term string) ([]models.OverallResult, error)
	StudentNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
	SubjectNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
	FeePayments(ctx context.Context, from, to time.Time) ([]models.FeePayment, error)
	ExamSchedules(ctx context.Context, academicYear, term string) ([]models.ExamSchedule, error)
	InsertReport(ctx context.Context, r *models.Report) error
	ReportByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	RecentReports(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.Report, error)
}

// Options narrows what a report covers. Zero values mean "everything".
type Options struct {
	ClassID      *primitive.ObjectID `json:"classId,omitempty"`
	Month        int                 `json:"month,omitempty"`
	Year         int                 `json:"year,omitempty"`
	AcademicYear string              `json:"academicYear,omitempty"`
	Term         string              `json:"term,omitempty"`
	FromDate     *time.Time          `json:"fromDate,omitempty"`
	ToDate       *time.Time          `json:"toDate,omitempty"`
}

type Service struct {
	store Store
	dir   string // root directory for generated files
}

func NewService(store Store, dir string) *Service {
	return &Service{store: store, dir: dir}
}

var formatExt = map[string]string{
	models.FormatPDF:   "pdf",
	models.FormatExcel: "xlsx",
	models.FormatCSV:   "csv",
}

// Generate assembles the requested report type, renders it in the requested
// format and persists one Report row. Assembly errors abort before any file
// is written; rendering goes through a temp file so a failed render leaves
// nothing behind.
func (s *Service) Generate(ctx context.Context, reportType, format string, opts Options, userID primitive.ObjectID) (*models.Report, error) {
	ext, ok := formatExt[format]
	if !ok {
		return nil, errs.Validation("unknown format " + format)
	}

	data, err := s.assemble(ctx, reportType, opts)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.dir, reportType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}

	fileName := fmt.Sprintf("%s-report-%s.%s", reportType, uuid.NewString(), ext)
	path := filepath.Join(dir, fileName)

	if err := renderToFile(data, format, path); err != nil {
		return nil, err
	}

	report := models.Report{
		Title:       data.Title,
		Type:        reportType,
		Format:      format,
		FilePath:    path,
		FileName:    fileName,
		DownloadURL: fmt.Sprintf("/reports/%s/%s", reportType, fileName),
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.InsertReport(ctx, &report); err != nil {
		os.Remove(path) // no orphan files without a Report row
		return nil, fmt.Errorf("persist report: %w", err)
	}
	return &report, nil
}

func (s *Service) assemble(ctx context.Context, reportType string, opts Options) (*Data, error) {
	switch reportType {
	case models.ReportAttendance:
		return s.assembleAttendance(ctx, opts)
	case models.ReportPerformance:
		return s.assemblePerformance(ctx, opts)
	case models.ReportFinancial:
		return s.assembleFinancial(ctx, opts)
	case models.ReportExam:
		return s.assembleExam(ctx, opts)
	}
	return nil, errs.Validation("unknown report type " + reportType)
}

// renderToFile writes through a temp name and renames, so a crashed render
// never leaves a partial artifact at the final path.
func renderToFile(data *Data, format, path string) error {
	tmp := path + ".tmp"
	var err error
	switch format {
	case models.FormatPDF:
		err = renderPDF(data, tmp)
	case models.FormatExcel:
		err = renderExcel(data, tmp)
	case models.FormatCSV:
		err = renderCSV(data, tmp)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("render %s: %w", format, err)
	}
	return os.Rename(tmp, path)
}

// Download resolves a report row and verifies the file still exists on disk.
func (s *Service) Download(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	report, err := s.store.ReportByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(report.FilePath); err != nil {
		return nil, errs.NotFound("report file")
	}
	return report, nil
}

// ListRecent returns the user's last 10 reports, newest first.
func (s *Service) ListRecent(ctx context.Context, userID primitive.ObjectID) ([]models.Report, error) {
	return s.store.RecentReports(ctx, userID, 10)
}
