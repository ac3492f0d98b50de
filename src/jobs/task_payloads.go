package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeGenerateReport      = "report:generate"
	TypeCleanupReports      = "report:cleanup"
	TypeRecomputeAttendance = "attendance:recompute"
)

// GenerateReportPayload queues a report generation request.
type GenerateReportPayload struct {
	ReportType string `json:"reportType"`
	Format     string `json:"format"`
	Options    []byte `json:"options"` // reports.Options, pre-marshaled
	UserID     string `json:"userId"`
}

func NewGenerateReportTask(p GenerateReportPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeGenerateReport, payload), nil
}

// RecomputeAttendancePayload queues a monthly rollup rebuild for one
// class/section.
type RecomputeAttendancePayload struct {
	ClassID   string `json:"classId"`
	SectionID string `json:"sectionId"`
	Date      string `json:"date"` // any day of the target month, 2006-01-02
}

func NewRecomputeAttendanceTask(p RecomputeAttendancePayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRecomputeAttendance, payload), nil
}

// CleanupReportsPayload carries the retention window for old report files.
type CleanupReportsPayload struct {
	MaxAgeDays int `json:"maxAgeDays"`
}

func NewCleanupReportsTask(maxAgeDays int) (*asynq.Task, error) {
	payload, err := json.Marshal(CleanupReportsPayload{MaxAgeDays: maxAgeDays})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCleanupReports, payload), nil
}
