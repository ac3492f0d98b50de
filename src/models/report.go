package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report types and formats.
const (
	ReportAttendance  = "attendance"
	ReportPerformance = "performance"
	ReportFinancial   = "financial"
	ReportExam        = "exam"

	FormatPDF   = "pdf"
	FormatExcel = "excel"
	FormatCSV   = "csv"
)

// Report รายงานที่สร้างแล้ว — append-only log of generated artifacts.
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Type        string             `bson:"type" json:"type"`
	Format      string             `bson:"format" json:"format"`
	FilePath    string             `bson:"filePath" json:"-"`
	FileName    string             `bson:"fileName" json:"fileName"`
	DownloadURL string             `bson:"downloadUrl" json:"downloadUrl"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
