package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance statuses. PRESENT/LATE/HALF_DAY count toward presence in the
// monthly rollup, ABSENT/EXCUSED count as absence.
const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
	AttendanceLate    = "LATE"
	AttendanceHalfDay = "HALF_DAY"
	AttendanceExcused = "EXCUSED"
)

// ValidAttendanceStatus reports whether s is one of the known statuses.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay, AttendanceExcused:
		return true
	}
	return false
}

// DailyAttendanceRecord การเช็คชื่อรายวัน — one per (student, date), unique index enforced.
type DailyAttendanceRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  primitive.ObjectID `bson:"studentId" json:"studentId"`
	ClassID    primitive.ObjectID `bson:"classId" json:"classId"`
	SectionID  primitive.ObjectID `bson:"sectionId" json:"sectionId"`
	Date       time.Time          `bson:"date" json:"date"` // truncated to midnight UTC
	Status     string             `bson:"status" json:"status"`
	Remarks    string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
	MarkedByID primitive.ObjectID `bson:"markedById,omitempty" json:"markedById,omitempty"`
}

// MonthlyAttendanceSummary สรุปการเช็คชื่อรายเดือน — derived, upserted by
// (studentId, month, year).
type MonthlyAttendanceSummary struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID    primitive.ObjectID `bson:"studentId" json:"studentId"`
	ClassID      primitive.ObjectID `bson:"classId" json:"classId"`
	SectionID    primitive.ObjectID `bson:"sectionId" json:"sectionId"`
	Month        time.Time          `bson:"month" json:"month"` // first of month, midnight UTC
	Year         int                `bson:"year" json:"year"`
	PresentCount int                `bson:"presentCount" json:"presentCount"`
	AbsentCount  int                `bson:"absentCount" json:"absentCount"`
	Percentage   float64            `bson:"percentage" json:"percentage"`
}
