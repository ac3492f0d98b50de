package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fee payment statuses.
const (
	FeePaid    = "PAID"
	FeePending = "PENDING"
)

// FeePayment ค่าเทอม — feeds the financial report.
type FeePayment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	Title     string             `bson:"title" json:"title"` // e.g. "Tuition - July"
	Amount    float64            `bson:"amount" json:"amount"`
	Status    string             `bson:"status" json:"status"`
	PaidAt    *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ExamSchedule ตารางสอบ — feeds the exam report.
type ExamSchedule struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"` // e.g. "First Term Examination"
	ClassID      primitive.ObjectID `bson:"classId" json:"classId"`
	SubjectID    primitive.ObjectID `bson:"subjectId" json:"subjectId"`
	AcademicYear string             `bson:"academicYear" json:"academicYear"`
	Term         string             `bson:"term" json:"term"`
	Date         time.Time          `bson:"date" json:"date"`
	StartTime    string             `bson:"startTime" json:"startTime"` // "09:00"
	EndTime      string             `bson:"endTime" json:"endTime"`
	RoomNo       string             `bson:"roomNo,omitempty" json:"roomNo,omitempty"`
}
