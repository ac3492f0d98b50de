package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement audiences.
const (
	AudienceAll      = "ALL"
	AudienceTeachers = "TEACHERS"
	AudienceStudents = "STUDENTS"
	AudienceParents  = "PARENTS"
	AudienceClass    = "CLASS"
)

// Announcement ประกาศ
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Audience  string             `bson:"audience" json:"audience"`
	ClassID   primitive.ObjectID `bson:"classId,omitempty" json:"classId,omitempty"` // only when Audience == CLASS
	FromDate  time.Time          `bson:"fromDate" json:"fromDate"`
	ToDate    time.Time          `bson:"toDate" json:"toDate"`
	CreatedBy primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
