package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Result statuses for OverallResult.
const (
	ResultPassed = "PASSED"
	ResultFailed = "FAILED"
)

// SubjectResult ผลการเรียนรายวิชา — unique per (studentId, subjectId,
// academicYear, term). GradeID is nil when no GradeDefinition band matched and
// GradeLetter came from the fixed fallback table.
type SubjectResult struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	StudentID      primitive.ObjectID  `bson:"studentId" json:"studentId"`
	SubjectID      primitive.ObjectID  `bson:"subjectId" json:"subjectId"`
	AcademicYear   string              `bson:"academicYear" json:"academicYear"`
	Term           string              `bson:"term" json:"term"`
	FullMarks      float64             `bson:"fullMarks" json:"fullMarks"`
	PassMarks      float64             `bson:"passMarks" json:"passMarks"`
	TheoryMarks    float64             `bson:"theoryMarks" json:"theoryMarks"`
	PracticalMarks float64             `bson:"practicalMarks" json:"practicalMarks"`
	TotalMarks     float64             `bson:"totalMarks" json:"totalMarks"`
	GradeID        *primitive.ObjectID `bson:"gradeId,omitempty" json:"gradeId,omitempty"`
	GradeLetter    string              `bson:"gradeLetter" json:"gradeLetter"`
	IsAbsent       bool                `bson:"isAbsent" json:"isAbsent"`
	IsLocked       bool                `bson:"isLocked" json:"isLocked"`
}

// OverallResult ผลการเรียนรวม — derived from all SubjectResults of a term,
// upserted by (studentId, academicYear, term).
type OverallResult struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID       primitive.ObjectID `bson:"studentId" json:"studentId"`
	AcademicYear    string             `bson:"academicYear" json:"academicYear"`
	Term            string             `bson:"term" json:"term"`
	TotalPercentage float64            `bson:"totalPercentage" json:"totalPercentage"`
	Status          string             `bson:"status" json:"status"`
	ClassTeacherID  primitive.ObjectID `bson:"classTeacherId" json:"classTeacherId"`
}

// GradeDefinition ช่วงคะแนนกับเกรด — static lookup table.
type GradeDefinition struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MinScore float64            `bson:"minScore" json:"minScore"`
	MaxScore float64            `bson:"maxScore" json:"maxScore"`
	Grade    string             `bson:"grade" json:"grade"`
}
