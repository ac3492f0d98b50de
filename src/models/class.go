package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class ระดับชั้น เช่น "Grade 8"
type Class struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	AcademicYear string             `bson:"academicYear" json:"academicYear"`
}

// Section ห้องเรียนภายใน class เช่น "8-A"
type Section struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ClassID        primitive.ObjectID   `bson:"classId" json:"classId"`
	Name           string               `bson:"name" json:"name"`
	ClassTeacherID primitive.ObjectID   `bson:"classTeacherId,omitempty" json:"classTeacherId,omitempty"`
	TeacherIDs     []primitive.ObjectID `bson:"teacherIds,omitempty" json:"teacherIds,omitempty"`
}

// Subject วิชา
type Subject struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID  primitive.ObjectID `bson:"classId" json:"classId"`
	Name     string             `bson:"name" json:"name"`
	Code     string             `bson:"code" json:"code"`
	FullMark int                `bson:"fullMark" json:"fullMark"`
	PassMark int                `bson:"passMark" json:"passMark"`
}
