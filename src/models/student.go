package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student นักเรียน
type Student struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code      string             `bson:"code" json:"code"` // admission number
	Name      string             `bson:"name" json:"name"`
	ClassID   primitive.ObjectID `bson:"classId" json:"classId"`
	SectionID primitive.ObjectID `bson:"sectionId" json:"sectionId"`
	RollNo    int                `bson:"rollNo" json:"rollNo"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	DOB       *time.Time         `bson:"dob,omitempty" json:"dob,omitempty"`
	ParentID  primitive.ObjectID `bson:"parentId,omitempty" json:"parentId,omitempty"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
}

// Teacher ครู
type Teacher struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code    string             `bson:"code" json:"code"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject string             `bson:"subject,omitempty" json:"subject,omitempty"`
}

// Parent ผู้ปกครอง
type Parent struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name       string               `bson:"name" json:"name"`
	Email      string               `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string               `bson:"phone,omitempty" json:"phone,omitempty"`
	StudentIDs []primitive.ObjectID `bson:"studentIds" json:"studentIds"`
}
