package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles known to the system. RefID points at the Student/Teacher/Parent document.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// User บัญชีผู้ใช้สำหรับ login
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // hashed, never returned
	Role     string             `bson:"role" json:"role"`
	RefID    primitive.ObjectID `bson:"refId,omitempty" json:"refId"`
	Name     string             `bson:"name" json:"name"`
	IsActive bool               `bson:"isActive" json:"isActive"`
}
