package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Leave application statuses. Transitions allowed: PENDING -> APPROVED|REJECTED.
const (
	LeavePending  = "PENDING"
	LeaveApproved = "APPROVED"
	LeaveRejected = "REJECTED"
)

// LeaveApplication ใบลา
type LeaveApplication struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ApplicantID   primitive.ObjectID `bson:"applicantId" json:"applicantId"`
	ApplicantRole string             `bson:"applicantRole" json:"applicantRole"` // student or teacher
	FromDate      time.Time          `bson:"fromDate" json:"fromDate"`
	ToDate        time.Time          `bson:"toDate" json:"toDate"`
	Reason        string             `bson:"reason" json:"reason"`
	Status        string             `bson:"status" json:"status"`
	ReviewedBy    primitive.ObjectID `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewRemarks string             `bson:"reviewRemarks,omitempty" json:"reviewRemarks,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
