// Package fees records fee payments feeding the financial report.
package fees

import (
	"context"
	"errors"
	"time"

	DB "Backend-EduSync/src/database"
	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create records a fee entry. PaidAt is set when status is PAID and missing.
func Create(ctx context.Context, p *models.FeePayment) error {
	if p.Title == "" || p.StudentID.IsZero() {
		return errs.Validation("title and studentId are required")
	}
	if p.Amount <= 0 {
		return errs.Validation("amount must be greater than 0")
	}
	if p.Status != models.FeePaid && p.Status != models.FeePending {
		return errs.Validation("status must be PAID or PENDING")
	}
	if p.Status == models.FeePaid && p.PaidAt == nil {
		now := time.Now().UTC()
		p.PaidAt = &now
	}

	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	_, err := DB.FeePaymentCollection.InsertOne(ctx, p)
	return err
}

// MarkPaid settles a pending payment.
func MarkPaid(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	res, err := DB.FeePaymentCollection.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.FeePending},
		bson.M{"$set": bson.M{"status": models.FeePaid, "paidAt": now}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("pending fee payment")
	}
	return nil
}

// ListByStudent returns a student's payments, newest first.
func ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.FeePayment, error) {
	cursor, err := DB.FeePaymentCollection.Find(ctx, bson.M{"studentId": studentID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.FeePayment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetByID ดึงรายการค่าเทอมตาม ID
func GetByID(ctx context.Context, id primitive.ObjectID) (*models.FeePayment, error) {
	var p models.FeePayment
	err := DB.FeePaymentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("fee payment")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
