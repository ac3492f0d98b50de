// Package leaves manages leave applications and their review workflow.
package leaves

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "Backend-EduSync/src/database"
	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Apply files a new leave application in PENDING state.
func Apply(ctx context.Context, l *models.LeaveApplication) error {
	if l.Reason == "" {
		return errs.Validation("reason is required")
	}
	if l.ApplicantRole != models.RoleStudent && l.ApplicantRole != models.RoleTeacher {
		return errs.Validation("applicantRole must be student or teacher")
	}
	if l.ToDate.Before(l.FromDate) {
		return errs.Validation("toDate is before fromDate")
	}

	l.ID = primitive.NewObjectID()
	l.Status = models.LeavePending
	l.CreatedAt = time.Now().UTC()
	_, err := DB.LeaveCollection.InsertOne(ctx, l)
	return err
}

// Review approves or rejects a pending application. Only PENDING
// applications can transition.
func Review(ctx context.Context, id, reviewerID primitive.ObjectID, approve bool, remarks string) (*models.LeaveApplication, error) {
	var l models.LeaveApplication
	err := DB.LeaveCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("leave application")
	}
	if err != nil {
		return nil, err
	}
	if l.Status != models.LeavePending {
		return nil, fmt.Errorf("leave already %s: %w", l.Status, errs.ErrValidation)
	}

	status := models.LeaveRejected
	if approve {
		status = models.LeaveApproved
	}

	update := bson.M{"$set": bson.M{
		"status":        status,
		"reviewedBy":    reviewerID,
		"reviewRemarks": remarks,
	}}
	if _, err := DB.LeaveCollection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return nil, err
	}

	l.Status = status
	l.ReviewedBy = reviewerID
	l.ReviewRemarks = remarks
	return &l, nil
}

// ListByApplicant returns the applicant's own applications, newest first.
func ListByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]models.LeaveApplication, error) {
	return list(ctx, bson.M{"applicantId": applicantID})
}

// ListPending returns all applications awaiting review.
func ListPending(ctx context.Context) ([]models.LeaveApplication, error) {
	return list(ctx, bson.M{"status": models.LeavePending})
}

func list(ctx context.Context, filter bson.M) ([]models.LeaveApplication, error) {
	cursor, err := DB.LeaveCollection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ls []models.LeaveApplication
	if err := cursor.All(ctx, &ls); err != nil {
		return nil, err
	}
	return ls, nil
}
