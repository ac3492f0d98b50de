// Package exams manages exam schedules feeding the exam report.
package exams

import (
	"context"
	"errors"

	DB "Backend-EduSync/src/database"
	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create ตั้งตารางสอบใหม่
func Create(ctx context.Context, e *models.ExamSchedule) error {
	if e.Name == "" || e.AcademicYear == "" || e.Term == "" {
		return errs.Validation("name, academicYear and term are required")
	}
	if e.ClassID.IsZero() || e.SubjectID.IsZero() {
		return errs.Validation("classId and subjectId are required")
	}
	if e.Date.IsZero() {
		return errs.Validation("date is required")
	}

	e.ID = primitive.NewObjectID()
	_, err := DB.ExamScheduleCollection.InsertOne(ctx, e)
	return err
}

// ListByTerm returns a term's schedule ordered by date.
func ListByTerm(ctx context.Context, academicYear, term string) ([]models.ExamSchedule, error) {
	cursor, err := DB.ExamScheduleCollection.Find(ctx,
		bson.M{"academicYear": academicYear, "term": term},
		options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exams []models.ExamSchedule
	if err := cursor.All(ctx, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// GetByID ดึงตารางสอบตาม ID
func GetByID(ctx context.Context, id primitive.ObjectID) (*models.ExamSchedule, error) {
	var e models.ExamSchedule
	err := DB.ExamScheduleCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("exam schedule")
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete ลบตารางสอบ
func Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := DB.ExamScheduleCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("exam schedule")
	}
	return nil
}
