package database

import (
	"context"
	"fmt"
	"time"

	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttendanceRepo is the mongo-backed store for the attendance aggregator.
type AttendanceRepo struct{}

func NewAttendanceRepo() *AttendanceRepo { return &AttendanceRepo{} }

func (r *AttendanceRepo) SectionInClass(ctx context.Context, classID, sectionID primitive.ObjectID) (bool, error) {
	count, err := SectionCollection.CountDocuments(ctx, bson.M{"_id": sectionID, "classId": classID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AttendanceRepo) StudentsBySection(ctx context.Context, classID, sectionID primitive.ObjectID) ([]models.Student, error) {
	cursor, err := StudentCollection.Find(ctx,
		bson.M{"classId": classID, "sectionId": sectionID, "isActive": true},
		options.Find().SetSort(bson.M{"rollNo": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// UpsertDaily keeps the one-record-per-(student, date) invariant: the unique
// index backs the upsert so concurrent markers cannot create duplicates.
func (r *AttendanceRepo) UpsertDaily(ctx context.Context, rec *models.DailyAttendanceRecord) error {
	filter := bson.M{"studentId": rec.StudentID, "date": rec.Date}
	update := bson.M{"$set": bson.M{
		"classId":    rec.ClassID,
		"sectionId":  rec.SectionID,
		"status":     rec.Status,
		"remarks":    rec.Remarks,
		"markedById": rec.MarkedByID,
	}}
	res, err := DailyAttendanceCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return err
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		rec.ID = oid
	}
	return nil
}

func (r *AttendanceRepo) DailyByStudentRange(ctx context.Context, studentID primitive.ObjectID, from, to time.Time) ([]models.DailyAttendanceRecord, error) {
	return findDaily(ctx, bson.M{
		"studentId": studentID,
		"date":      bson.M{"$gte": from, "$lt": to},
	})
}

func (r *AttendanceRepo) DailyBySectionRange(ctx context.Context, classID, sectionID primitive.ObjectID, from, to time.Time) ([]models.DailyAttendanceRecord, error) {
	return findDaily(ctx, bson.M{
		"classId":   classID,
		"sectionId": sectionID,
		"date":      bson.M{"$gte": from, "$lt": to},
	})
}

func findDaily(ctx context.Context, filter bson.M) ([]models.DailyAttendanceRecord, error) {
	cursor, err := DailyAttendanceCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.DailyAttendanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpsertMonthly writes the derived summary keyed by (studentId, month, year).
func (r *AttendanceRepo) UpsertMonthly(ctx context.Context, sum *models.MonthlyAttendanceSummary) error {
	filter := bson.M{"studentId": sum.StudentID, "month": sum.Month, "year": sum.Year}
	update := bson.M{"$set": bson.M{
		"classId":      sum.ClassID,
		"sectionId":    sum.SectionID,
		"presentCount": sum.PresentCount,
		"absentCount":  sum.AbsentCount,
		"percentage":   sum.Percentage,
	}}
	_, err := MonthlyAttendanceCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert monthly summary: %w", err)
	}
	return nil
}

func (r *AttendanceRepo) MonthlyByStudentYear(ctx context.Context, studentID primitive.ObjectID, year int) ([]models.MonthlyAttendanceSummary, error) {
	cursor, err := MonthlyAttendanceCollection.Find(ctx,
		bson.M{"studentId": studentID, "year": year},
		options.Find().SetSort(bson.M{"month": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []models.MonthlyAttendanceSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// HolidaysIntersecting returns holidays whose range touches [from, to], plus
// all recurring holidays (they are expanded by the caller).
func (r *AttendanceRepo) HolidaysIntersecting(ctx context.Context, from, to time.Time) ([]models.Holiday, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"isRecurring": true},
		bson.M{"fromDate": bson.M{"$lte": to}, "toDate": bson.M{"$gte": from}},
	}}
	cursor, err := HolidayCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hs []models.Holiday
	if err := cursor.All(ctx, &hs); err != nil {
		return nil, err
	}
	return hs, nil
}
