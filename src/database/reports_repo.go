package database

import (
	"context"
	"errors"
	"time"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportsRepo is the mongo-backed store for report assembly and the
// append-only report log.
type ReportsRepo struct{}

func NewReportsRepo() *ReportsRepo { return &ReportsRepo{} }

func (r *ReportsRepo) Classes(ctx context.Context) ([]models.Class, error) {
	cursor, err := ClassCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ReportsRepo) ClassByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var class models.Class
	err := ClassCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("class")
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ReportsRepo) MonthlySummariesByClass(ctx context.Context, classID primitive.ObjectID, month, year int) ([]models.MonthlyAttendanceSummary, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	cursor, err := MonthlyAttendanceCollection.Find(ctx, bson.M{
		"classId": classID,
		"month":   monthStart,
		"year":    year,
	})
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

func (r *ReportsRepo) OverallResults(ctx context.Context, academicYear, term string) ([]models.OverallResult, error) {
	cursor, err := OverallResultCollection.Find(ctx, bson.M{"academicYear": academicYear, "term": term})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.OverallResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ReportsRepo) StudentNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return namesByID(ctx, StudentCollection, ids)
}

func (r *ReportsRepo) SubjectNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return namesByID(ctx, SubjectCollection, ids)
}

func namesByID(ctx context.Context, coll *mongo.Collection, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID   primitive.ObjectID `bson:"_id"`
		Name string             `bson:"name"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		names[d.ID] = d.Name
	}
	return names, nil
}

func (r *ReportsRepo) FeePayments(ctx context.Context, from, to time.Time) ([]models.FeePayment, error) {
	cursor, err := FeePaymentCollection.Find(ctx, bson.M{
		"createdAt": bson.M{"$gte": from, "$lte": to},
	}, options.Find().SetSort(bson.M{"createdAt": 1}))
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

func (r *ReportsRepo) ExamSchedules(ctx context.Context, academicYear, term string) ([]models.ExamSchedule, error) {
	cursor, err := ExamScheduleCollection.Find(ctx,
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

func (r *ReportsRepo) InsertReport(ctx context.Context, report *models.Report) error {
	report.ID = primitive.NewObjectID()
	_, err := ReportCollection.InsertOne(ctx, report)
	return err
}

func (r *ReportsRepo) ReportByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report
	err := ReportCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("report")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportsRepo) RecentReports(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.Report, error) {
	cursor, err := ReportCollection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
