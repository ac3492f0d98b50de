package database

import (
	"context"
	"errors"
	"fmt"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultsRepo is the mongo-backed store for the result aggregator.
type ResultsRepo struct{}

func NewResultsRepo() *ResultsRepo { return &ResultsRepo{} }

func (r *ResultsRepo) StudentByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var st models.Student
	err := StudentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("student")
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *ResultsRepo) SubjectByID(ctx context.Context, id primitive.ObjectID) (*models.Subject, error) {
	var sub models.Subject
	err := SubjectCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("subject")
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *ResultsRepo) SectionByID(ctx context.Context, id primitive.ObjectID) (*models.Section, error) {
	var sec models.Section
	err := SectionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&sec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("section")
	}
	if err != nil {
		return nil, err
	}
	return &sec, nil
}

// InsertSubjectResult relies on the unique (studentId, subjectId,
// academicYear, term) index for duplicate rejection.
func (r *ResultsRepo) InsertSubjectResult(ctx context.Context, result *models.SubjectResult) error {
	result.ID = primitive.NewObjectID()
	_, err := SubjectResultCollection.InsertOne(ctx, result)
	if mongo.IsDuplicateKeyError(err) {
		return errs.Duplicate("subject result for this student/subject/term")
	}
	return err
}

func (r *ResultsRepo) SubjectResultByID(ctx context.Context, id primitive.ObjectID) (*models.SubjectResult, error) {
	var result models.SubjectResult
	err := SubjectResultCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("subject result")
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultsRepo) ReplaceSubjectResult(ctx context.Context, result *models.SubjectResult) error {
	res, err := SubjectResultCollection.ReplaceOne(ctx, bson.M{"_id": result.ID}, result)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("subject result")
	}
	return nil
}

func (r *ResultsRepo) SubjectResultsByTerm(ctx context.Context, studentID primitive.ObjectID, academicYear, term string) ([]models.SubjectResult, error) {
	cursor, err := SubjectResultCollection.Find(ctx, bson.M{
		"studentId":    studentID,
		"academicYear": academicYear,
		"term":         term,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.SubjectResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ResultsRepo) GradeBands(ctx context.Context) ([]models.GradeDefinition, error) {
	cursor, err := GradeDefinitionCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"minScore": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bands []models.GradeDefinition
	if err := cursor.All(ctx, &bands); err != nil {
		return nil, err
	}
	return bands, nil
}

// UpsertOverall writes the derived outcome keyed by (studentId, academicYear,
// term); the unique index keeps concurrent recomputation from duplicating it.
func (r *ResultsRepo) UpsertOverall(ctx context.Context, result *models.OverallResult) error {
	filter := bson.M{"studentId": result.StudentID, "academicYear": result.AcademicYear, "term": result.Term}
	update := bson.M{"$set": bson.M{
		"totalPercentage": result.TotalPercentage,
		"status":          result.Status,
		"classTeacherId":  result.ClassTeacherID,
	}}
	_, err := OverallResultCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert overall result: %w", err)
	}
	return nil
}

func (r *ResultsRepo) OverallByKey(ctx context.Context, studentID primitive.ObjectID, academicYear, term string) (*models.OverallResult, error) {
	var result models.OverallResult
	err := OverallResultCollection.FindOne(ctx, bson.M{
		"studentId":    studentID,
		"academicYear": academicYear,
		"term":         term,
	}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("overall result")
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
