// Package students is the student roster CRUD service.
package students

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

const queryTimeout = 5 * time.Second

// Create เพิ่มนักเรียนใหม่
func Create(ctx context.Context, st *models.Student) error {
	if st.Code == "" || st.Name == "" {
		return errs.Validation("code and name are required")
	}
	if st.ClassID.IsZero() || st.SectionID.IsZero() {
		return errs.Validation("classId and sectionId are required")
	}

	count, err := DB.SectionCollection.CountDocuments(ctx, bson.M{"_id": st.SectionID, "classId": st.ClassID})
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NotFound("class/section")
	}

	st.ID = primitive.NewObjectID()
	st.IsActive = true
	_, err = DB.StudentCollection.InsertOne(ctx, st)
	return err
}

// GetAll returns a page of students, optionally filtered by class/section and
// a name/code search.
func GetAll(ctx context.Context, params models.PaginationParams, classID, sectionID *primitive.ObjectID) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"isActive": true}
	if classID != nil {
		filter["classId"] = *classID
	}
	if sectionID != nil {
		filter["sectionId"] = *sectionID
	}
	if params.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			bson.M{"code": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := DB.StudentCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.StudentCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(students, total, params), nil
}

// GetByID ดึงข้อมูลนักเรียนตาม ID
func GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var st models.Student
	err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("student")
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Update แก้ไขข้อมูลนักเรียน
func Update(ctx context.Context, id primitive.ObjectID, st *models.Student) error {
	update := bson.M{"$set": bson.M{
		"code":      st.Code,
		"name":      st.Name,
		"classId":   st.ClassID,
		"sectionId": st.SectionID,
		"rollNo":    st.RollNo,
		"gender":    st.Gender,
		"dob":       st.DOB,
		"parentId":  st.ParentID,
	}}
	res, err := DB.StudentCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("student")
	}
	return nil
}

// Deactivate soft-deletes a student; attendance and result history stays.
func Deactivate(ctx context.Context, id primitive.ObjectID) error {
	res, err := DB.StudentCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("student")
	}
	return nil
}
