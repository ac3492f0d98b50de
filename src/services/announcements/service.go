// Package announcements manages school announcements with audience targeting.
package announcements

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

func validAudience(a string) bool {
	switch a {
	case models.AudienceAll, models.AudienceTeachers, models.AudienceStudents, models.AudienceParents, models.AudienceClass:
		return true
	}
	return false
}

// Create เพิ่มประกาศใหม่
func Create(ctx context.Context, a *models.Announcement) error {
	if a.Title == "" || a.Body == "" {
		return errs.Validation("title and body are required")
	}
	if !validAudience(a.Audience) {
		return errs.Validation("unknown audience " + a.Audience)
	}
	if a.Audience == models.AudienceClass && a.ClassID.IsZero() {
		return errs.Validation("classId is required for a class announcement")
	}
	if a.ToDate.Before(a.FromDate) {
		return errs.Validation("toDate is before fromDate")
	}

	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	_, err := DB.AnnouncementCollection.InsertOne(ctx, a)
	return err
}

// ListActive returns announcements whose window covers the given date and
// whose audience matches the caller's role (class announcements are included
// when classID matches).
func ListActive(ctx context.Context, role string, classID *primitive.ObjectID, at time.Time) ([]models.Announcement, error) {
	audiences := bson.A{models.AudienceAll}
	switch role {
	case models.RoleTeacher:
		audiences = append(audiences, models.AudienceTeachers)
	case models.RoleStudent:
		audiences = append(audiences, models.AudienceStudents)
	case models.RoleParent:
		audiences = append(audiences, models.AudienceParents)
	case models.RoleAdmin:
		audiences = bson.A{models.AudienceAll, models.AudienceTeachers, models.AudienceStudents, models.AudienceParents, models.AudienceClass}
	}

	clauses := bson.A{bson.M{"audience": bson.M{"$in": audiences}}}
	if classID != nil {
		clauses = append(clauses, bson.M{"audience": models.AudienceClass, "classId": *classID})
	}

	filter := bson.M{
		"fromDate": bson.M{"$lte": at},
		"toDate":   bson.M{"$gte": at},
		"$or":      clauses,
	}

	cursor, err := DB.AnnouncementCollection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Announcement
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete ลบประกาศ
func Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := DB.AnnouncementCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("announcement")
	}
	return nil
}

// GetByID ดึงประกาศตาม ID
func GetByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var a models.Announcement
	err := DB.AnnouncementCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("announcement")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
