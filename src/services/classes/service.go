// Package classes manages classes, sections and subjects, and answers
// teacher-assignment checks for the HTTP layer's permission enforcement.
package classes

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

// CreateClass เพิ่มระดับชั้นใหม่
func CreateClass(ctx context.Context, class *models.Class) error {
	if class.Name == "" || class.AcademicYear == "" {
		return errs.Validation("name and academicYear are required")
	}
	class.ID = primitive.NewObjectID()
	_, err := DB.ClassCollection.InsertOne(ctx, class)
	return err
}

// GetClasses returns all classes sorted by name.
func GetClasses(ctx context.Context) ([]models.Class, error) {
	cursor, err := DB.ClassCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
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

// GetClassByID ดึงข้อมูลระดับชั้นตาม ID
func GetClassByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var class models.Class
	err := DB.ClassCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("class")
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// CreateSection เพิ่มห้องเรียนใหม่ใน class
func CreateSection(ctx context.Context, sec *models.Section) error {
	if sec.Name == "" || sec.ClassID.IsZero() {
		return errs.Validation("name and classId are required")
	}
	if _, err := GetClassByID(ctx, sec.ClassID); err != nil {
		return err
	}
	sec.ID = primitive.NewObjectID()
	_, err := DB.SectionCollection.InsertOne(ctx, sec)
	return err
}

// GetSections returns the sections of a class.
func GetSections(ctx context.Context, classID primitive.ObjectID) ([]models.Section, error) {
	cursor, err := DB.SectionCollection.Find(ctx, bson.M{"classId": classID}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sections []models.Section
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// AssignTeachers sets the class teacher and subject teachers of a section.
func AssignTeachers(ctx context.Context, sectionID, classTeacherID primitive.ObjectID, teacherIDs []primitive.ObjectID) error {
	res, err := DB.SectionCollection.UpdateOne(ctx, bson.M{"_id": sectionID}, bson.M{"$set": bson.M{
		"classTeacherId": classTeacherID,
		"teacherIds":     teacherIDs,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("section")
	}
	return nil
}

// TeacherAssigned reports whether a teacher teaches the given class/section.
// The HTTP layer uses this for the marking permission check.
func TeacherAssigned(ctx context.Context, teacherID, classID, sectionID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id":     sectionID,
		"classId": classID,
		"$or": bson.A{
			bson.M{"classTeacherId": teacherID},
			bson.M{"teacherIds": teacherID},
		},
	}
	count, err := DB.SectionCollection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateSubject เพิ่มวิชาใหม่
func CreateSubject(ctx context.Context, sub *models.Subject) error {
	if sub.Name == "" || sub.ClassID.IsZero() {
		return errs.Validation("name and classId are required")
	}
	if sub.FullMark <= 0 {
		return errs.Validation("fullMark must be greater than 0")
	}
	if _, err := GetClassByID(ctx, sub.ClassID); err != nil {
		return err
	}
	sub.ID = primitive.NewObjectID()
	_, err := DB.SubjectCollection.InsertOne(ctx, sub)
	return err
}

// GetSubjects returns the subjects of a class.
func GetSubjects(ctx context.Context, classID primitive.ObjectID) ([]models.Subject, error) {
	cursor, err := DB.SubjectCollection.Find(ctx, bson.M{"classId": classID}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subjects []models.Subject
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}
