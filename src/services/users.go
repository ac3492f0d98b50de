package services

import (
	"context"
	"errors"

	DB "Backend-EduSync/src/database"
	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetUserByID returns a user account. The password hash is cleared.
func GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("user")
	}
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// CreateUser provisions an account with a hashed password. The email unique
// index turns a re-registration into a conflict.
func CreateUser(ctx context.Context, user *models.User, password string) error {
	if user.Email == "" || password == "" {
		return errs.Validation("email and password are required")
	}
	switch user.Role {
	case models.RoleAdmin, models.RoleTeacher, models.RoleStudent, models.RoleParent:
	default:
		return errs.Validation("unknown role " + user.Role)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	user.ID = primitive.NewObjectID()
	user.Password = hash
	user.IsActive = true
	if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.Duplicate("user")
		}
		return err
	}
	user.Password = ""
	return nil
}
