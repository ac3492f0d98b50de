// Package services holds the flat authentication service; the aggregation
// services live in their own subpackages.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "Backend-EduSync/src/database"
	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"
	"Backend-EduSync/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// LoginResponse carries the issued tokens and the user's public profile.
type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         models.User `json:"user"`
}

// Login verifies the password and issues an access/refresh token pair.
func Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if email == "" || password == "" {
		return nil, errs.Validation("email and password are required")
	}

	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": email, "isActive": true}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("invalid credentials: %w", errs.ErrForbidden)
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, fmt.Errorf("invalid credentials: %w", errs.ErrForbidden)
	}

	accessToken, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return nil, err
	}

	user.Password = ""
	return &LoginResponse{AccessToken: accessToken, RefreshToken: refreshToken, User: user}, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func Refresh(ctx context.Context, userID, refreshToken string) (string, error) {
	ok, err := utils.ValidateRefreshToken(userID, refreshToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("invalid refresh token: %w", errs.ErrForbidden)
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", errs.Validation("invalid user id")
	}

	var user models.User
	if err := DB.UserCollection.FindOne(ctx, bson.M{"_id": oid, "isActive": true}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", errs.NotFound("user")
		}
		return "", err
	}

	return utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
}

// Logout revokes the refresh token and blacklists the current access token
// for the remainder of its lifetime.
func Logout(userID, accessToken string) error {
	if err := utils.DeleteRefreshToken(userID); err != nil {
		return err
	}
	return utils.BlacklistToken(accessToken, 24*time.Hour)
}

// HashPassword is used by user provisioning (seeds and admin endpoints).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
