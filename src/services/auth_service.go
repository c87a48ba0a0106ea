package services

import (
	"context"
	"strings"
	"time"

	DB "github.com/NITHINKR06/wellness/src/database"
	"github.com/NITHINKR06/wellness/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser creates an account with a bcrypt-hashed password.
func RegisterUser(ctx context.Context, email, password string) (*models.User, error) {
	email = sanitizeEmail(email)

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &models.ValidationError{Message: "Email is already registered"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// AuthenticateUser verifies the credential pair and returns the account.
func AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	email = sanitizeEmail(email)

	var dbUser models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&dbUser)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &models.AuthError{Message: "Invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, &models.AuthError{Message: "Invalid credentials"}
	}

	return &dbUser, nil
}
