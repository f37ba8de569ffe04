package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"singerx-backend/models"
	"singerx-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserController handles user-related requests
type UserController struct {
	Collection   *mongo.Collection
	EmailService *utils.EmailService
}

// NewUserController creates a new UserController with EmailService
func NewUserController(client *mongo.Client, emailService *utils.EmailService) *UserController {
	collection := client.Database("singerx").Collection("users")
	return &UserController{
		Collection:   collection,
		EmailService: emailService,
	}
}

// CreateUser stores a user unless one with the same email already exists.
// Repeating a request for a stored email is a no-op that reports existence.
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	err := json.NewDecoder(r.Body).Decode(&user)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.User
	err = uc.Collection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existing)
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "user already exists"})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	result, err := uc.Collection.InsertOne(ctx, user)
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	// Best effort; a mail failure never fails the signup.
	if uc.EmailService != nil {
		if err := uc.EmailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Println("Error sending welcome email:", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
