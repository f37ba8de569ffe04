package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"singerx-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InstructorController handles instructor-related requests
type InstructorController struct {
	Collection *mongo.Collection
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(client *mongo.Client) *InstructorController {
	collection := client.Database("singerx").Collection("instructor")
	return &InstructorController{
		Collection: collection,
	}
}

// GetInstructors retrieves all instructors
func (ic *InstructorController) GetInstructors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := ic.Collection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching instructors", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	instructors, err := listAll[models.Instructor](ctx, cursor)
	if err != nil {
		http.Error(w, "Error reading instructors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(instructors)
}
