package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"singerx-backend/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClassController handles class listings and the product endpoints, which
// both operate on the class collection
type ClassController struct {
	Collection *mongo.Collection
}

// NewClassController creates a new ClassController
func NewClassController(client *mongo.Client) *ClassController {
	collection := client.Database("singerx").Collection("class")
	return &ClassController{
		Collection: collection,
	}
}

// Fields returned for a single product lookup. Category is deliberately
// absent: it is settable via PATCH but never read back here.
var classProjection = bson.D{
	{Key: "toyName", Value: 1},
	{Key: "photoUrl", Value: 1},
	{Key: "sellerName", Value: 1},
	{Key: "sellerEmail", Value: 1},
	{Key: "price", Value: 1},
	{Key: "rating", Value: 1},
	{Key: "availableQuantity", Value: 1},
	{Key: "detailDescription", Value: 1},
}

// buildClassUpdate assembles the $set document for a product patch. Only
// the fixed field list is ever written.
func buildClassUpdate(class models.Class) bson.M {
	return bson.M{
		"$set": bson.M{
			"photoUrl":          class.PhotoURL,
			"toyName":           class.ToyName,
			"sellerName":        class.SellerName,
			"sellerEmail":       class.SellerEmail,
			"price":             class.Price,
			"rating":            class.Rating,
			"availableQuantity": class.AvailableQuantity,
			"detailDescription": class.DetailDescription,
			"category":          class.Category,
		},
	}
}

// listAll drains a find cursor into a typed slice. An empty collection
// yields an empty slice, not nil, so listings serialize as [].
func listAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []T{}
	}
	return results, nil
}

// GetClasses retrieves all classes
func (cc *ClassController) GetClasses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := cc.Collection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching classes", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	classes, err := listAll[models.Class](ctx, cursor)
	if err != nil {
		http.Error(w, "Error reading classes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(classes)
}

// GetClassByID retrieves a single product restricted to the projected
// field set. Unknown ids yield a JSON null body, not a 404.
func (cc *ClassController) GetClassByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(classProjection)
	var result bson.M
	err = cc.Collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&result)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, "Error fetching product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// CreateClass handles adding a new product
func (cc *ClassController) CreateClass(w http.ResponseWriter, r *http.Request) {
	var class models.Class
	err := json.NewDecoder(r.Body).Decode(&class)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := cc.Collection.InsertOne(ctx, class)
	if err != nil {
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// UpdateClass patches the fixed field list of one product
func (cc *ClassController) UpdateClass(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var class models.Class
	err = json.NewDecoder(r.Body).Decode(&class)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := cc.Collection.UpdateOne(ctx, bson.M{"_id": id}, buildClassUpdate(class))
	if err != nil {
		http.Error(w, "Error updating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteClass removes one product
func (cc *ClassController) DeleteClass(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := cc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
