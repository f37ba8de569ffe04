package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"singerx-backend/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CartController handles cart-related requests
type CartController struct {
	Collection *mongo.Collection
}

// NewCartController creates a new CartController
func NewCartController(client *mongo.Client) *CartController {
	collection := client.Database("singerx").Collection("cart")
	return &CartController{
		Collection: collection,
	}
}

// AddCartItem inserts a cart item. The referenced class is not validated.
func (cc *CartController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	err := json.NewDecoder(r.Body).Decode(&item)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := cc.Collection.InsertOne(ctx, item)
	if err != nil {
		http.Error(w, "Error adding cart item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
