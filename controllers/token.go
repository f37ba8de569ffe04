package controllers

import (
	"encoding/json"
	"net/http"

	"singerx-backend/utils"
)

// TokenController handles token issuance
type TokenController struct{}

// NewTokenController creates a new TokenController
func NewTokenController() *TokenController {
	return &TokenController{}
}

// Create signs the posted claims object and returns the bearer token
func (tc *TokenController) Create(w http.ResponseWriter, r *http.Request) {
	var user map[string]interface{}
	err := json.NewDecoder(r.Body).Decode(&user)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}
