// routes/routes.go
package routes

import (
	"net/http"

	"singerx-backend/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application.
// middleware.AuthMiddleware is available for routes that need bearer
// tokens; no endpoint currently opts in.
func RegisterRoutes(router *mux.Router, tokenController *controllers.TokenController, classController *controllers.ClassController, instructorController *controllers.InstructorController, cartController *controllers.CartController, userController *controllers.UserController) {
	// Token issuance
	router.HandleFunc("/jwt", tokenController.Create).Methods("POST")

	// Listings
	router.HandleFunc("/classes", classController.GetClasses).Methods("GET")
	router.HandleFunc("/instructors", instructorController.GetInstructors).Methods("GET")

	// Cart and users
	router.HandleFunc("/carts", cartController.AddCartItem).Methods("POST")
	router.HandleFunc("/users", userController.CreateUser).Methods("POST")

	// Product routes
	router.HandleFunc("/products", classController.CreateClass).Methods("POST")
	router.HandleFunc("/products/{id}", classController.GetClassByID).Methods("GET")
	router.HandleFunc("/products/{id}", classController.UpdateClass).Methods("PATCH")
	router.HandleFunc("/products/{id}", classController.DeleteClass).Methods("DELETE")

	// Health check
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Server is running"))
	}).Methods("GET")
}
