// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"singerx-backend/controllers"
	"singerx-backend/routes"
	"singerx-backend/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("ACCESS_TOKEN_SECRET"))

	// Initialize EmailService (nil when unconfigured)
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if client == nil {
			return
		}
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Println(err)
		}
	}()

	// Initialize controllers
	tokenController := controllers.NewTokenController()
	classController := controllers.NewClassController(client)
	instructorController := controllers.NewInstructorController(client)
	cartController := controllers.NewCartController(client)
	userController := controllers.NewUserController(client, emailService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, tokenController, classController, instructorController, cartController, userController)

	// CORS for the browser frontend, plus panic recovery
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	handler := handlers.RecoveryHandler()(cors(router))

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
