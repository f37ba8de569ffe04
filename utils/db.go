// utils/db.go
package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB builds the Atlas client and pings it once at startup.
// Connection failures are logged, never fatal: the server listens on its
// port regardless and store calls surface their own errors per request.
func ConnectDB() *mongo.Client {
	uri := fmt.Sprintf("mongodb+srv://%s:%s@cluster0.lczeaqj.mongodb.net/?retryWrites=true&w=majority",
		os.Getenv("DB_USER"), os.Getenv("DB_PASS"))

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		log.Println("Could not create MongoDB client:", err)
		// Hand back a default client so the server still starts; every
		// store call will surface its own error per request.
		fallback, ferr := mongo.Connect(context.TODO(), options.Client())
		if ferr != nil {
			log.Println("Could not create fallback MongoDB client:", ferr)
		}
		return fallback
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		log.Println("MongoDB ping failed:", err)
		return client
	}

	log.Println("Pinged your deployment. You successfully connected to MongoDB!")
	return client
}
