package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo holds the client for the document store backing business posts.
var Mongo *mongo.Client

// InitMongo connects to MongoDB and verifies the connection.
func InitMongo(uri string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	Mongo, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Unable to connect to MongoDB: %v\n", err)
	}

	if err = Mongo.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB ping failed: %v\n", err)
	}

	log.Println("Successfully connected to MongoDB")
}

// CloseMongo disconnects the Mongo client.
func CloseMongo() {
	if Mongo != nil {
		if err := Mongo.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting MongoDB: %v", err)
		}
	}
}
