package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectDatabase opens the Mongo connection described by MONGO_URI and
// verifies it with a ping.
func ConnectDatabase() (*mongo.Client, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}

// InitDB connects to Mongo and returns the restaurants collection, fatally
// on failure. Database and collection names come from env with defaults
// matching the seed data.
func InitDB() *mongo.Collection {
	client, err := ConnectDatabase()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "restaurantdb"
	}
	collName := os.Getenv("MONGO_COLLECTION")
	if collName == "" {
		collName = "restaurants"
	}

	return client.Database(dbName).Collection(collName)
}
