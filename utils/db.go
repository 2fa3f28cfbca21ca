package utils

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectDB establishes the MongoDB connection used for the whole process
// lifetime. Failure to connect is fatal.
func ConnectDB(uri string) *mongo.Client {
	if uri == "" {
		log.Fatal("MONGO_URI is not defined in the environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.WithError(err).Fatal("Error connecting to the database")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.WithError(err).Fatal("Error connecting to the database")
	}

	log.Info("DB Connected Successfully")
	return client
}
