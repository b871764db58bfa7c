package database

import (
	"context"
	"fmt"

	"doctors-portal-service/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewMongoDB builds the single long-lived client that every repository
// shares. A failed ping is logged but not fatal: the HTTP listener starts
// regardless and data routes surface the store failure per call.
func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatal("Failed to construct mongo client", zap.Error(err))
	}
	if err := client.Ping(context.TODO(), nil); err != nil {
		log.Error("Failed to ping mongo database, data routes will fail until it is reachable", zap.Error(err))
		return client
	}
	log.Info("Successfully connected to mongo database")
	return client
}
