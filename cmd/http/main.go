package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/delivery/http/routers"
	"doctors-portal-service/internal/app/drivers/database"
	"doctors-portal-service/internal/app/drivers/logger"
	"doctors-portal-service/internal/app/services/core/bookings"
	"doctors-portal-service/internal/app/services/core/services"
	"doctors-portal-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoDB := database.NewMongoDB(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Doctors portal listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := mongoDB.Disconnect(shutdownCtx); err != nil {
		log.Error("Failed to disconnect mongo client", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Booking
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	bookingUsecase := bookings.NewBookingUsecase(bookingMongoRepository)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Service catalog and availability
	serviceMongoRepository := services.NewServiceMongoRepository(bootstrap.MongoDB, dbName)
	serviceUsecase := services.NewServiceUsecase(serviceMongoRepository, bookingMongoRepository)
	serviceController := services.NewServiceController(bootstrap.Logger, serviceUsecase)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.InternalConfig)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	routers.SetupRoutes(bootstrap.Router, middlewares, serviceController, bookingController, userController)
}
