package routers

import (
	"net/http"

	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/services/core/bookings"
	"doctors-portal-service/internal/app/services/core/services"
	"doctors-portal-service/internal/app/services/core/users"
	"doctors-portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	middlewares *middlewares.Middlewares,
	serviceController *services.ServiceController,
	bookingController *bookings.BookingController,
	userController *users.UserController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(cors.Handler(corsOptions))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlain)
		w.WriteHeader(constvars.StatusOK)
		w.Write([]byte(constvars.GreetingMessage))
	})

	attachServiceRoutes(router, serviceController)
	attachBookingRoutes(router, middlewares, bookingController)
	attachUserRoutes(router, middlewares, userController)
}
