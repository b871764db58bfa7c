package routers

import (
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(middlewares.Authenticate).Get("/booking", bookingController.ListBookingsByPatient)
	// Booking creation is reachable without a token; the client is expected
	// to have gone through /available first.
	router.Post("/booking", bookingController.CreateBooking)
}
