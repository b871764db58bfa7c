package routers

import (
	"doctors-portal-service/internal/app/services/core/services"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, serviceController *services.ServiceController) {
	router.Get("/service", serviceController.ListServices)
	router.Get("/available", serviceController.GetAvailableSlots)
}
