package services

import (
	"context"

	"doctors-portal-service/internal/app/models"
)

type ServiceUsecase interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetAvailableSlots(ctx context.Context, date string) ([]models.Service, error)
}

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
}

// BookingFinder is the slice of the booking repository the availability
// calculation needs.
type BookingFinder interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
}
