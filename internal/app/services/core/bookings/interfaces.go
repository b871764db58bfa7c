package bookings

import (
	"context"

	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	ListBookingsByPatient(ctx context.Context, patient, requesterEmail string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error)
}

type BookingRepository interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	FindByTriple(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) (insertedID string, err error)
}
