package bookings

import (
	"context"

	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
)

type bookingUsecase struct {
	BookingRepository BookingRepository
}

func NewBookingUsecase(bookingRepository BookingRepository) BookingUsecase {
	return &bookingUsecase{
		BookingRepository: bookingRepository,
	}
}

// ListBookingsByPatient only serves the caller's own bookings: the patient
// query parameter must equal the email decoded from the token.
func (uc *bookingUsecase) ListBookingsByPatient(ctx context.Context, patient, requesterEmail string) ([]models.Booking, error) {
	if patient != requesterEmail {
		return nil, exceptions.ErrPatientMismatch(nil)
	}
	return uc.BookingRepository.FindByPatient(ctx, patient)
}

// CreateBooking rejects an exact (treatment, date, patient) duplicate softly,
// returning the existing record with success=false instead of an error. The
// check and the insert are two store round trips, so two concurrent identical
// requests can both pass the check; the store carries no uniqueness index.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	existing, err := uc.BookingRepository.FindByTriple(ctx, request.Treatment, request.Date, request.Patient)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &responses.CreateBooking{Success: false, Booking: existing}, nil
	}

	booking := &models.Booking{
		Treatment:   request.Treatment,
		Date:        request.Date,
		Slot:        request.Slot,
		Patient:     request.Patient,
		PatientName: request.PatientName,
		Phone:       request.Phone,
	}
	insertedID, err := uc.BookingRepository.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}

	return &responses.CreateBooking{
		Success: true,
		Result:  &responses.InsertResult{InsertedID: insertedID},
	}, nil
}
