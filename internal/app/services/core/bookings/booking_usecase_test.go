package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

type fakeBookingRepository struct {
	bookings []models.Booking
}

func (f *fakeBookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	matched := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.Date == date {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (f *fakeBookingRepository) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	matched := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.Patient == patient {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (f *fakeBookingRepository) FindByTriple(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	for i, b := range f.bookings {
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepository) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	f.bookings = append(f.bookings, *booking)
	return fmt.Sprintf("generated-%d", len(f.bookings)), nil
}

func TestCreateBooking(t *testing.T) {
	t.Run("Novel Triple Inserts And Succeeds", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := NewBookingUsecase(repo)

		response, err := uc.CreateBooking(context.Background(), &requests.CreateBooking{
			Treatment: "Teeth Cleaning",
			Date:      "2024-01-05",
			Slot:      "10:00",
			Patient:   "a@x.com",
		})
		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.NotNil(t, response.Result)
		assert.Nil(t, response.Booking)
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("Duplicate Triple Is Soft Rejected", func(t *testing.T) {
		repo := &fakeBookingRepository{bookings: []models.Booking{
			{Treatment: "Teeth Cleaning", Date: "2024-01-05", Slot: "10:00", Patient: "a@x.com"},
		}}
		uc := NewBookingUsecase(repo)

		response, err := uc.CreateBooking(context.Background(), &requests.CreateBooking{
			Treatment: "Teeth Cleaning",
			Date:      "2024-01-05",
			Slot:      "11:00",
			Patient:   "a@x.com",
		})
		assert.NoError(t, err)
		assert.False(t, response.Success)
		assert.Nil(t, response.Result)
		assert.NotNil(t, response.Booking)
		assert.Equal(t, "10:00", response.Booking.Slot)
		assert.Len(t, repo.bookings, 1, "store booking count must not increase")
	})

	t.Run("Same Slot Different Patients Both Succeed", func(t *testing.T) {
		repo := &fakeBookingRepository{bookings: []models.Booking{
			{Treatment: "Teeth Cleaning", Date: "2024-01-05", Slot: "10:00", Patient: "a@x.com"},
		}}
		uc := NewBookingUsecase(repo)

		response, err := uc.CreateBooking(context.Background(), &requests.CreateBooking{
			Treatment: "Teeth Cleaning",
			Date:      "2024-01-05",
			Slot:      "10:00",
			Patient:   "b@x.com",
		})
		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.Len(t, repo.bookings, 2)
	})
}

func TestListBookingsByPatient(t *testing.T) {
	repo := &fakeBookingRepository{bookings: []models.Booking{
		{Treatment: "Teeth Cleaning", Date: "2024-01-05", Slot: "10:00", Patient: "a@x.com"},
		{Treatment: "Cavity Protection", Date: "2024-01-06", Slot: "08:00", Patient: "a@x.com"},
		{Treatment: "Teeth Cleaning", Date: "2024-01-05", Slot: "11:00", Patient: "b@x.com"},
	}}
	uc := NewBookingUsecase(repo)

	t.Run("Owner Sees Only Own Bookings", func(t *testing.T) {
		bookingsForPatient, err := uc.ListBookingsByPatient(context.Background(), "a@x.com", "a@x.com")
		assert.NoError(t, err)
		assert.Len(t, bookingsForPatient, 2)
		for _, b := range bookingsForPatient {
			assert.Equal(t, "a@x.com", b.Patient)
		}
	})

	t.Run("Identity Mismatch Is Forbidden", func(t *testing.T) {
		bookingsForPatient, err := uc.ListBookingsByPatient(context.Background(), "a@x.com", "b@x.com")
		assert.Error(t, err)
		assert.Nil(t, bookingsForPatient)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}
