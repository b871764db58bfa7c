package services

import (
	"context"
	"testing"

	"doctors-portal-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

type fakeServiceRepository struct {
	services []models.Service
	err      error
}

func (f *fakeServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Service, len(f.services))
	for i, s := range f.services {
		out[i] = s
		out[i].Slots = append([]string(nil), s.Slots...)
	}
	return out, nil
}

type fakeBookingFinder struct {
	bookings []models.Booking
}

func (f *fakeBookingFinder) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	matched := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.Date == date {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func catalog() []models.Service {
	return []models.Service{
		{Name: "Teeth Cleaning", Slots: []string{"08:00", "09:00", "10:00", "11:00"}},
		{Name: "Cavity Protection", Slots: []string{"08:00", "09:00"}},
	}
}

func TestGetAvailableSlots(t *testing.T) {
	t.Run("Date With No Bookings Returns Full Catalog", func(t *testing.T) {
		uc := NewServiceUsecase(&fakeServiceRepository{services: catalog()}, &fakeBookingFinder{})

		services, err := uc.GetAvailableSlots(context.Background(), "2024-01-05")
		assert.NoError(t, err)
		assert.Len(t, services, 2)
		assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, services[0].Slots)
		assert.Equal(t, []string{"08:00", "09:00"}, services[1].Slots)
	})

	t.Run("Booked Slots Are Removed Order Preserved", func(t *testing.T) {
		finder := &fakeBookingFinder{bookings: []models.Booking{
			{Treatment: "Teeth Cleaning", Date: "2024-01-05", Slot: "09:00", Patient: "a@x.com"},
			{Treatment: "Teeth Cleaning", Date: "2024-01-05", Slot: "11:00", Patient: "b@x.com"},
		}}
		uc := NewServiceUsecase(&fakeServiceRepository{services: catalog()}, finder)

		services, err := uc.GetAvailableSlots(context.Background(), "2024-01-05")
		assert.NoError(t, err)
		assert.Equal(t, []string{"08:00", "10:00"}, services[0].Slots)
	})

	t.Run("Bookings Of Other Services Do Not Interfere", func(t *testing.T) {
		finder := &fakeBookingFinder{bookings: []models.Booking{
			{Treatment: "Cavity Protection", Date: "2024-01-05", Slot: "08:00", Patient: "a@x.com"},
		}}
		uc := NewServiceUsecase(&fakeServiceRepository{services: catalog()}, finder)

		services, err := uc.GetAvailableSlots(context.Background(), "2024-01-05")
		assert.NoError(t, err)
		assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, services[0].Slots)
		assert.Equal(t, []string{"09:00"}, services[1].Slots)
	})

	t.Run("Bookings Of Other Dates Do Not Interfere", func(t *testing.T) {
		finder := &fakeBookingFinder{bookings: []models.Booking{
			{Treatment: "Teeth Cleaning", Date: "2024-01-04", Slot: "09:00", Patient: "a@x.com"},
		}}
		uc := NewServiceUsecase(&fakeServiceRepository{services: catalog()}, finder)

		services, err := uc.GetAvailableSlots(context.Background(), "2024-01-05")
		assert.NoError(t, err)
		assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, services[0].Slots)
	})

	t.Run("Fully Booked Service Has Empty Slots", func(t *testing.T) {
		finder := &fakeBookingFinder{bookings: []models.Booking{
			{Treatment: "Cavity Protection", Date: "2024-01-05", Slot: "08:00", Patient: "a@x.com"},
			{Treatment: "Cavity Protection", Date: "2024-01-05", Slot: "09:00", Patient: "b@x.com"},
		}}
		uc := NewServiceUsecase(&fakeServiceRepository{services: catalog()}, finder)

		services, err := uc.GetAvailableSlots(context.Background(), "2024-01-05")
		assert.NoError(t, err)
		assert.Empty(t, services[1].Slots)
	})

	t.Run("Empty Date Matches No Bookings", func(t *testing.T) {
		finder := &fakeBookingFinder{bookings: []models.Booking{
			{Treatment: "Teeth Cleaning", Date: "2024-01-05", Slot: "09:00", Patient: "a@x.com"},
		}}
		uc := NewServiceUsecase(&fakeServiceRepository{services: catalog()}, finder)

		services, err := uc.GetAvailableSlots(context.Background(), "")
		assert.NoError(t, err)
		assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, services[0].Slots)
	})
}

func TestListServices(t *testing.T) {
	uc := NewServiceUsecase(&fakeServiceRepository{services: catalog()}, &fakeBookingFinder{})

	services, err := uc.ListServices(context.Background())
	assert.NoError(t, err)
	assert.Len(t, services, 2)
	assert.Equal(t, "Teeth Cleaning", services[0].Name)
}
