package services

import (
	"context"

	"doctors-portal-service/internal/app/models"
)

type serviceUsecase struct {
	ServiceRepository ServiceRepository
	BookingFinder     BookingFinder
}

func NewServiceUsecase(serviceRepository ServiceRepository, bookingFinder BookingFinder) ServiceUsecase {
	return &serviceUsecase{
		ServiceRepository: serviceRepository,
		BookingFinder:     bookingFinder,
	}
}

func (uc *serviceUsecase) ListServices(ctx context.Context) ([]models.Service, error) {
	return uc.ServiceRepository.FindAll(ctx)
}

// GetAvailableSlots returns every service with only the slots still free on
// the given date. It walks the full catalog against the day's bookings in
// memory; datasets are small enough that an aggregation pipeline is not
// worth the ordering subtleties it would introduce.
func (uc *serviceUsecase) GetAvailableSlots(ctx context.Context, date string) ([]models.Service, error) {
	services, err := uc.ServiceRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.BookingFinder.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	for i := range services {
		bookedSlots := make(map[string]struct{})
		for _, booking := range bookings {
			if booking.Treatment == services[i].Name {
				bookedSlots[booking.Slot] = struct{}{}
			}
		}

		available := make([]string, 0, len(services[i].Slots))
		for _, slot := range services[i].Slots {
			if _, booked := bookedSlots[slot]; !booked {
				available = append(available, slot)
			}
		}
		services[i].Slots = available
	}

	return services, nil
}
