package responses

import "doctors-portal-service/internal/app/models"

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// CreateBooking is the booking creation body: Result on a fresh insert,
// Booking when the same (treatment, date, patient) triple already exists.
type CreateBooking struct {
	Success bool            `json:"success"`
	Result  *InsertResult   `json:"result,omitempty"`
	Booking *models.Booking `json:"booking,omitempty"`
}
