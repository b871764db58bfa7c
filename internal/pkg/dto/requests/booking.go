package requests

// CreateBooking mirrors the booking document shape; the caller is trusted to
// have consulted the availability endpoint first.
type CreateBooking struct {
	Treatment   string `json:"treatment"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
	Patient     string `json:"patient"`
	PatientName string `json:"patientName,omitempty"`
	Phone       string `json:"phone,omitempty"`
}
