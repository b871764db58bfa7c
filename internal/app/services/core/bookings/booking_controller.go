package bookings

import (
	"net/http"

	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase BookingUsecase
}

func NewBookingController(log *zap.Logger, bookingUsecase BookingUsecase) *BookingController {
	return &BookingController{
		Log:            log,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) ListBookingsByPatient(w http.ResponseWriter, r *http.Request) {
	patient := r.URL.Query().Get("patient")
	requesterEmail, _ := r.Context().Value(constvars.ContextEmailKey).(string)

	bookingsForPatient, err := ctrl.BookingUsecase.ListBookingsByPatient(r.Context(), patient, requesterEmail)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, bookingsForPatient)
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBooking)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.BookingUsecase.CreateBooking(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}
