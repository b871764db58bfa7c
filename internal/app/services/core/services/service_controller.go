package services

import (
	"net/http"

	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ServiceController struct {
	Log            *zap.Logger
	ServiceUsecase ServiceUsecase
}

func NewServiceController(log *zap.Logger, serviceUsecase ServiceUsecase) *ServiceController {
	return &ServiceController{
		Log:            log,
		ServiceUsecase: serviceUsecase,
	}
}

func (ctrl *ServiceController) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := ctrl.ServiceUsecase.ListServices(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, services)
}

func (ctrl *ServiceController) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	services, err := ctrl.ServiceUsecase.GetAvailableSlots(r.Context(), date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, services)
}
