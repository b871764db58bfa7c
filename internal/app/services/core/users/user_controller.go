package users

import (
	"net/http"

	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase UserUsecase
}

func NewUserController(log *zap.Logger, userUsecase UserUsecase) *UserController {
	return &UserController{
		Log:         log,
		UserUsecase: userUsecase,
	}
}

func (ctrl *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := ctrl.UserUsecase.ListUsers(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, users)
}

func (ctrl *UserController) CheckAdminStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	status, err := ctrl.UserUsecase.CheckAdminStatus(r.Context(), email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, status)
}

func (ctrl *UserController) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	targetEmail := chi.URLParam(r, "email")
	requesterEmail, _ := r.Context().Value(constvars.ContextEmailKey).(string)

	result, err := ctrl.UserUsecase.PromoteToAdmin(r.Context(), targetEmail, requesterEmail)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *UserController) UpsertUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	request := new(requests.UpsertUser)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.UserUsecase.UpsertUser(r.Context(), email, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}
