package routers

import (
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.Authenticate).Get("/user", userController.ListUsers)
	router.Get("/admin/{email}", userController.CheckAdminStatus)
	router.With(middlewares.Authenticate).Put("/user/admin/{email}", userController.PromoteToAdmin)
	router.Put("/user/{email}", userController.UpsertUser)
}
