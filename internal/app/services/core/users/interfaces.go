package users

import (
	"context"

	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CheckAdminStatus(ctx context.Context, email string) (*responses.AdminStatus, error)
	PromoteToAdmin(ctx context.Context, targetEmail, requesterEmail string) (*responses.UpdateResult, error)
	UpsertUser(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpsertUser, error)
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ReplaceByEmail(ctx context.Context, email string, user *models.User) (*responses.UpdateResult, error)
	SetRole(ctx context.Context, email, role string) (*responses.UpdateResult, error)
}
