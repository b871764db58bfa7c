package users

import (
	"context"

	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
)

type userUsecase struct {
	UserRepository UserRepository
	InternalConfig *config.InternalConfig
}

func NewUserUsecase(userRepository UserRepository, internalConfig *config.InternalConfig) UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		InternalConfig: internalConfig,
	}
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

func (uc *userUsecase) CheckAdminStatus(ctx context.Context, email string) (*responses.AdminStatus, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	return &responses.AdminStatus{Admin: user.Role == constvars.RoleAdmin}, nil
}

// PromoteToAdmin grants the admin role to the target. Only a requester whose
// own record already holds the admin role may do so.
func (uc *userUsecase) PromoteToAdmin(ctx context.Context, targetEmail, requesterEmail string) (*responses.UpdateResult, error) {
	requester, err := uc.UserRepository.FindByEmail(ctx, requesterEmail)
	if err != nil {
		return nil, err
	}
	if requester == nil || requester.Role != constvars.RoleAdmin {
		return nil, exceptions.ErrRequesterNotAdmin(nil)
	}
	return uc.UserRepository.SetRole(ctx, targetEmail, constvars.RoleAdmin)
}

// UpsertUser replaces (or creates) the profile keyed by the path email and
// unconditionally issues a fresh identity token; no credential check exists
// on this route.
func (uc *userUsecase) UpsertUser(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpsertUser, error) {
	user := &models.User{
		Email: email,
		Name:  request.Name,
		Role:  request.Role,
	}

	result, err := uc.UserRepository.ReplaceByEmail(ctx, email, user)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(email, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.UpsertUser{Result: result, Token: token}, nil
}
