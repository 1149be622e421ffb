package usecase

import (
	"context"
	"errors"
	"fmt"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/internal/dto/request"
	"account-service/internal/dto/response"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, user *entity.User) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, user *entity.User, req *request.UpdateRequest) (*response.ProfileResponse, error)
	AdminUpdate(ctx context.Context, admin *entity.User, targetID string, req *request.UpdateRequest) (*response.ProfileResponse, error)
	Activate(ctx context.Context, user *entity.User) (*response.ProfileResponse, error)
	Deactivate(ctx context.Context, user *entity.User) (*response.ProfileResponse, error)
}

type userService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) UserService {
	return &userService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// GetProfile returns the caller's profile with a freshly issued token
func (us *userService) GetProfile(ctx context.Context, user *entity.User) (*response.ProfileResponse, error) {
	token, err := utils.CreateUserToken(user.FirstName, user.LastName, us.config.JWT.Secret)
	if err != nil {
		us.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return response.ProfileToResponse(user, token), nil
}

// UpdateProfile applies a partial self-update. Name changes are checked
// against the unique pair before the write; the token is re-issued for the
// updated identity.
func (us *userService) UpdateProfile(ctx context.Context, user *entity.User, req *request.UpdateRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req.User); len(errs) > 0 {
		us.log.Warn("Update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	updated, err := us.applyUpdate(ctx, user, &req.User)
	if err != nil {
		return nil, err
	}

	token, err := utils.CreateUserToken(updated.FirstName, updated.LastName, us.config.JWT.Secret)
	if err != nil {
		us.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", updated.ID))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	us.log.Info("User updated", zap.String("user_id", updated.ID))

	return response.ProfileToResponse(updated, token), nil
}

// AdminUpdate applies a partial update to another user. Password changes are
// forbidden through this path. The token in the response belongs to the admin
// caller, not the target.
func (us *userService) AdminUpdate(ctx context.Context, admin *entity.User, targetID string, req *request.UpdateRequest) (*response.ProfileResponse, error) {
	if req.User.Password != nil {
		us.log.Warn("Admin update with password field",
			zap.String("admin_id", admin.ID),
			zap.String("target_id", targetID))
		return nil, ErrPasswordNotAllowed
	}

	if errs := utils.ValidateStruct(req.User); len(errs) > 0 {
		us.log.Warn("Admin update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	target, err := us.repo.User.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		us.log.Error("Failed to find target user",
			zap.Error(err), zap.String("target_id", targetID))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	updated, err := us.applyUpdate(ctx, target, &req.User)
	if err != nil {
		return nil, err
	}

	// Refresh the admin's own session token
	token, err := utils.CreateUserToken(admin.FirstName, admin.LastName, us.config.JWT.Secret)
	if err != nil {
		us.log.Error("Failed to issue token", zap.Error(err), zap.String("admin_id", admin.ID))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	us.log.Info("User updated by admin",
		zap.String("admin_id", admin.ID),
		zap.String("target_id", updated.ID))

	return response.ProfileToResponse(updated, token), nil
}

// Activate flips is_active on and returns the refreshed profile
func (us *userService) Activate(ctx context.Context, user *entity.User) (*response.ProfileResponse, error) {
	return us.setActive(ctx, user, true)
}

// Deactivate flips is_active off and returns the refreshed profile
func (us *userService) Deactivate(ctx context.Context, user *entity.User) (*response.ProfileResponse, error) {
	return us.setActive(ctx, user, false)
}

// ==================== HELPER METHODS ====================

func (us *userService) setActive(ctx context.Context, user *entity.User, active bool) (*response.ProfileResponse, error) {
	updated, err := us.repo.User.ApplyFields(ctx, user, map[string]any{"is_active": active})
	if err != nil {
		us.log.Error("Failed to toggle activation",
			zap.Error(err),
			zap.String("user_id", user.ID),
			zap.Bool("active", active))
		return nil, fmt.Errorf("failed to update activation: %w", err)
	}

	token, err := utils.CreateUserToken(user.FirstName, user.LastName, us.config.JWT.Secret)
	if err != nil {
		us.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	us.log.Info("User activation toggled",
		zap.String("user_id", user.ID),
		zap.Bool("active", active))

	return response.ProfileToResponse(updated, token), nil
}

// applyUpdate runs the uniqueness-checked partial update shared by the self
// and admin paths.
func (us *userService) applyUpdate(ctx context.Context, current *entity.User, upd *request.UpdateUser) (*entity.User, error) {
	// Effective name pair after the update
	firstName := current.FirstName
	lastName := current.LastName
	if upd.FirstName != nil {
		firstName = *upd.FirstName
	}
	if upd.LastName != nil {
		lastName = *upd.LastName
	}

	if firstName != current.FirstName || lastName != current.LastName {
		_, err := us.repo.User.FindByName(ctx, firstName, lastName)
		if err == nil {
			return nil, repository.ErrConflict
		}
		if !errors.Is(err, repository.ErrNotFound) {
			us.log.Error("Failed to check name pair", zap.Error(err))
			return nil, fmt.Errorf("failed to check name availability: %w", err)
		}
	}

	updated, err := us.repo.User.Update(ctx, current, upd.ToEntityUpdate())
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, repository.ErrConflict
		}
		us.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", current.ID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}
