package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/internal/dto/request"
	"account-service/internal/dto/response"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req.User); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check the name pair is still available. The unique index closes the
	// remaining window between this check and the insert.
	taken, err := s.nameIsTaken(ctx, req.User.FirstName, req.User.LastName)
	if err != nil {
		s.log.Error("Failed to check name pair",
			zap.Error(err),
			zap.String("first_name", req.User.FirstName),
			zap.String("last_name", req.User.LastName))
		return nil, fmt.Errorf("failed to check name availability: %w", err)
	}
	if taken {
		return nil, repository.ErrConflict
	}

	// 3. Create user, the store hashes the password and owns the defaults
	candidate := &entity.User{
		FirstName: req.User.FirstName,
		LastName:  req.User.LastName,
		Role:      entity.UserRole(req.User.Role),
	}

	user, err := s.repo.User.Create(ctx, candidate, req.User.Password)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, repository.ErrConflict
		}
		s.log.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// 4. Token is bound to the submitted candidate names, not the stored record
	token, err := utils.CreateUserToken(req.User.FirstName, req.User.LastName, s.config.JWT.Secret)
	if err != nil {
		s.log.Error("Failed to issue token after register",
			zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return &response.AuthResponse{
		ID:    user.ID,
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req.User); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Resolve the name pair. Unknown users collapse into ErrLoginFailed.
	user, err := s.repo.User.FindByName(ctx, req.User.FirstName, req.User.LastName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("Login for unknown name pair",
				zap.String("first_name", req.User.FirstName),
				zap.String("last_name", req.User.LastName))
			return nil, ErrLoginFailed
		}
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// 3. Check password, same generic failure as an unknown user
	if !utils.CheckPasswordHash(req.User.Password, user.HashedPass) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID))
		return nil, ErrLoginFailed
	}

	// 4. Issue token
	token, err := utils.CreateUserToken(user.FirstName, user.LastName, s.config.JWT.Secret)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	// 5. Stamp last_login, failure here does not fail the login
	now := time.Now()
	if _, err := s.repo.User.ApplyFields(ctx, user, map[string]any{"last_login": now}); err != nil {
		s.log.Warn("Failed to stamp last login",
			zap.Error(err), zap.String("user_id", user.ID))
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID))

	return &response.AuthResponse{
		ID:    user.ID,
		Token: token,
	}, nil
}

// nameIsTaken reports whether a user with the given name pair already exists
func (s *authService) nameIsTaken(ctx context.Context, firstName, lastName string) (bool, error) {
	_, err := s.repo.User.FindByName(ctx, firstName, lastName)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
