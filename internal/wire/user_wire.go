package wire

import (
	"account-service/internal/adaptor"
	"account-service/internal/data/repository"
	"account-service/pkg/middleware"
	"account-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures profile routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	secret := config.JWT.Secret

	// ==================== PROTECTED USER ROUTES ====================
	r.With(middleware.RequireUser(repo.User, secret, log)).Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.GetProfile)
		r.Put("/", userHandler.UpdateProfile)
		r.Post("/activate", userHandler.Activate)
		r.Post("/deactivate", userHandler.Deactivate)

		// ==================== ADMIN ROUTES ====================
		r.With(middleware.Admin(log)).Post("/admin/{user_id}", userHandler.AdminUpdate)
	})
}
