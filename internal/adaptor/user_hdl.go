package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"account-service/internal/data/repository"
	"account-service/internal/dto/request"
	"account-service/internal/usecase"
	"account-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetProfile handles GET /api/users
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), user)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, profile)
}

// UpdateProfile handles PUT /api/users
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w)
		return
	}

	var req request.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), user, &req)
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, profile)
}

// Activate handles POST /api/users/activate
func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w)
		return
	}

	profile, err := h.service.Activate(r.Context(), user)
	if err != nil {
		h.handleServiceError(w, err, "activate")
		return
	}

	utils.ResponseSuccess(w, profile)
}

// Deactivate handles POST /api/users/deactivate
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w)
		return
	}

	profile, err := h.service.Deactivate(r.Context(), user)
	if err != nil {
		h.handleServiceError(w, err, "deactivate")
		return
	}

	utils.ResponseSuccess(w, profile)
}

// AdminUpdate handles POST /api/users/admin/{user_id}
func (h *UserHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	admin, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w)
		return
	}

	targetID := chi.URLParam(r, "user_id")
	if targetID == "" {
		utils.ResponseBadRequest(w, "user id is required")
		return
	}

	var req request.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}

	profile, err := h.service.AdminUpdate(r.Context(), admin, targetID, &req)
	if err != nil {
		h.handleServiceError(w, err, "admin update")
		return
	}

	utils.ResponseSuccess(w, profile)
}

// handleServiceError maps service failures to flat client-facing statuses
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "user not found")

	case errors.Is(err, repository.ErrConflict):
		h.log.Warn(operation+" failed - name pair taken", zap.Error(err))
		utils.ResponseBadRequest(w, "user with this name already exists")

	case errors.Is(err, usecase.ErrPasswordNotAllowed):
		h.log.Warn(operation+" failed - password not allowed", zap.Error(err))
		utils.ResponseBadRequest(w, "password change is not allowed")

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w)
	}
}
