package wire

import (
	"account-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Registration and login establish identity, no auth middleware here
	r.Post("/api/auth", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
}
