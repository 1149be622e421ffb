package middleware

import (
	"errors"
	"net/http"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

// RequireUser validates the bearer token on each request and resolves it to a
// stored user. Every failure along the chain (missing header, bad scheme, bad
// signature, expired token, user gone) produces the same 403 with no detail.
func RequireUser(userRepo repository.UserRepository, secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing authorization header", zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w)
				return
			}

			user, token, ok := resolveUser(r, authHeader, userRepo, secret, logger)
			if !ok {
				utils.ResponseForbidden(w)
				return
			}

			ctx := utils.SetUserContext(r.Context(), user)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalUser resolves the caller when an Authorization header is present.
// No header at all passes through anonymously; a header that fails the chain
// still rejects, absence of auth is distinct from bad auth.
func OptionalUser(userRepo repository.UserRepository, secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, token, ok := resolveUser(r, authHeader, userRepo, secret, logger)
			if !ok {
				utils.ResponseForbidden(w)
				return
			}

			ctx := utils.SetUserContext(r.Context(), user)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin gates a route on the admin role. Must run after RequireUser.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				utils.ResponseForbidden(w)
				return
			}

			if !user.IsAdmin() {
				logger.Warn("Non-admin access attempt",
					zap.String("user_id", user.ID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// resolveUser walks the scheme, token and identity steps of the chain. The
// identity claim is re-resolved against the store on every request, tokens
// are never cached.
func resolveUser(
	r *http.Request,
	authHeader string,
	userRepo repository.UserRepository,
	secret string,
	logger *zap.Logger,
) (*entity.User, string, bool) {
	token, err := utils.ExtractToken(authHeader)
	if err != nil {
		logger.Warn("Malformed authorization header", zap.String("path", r.URL.Path))
		return nil, "", false
	}

	claims, err := utils.ParseUserToken(token, secret)
	if err != nil {
		logger.Warn("Token verification failed", zap.String("path", r.URL.Path))
		return nil, "", false
	}

	user, err := userRepo.FindByName(r.Context(), claims.FirstName, claims.LastName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Token for unknown user", zap.String("path", r.URL.Path))
		} else {
			logger.Error("Failed to resolve token identity", zap.Error(err))
		}
		return nil, "", false
	}

	return user, token, true
}
