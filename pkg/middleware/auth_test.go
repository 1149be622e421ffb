package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-secret"

// fakeUserRepo resolves name pairs from a fixed set, the middleware only
// needs the lookup methods
type fakeUserRepo struct {
	repository.UserRepository
	users []*entity.User
}

func (f *fakeUserRepo) FindByName(ctx context.Context, firstName, lastName string) (*entity.User, error) {
	for _, user := range f.users {
		if user.FirstName == firstName && user.LastName == lastName {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func okHandler(captured **entity.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := utils.GetUserFromContext(r.Context()); ok {
			*captured = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func issueToken(t *testing.T, firstName, lastName string) string {
	t.Helper()

	token, err := utils.CreateUserToken(firstName, lastName, testSecret)
	require.NoError(t, err)
	return token
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{users: []*entity.User{
		{ID: "u1", FirstName: "First", LastName: "Last", Role: entity.RoleDev},
	}}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Token " + issueToken(t, "First", "Last"), wantStatus: http.StatusOK},
		{name: "no header", header: "", wantStatus: http.StatusForbidden},
		{name: "wrong scheme", header: "Bearer " + issueToken(t, "First", "Last"), wantStatus: http.StatusForbidden},
		{name: "missing separator", header: "Token" + issueToken(t, "First", "Last"), wantStatus: http.StatusForbidden},
		{name: "garbage token", header: "Token not.a.jwt", wantStatus: http.StatusForbidden},
		{name: "wrong secret", header: "Token " + wrongSecretToken(t), wantStatus: http.StatusForbidden},
		{name: "user gone", header: "Token " + issueToken(t, "Ghost", "User"), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *entity.User
			handler := RequireUser(repo, testSecret, zap.NewNop())(okHandler(&captured))

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, captured)
				assert.Equal(t, "u1", captured.ID)
			} else {
				// Rejections share one body with no distinguishing detail
				assert.JSONEq(t, `{"error":"forbidden"}`, rec.Body.String())
				assert.Nil(t, captured)
			}
		})
	}
}

func wrongSecretToken(t *testing.T) string {
	t.Helper()

	token, err := utils.CreateUserToken("First", "Last", "some-other-secret")
	require.NoError(t, err)
	return token
}

func TestOptionalUser_NoHeaderPassesAnonymously(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}

	var captured *entity.User
	handler := OptionalUser(repo, testSecret, zap.NewNop())(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, captured)
}

func TestOptionalUser_InvalidHeaderStillRejects(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}

	var captured *entity.User
	handler := OptionalUser(repo, testSecret, zap.NewNop())(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Token not.a.jwt")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, captured)
}

func TestOptionalUser_ValidHeaderResolves(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{users: []*entity.User{
		{ID: "u1", FirstName: "First", LastName: "Last", Role: entity.RoleDev},
	}}

	var captured *entity.User
	handler := OptionalUser(repo, testSecret, zap.NewNop())(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Token "+issueToken(t, "First", "Last"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "u1", captured.ID)
}

func TestAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		user       *entity.User
		wantStatus int
	}{
		{name: "admin passes", user: &entity.User{ID: "a1", Role: entity.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "dev rejected", user: &entity.User{ID: "u1", Role: entity.RoleDev}, wantStatus: http.StatusForbidden},
		{name: "no user in context", user: nil, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *entity.User
			handler := Admin(zap.NewNop())(okHandler(&captured))

			req := httptest.NewRequest(http.MethodPost, "/api/users/admin/u2", nil)
			if tt.user != nil {
				req = req.WithContext(utils.SetUserContext(req.Context(), tt.user))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
