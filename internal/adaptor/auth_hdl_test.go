package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"account-service/internal/data/repository"
	"account-service/internal/dto/request"
	"account-service/internal/dto/response"
	"account-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	registerResp *response.AuthResponse
	registerErr  error
	loginResp    *response.AuthResponse
	loginErr     error
}

func (f *fakeAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

const validRegisterBody = `{"user":{"first_name":"First","last_name":"Last","password":"pass1234","role":"dev"}}`

func TestRegisterHandler_Created(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&fakeAuthService{
		registerResp: &response.AuthResponse{ID: "u1", Token: "tok"},
	}, zap.NewNop())

	rec := postJSON(t, h.Register, "/api/auth", validRegisterBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.ID)
	assert.Equal(t, "tok", resp.Token)
}

func TestRegisterHandler_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&fakeAuthService{}, zap.NewNop())

	rec := postJSON(t, h.Register, "/api/auth", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_ValidationFailed(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&fakeAuthService{}, zap.NewNop())

	// Space inside the first name
	body := `{"user":{"first_name":"Fi rst","last_name":"Last","password":"pass1234","role":"dev"}}`
	rec := postJSON(t, h.Register, "/api/auth", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_NamePairTaken(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&fakeAuthService{registerErr: repository.ErrConflict}, zap.NewNop())

	rec := postJSON(t, h.Register, "/api/auth", validRegisterBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler_GenericFailure(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&fakeAuthService{loginErr: usecase.ErrLoginFailed}, zap.NewNop())

	body := `{"user":{"first_name":"First","last_name":"Last","password":"badpass1"}}`
	rec := postJSON(t, h.Login, "/api/auth/login", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"incorrect login information"}`, rec.Body.String())
}

func TestLoginHandler_Success(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&fakeAuthService{
		loginResp: &response.AuthResponse{ID: "u1", Token: "tok"},
	}, zap.NewNop())

	body := `{"user":{"first_name":"First","last_name":"Last","password":"pass1234"}}`
	rec := postJSON(t, h.Login, "/api/auth/login", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.ID)
}
