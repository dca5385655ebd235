package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-search/internal/types"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	s := newTestServer(&fakeRosterStore{}, newFakeUserStore())

	rec := postJSON(t, s.authHandler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "Recruiter One",
		Email:    "one@example.com",
		Password: "s3cret-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	require.NotNil(t, registered.User)
	assert.Equal(t, "one@example.com", registered.User.Email)
	assert.NotEmpty(t, registered.Token)

	claims, err := s.jwtService.ValidateToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)

	rec = postJSON(t, s.authHandler.Login, "/auth/login", types.LoginRequest{
		Email:    "one@example.com",
		Password: "s3cret-password",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	s := newTestServer(&fakeRosterStore{}, newFakeUserStore())

	req := types.CreateUserRequest{Name: "A", Email: "dup@example.com", Password: "password-1"}
	rec := postJSON(t, s.authHandler.Register, "/auth/register", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, s.authHandler.Register, "/auth/register", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	s := newTestServer(&fakeRosterStore{}, newFakeUserStore())

	rec := postJSON(t, s.authHandler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "Short",
		Email:    "short@example.com",
		Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	s := newTestServer(&fakeRosterStore{}, newFakeUserStore())

	rec := postJSON(t, s.authHandler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "B",
		Email:    "b@example.com",
		Password: "correct-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, s.authHandler.Login, "/auth/login", types.LoginRequest{
		Email:    "b@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_LoginUnknownEmail(t *testing.T) {
	s := newTestServer(&fakeRosterStore{}, newFakeUserStore())

	rec := postJSON(t, s.authHandler.Login, "/auth/login", types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	users := newFakeUserStore()
	s := newTestServer(&fakeRosterStore{}, users)

	rec := postJSON(t, s.authHandler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "C",
		Email:    "c@example.com",
		Password: "old-password-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	payload, err := json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "old-password-1",
		NewPassword:     "new-password-1",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	s.authHandler.UpdatePassword(w, req, registered.User.ID)
	require.Equal(t, http.StatusOK, w.Code)

	rec = postJSON(t, s.authHandler.Login, "/auth/login", types.LoginRequest{
		Email:    "c@example.com",
		Password: "new-password-1",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
