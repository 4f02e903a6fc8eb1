// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, t.TempDir(), logger.Nop())
}

// credentialsBody serialises credentials to a JSON request body string.
func credentialsBody(t *testing.T, c models.Credentials) string {
	t.Helper()
	b, err := json.Marshal(c)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// injectNopLogger places a nop logger into the request context, standing in
// for the trace-ID middleware that does this in the full router.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// validCredentials is a convenience fixture used across multiple tests.
var validCredentials = models.Credentials{
	Username: "admin",
	Password: "s3cret",
}

func executeLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.login(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies that valid credentials yield 200 OK and a JSON
// body carrying the issued token.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			assert.Equal(t, validCredentials, c)
			return models.User{UserID: 1, Username: c.Username}, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, int64(1), u.UserID)
			return stubToken(signedToken), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	rr := executeLogin(h, credentialsBody(t, validCredentials))

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, signedToken, response.Token)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rr := executeLogin(h, "{not-json")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// TestLogin_InvalidCredentials verifies the 401 contract: wrong or empty
// credentials produce StatusUnauthorized and no token.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newHandlerWithAuth(t, auth)

	rr := executeLogin(h, credentialsBody(t, models.Credentials{Username: "admin", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotContains(t, rr.Body.String(), "token")
}

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			return models.User{UserID: 1, Username: c.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing broke")
		},
	}
	h := newHandlerWithAuth(t, auth)

	rr := executeLogin(h, credentialsBody(t, validCredentials))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	// the body must stay opaque
	assert.NotContains(t, rr.Body.String(), "signing broke")
}
