// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/mock"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-shop-api",
		TokenDuration: time.Hour,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVerifier := mock.NewMockCredentialVerifier(ctrl)
	svc := NewAuthService(mockVerifier, testAppConfig(), logger.Nop())

	credentials := models.Credentials{Username: "admin", Password: "s3cret"}
	admin := models.User{UserID: 1, Username: "admin"}

	mockVerifier.EXPECT().
		Verify(gomock.Any(), credentials).
		Return(admin, nil)

	user, err := svc.Login(context.Background(), credentials)

	require.NoError(t, err)
	assert.Equal(t, admin, user)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the verifier must not be consulted for empty credentials
	mockVerifier := mock.NewMockCredentialVerifier(ctrl)
	svc := NewAuthService(mockVerifier, testAppConfig(), logger.Nop())

	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{"empty username", models.Credentials{Password: "s3cret"}},
		{"empty password", models.Credentials{Username: "admin"}},
		{"both empty", models.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_VerifierRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVerifier := mock.NewMockCredentialVerifier(ctrl)
	svc := NewAuthService(mockVerifier, testAppConfig(), logger.Nop())

	mockVerifier.EXPECT().
		Verify(gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("no such account"))

	_, err := svc.Login(context.Background(), models.Credentials{Username: "admin", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(mock.NewMockCredentialVerifier(ctrl), testAppConfig(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 1, Username: "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)

	assert.Equal(t, int64(1), parsed.UserID)
	assert.Equal(t, "admin", parsed.Username)
	assert.Equal(t, "go-shop-api", parsed.Issuer)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(mock.NewMockCredentialVerifier(ctrl), testAppConfig(), logger.Nop())
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issuing := NewAuthService(mock.NewMockCredentialVerifier(ctrl), testAppConfig(), logger.Nop())

	otherCfg := testAppConfig()
	otherCfg.TokenSignKey = "a-different-key"
	parsing := NewAuthService(mock.NewMockCredentialVerifier(ctrl), otherCfg, logger.Nop())

	ctx := context.Background()

	token, err := issuing.CreateToken(ctx, models.User{UserID: 1, Username: "admin"})
	require.NoError(t, err)

	_, err = parsing.ParseToken(ctx, token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testAppConfig()
	cfg.TokenDuration = -time.Minute
	svc := NewAuthService(mock.NewMockCredentialVerifier(ctrl), cfg, logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 1, Username: "admin"})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
