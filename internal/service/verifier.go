package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	"golang.org/x/crypto/bcrypt"
)

// adminUserID is the identity embedded in tokens issued to the static admin
// account.
const adminUserID int64 = 1

// staticAdminVerifier is the default [CredentialVerifier]: a single admin
// account taken from configuration. The configured password is bcrypt-hashed
// once at construction so that per-request comparison never touches the
// plaintext and runs in bcrypt's constant-ish time.
type staticAdminVerifier struct {
	username     string
	passwordHash []byte
	logger       *logger.Logger
}

// NewStaticAdminVerifier builds a [CredentialVerifier] for the admin account
// configured in cfg.
func NewStaticAdminVerifier(cfg config.App, log *logger.Logger) (CredentialVerifier, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %w", err)
	}

	log.Debug().Str("username", cfg.AdminUsername).Msg("creating static admin verifier")
	return &staticAdminVerifier{
		username:     cfg.AdminUsername,
		passwordHash: passwordHash,
		logger:       log,
	}, nil
}

// Verify checks credentials against the static admin account.
//
// The bcrypt comparison runs even when the username does not match, so a
// caller cannot distinguish an unknown username from a wrong password by
// timing the response.
func (v *staticAdminVerifier) Verify(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	compareErr := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(credentials.Password))

	if credentials.Username != v.username || compareErr != nil {
		log.Warn().Str("username", credentials.Username).Msg("credential verification failed")
		return models.User{}, ErrInvalidCredentials
	}

	return models.User{
		UserID:   adminUserID,
		Username: v.username,
	}, nil
}
