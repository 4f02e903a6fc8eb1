// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenIssuer   = "go-shop-api"
	defaultTokenDuration = time.Hour
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup and applies defaults
// for optional token parameters.
//
// Required settings: token sign key, database DSN, HTTP address, uploads
// directory, and both halves of the admin credential. TokenIssuer and
// TokenDuration fall back to package defaults when unset.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.AdminUsername == "" || cfg.App.AdminPassword == "" {
		return ErrInvalidAdminCredentials
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.UploadsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
