package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdminCredentials indicates that the static admin credential
	// is incomplete (missing username or password).
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or missing uploads directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
