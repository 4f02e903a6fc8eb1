package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Success(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env_secret")
	t.Setenv("APP_TOKEN_DURATION", "45m")
	t.Setenv("APP_ADMIN_USERNAME", "admin")
	t.Setenv("SERVER_ADDRESS", "localhost:9999")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/shop")
	t.Setenv("STORAGE_FILES_UPLOADS_DIR", "/srv/uploads")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env_secret", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "admin", cfg.App.AdminUsername)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/shop", cfg.Storage.DB.DSN)
	assert.Equal(t, "/srv/uploads", cfg.Storage.Files.UploadsDir)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{"localhost", "localhost:8080", false, "localhost:8080"},
		{"ip", "127.0.0.1:3000", false, "127.0.0.1:3000"},
		{"no port", "localhost", true, ""},
		{"bad port", "localhost:abc", true, ""},
		{"negative port", "localhost:-1", true, ""},
		{"bad host", "not-an-ip:8080", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}
