package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-api/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	user := models.User{UserID: 123, Username: "admin"}
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, user, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Subject)
	}
	if token.Username != "admin" {
		t.Errorf("expected username 'admin', got %s", token.Username)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, models.User{UserID: 1}, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	user := models.User{UserID: 456, Username: "admin"}
	key := "secret-key"
	duration := time.Minute * 5

	generated, err := GenerateJWTToken(issuer, user, duration, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != user.UserID {
		t.Errorf("expected UserID %d, got %d", user.UserID, parsed.UserID)
	}
	if parsed.Username != user.Username {
		t.Errorf("expected Username %s, got %s", user.Username, parsed.Username)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken("iss", models.User{UserID: 1}, time.Hour, "right-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, "wrong-key", "iss")
	if err == nil {
		t.Error("expected signature verification error, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("iss-a", models.User{UserID: 1}, time.Hour, "key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, "key", "iss-b")
	if err == nil {
		t.Error("expected issuer mismatch error, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken("iss", models.User{UserID: 1}, time.Nanosecond, "key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "key", "iss")
	if err == nil {
		t.Error("expected expiry error, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-token", "key", "iss")
	if err == nil {
		t.Error("expected parse error, got nil")
	}
}
