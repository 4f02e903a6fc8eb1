package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-shop-api/models"
)

func TestGetUserFromContext_Present(t *testing.T) {
	want := models.User{UserID: 42, Username: "admin"}
	ctx := context.WithValue(context.Background(), UserCtxKey, want)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true for present user")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := GetUserFromContext(ctx)
	if ok {
		t.Error("expected ok=false for value of wrong type")
	}
}

func TestContextKey_String(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("unexpected key string: %s", UserCtxKey.String())
	}
}
