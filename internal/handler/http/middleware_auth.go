package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

// forbiddenBody is the single response body for every auth rejection.
// A request with no token, an expired token, or a forged token must all
// receive the identical answer.
const forbiddenBody = "access denied"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The "Authorization" header carries the raw signed token, with no scheme
// prefix. The token is validated via [service.AuthService.ParseToken] and,
// on success, the authenticated user is stored in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// Every failure mode answers HTTP 403 Forbidden with the same body.
// Rejection details are only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, forbiddenBody, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, forbiddenBody, http.StatusForbidden)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		user := models.User{
			UserID:   token.UserID,
			Username: token.Username,
		}
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
