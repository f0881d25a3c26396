package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/internal/service"
	"github.com/avelkin/courses-api/internal/utils"
	"github.com/avelkin/courses-api/models"
)

// basicAuth is an HTTP middleware that enforces Basic authentication.
//
// It inspects the incoming "Authorization" header, extracts the email and
// password credential pair, verifies it via [service.AuthService.Authenticate],
// and — on success — stores the authenticated user in the request context
// under [utils.PrincipalCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a well-formed Basic credential
//     ([ErrInvalidAuthorizationHeader]).
//   - No account matches the email, or the password does not verify
//     against the stored hash ([service.ErrInvalidCredentials]).
//
// Every rejection produces the identical {"message": "Access Denied"}
// body: callers cannot tell which step failed. The distinct reason is
// logged via the context-scoped logger obtained from [logger.FromRequest].
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Msg("authentication header not found")
			accessDenied(w)
			return
		}

		email, password, ok := utils.ParseBasicAuth(authHeader)
		if !ok {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Msg("malformed authorization header")
			accessDenied(w)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.Authenticate(ctx, email, password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				log.Warn().Str("email", email).Msg("authentication failure")
			} else {
				log.Err(err).Msg("error occurred during authentication")
			}
			accessDenied(w)
			return
		}

		// Store the principal in the context so that downstream handlers
		// can retrieve it without a second lookup.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessDenied writes the single uniform 401 response body used for every
// authentication failure mode.
func accessDenied(w http.ResponseWriter) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Access Denied"}, http.StatusUnauthorized)
}
