package handlers

import (
	"context"
	"net/http"
	"strings"

	"rentahome/internal/apperr"
	"rentahome/internal/auth"
	"rentahome/internal/models"

	"golang.org/x/exp/slices"
)

type contextKey string

const accountContextKey contextKey = `account`

// AccountFromContext returns the account attached by AuthorizationMiddleware.
func AccountFromContext(ctx context.Context) (models.Account, bool) {
	account, ok := ctx.Value(accountContextKey).(models.Account)
	return account, ok
}

// AuthorizationMiddleware extracts the bearer token, verifies the session
// and attaches the resolved account to the request context.
func AuthorizationMiddleware(next http.Handler, sessions *auth.SessionIssuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, apperr.New(apperr.CodeUnauthorized, "No token provided"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		account, err := sessions.Verify(tokenStr)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), accountContextKey, account)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole composes after AuthorizationMiddleware and rejects callers
// whose role is not in the allowed set.
func RequireRole(next http.Handler, roles ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFromContext(r.Context())
		if !ok {
			writeError(w, apperr.New(apperr.CodeUnauthorized, "No token provided"))
			return
		}

		if !slices.Contains(roles, account.Role) {
			writeError(w, apperr.New(apperr.CodeForbidden, "Insufficient permissions"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireOwnership rejects a caller acting on a resource it does not own.
// Admins bypass the check.
func requireOwnership(account models.Account, ownerId string) error {
	if account.Role == models.RoleAdmin || account.Id == ownerId {
		return nil
	}
	return apperr.New(apperr.CodeForbidden, "Insufficient permissions")
}
