package http

import (
	"context"
	"net/http"
	"strings"

	"toolrental-pos/internal/security"
)

type contextKey string

const terminalIDKey contextKey = "terminal_id"

// AuthMiddleware rejects requests without a valid bearer token and attaches
// the terminal ID to the request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), terminalIDKey, claims.TerminalID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TerminalID returns the authenticated terminal ID from the request context.
func TerminalID(ctx context.Context) string {
	id, _ := ctx.Value(terminalIDKey).(string)
	return id
}
