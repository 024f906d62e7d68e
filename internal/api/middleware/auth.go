package middleware

import (
	"context"
	"net/http"

	"solarquiz/internal/common"
)

type contextKey string

const (
	UserIDCtxKey       contextKey = "userID"
	SessionTokenCtxKey contextKey = "sessionToken"
)

// SessionHeader carries the opaque session token. The front-end shell reads
// its session cookie and forwards it under this header.
const SessionHeader = "X-Session"

// SessionResolver resolves an opaque token to a user id.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (int, error)
}

// Authenticator rejects requests whose X-Session header is missing or does
// not resolve, and stores the user id and token in the request context.
func Authenticator(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionHeader)
			if token == "" {
				common.RespondWithError(w, http.StatusUnauthorized, "Session token required")
				return
			}

			userID, err := resolver.ResolveSession(r.Context(), token)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid session")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
			ctx = context.WithValue(ctx, SessionTokenCtxKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Helper to get user ID from context
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int)
	return userID, ok
}

// Helper to get the raw session token from context
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok
}
