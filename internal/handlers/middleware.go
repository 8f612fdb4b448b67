package handlers

import (
	"context"
	"net/http"
	"strings"

	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
)

type contextKey string

const userIDKey contextKey = "userID"

type MiddlewareProvider struct {
	jwtService primary.JWTService
}

func New(jwtService primary.JWTService) *MiddlewareProvider {
	return &MiddlewareProvider{
		jwtService: jwtService,
	}
}

// JWTMiddleware authenticates the caller and injects the subject claim
// into the request context. Authorization beyond identity (may this user
// submit to this problem) is the surrounding system's concern.
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		valid, err := m.jwtService.VerifyTokenHMAC(r.Context(), tokenString, "HS256")
		if err != nil || !valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		payload, err := m.jwtService.DecodeTokenPayload(r.Context(), tokenString)
		if err != nil || payload.Subject == "" {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), payload.Subject)))
	})
}

// WithUserID returns a context carrying the authenticated caller's ID
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID extracts the authenticated caller's ID from the context
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
