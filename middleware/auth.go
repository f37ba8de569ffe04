package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"singerx-backend/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": "unauthorized access",
	})
}

// AuthMiddleware verifies bearer tokens and attaches the decoded claims to
// the request context. The token is taken as everything after the first
// space in the Authorization header; the scheme word itself is not checked.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w)
			return
		}

		tokenStr := ""
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
			tokenStr = parts[1]
		}

		claims, err := utils.VerifyJWT(tokenStr)
		if err != nil {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
