package middleware

import (
	"net/http"
	"strings"

	"asx-vms/rosterd/internal/auth"
)

// AuthMiddleware gates the roster operations behind the operator session
// issued by /auth/login. The roster core itself carries no auth model;
// this is the external gate in front of it.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing session token", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseSessionToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				http.Error(w, "Unauthorized. Invalid session token", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetSession(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
