package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"asx-vms/rosterd/internal/auth"
)

func TestAuthMiddleware(t *testing.T) {
	secret := []byte("test-secret")

	var sessionUser string
	protected := AuthMiddleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := auth.GetSession(r.Context()); claims != nil {
			sessionUser = claims.Username
		}
		w.WriteHeader(http.StatusOK)
	}))

	token, _, err := auth.IssueSessionToken(secret, "admin", time.Hour)
	if err != nil {
		t.Fatalf("IssueSessionToken failed: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", token, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/roster", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		if rec.Code != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, rec.Code)
		}
	}

	if sessionUser != "admin" {
		t.Errorf("Expected claims on the request context, got %q", sessionUser)
	}
}
