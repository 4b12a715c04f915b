package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"asx-vms/rosterd/internal/auth"
	"asx-vms/rosterd/internal/constants"
	"asx-vms/rosterd/internal/logging"
	"asx-vms/rosterd/internal/models/dtos"
	"asx-vms/rosterd/internal/models/dtos/responses"
)

// LoginHandler handles POST /api/v1/auth/login. Credentials come from
// the environment; a valid pair yields a session token for the
// Authorization header.
func LoginHandler(adminUsername, adminPassword string, secret []byte, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(adminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(adminPassword)) == 1
		if !userOK || !passOK {
			logging.Warn("Failed login attempt", "username", req.Username)
			respondWithError(w, http.StatusUnauthorized, constants.MsgInvalidLogin)
			return
		}

		token, expiresAt, err := auth.IssueSessionToken(secret, req.Username, sessionTTL)
		if err != nil {
			logging.Error("Failed to issue session token", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Failed to create session")
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
		})
	}
}
