package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"asx-vms/rosterd/internal/models/dtos/responses"
	"asx-vms/rosterd/internal/roster"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondWithRosterError maps the roster error taxonomy to HTTP statuses
// and carries the offending field so the UI can attach the message to it.
func respondWithRosterError(w http.ResponseWriter, err error) {
	var re *roster.Error
	if !errors.As(err, &re) {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	statusCode := http.StatusInternalServerError
	switch re.Kind {
	case roster.ErrKindRequiredField, roster.ErrKindFormat, roster.ErrKindMissingReason:
		statusCode = http.StatusBadRequest
	case roster.ErrKindDuplicateActiveCallsign:
		statusCode = http.StatusConflict
	case roster.ErrKindNotFound:
		statusCode = http.StatusNotFound
	case roster.ErrKindTransport:
		statusCode = http.StatusBadGateway
	}

	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     re.Message,
		Field:     re.Field,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
