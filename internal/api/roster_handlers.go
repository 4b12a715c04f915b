package api

import (
	"context"
	"encoding/json"
	"net/http"

	"asx-vms/rosterd/internal/constants"
	"asx-vms/rosterd/internal/models/dtos"
	"asx-vms/rosterd/internal/models/dtos/responses"
	"asx-vms/rosterd/internal/models/entities"
	gormModels "asx-vms/rosterd/internal/models/gorm"
	"asx-vms/rosterd/internal/roster"

	"github.com/go-chi/chi/v5"
)

// RosterOperations is the caller-facing surface of the roster service,
// narrowed to an interface so handler tests can mock it.
type RosterOperations interface {
	CreateOrReclaim(ctx context.Context, req dtos.CreatePilotRequest) (*gormModels.Pilot, bool, error)
	Suspend(ctx context.Context, id string, reason string, flightHours *float64) (*gormModels.Pilot, error)
	Reactivate(ctx context.Context, id string) (*gormModels.Pilot, error)
	DeleteForever(ctx context.Context, id string) error
	Edit(ctx context.Context, id string, req dtos.EditPilotRequest) (*gormModels.Pilot, error)
	GetPilot(ctx context.Context, id string) (*gormModels.Pilot, error)
	ListRoster(ctx context.Context, suspendedOnly *bool, query string, by roster.SearchDimension) ([]gormModels.Pilot, error)
}

// SummaryProvider serves the dashboard counters.
type SummaryProvider interface {
	GetSummary(ctx context.Context) (*entities.RosterSummary, error)
	Invalidate()
}

// Handlers bundles the HTTP handlers over the roster operations.
type Handlers struct {
	roster  RosterOperations
	summary SummaryProvider
}

func NewHandlers(rosterSvc RosterOperations, summarySvc SummaryProvider) *Handlers {
	return &Handlers{roster: rosterSvc, summary: summarySvc}
}

// CreatePilot handles POST /api/v1/roster
func (h *Handlers) CreatePilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreatePilotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}

		pilot, reclaimed, err := h.roster.CreateOrReclaim(r.Context(), req)
		if err != nil {
			respondWithRosterError(w, err)
			return
		}

		h.summary.Invalidate()
		respondWithSuccess(w, http.StatusCreated, &responses.PilotResult{
			Pilot:     *pilot,
			Reclaimed: reclaimed,
		})
	}
}

// GetRoster handles GET /api/v1/roster?suspended=&query=&searchBy=
func (h *Handlers) GetRoster() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var suspendedOnly *bool
		switch r.URL.Query().Get("suspended") {
		case "true":
			v := true
			suspendedOnly = &v
		case "false":
			v := false
			suspendedOnly = &v
		}

		query := r.URL.Query().Get("query")
		by := roster.ParseSearchDimension(r.URL.Query().Get("searchBy"))

		pilots, err := h.roster.ListRoster(r.Context(), suspendedOnly, query, by)
		if err != nil {
			respondWithRosterError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.RosterListResponse{
			Pilots: pilots,
			Count:  len(pilots),
		})
	}
}

// GetRosterSummary handles GET /api/v1/roster/summary
func (h *Handlers) GetRosterSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := h.summary.GetSummary(r.Context())
		if err != nil {
			respondWithRosterError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, summary)
	}
}

// GetPilot handles GET /api/v1/roster/{id}
func (h *Handlers) GetPilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pilot, err := h.roster.GetPilot(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithRosterError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, pilot)
	}
}

// EditPilot handles PUT /api/v1/roster/{id}
func (h *Handlers) EditPilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.EditPilotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}

		pilot, err := h.roster.Edit(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			respondWithRosterError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, pilot)
	}
}

// SuspendPilot handles POST /api/v1/roster/{id}/suspend
func (h *Handlers) SuspendPilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.SuspendPilotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}

		pilot, err := h.roster.Suspend(r.Context(), chi.URLParam(r, "id"), req.Reason, req.FlightHours)
		if err != nil {
			respondWithRosterError(w, err)
			return
		}

		h.summary.Invalidate()
		respondWithSuccess(w, http.StatusOK, pilot)
	}
}

// ReactivatePilot handles POST /api/v1/roster/{id}/reactivate
func (h *Handlers) ReactivatePilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pilot, err := h.roster.Reactivate(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithRosterError(w, err)
			return
		}

		h.summary.Invalidate()
		respondWithSuccess(w, http.StatusOK, pilot)
	}
}

// DeletePilot handles DELETE /api/v1/roster/{id}
func (h *Handlers) DeletePilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.roster.DeleteForever(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithRosterError(w, err)
			return
		}

		h.summary.Invalidate()
		w.WriteHeader(http.StatusNoContent)
	}
}
