package services

import (
	"context"
	"strings"
	"time"

	"asx-vms/rosterd/internal/db/repositories"
	"asx-vms/rosterd/internal/logging"
	"asx-vms/rosterd/internal/metrics"
	"asx-vms/rosterd/internal/models/dtos"
	gormModels "asx-vms/rosterd/internal/models/gorm"
	"asx-vms/rosterd/internal/notify"
	"asx-vms/rosterd/internal/roster"
)

// RosterService owns the pilot lifecycle: creation with callsign
// resolution, suspension, reactivation, edits and permanent deletion.
// Each operation is one logical unit against the store; the dispatcher
// call after a successful mutation never blocks or fails the operation.
type RosterService struct {
	repo       *repositories.PilotRepository
	dispatcher notify.Dispatcher
	metricsReg *metrics.MetricsRegistry
}

func NewRosterService(repo *repositories.PilotRepository, dispatcher notify.Dispatcher, metricsReg *metrics.MetricsRegistry) *RosterService {
	return &RosterService{
		repo:       repo,
		dispatcher: dispatcher,
		metricsReg: metricsReg,
	}
}

// CreateOrReclaim resolves a creation request into one of three outcomes:
// reject (active pilot already holds the callsign), reclaim (a suspended
// pilot holds it: that record is reactivated and overwritten, keeping its
// id), or insert. The bool result reports whether a reclaim happened.
func (svc *RosterService) CreateOrReclaim(ctx context.Context, req dtos.CreatePilotRequest) (*gormModels.Pilot, bool, error) {
	callsign, err := roster.ValidateCallsign(req.Callsign)
	if err != nil {
		return nil, false, err
	}
	if err := roster.ValidatePilotFields(req.Name, req.Surname, req.OldFlights); err != nil {
		return nil, false, err
	}

	active := false
	if existing, err := svc.repo.FindByCallsign(ctx, callsign, &active); err != nil {
		return nil, false, err
	} else if existing != nil {
		svc.metricsReg.DuplicateCallsignsTotal.Inc()
		return nil, false, roster.NewDuplicateActiveCallsignError(callsign)
	}

	suspended := true
	reclaimable, err := svc.repo.FindByCallsign(ctx, callsign, &suspended)
	if err != nil {
		return nil, false, err
	}

	if reclaimable != nil {
		// Reclaim: overwrite the suspended record instead of inserting,
		// so the id is preserved and no orphaned row accumulates.
		updates := map[string]interface{}{
			"name":              req.Name,
			"surname":           req.Surname,
			"discord":           req.Discord,
			"old_flights":       req.OldFlights,
			"suspended":         false,
			"suspension_reason": nil,
			"suspension_date":   nil,
			"flight_hours":      nil,
			"updated_at":        time.Now().UTC(),
		}
		if err := svc.repo.ApplyUpdates(ctx, reclaimable.ID, updates); err != nil {
			return nil, false, err
		}

		pilot, err := svc.repo.FindByID(ctx, reclaimable.ID)
		if err != nil {
			return nil, false, err
		}

		svc.metricsReg.CallsignReclaimsTotal.Inc()
		logging.Info("Pilot reactivated via callsign reclaim",
			"callsign", callsign,
			"pilot_id", pilot.ID,
		)
		svc.emit(roster.LifecycleEvent{
			Kind:     roster.EventReactivation,
			Callsign: pilot.Callsign,
			Name:     pilot.Name,
			Surname:  pilot.Surname,
		})
		return pilot, true, nil
	}

	pilot := &gormModels.Pilot{
		Callsign:   callsign,
		Name:       req.Name,
		Surname:    req.Surname,
		Discord:    req.Discord,
		OldFlights: req.OldFlights,
		Suspended:  false,
	}
	if err := svc.repo.Insert(ctx, pilot); err != nil {
		// The store's uniqueness constraint catching a race reports the
		// same error as the pre-check.
		if roster.IsKind(err, roster.ErrKindDuplicateActiveCallsign) {
			svc.metricsReg.DuplicateCallsignsTotal.Inc()
		}
		return nil, false, err
	}

	logging.Info("Pilot created", "callsign", callsign, "pilot_id", pilot.ID)
	svc.emit(roster.LifecycleEvent{
		Kind:     roster.EventCreation,
		Callsign: pilot.Callsign,
		Name:     pilot.Name,
		Surname:  pilot.Surname,
	})
	return pilot, false, nil
}

// Suspend moves a pilot to the suspended state. The reason is mandatory;
// flight hours, when given, are snapshotted at this moment and not
// touched again until reactivation clears them.
func (svc *RosterService) Suspend(ctx context.Context, id string, reason string, flightHours *float64) (*gormModels.Pilot, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, roster.NewMissingReasonError()
	}
	if flightHours != nil && *flightHours < 0 {
		return nil, roster.NewFormatError("flight_hours", "flight_hours cannot be negative")
	}

	if _, err := svc.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"suspended":         true,
		"suspension_reason": reason,
		"suspension_date":   now,
		"updated_at":        now,
	}
	if flightHours != nil {
		updates["flight_hours"] = *flightHours
	}

	if err := svc.repo.ApplyUpdates(ctx, id, updates); err != nil {
		return nil, err
	}

	pilot, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logging.Info("Pilot suspended",
		"callsign", pilot.Callsign,
		"pilot_id", pilot.ID,
		"reason", reason,
	)
	svc.emit(roster.LifecycleEvent{
		Kind:     roster.EventSuspension,
		Callsign: pilot.Callsign,
		Name:     pilot.Name,
		Surname:  pilot.Surname,
		Reason:   reason,
	})
	return pilot, nil
}

// Reactivate returns a suspended pilot to the active state, clearing the
// suspension metadata and the flight-hours snapshot so the record equals
// its pre-suspension shape.
func (svc *RosterService) Reactivate(ctx context.Context, id string) (*gormModels.Pilot, error) {
	if _, err := svc.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"suspended":         false,
		"suspension_reason": nil,
		"suspension_date":   nil,
		"flight_hours":      nil,
		"updated_at":        time.Now().UTC(),
	}
	if err := svc.repo.ApplyUpdates(ctx, id, updates); err != nil {
		return nil, err
	}

	pilot, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logging.Info("Pilot reactivated", "callsign", pilot.Callsign, "pilot_id", pilot.ID)
	svc.emit(roster.LifecycleEvent{
		Kind:     roster.EventReactivation,
		Callsign: pilot.Callsign,
		Name:     pilot.Name,
		Surname:  pilot.Surname,
	})
	return pilot, nil
}

// DeleteForever removes the record entirely, from either state. No
// lifecycle event is emitted; the callsign is immediately reusable as a
// fresh insert since nothing of the record survives.
func (svc *RosterService) DeleteForever(ctx context.Context, id string) error {
	if err := svc.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.Info("Pilot deleted permanently", "pilot_id", id)
	return nil
}

// Edit applies a partial in-place update without changing the suspension
// state. A callsign change is only allowed on active pilots and never
// runs the reclaim logic: colliding with any live record fails the same
// way an active duplicate does.
func (svc *RosterService) Edit(ctx context.Context, id string, req dtos.EditPilotRequest) (*gormModels.Pilot, error) {
	pilot, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, roster.NewRequiredFieldError("name")
		}
		updates["name"] = *req.Name
	}
	if req.Surname != nil {
		if strings.TrimSpace(*req.Surname) == "" {
			return nil, roster.NewRequiredFieldError("surname")
		}
		updates["surname"] = *req.Surname
	}
	if req.Discord != nil {
		updates["discord"] = *req.Discord
	}
	if req.OldFlights != nil {
		if *req.OldFlights < 0 {
			return nil, roster.NewFormatError("old_flights", "old_flights cannot be negative")
		}
		updates["old_flights"] = *req.OldFlights
	}

	if req.Callsign != nil {
		callsign, err := roster.ValidateCallsign(*req.Callsign)
		if err != nil {
			return nil, err
		}
		if callsign != pilot.Callsign {
			if pilot.Suspended {
				return nil, roster.NewFormatError("callsign", "callsign of a suspended pilot cannot be changed")
			}
			holder, err := svc.repo.FindByCallsign(ctx, callsign, nil)
			if err != nil {
				return nil, err
			}
			if holder != nil && holder.ID != pilot.ID {
				svc.metricsReg.DuplicateCallsignsTotal.Inc()
				return nil, roster.NewDuplicateActiveCallsignError(callsign)
			}
			updates["callsign"] = callsign
		}
	}

	if err := svc.repo.ApplyUpdates(ctx, id, updates); err != nil {
		if roster.IsKind(err, roster.ErrKindDuplicateActiveCallsign) {
			svc.metricsReg.DuplicateCallsignsTotal.Inc()
		}
		return nil, err
	}

	return svc.repo.FindByID(ctx, id)
}

// GetPilot fetches one pilot by id.
func (svc *RosterService) GetPilot(ctx context.Context, id string) (*gormModels.Pilot, error) {
	return svc.repo.FindByID(ctx, id)
}

// ListRoster returns the filtered roster view: callsign-ordered from the
// store, optionally restricted to one suspension state, then narrowed by
// the search query.
func (svc *RosterService) ListRoster(ctx context.Context, suspendedOnly *bool, query string, by roster.SearchDimension) ([]gormModels.Pilot, error) {
	pilots, err := svc.repo.List(ctx, suspendedOnly)
	if err != nil {
		return nil, err
	}
	return roster.FilterPilots(pilots, query, by), nil
}

func (svc *RosterService) emit(event roster.LifecycleEvent) {
	if svc.dispatcher == nil {
		return
	}
	svc.dispatcher.Dispatch(event)
}
