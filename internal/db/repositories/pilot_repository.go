package repositories

import (
	"context"
	"errors"
	"strings"

	gormModels "asx-vms/rosterd/internal/models/gorm"
	"asx-vms/rosterd/internal/roster"

	"gorm.io/gorm"
)

// PilotRepository is the GORM-backed mutation path for the pilots table.
type PilotRepository struct {
	db *gorm.DB
}

// NewPilotRepository creates a new GORM-based pilot repository
func NewPilotRepository(db *gorm.DB) *PilotRepository {
	return &PilotRepository{db: db}
}

// FindByID retrieves a pilot by id, mapping a missing row to NotFoundError.
func (r *PilotRepository) FindByID(ctx context.Context, id string) (*gormModels.Pilot, error) {
	var pilot gormModels.Pilot

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pilot).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, roster.NewNotFoundError(id)
		}
		return nil, roster.NewTransportError("failed to fetch pilot", err)
	}

	return &pilot, nil
}

// FindByCallsign looks up the record holding a callsign, optionally
// restricted to one suspension state. A missing row is not an error here:
// the resolution engine needs the tri-state answer, so it returns
// (nil, nil) when nothing matches.
func (r *PilotRepository) FindByCallsign(ctx context.Context, callsign string, suspended *bool) (*gormModels.Pilot, error) {
	var pilot gormModels.Pilot

	q := r.db.WithContext(ctx).Where("callsign = ?", callsign)
	if suspended != nil {
		q = q.Where("suspended = ?", *suspended)
	}

	err := q.First(&pilot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, roster.NewTransportError("failed to fetch pilot by callsign", err)
	}

	return &pilot, nil
}

// Insert creates a new pilot row. A unique violation on the active
// callsign index surfaces as DuplicateActiveCallsignError so a race with
// the pre-check collapses to the same caller-facing error.
func (r *PilotRepository) Insert(ctx context.Context, pilot *gormModels.Pilot) error {
	err := r.db.WithContext(ctx).Create(pilot).Error
	if err != nil {
		if isUniqueViolation(err) {
			return roster.NewDuplicateActiveCallsignError(pilot.Callsign)
		}
		return roster.NewTransportError("failed to insert pilot", err)
	}
	return nil
}

// ApplyUpdates applies a partial column update to one pilot. A map is
// used instead of a struct so NULLs (cleared suspension metadata) and
// zero values (old_flights = 0) survive the update.
func (r *PilotRepository) ApplyUpdates(ctx context.Context, id string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Pilot{}).
		Where("id = ?", id).
		Updates(updates)

	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			callsign, _ := updates["callsign"].(string)
			return roster.NewDuplicateActiveCallsignError(callsign)
		}
		return roster.NewTransportError("failed to update pilot", res.Error)
	}
	if res.RowsAffected == 0 {
		return roster.NewNotFoundError(id)
	}
	return nil
}

// Delete removes a pilot permanently. The callsign becomes reusable
// immediately; no tombstone is kept.
func (r *PilotRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Pilot{})

	if res.Error != nil {
		return roster.NewTransportError("failed to delete pilot", res.Error)
	}
	if res.RowsAffected == 0 {
		return roster.NewNotFoundError(id)
	}
	return nil
}

// List returns pilots ordered by callsign, optionally restricted to one
/// suspension state. The order matters: the filter preserves it.
func (r *PilotRepository) List(ctx context.Context, suspended *bool) ([]gormModels.Pilot, error) {
	var pilots []gormModels.Pilot

	q := r.db.WithContext(ctx).Order("callsign ASC")
	if suspended != nil {
		q = q.Where("suspended = ?", *suspended)
	}

	if err := q.Find(&pilots).Error; err != nil {
		return nil, roster.NewTransportError("failed to list pilots", err)
	}

	return pilots, nil
}

// isUniqueViolation detects the store's callsign uniqueness constraint
// firing. GORM translates driver errors when TranslateError is on; the
// string checks cover drivers that slip through untranslated.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
