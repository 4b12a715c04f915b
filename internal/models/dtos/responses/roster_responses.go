package responses

import (
	gormModels "asx-vms/rosterd/internal/models/gorm"
)

// PilotResult wraps a mutated pilot; Reclaimed reports that a creation
// request was resolved by reactivating an existing suspended record.
type PilotResult struct {
	Pilot     gormModels.Pilot `json:"pilot"`
	Reclaimed bool             `json:"reclaimed,omitempty"`
}

type RosterListResponse struct {
	Pilots []gormModels.Pilot `json:"pilots"`
	Count  int                `json:"count"`
}
