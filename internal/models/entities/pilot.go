package entities

import "time"

// Pilot mirrors the pilots table for the sqlx read path.
type Pilot struct {
	ID               string     `db:"id"`
	Callsign         string     `db:"callsign"`
	Name             string     `db:"name"`
	Surname          string     `db:"surname"`
	Discord          string     `db:"discord"`
	OldFlights       int        `db:"old_flights"`
	FlightHours      *float64   `db:"flight_hours"`
	Suspended        bool       `db:"suspended"`
	SuspensionReason *string    `db:"suspension_reason"`
	SuspensionDate   *time.Time `db:"suspension_date"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// RosterSummary is the active/suspended count partition shown on the
// dashboard header.
type RosterSummary struct {
	ActiveCount    int `db:"active_count" json:"active_count"`
	SuspendedCount int `db:"suspended_count" json:"suspended_count"`
}
