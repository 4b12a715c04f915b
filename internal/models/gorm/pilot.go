package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pilot is the single roster entity. A callsign is unique among active
// pilots only: the store enforces this with a partial unique index
// (see scripts/schema.sql). Any number of suspended records may hold a
// callsign; the reclaim logic keeps it to at most one in practice.
type Pilot struct {
	ID               string     `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Callsign         string     `gorm:"column:callsign;index" json:"callsign"`
	Name             string     `gorm:"column:name" json:"name"`
	Surname          string     `gorm:"column:surname" json:"surname"`
	Discord          string     `gorm:"column:discord" json:"discord,omitempty"`
	OldFlights       int        `gorm:"column:old_flights;default:0" json:"old_flights"`
	FlightHours      *float64   `gorm:"column:flight_hours" json:"flight_hours,omitempty"`
	Suspended        bool       `gorm:"column:suspended;default:false" json:"suspended"`
	SuspensionReason *string    `gorm:"column:suspension_reason" json:"suspension_reason,omitempty"`
	SuspensionDate   *time.Time `gorm:"column:suspension_date" json:"suspension_date,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Pilot) TableName() string {
	return "pilots"
}

// BeforeCreate hook to generate the record id
func (p *Pilot) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// FullName joins name and surname the way the roster search matches them.
func (p Pilot) FullName() string {
	return p.Name + " " + p.Surname
}
