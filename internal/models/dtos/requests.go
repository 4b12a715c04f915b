package dtos

// CreatePilotRequest is the creation payload. The callsign may reclaim a
// suspended record holding the same value.
type CreatePilotRequest struct {
	Callsign   string `json:"callsign"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Discord    string `json:"discord,omitempty"`
	OldFlights int    `json:"old_flights"`
}

// EditPilotRequest carries a partial update; nil fields are left alone.
type EditPilotRequest struct {
	Callsign   *string `json:"callsign,omitempty"`
	Name       *string `json:"name,omitempty"`
	Surname    *string `json:"surname,omitempty"`
	Discord    *string `json:"discord,omitempty"`
	OldFlights *int    `json:"old_flights,omitempty"`
}

// SuspendPilotRequest requires a reason; flight hours are an optional
// snapshot taken at the moment of suspension.
type SuspendPilotRequest struct {
	Reason      string   `json:"reason"`
	FlightHours *float64 `json:"flight_hours,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
