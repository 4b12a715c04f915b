package roster

import "strings"

// ValidatePilotFields checks the non-callsign creation fields: name and
// surname are required display strings, old_flights is the legacy VMS
// flight count and cannot go negative.
func ValidatePilotFields(name, surname string, oldFlights int) error {
	if strings.TrimSpace(name) == "" {
		return NewRequiredFieldError("name")
	}
	if strings.TrimSpace(surname) == "" {
		return NewRequiredFieldError("surname")
	}
	if oldFlights < 0 {
		return NewFormatError("old_flights", "old_flights cannot be negative")
	}
	return nil
}
