package roster

import (
	"strings"

	gormModels "asx-vms/rosterd/internal/models/gorm"
)

// SearchDimension selects which field the roster search matches against.
type SearchDimension string

const (
	SearchByCallsign SearchDimension = "callsign"
	SearchByFullname SearchDimension = "fullname"
)

// ParseSearchDimension maps a query parameter to a dimension, defaulting
// to fullname the way the dashboard search does.
func ParseSearchDimension(raw string) SearchDimension {
	if SearchDimension(raw) == SearchByCallsign {
		return SearchByCallsign
	}
	return SearchByFullname
}

// FilterPilots returns the pilots matching query on the given dimension.
// Matching is case-insensitive substring containment; an empty query
// returns the input unchanged. Input order is preserved, so callers keep
// whatever sort the store applied (callsign ascending).
func FilterPilots(pilots []gormModels.Pilot, query string, by SearchDimension) []gormModels.Pilot {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return pilots
	}

	filtered := make([]gormModels.Pilot, 0, len(pilots))
	for _, p := range pilots {
		var haystack string
		if by == SearchByCallsign {
			haystack = p.Callsign
		} else {
			haystack = p.FullName()
		}
		if strings.Contains(strings.ToLower(haystack), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Summary is the active/suspended partition of a roster snapshot.
type Summary struct {
	ActiveCount    int `json:"active_count"`
	SuspendedCount int `json:"suspended_count"`
}

// Summarize counts pilots by suspended flag. Every pilot lands in exactly
// one bucket, so the counts always sum to len(pilots).
func Summarize(pilots []gormModels.Pilot) Summary {
	var s Summary
	for _, p := range pilots {
		if p.Suspended {
			s.SuspendedCount++
		} else {
			s.ActiveCount++
		}
	}
	return s
}
