package roster

import (
	"regexp"
	"strings"
)

// Callsigns follow the ASX scheme: the airline prefix plus exactly three
// digits, e.g. ASX004. Input is normalized to uppercase before matching.
var callsignPattern = regexp.MustCompile(`^ASX[0-9]{3}$`)

// ValidateCallsign normalizes and validates a candidate callsign. It only
// checks the grammar; active-uniqueness is resolved against the store by
// the roster service.
func ValidateCallsign(candidate string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(candidate))
	if normalized == "" {
		return "", NewRequiredFieldError("callsign")
	}
	if !callsignPattern.MatchString(normalized) {
		return "", NewFormatError("callsign", "callsign must be ASX followed by three digits (e.g. ASX001)")
	}
	return normalized, nil
}
