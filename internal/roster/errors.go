package roster

import "errors"

// ErrorKind classifies roster errors so handlers can map them to HTTP
// status codes and the UI can highlight the offending field.
type ErrorKind string

const (
	ErrKindRequiredField           ErrorKind = "REQUIRED_FIELD"
	ErrKindFormat                  ErrorKind = "INVALID_FORMAT"
	ErrKindDuplicateActiveCallsign ErrorKind = "DUPLICATE_ACTIVE_CALLSIGN"
	ErrKindMissingReason           ErrorKind = "MISSING_REASON"
	ErrKindNotFound                ErrorKind = "NOT_FOUND"
	ErrKindTransport               ErrorKind = "TRANSPORT"
)

// Error carries the kind plus the field that caused it, so the API can
// return field-level messages instead of a generic failure.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewRequiredFieldError(field string) *Error {
	return &Error{Kind: ErrKindRequiredField, Field: field, Message: field + " is required"}
}

func NewFormatError(field, message string) *Error {
	return &Error{Kind: ErrKindFormat, Field: field, Message: message}
}

func NewDuplicateActiveCallsignError(callsign string) *Error {
	return &Error{
		Kind:    ErrKindDuplicateActiveCallsign,
		Field:   "callsign",
		Message: "callsign " + callsign + " is already in use by an active pilot",
	}
}

func NewMissingReasonError() *Error {
	return &Error{Kind: ErrKindMissingReason, Field: "reason", Message: "a suspension reason is required"}
}

func NewNotFoundError(id string) *Error {
	return &Error{Kind: ErrKindNotFound, Field: "id", Message: "pilot " + id + " not found"}
}

func NewTransportError(message string, cause error) *Error {
	return &Error{Kind: ErrKindTransport, Message: message, cause: cause}
}

// IsKind reports whether err is a roster Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}
