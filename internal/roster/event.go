package roster

// EventKind identifies a notification-worthy lifecycle occurrence.
type EventKind string

const (
	EventCreation     EventKind = "creation"
	EventSuspension   EventKind = "suspension"
	EventReactivation EventKind = "reactivation"
)

// LifecycleEvent is emitted after a successful state change and handed to
// the notification dispatcher. Reason is only set for suspensions.
type LifecycleEvent struct {
	Kind     EventKind `json:"kind"`
	Callsign string    `json:"callsign"`
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	Reason   string    `json:"reason,omitempty"`
}
