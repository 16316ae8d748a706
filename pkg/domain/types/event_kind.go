package types

import "fmt"

// EventKind represents the kind of an attendance event. The string values
// double as the Slack Block Kit action IDs and as the first column of the
// attendance log, so they must stay stable.
type EventKind string

const (
	EventKindCheckIn  EventKind = "checkin"
	EventKindCheckOut EventKind = "checkout"
)

// AllEventKinds returns all valid event kinds
func AllEventKinds() []EventKind {
	return []EventKind{
		EventKindCheckIn,
		EventKindCheckOut,
	}
}

// IsValid checks if the event kind is valid
func (k EventKind) IsValid() bool {
	switch k {
	case EventKindCheckIn, EventKindCheckOut:
		return true
	default:
		return false
	}
}

// String returns the string representation of the event kind
func (k EventKind) String() string {
	return string(k)
}

// ParseEventKind parses a string into an EventKind
func ParseEventKind(s string) (EventKind, error) {
	kind := EventKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid event kind: %s", s)
	}
	return kind, nil
}
