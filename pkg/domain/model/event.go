package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/harulab/labbot/pkg/domain/types"
)

// TimestampFormat is the layout of the third column of the attendance log.
const TimestampFormat = "2006/01/02 15:04:05"

// Event is one immutable attendance record: a single check-in or check-out
// action by one user. Events are only ever appended, never updated.
type Event struct {
	Kind types.EventKind
	User string
	Time time.Time
}

// NewEvent creates an attendance event for the given actor at the given time.
func NewEvent(kind types.EventKind, user string, at time.Time) *Event {
	return &Event{
		Kind: kind,
		User: user,
		Time: at,
	}
}

// Validate checks that no field of the event is empty.
func (x *Event) Validate() error {
	if !x.Kind.IsValid() {
		return goerr.New("invalid event kind", goerr.V("kind", x.Kind))
	}
	if x.User == "" {
		return goerr.New("event user is required")
	}
	if x.Time.IsZero() {
		return goerr.New("event time is required")
	}
	return nil
}

// Timestamp returns the event time in the log's column format.
func (x *Event) Timestamp() string {
	return x.Time.Format(TimestampFormat)
}

// Record returns the event as a log row: kind, user, timestamp.
func (x *Event) Record() []string {
	return []string{x.Kind.String(), x.User, x.Timestamp()}
}

// Actor identifies the Slack user who triggered an interaction. ID is the
// Slack user ID used for the status update, Name is the username written to
// the attendance log.
type Actor struct {
	ID   string
	Name string
}

// Validate checks that the actor is fully identified.
func (x Actor) Validate() error {
	if x.ID == "" {
		return goerr.New("actor ID is required")
	}
	if x.Name == "" {
		return goerr.New("actor name is required")
	}
	return nil
}
