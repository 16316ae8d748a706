package model

import "github.com/harulab/labbot/pkg/domain/types"

// Presence is the Slack custom status shown after an attendance event. It is
// derived state: it always mirrors the last recorded event and is never read
// back.
type Presence struct {
	StatusText  string
	StatusEmoji string
}

// DefaultPresences maps each event kind to the status it sets. The values can
// be overridden through the app config file.
func DefaultPresences() map[types.EventKind]Presence {
	return map[types.EventKind]Presence{
		types.EventKindCheckIn:  {StatusText: "在室", StatusEmoji: ":office:"},
		types.EventKindCheckOut: {StatusText: "帰宅", StatusEmoji: ":house:"},
	}
}
