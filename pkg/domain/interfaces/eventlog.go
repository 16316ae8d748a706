package interfaces

import (
	"context"

	"github.com/harulab/labbot/pkg/domain/model"
)

// EventLog is the append-only store for attendance events. Implementations
// must never truncate or reorder existing records, and concurrent appends
// must not interleave.
type EventLog interface {
	// Append writes one event as a single atomic row. The store is created
	// if it does not exist yet.
	Append(ctx context.Context, ev *model.Event) error

	Close() error
}
