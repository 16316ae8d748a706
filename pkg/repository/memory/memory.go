package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/harulab/labbot/pkg/domain/model"
)

// Store is an in-memory event log for tests and local development. It keeps
// the same append-only contract as the CSV store.
type Store struct {
	mu     sync.Mutex
	events []*model.Event
}

func New() *Store {
	return &Store{}
}

func copyEvent(ev *model.Event) *model.Event {
	return &model.Event{
		Kind: ev.Kind,
		User: ev.User,
		Time: ev.Time,
	}
}

func (s *Store) Append(ctx context.Context, ev *model.Event) error {
	if ev == nil {
		return goerr.New("event is nil")
	}
	if err := ev.Validate(); err != nil {
		return goerr.Wrap(err, "invalid attendance event")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, copyEvent(ev))
	return nil
}

func (s *Store) Close() error {
	return nil
}

// Events returns a snapshot of the appended events in append order.
func (s *Store) Events() []*model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Event, len(s.events))
	for i, ev := range s.events {
		out[i] = copyEvent(ev)
	}
	return out
}
