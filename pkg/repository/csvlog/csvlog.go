package csvlog

import (
	"context"
	"encoding/csv"
	"os"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/harulab/labbot/pkg/domain/model"
)

// Store appends attendance events to a flat CSV file, one row per event:
// kind, user, timestamp. The file is opened in append mode per call and
// closed before Append returns, so a crashed process never holds the log
// open. A mutex serializes appends so concurrent rows cannot interleave.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store writing to the given path. The file itself is created
// lazily on the first append.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, goerr.New("attendance log path is required")
	}
	return &Store{path: path}, nil
}

// Append writes one event as a single CSV row. Existing content is never
// truncated; O_APPEND keeps each row write atomic at the file level and the
// store mutex keeps the open-write-close sequence exclusive.
func (s *Store) Append(ctx context.Context, ev *model.Event) error {
	if ev == nil {
		return goerr.New("event is nil")
	}
	if err := ev.Validate(); err != nil {
		return goerr.Wrap(err, "invalid attendance event")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return goerr.Wrap(err, "failed to open attendance log", goerr.V("path", s.path))
	}

	w := csv.NewWriter(f)
	if err := w.Write(ev.Record()); err != nil {
		_ = f.Close()
		return goerr.Wrap(err, "failed to write attendance record", goerr.V("path", s.path))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return goerr.Wrap(err, "failed to flush attendance record", goerr.V("path", s.path))
	}

	// Close errors matter here: on some filesystems the write is only
	// reported as failed at close time.
	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close attendance log", goerr.V("path", s.path))
	}

	return nil
}

func (s *Store) Close() error {
	return nil
}
