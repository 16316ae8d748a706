package async

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/harulab/labbot/pkg/utils/logging"
)

// Dispatch runs the handler in a new goroutine detached from the request
// context, so the HTTP response can be sent before the work finishes. A
// dispatch ID is attached to the logger so one interaction can be traced
// across the acknowledgment boundary.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	logger := logging.From(ctx).With("dispatch_id", uuid.NewString())
	bgCtx := logging.With(context.Background(), logger)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logger.Error("async handler failed", "error", goerr.Unwrap(err))
		}
	}()
}
