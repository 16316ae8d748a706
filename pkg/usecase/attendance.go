package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/harulab/labbot/pkg/domain/interfaces"
	"github.com/harulab/labbot/pkg/domain/model"
	"github.com/harulab/labbot/pkg/domain/types"
	slacksvc "github.com/harulab/labbot/pkg/service/slack"
	"github.com/harulab/labbot/pkg/utils/errutil"
	"github.com/harulab/labbot/pkg/utils/logging"
)

// ShortcutCallbackID is the global shortcut that opens the attendance modal.
const ShortcutCallbackID = "modal_checkin"

// AttendanceUseCase drives the check-in/check-out flow: it opens the chooser
// modal, records one event per button press, mirrors the event into the
// user's Slack status and replaces the modal with a confirmation.
type AttendanceUseCase struct {
	eventLog  interfaces.EventLog
	slackSvc  slacksvc.Service
	presences map[types.EventKind]model.Presence
	now       func() time.Time
}

// OpenDialog opens the two-button chooser modal for the given trigger.
func (uc *AttendanceUseCase) OpenDialog(ctx context.Context, triggerID string) error {
	if triggerID == "" {
		return goerr.New("trigger ID is required")
	}
	if err := uc.slackSvc.OpenView(ctx, triggerID, buildAttendanceModal()); err != nil {
		return goerr.Wrap(err, "failed to open attendance modal")
	}
	return nil
}

// RecordAction handles one button press: append the event, sync the user's
// status, then update the modal. The append strictly precedes the status
// sync; if the append fails the status is left untouched and the modal keeps
// the chooser with an error line. A status sync failure does not roll back
// the already-appended event; it is logged for manual reconciliation and
// flagged in the confirmation view.
//
// Pressing the same button twice records two independent events.
func (uc *AttendanceUseCase) RecordAction(ctx context.Context, kind types.EventKind, actor model.Actor, viewID, viewHash string) (*model.Event, error) {
	if err := actor.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid actor")
	}

	ev := model.NewEvent(kind, actor.Name, uc.now())
	if err := uc.eventLog.Append(ctx, ev); err != nil {
		if uerr := uc.slackSvc.UpdateView(ctx, viewID, viewHash, buildLogFailureView()); uerr != nil {
			errutil.Handle(ctx, uerr, "failed to render attendance failure view")
		}
		return nil, goerr.Wrap(err, "failed to append attendance event",
			goerr.V("kind", kind),
			goerr.V("user", actor.Name),
		)
	}

	syncFailed := false
	presence, ok := uc.presences[kind]
	if !ok {
		return nil, goerr.New("no presence mapping for event kind", goerr.V("kind", kind))
	}
	if err := uc.slackSvc.SetUserStatus(ctx, actor.ID, presence.StatusText, presence.StatusEmoji); err != nil {
		// The event row exists but the visible status does not match it.
		// There is no automatic compensation; the log line below is the
		// input for manual repair.
		syncFailed = true
		errutil.Handle(ctx, goerr.Wrap(err, "status update failed after event append",
			goerr.V("kind", kind),
			goerr.V("user", actor.Name),
			goerr.V("user_id", actor.ID),
			goerr.V("timestamp", ev.Timestamp()),
		), "attendance log and Slack status are now inconsistent")
	}

	if err := uc.slackSvc.UpdateView(ctx, viewID, viewHash, buildConfirmationView(ev, syncFailed)); err != nil {
		return ev, goerr.Wrap(err, "failed to update attendance modal", goerr.V("view_id", viewID))
	}

	logging.From(ctx).Info("attendance event recorded",
		"kind", kind,
		"user", actor.Name,
		"timestamp", ev.Timestamp(),
		"status_synced", !syncFailed,
	)

	return ev, nil
}
