package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/harulab/labbot/pkg/domain/model"
	"github.com/harulab/labbot/pkg/domain/types"
	"github.com/harulab/labbot/pkg/usecase"
	"github.com/harulab/labbot/pkg/utils/async"
	"github.com/harulab/labbot/pkg/utils/errutil"
	"github.com/harulab/labbot/pkg/utils/logging"
)

// AttendanceUseCase is the part of the attendance flow the controller needs.
type AttendanceUseCase interface {
	OpenDialog(ctx context.Context, triggerID string) error
	RecordAction(ctx context.Context, kind types.EventKind, actor model.Actor, viewID, viewHash string) (*model.Event, error)
}

// SlackInteractionHandler handles Slack interactivity payloads: the global
// shortcut that opens the attendance modal and the button clicks inside it.
type SlackInteractionHandler struct {
	attendanceUC AttendanceUseCase
}

// NewSlackInteractionHandler creates a new Slack interaction handler
func NewSlackInteractionHandler(attendanceUC AttendanceUseCase) *SlackInteractionHandler {
	return &SlackInteractionHandler{
		attendanceUC: attendanceUC,
	}
}

// ServeHTTP handles Slack interaction webhook requests. The response is sent
// before the use case runs; Slack closes the connection after 3 seconds and
// the modal is updated through the Web API instead of the HTTP response.
func (h *SlackInteractionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Slack sends interaction payloads as application/x-www-form-urlencoded
	// with a "payload" field containing JSON
	payload := r.FormValue("payload")
	if payload == "" {
		errutil.HandleHTTP(ctx, w, goerr.New("missing payload field in interaction request"), http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to parse interaction payload"), http.StatusBadRequest)
		return
	}

	switch callback.Type {
	case slack.InteractionTypeShortcut:
		if callback.CallbackID != usecase.ShortcutCallbackID {
			logging.From(ctx).Warn("unknown shortcut callback", "callback_id", callback.CallbackID)
			w.WriteHeader(http.StatusOK)
			return
		}

		triggerID := callback.TriggerID
		w.WriteHeader(http.StatusOK)

		async.Dispatch(ctx, func(ctx context.Context) error {
			if err := h.attendanceUC.OpenDialog(ctx, triggerID); err != nil {
				return goerr.Wrap(err, "failed to open attendance dialog")
			}
			return nil
		})

	case slack.InteractionTypeBlockActions:
		actions := h.parseAttendanceActions(ctx, &callback)
		w.WriteHeader(http.StatusOK)

		for _, act := range actions {
			async.Dispatch(ctx, func(ctx context.Context) error {
				if _, err := h.attendanceUC.RecordAction(ctx, act.kind, act.actor, act.viewID, act.viewHash); err != nil {
					return goerr.Wrap(err, "failed to record attendance action")
				}
				return nil
			})
		}

	default:
		w.WriteHeader(http.StatusOK)
	}
}

type attendanceAction struct {
	kind     types.EventKind
	actor    model.Actor
	viewID   string
	viewHash string
}

// parseAttendanceActions extracts the attendance button presses from a
// block_actions callback. Action IDs that are not event kinds are skipped.
func (h *SlackInteractionHandler) parseAttendanceActions(ctx context.Context, callback *slack.InteractionCallback) []attendanceAction {
	var actions []attendanceAction
	for _, action := range callback.ActionCallback.BlockActions {
		kind, err := types.ParseEventKind(action.ActionID)
		if err != nil {
			logging.From(ctx).Warn("skipping unknown block action", "action_id", action.ActionID)
			continue
		}

		actions = append(actions, attendanceAction{
			kind: kind,
			actor: model.Actor{
				ID:   callback.User.ID,
				Name: callback.User.Name,
			},
			viewID:   callback.View.ID,
			viewHash: callback.View.Hash,
		})
	}
	return actions
}
