package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/harulab/labbot/pkg/domain/model"
	"github.com/harulab/labbot/pkg/domain/types"
)

func TestEventValidate(t *testing.T) {
	at := time.Date(2024, 4, 1, 9, 30, 0, 0, time.Local)

	t.Run("valid event", func(t *testing.T) {
		ev := model.NewEvent(types.EventKindCheckIn, "alice", at)
		gt.NoError(t, ev.Validate())
	})

	t.Run("invalid kind", func(t *testing.T) {
		ev := model.NewEvent(types.EventKind("nap"), "alice", at)
		gt.Value(t, ev.Validate()).NotNil()
	})

	t.Run("empty user", func(t *testing.T) {
		ev := model.NewEvent(types.EventKindCheckOut, "", at)
		gt.Value(t, ev.Validate()).NotNil()
	})

	t.Run("zero time", func(t *testing.T) {
		ev := model.NewEvent(types.EventKindCheckOut, "alice", time.Time{})
		gt.Value(t, ev.Validate()).NotNil()
	})
}

func TestEventRecord(t *testing.T) {
	at := time.Date(2024, 12, 3, 18, 5, 7, 0, time.Local)
	ev := model.NewEvent(types.EventKindCheckOut, "bob", at)

	gt.Value(t, ev.Timestamp()).Equal("2024/12/03 18:05:07")
	gt.Value(t, ev.Record()).Equal([]string{"checkout", "bob", "2024/12/03 18:05:07"})
}

func TestActorValidate(t *testing.T) {
	gt.NoError(t, model.Actor{ID: "U123", Name: "alice"}.Validate())
	gt.Value(t, model.Actor{Name: "alice"}.Validate()).NotNil()
	gt.Value(t, model.Actor{ID: "U123"}.Validate()).NotNil()
}

func TestDefaultPresences(t *testing.T) {
	presences := model.DefaultPresences()

	gt.Value(t, presences[types.EventKindCheckIn].StatusEmoji).Equal(":office:")
	gt.Value(t, presences[types.EventKindCheckOut].StatusEmoji).Equal(":house:")
	for _, kind := range types.AllEventKinds() {
		gt.String(t, presences[kind].StatusText).NotEqual("")
	}
}
