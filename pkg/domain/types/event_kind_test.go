package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/harulab/labbot/pkg/domain/types"
)

func TestEventKind(t *testing.T) {
	t.Run("known kinds are valid", func(t *testing.T) {
		for _, kind := range types.AllEventKinds() {
			gt.Bool(t, kind.IsValid()).True()
		}
	})

	t.Run("unknown kind is invalid", func(t *testing.T) {
		gt.Bool(t, types.EventKind("lunch").IsValid()).False()
		gt.Bool(t, types.EventKind("").IsValid()).False()
	})

	t.Run("ParseEventKind accepts action IDs", func(t *testing.T) {
		kind, err := types.ParseEventKind("checkin")
		gt.NoError(t, err).Required()
		gt.Value(t, kind).Equal(types.EventKindCheckIn)

		kind, err = types.ParseEventKind("checkout")
		gt.NoError(t, err).Required()
		gt.Value(t, kind).Equal(types.EventKindCheckOut)
	})

	t.Run("ParseEventKind rejects unknown values", func(t *testing.T) {
		_, err := types.ParseEventKind("check_in")
		gt.Value(t, err).NotNil()
	})
}
