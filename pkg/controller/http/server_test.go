package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	goslack "github.com/slack-go/slack"

	httpctrl "github.com/harulab/labbot/pkg/controller/http"
	"github.com/harulab/labbot/pkg/usecase"
)

const testSigningSecret = "test-signing-secret"

func newTestServer(t *testing.T, opts ...httpctrl.Options) (*httpctrl.Server, *fakeSlackService, *fakeAttendance) {
	t.Helper()
	svc := newFakeSlackService()
	attendance := newFakeAttendance()
	uc := newTestUseCases(svc)
	srv := httpctrl.New(testSigningSecret, uc.Slack, attendance, opts...)
	return srv, svc, attendance
}

func TestServerHealth(t *testing.T) {
	t.Run("reports ok without probes", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Status string            `json:"status"`
			Feeds  map[string]string `json:"feeds"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp.Status).Equal("ok")
	})

	t.Run("reports each probe result", func(t *testing.T) {
		srv, _, _ := newTestServer(t,
			httpctrl.WithProbe("weather", func(ctx context.Context) error { return nil }),
			httpctrl.WithProbe("train", func(ctx context.Context) error { return errors.New("unreachable") }),
		)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Status string            `json:"status"`
			Feeds  map[string]string `json:"feeds"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp.Status).Equal("ok")
		gt.Value(t, resp.Feeds["weather"]).Equal("ok")
		gt.Value(t, resp.Feeds["train"]).Equal("unavailable")
	})
}

func TestServerSlackRouting(t *testing.T) {
	t.Run("rejects unsigned webhook requests", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/slack/events", nil)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)
	})

	t.Run("routes JSON payloads to the event handler", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		challenge := "challenge-token"
		body, err := json.Marshal(map[string]any{
			"type":      "url_verification",
			"challenge": challenge,
		})
		gt.NoError(t, err).Required()

		req := signedRequest(testSigningSecret, "application/json", body)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, rec.Body.String()).Equal(challenge)
	})

	t.Run("routes form payloads to the interaction handler", func(t *testing.T) {
		srv, _, attendance := newTestServer(t)

		callback := goslack.InteractionCallback{
			Type:       goslack.InteractionTypeShortcut,
			CallbackID: usecase.ShortcutCallbackID,
			TriggerID:  "TRIGGER999",
		}
		payloadJSON, err := json.Marshal(callback)
		gt.NoError(t, err).Required()

		form := url.Values{"payload": {string(payloadJSON)}}
		body := form.Encode()
		req := signedRequest(testSigningSecret, "application/x-www-form-urlencoded", []byte(body))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusOK)

		select {
		case call := <-attendance.opened:
			gt.Value(t, call.triggerID).Equal("TRIGGER999")
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for the dialog to open")
		}
	})
}
