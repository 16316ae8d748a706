package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/harulab/labbot/pkg/usecase"
	"github.com/harulab/labbot/pkg/utils/errutil"
	"github.com/harulab/labbot/pkg/utils/logging"
)

// Probe checks that an upstream feed is reachable. The health endpoint runs
// all registered probes in parallel.
type Probe func(ctx context.Context) error

type Server struct {
	router             *chi.Mux
	slackSigningSecret string
	eventHandler       *SlackEventHandler
	interactionHandler *SlackInteractionHandler
	probes             map[string]Probe
}

type Options func(*Server)

// WithProbe registers a named upstream feed check for the health endpoint.
func WithProbe(name string, probe Probe) Options {
	return func(s *Server) {
		s.probes[name] = probe
	}
}

func New(signingSecret string, slackUC *usecase.SlackUseCases, attendanceUC AttendanceUseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:             r,
		slackSigningSecret: signingSecret,
		eventHandler:       NewSlackEventHandler(slackUC),
		interactionHandler: NewSlackInteractionHandler(attendanceUC),
		probes:             map[string]Probe{},
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler(s.probes))

	// Slack webhook endpoint. No auth, uses signature verification. Slack
	// sends both Events API payloads and interactivity payloads to the same
	// request URL, distinguished by content type.
	r.Route("/slack", func(r chi.Router) {
		r.Use(SlackSignatureMiddleware(s.slackSigningSecret))
		r.Post("/events", s.dispatchSlack)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// dispatchSlack routes a verified Slack request to the right handler.
// Interactivity payloads arrive form-encoded, Events API payloads as JSON.
func (s *Server) dispatchSlack(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		s.interactionHandler.ServeHTTP(w, r)
		return
	}
	s.eventHandler.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// healthHandler runs the registered feed probes in parallel and reports the
// result per feed. A failing feed is reported but does not fail the check;
// the bot stays up and answers with fallback messages instead.
func healthHandler(probes map[string]Probe) http.HandlerFunc {
	type response struct {
		Status string            `json:"status"`
		Feeds  map[string]string `json:"feeds,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		resp := response{Status: "ok"}
		if len(probes) > 0 {
			var mu sync.Mutex
			results := make(map[string]string, len(probes))

			eg, ctx := errgroup.WithContext(ctx)
			for name, probe := range probes {
				name, probe := name, probe
				eg.Go(func() error {
					status := "ok"
					if err := probe(ctx); err != nil {
						logging.From(ctx).Warn("feed probe failed", "feed", name, "error", err)
						status = "unavailable"
					}
					mu.Lock()
					results[name] = status
					mu.Unlock()
					return nil
				})
			}
			_ = eg.Wait()
			resp.Feeds = results
		}

		data, err := json.Marshal(resp)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal health response"), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data) //nolint:errcheck // header already committed
	}
}
