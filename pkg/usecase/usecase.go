package usecase

import (
	"time"

	"github.com/harulab/labbot/pkg/domain/interfaces"
	"github.com/harulab/labbot/pkg/domain/model"
	"github.com/harulab/labbot/pkg/domain/types"
	slacksvc "github.com/harulab/labbot/pkg/service/slack"
	"github.com/harulab/labbot/pkg/service/train"
	"github.com/harulab/labbot/pkg/service/weather"
)

type UseCases struct {
	Attendance *AttendanceUseCase
	Weather    *WeatherUseCase
	Train      *TrainUseCase
	Slack      *SlackUseCases
}

type Option func(*UseCases)

// WithClock replaces the time source used to stamp attendance events.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.Attendance.now = now
	}
}

// WithPresences overrides the status text/emoji set per event kind.
func WithPresences(presences map[types.EventKind]model.Presence) Option {
	return func(uc *UseCases) {
		uc.Attendance.presences = presences
	}
}

// WithWatchedLines sets the train lines reported by the delay handler.
func WithWatchedLines(lines []string) Option {
	return func(uc *UseCases) {
		uc.Train.lines = lines
	}
}

// New wires the use cases. The weather and train feeds may be nil when the
// corresponding keyword handlers are disabled.
func New(eventLog interfaces.EventLog, slackSvc slacksvc.Service, weatherFeed weather.Service, trainFeed train.Service, opts ...Option) *UseCases {
	uc := &UseCases{
		Attendance: &AttendanceUseCase{
			eventLog:  eventLog,
			slackSvc:  slackSvc,
			presences: model.DefaultPresences(),
			now:       time.Now,
		},
		Weather: &WeatherUseCase{
			feed:     weatherFeed,
			slackSvc: slackSvc,
		},
		Train: &TrainUseCase{
			feed:     trainFeed,
			slackSvc: slackSvc,
		},
	}
	uc.Slack = &SlackUseCases{
		weather: uc.Weather,
		train:   uc.Train,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
