package usecase

import (
	"context"
	"strings"

	"github.com/slack-go/slack/slackevents"

	"github.com/harulab/labbot/pkg/utils/logging"
)

// Keyword triggers for the feed relay handlers.
const (
	keywordWeather = "天気"
	keywordTrain   = "運行情報"
)

// SlackUseCases dispatches Slack Events API events to the keyword handlers.
type SlackUseCases struct {
	weather *WeatherUseCase
	train   *TrainUseCase
}

// HandleSlackEvent routes a message event by keyword. Events the bot does
// not understand are logged and dropped without error; bot-originated and
// edited messages are ignored so the bot never replies to itself.
func (uc *SlackUseCases) HandleSlackEvent(ctx context.Context, event *slackevents.EventsAPIEvent) error {
	logger := logging.From(ctx)

	msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent)
	if !ok {
		logger.Warn("unsupported slack event type", "type", event.Type, "innerType", event.InnerEvent.Type)
		return nil
	}

	if msg.BotID != "" || msg.SubType != "" {
		return nil
	}

	switch {
	case strings.Contains(msg.Text, keywordWeather):
		return uc.weather.PostForecast(ctx, msg.Channel)
	case strings.Contains(msg.Text, keywordTrain):
		return uc.train.PostStatus(ctx, msg.Channel)
	}

	return nil
}
