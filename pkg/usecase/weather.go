package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	slacksvc "github.com/harulab/labbot/pkg/service/slack"
	"github.com/harulab/labbot/pkg/service/weather"
	"github.com/harulab/labbot/pkg/utils/errutil"
)

const msgWeatherUnavailable = "天気情報を取得できませんでした．時間をおいて再度お試しください．"

// WeatherUseCase relays the forecast feed into a formatted channel message.
type WeatherUseCase struct {
	feed     weather.Service
	slackSvc slacksvc.Service
}

// PostForecast fetches the forecast and posts it to the channel. A feed
// failure is reported to the channel as a service-unavailable message
// instead of silently dropping the reply.
func (uc *WeatherUseCase) PostForecast(ctx context.Context, channelID string) error {
	if uc.feed == nil {
		return goerr.Wrap(ErrFeedUnavailable, "weather feed is not configured")
	}

	forecast, err := uc.feed.Fetch(ctx)
	if err != nil {
		errutil.Handle(ctx, err, "weather feed fetch failed")
		if perr := uc.slackSvc.PostMessage(ctx, channelID, buildUnavailableBlocks(msgWeatherUnavailable), msgWeatherUnavailable); perr != nil {
			return goerr.Wrap(perr, "failed to post weather fallback message", goerr.V("channel_id", channelID))
		}
		return nil
	}

	if err := uc.slackSvc.PostMessage(ctx, channelID, buildForecastBlocks(forecast), forecast.Title); err != nil {
		return goerr.Wrap(err, "failed to post forecast message", goerr.V("channel_id", channelID))
	}
	return nil
}
