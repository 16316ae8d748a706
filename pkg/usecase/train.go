package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	slacksvc "github.com/harulab/labbot/pkg/service/slack"
	"github.com/harulab/labbot/pkg/service/train"
	"github.com/harulab/labbot/pkg/utils/errutil"
)

const (
	msgTrainUnavailable = "運行情報を取得できませんでした．時間をおいて再度お試しください．"
	msgTrainFallback    = "運行情報"
)

// TrainUseCase relays the delay feed into per-line status messages.
type TrainUseCase struct {
	feed     train.Service
	slackSvc slacksvc.Service
	lines    []string
}

// delayMessage renders the status sentence for one watched line.
func delayMessage(statuses []train.LineStatus, line string) string {
	if train.IsDelayed(statuses, line) {
		return fmt.Sprintf("%s が遅延しています．詳しくは JR 東日本のホームページをご覧ください．", line)
	}
	return fmt.Sprintf("現在，%s に遅延情報はありません．", line)
}

// PostStatus fetches the delay feed and posts one status line per watched
// line. A feed failure is reported to the channel as a service-unavailable
// message.
func (uc *TrainUseCase) PostStatus(ctx context.Context, channelID string) error {
	if uc.feed == nil {
		return goerr.Wrap(ErrFeedUnavailable, "train feed is not configured")
	}
	if len(uc.lines) == 0 {
		return goerr.Wrap(ErrNoWatchedLines, "train handler is enabled without lines")
	}

	statuses, err := uc.feed.Fetch(ctx)
	if err != nil {
		errutil.Handle(ctx, err, "train feed fetch failed")
		if perr := uc.slackSvc.PostMessage(ctx, channelID, buildUnavailableBlocks(msgTrainUnavailable), msgTrainUnavailable); perr != nil {
			return goerr.Wrap(perr, "failed to post train fallback message", goerr.V("channel_id", channelID))
		}
		return nil
	}

	if err := uc.slackSvc.PostMessage(ctx, channelID, buildTrainBlocks(statuses, uc.lines), msgTrainFallback); err != nil {
		return goerr.Wrap(err, "failed to post train status message", goerr.V("channel_id", channelID))
	}
	return nil
}
