package usecase

import (
	"github.com/slack-go/slack"

	"github.com/harulab/labbot/pkg/domain/model"
	"github.com/harulab/labbot/pkg/domain/types"
	"github.com/harulab/labbot/pkg/service/train"
	"github.com/harulab/labbot/pkg/service/weather"
)

const (
	modalTitle     = "Laboratory check-in"
	modalBodyText  = "研究室の入退室管理システムです．入退室を打刻する場合，以下にチェックしてください．"
	modalLogFailed = "打刻の記録に失敗しました．時間をおいて再度お試しください．"
	modalSyncNote  = "ステータスの更新に失敗しました．入退室は記録されています．"

	attendanceBlockID = "attendance_actions"
)

func kindLabel(kind types.EventKind) string {
	if kind == types.EventKindCheckOut {
		return "退室"
	}
	return "入室"
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

// attendanceActionBlocks is the two-button chooser shown in the modal.
func attendanceActionBlocks() []slack.Block {
	return []slack.Block{
		slack.NewDividerBlock(),
		slack.NewSectionBlock(markdown(modalBodyText), nil, nil),
		slack.NewActionBlock(attendanceBlockID,
			slack.NewButtonBlockElement(types.EventKindCheckIn.String(), types.EventKindCheckIn.String(), plainText(kindLabel(types.EventKindCheckIn))),
			slack.NewButtonBlockElement(types.EventKindCheckOut.String(), types.EventKindCheckOut.String(), plainText(kindLabel(types.EventKindCheckOut))),
		),
	}
}

// buildAttendanceModal renders the initial check-in/check-out chooser.
func buildAttendanceModal() slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:   slack.VTModal,
		Title:  plainText(modalTitle),
		Submit: plainText("Submit"),
		Close:  plainText("Cancel"),
		Blocks: slack.Blocks{BlockSet: attendanceActionBlocks()},
	}
}

// buildConfirmationView replaces the modal content after an event has been
// recorded. When syncFailed is set, the view notes that the Slack status
// could not be updated even though the event itself is logged.
func buildConfirmationView(ev *model.Event, syncFailed bool) slack.ModalViewRequest {
	label := kindLabel(ev.Kind)
	blocks := []slack.Block{
		slack.NewSectionBlock(plainText(label+"を記録しました．"), nil, nil),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			markdown("*" + label + "*\n" + ev.Timestamp()),
			markdown("*ユーザ名*\n" + ev.User),
		}, nil),
	}
	if syncFailed {
		blocks = append(blocks, slack.NewSectionBlock(markdown(modalSyncNote), nil, nil))
	}

	return slack.ModalViewRequest{
		Type:   slack.VTModal,
		Title:  plainText(modalTitle),
		Close:  plainText("Cancel"),
		Blocks: slack.Blocks{BlockSet: blocks},
	}
}

// buildLogFailureView keeps the chooser visible and surfaces the failure so
// the user can retry instead of seeing a false confirmation.
func buildLogFailureView() slack.ModalViewRequest {
	blocks := append([]slack.Block{
		slack.NewSectionBlock(plainText(modalLogFailed), nil, nil),
	}, attendanceActionBlocks()...)

	return slack.ModalViewRequest{
		Type:   slack.VTModal,
		Title:  plainText(modalTitle),
		Submit: plainText("Submit"),
		Close:  plainText("Cancel"),
		Blocks: slack.Blocks{BlockSet: blocks},
	}
}

// buildForecastBlocks renders the first forecast entry of the feed.
func buildForecastBlocks(f *weather.Forecast) []slack.Block {
	today := f.Today()
	return []slack.Block{
		slack.NewSectionBlock(markdown(f.Title), nil, nil),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			markdown("*更新時刻:*\n" + f.PublicTimeFormatted),
			markdown("*計測地点:*\n" + f.PublishingOffice),
		}, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			markdown("*日時:*\n" + today.Date),
			markdown("*天気:*\n" + today.Telop),
			markdown("*風向:*\n" + today.Detail.Wind + today.Detail.Wave),
			markdown("*最高気温:*\n" + today.Temperature.Max.String()),
			markdown("*最低気温:*\n" + today.Temperature.Min.String()),
		}, nil),
	}
}

// buildTrainBlocks renders one section per watched line.
func buildTrainBlocks(statuses []train.LineStatus, lines []string) []slack.Block {
	var blocks []slack.Block
	for i, line := range lines {
		if i > 0 {
			blocks = append(blocks, slack.NewDividerBlock())
		}
		blocks = append(blocks, slack.NewSectionBlock(plainText(delayMessage(statuses, line)), nil, nil))
	}
	return blocks
}

func buildUnavailableBlocks(text string) []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(plainText(text), nil, nil),
	}
}
