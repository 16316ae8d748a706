package usecase_test

import (
	"context"
	"strings"
	"sync"

	"github.com/slack-go/slack"

	"github.com/harulab/labbot/pkg/domain/model"
	"github.com/harulab/labbot/pkg/service/train"
	"github.com/harulab/labbot/pkg/service/weather"
)

type postCall struct {
	channelID string
	blocks    []slack.Block
	fallback  string
}

type openCall struct {
	triggerID string
	view      slack.ModalViewRequest
}

type updateCall struct {
	viewID string
	hash   string
	view   slack.ModalViewRequest
}

type statusCall struct {
	userID      string
	statusText  string
	statusEmoji string
}

// fakeSlack records every Slack API call made by the use cases.
type fakeSlack struct {
	mu       sync.Mutex
	posts    []postCall
	opens    []openCall
	updates  []updateCall
	statuses []statusCall

	postErr   error
	openErr   error
	updateErr error
	statusErr error
}

func (f *fakeSlack) PostMessage(ctx context.Context, channelID string, blocks []slack.Block, fallback string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.postErr != nil {
		return f.postErr
	}
	f.posts = append(f.posts, postCall{channelID: channelID, blocks: blocks, fallback: fallback})
	return nil
}

func (f *fakeSlack) OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openErr != nil {
		return f.openErr
	}
	f.opens = append(f.opens, openCall{triggerID: triggerID, view: view})
	return nil
}

func (f *fakeSlack) UpdateView(ctx context.Context, viewID, hash string, view slack.ModalViewRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, updateCall{viewID: viewID, hash: hash, view: view})
	return nil
}

func (f *fakeSlack) SetUserStatus(ctx context.Context, userID, statusText, statusEmoji string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statuses = append(f.statuses, statusCall{userID: userID, statusText: statusText, statusEmoji: statusEmoji})
	return nil
}

// failEventLog rejects every append.
type failEventLog struct {
	err   error
	calls int
}

func (f *failEventLog) Append(ctx context.Context, ev *model.Event) error {
	f.calls++
	return f.err
}

func (f *failEventLog) Close() error { return nil }

// fakeWeatherFeed returns a canned forecast or error.
type fakeWeatherFeed struct {
	forecast *weather.Forecast
	err      error
}

func (f *fakeWeatherFeed) Fetch(ctx context.Context) (*weather.Forecast, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.forecast, nil
}

// fakeTrainFeed returns canned delay entries or error.
type fakeTrainFeed struct {
	statuses []train.LineStatus
	err      error
}

func (f *fakeTrainFeed) Fetch(ctx context.Context) ([]train.LineStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.statuses, nil
}

// blockTexts flattens all text contents of the given blocks for assertions.
func blockTexts(blocks []slack.Block) []string {
	var texts []string
	for _, b := range blocks {
		section, ok := b.(*slack.SectionBlock)
		if !ok {
			continue
		}
		if section.Text != nil {
			texts = append(texts, section.Text.Text)
		}
		for _, field := range section.Fields {
			texts = append(texts, field.Text)
		}
	}
	return texts
}

func viewTexts(view slack.ModalViewRequest) []string {
	return blockTexts(view.Blocks.BlockSet)
}

func containsText(texts []string, substr string) bool {
	for _, t := range texts {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}
