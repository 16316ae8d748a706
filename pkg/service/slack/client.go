package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// client implements Service. It holds two API clients: one with the bot
// token for messages and views, and one with the per-user delegated token
// for status updates.
type client struct {
	api     *slack.Client
	userAPI *slack.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithUserToken sets the delegated user token used for status updates.
func WithUserToken(token string) Option {
	return func(c *client) {
		if token != "" {
			c.userAPI = slack.New(token)
		}
	}
}

// New creates a new Slack service with the provided bot token
func New(botToken string, opts ...Option) (Service, error) {
	if botToken == "" {
		return nil, goerr.New("Slack bot token is required")
	}

	c := &client{
		api: slack.New(botToken),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) PostMessage(ctx context.Context, channelID string, blocks []slack.Block, fallback string) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(fallback, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post message", goerr.V("channel_id", channelID))
	}
	return nil
}

func (c *client) OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	if _, err := c.api.OpenViewContext(ctx, triggerID, view); err != nil {
		return goerr.Wrap(err, "failed to open view")
	}
	return nil
}

func (c *client) UpdateView(ctx context.Context, viewID, hash string, view slack.ModalViewRequest) error {
	if _, err := c.api.UpdateViewContext(ctx, view, "", hash, viewID); err != nil {
		return goerr.Wrap(err, "failed to update view", goerr.V("view_id", viewID))
	}
	return nil
}

func (c *client) SetUserStatus(ctx context.Context, userID, statusText, statusEmoji string) error {
	if c.userAPI == nil {
		return goerr.New("Slack user token is not configured", goerr.V("user_id", userID))
	}

	// Expiration 0 means the status never expires.
	if err := c.userAPI.SetUserCustomStatusContextWithUser(ctx, userID, statusText, statusEmoji, 0); err != nil {
		return goerr.Wrap(err, "failed to set user status",
			goerr.V("user_id", userID),
			goerr.V("status_text", statusText),
		)
	}
	return nil
}
