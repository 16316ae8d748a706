package slack

import (
	"context"

	"github.com/slack-go/slack"
)

// Service provides the subset of the Slack Web API the bot needs.
type Service interface {
	// PostMessage posts a Block Kit message to the given channel. The
	// fallback text is used by notifications and clients that cannot
	// render blocks.
	PostMessage(ctx context.Context, channelID string, blocks []slack.Block, fallback string) error

	// OpenView opens a modal bound to the given trigger ID. The trigger ID
	// is only valid for a few seconds after the triggering interaction.
	OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error

	// UpdateView replaces the content of an open modal identified by view
	// ID and hash.
	UpdateView(ctx context.Context, viewID, hash string, view slack.ModalViewRequest) error

	// SetUserStatus sets the custom status of the given user with no
	// expiration. This acts with the delegated user token, not the bot
	// token, because users.profile.set for another user requires it.
	SetUserStatus(ctx context.Context, userID, statusText, statusEmoji string) error
}
