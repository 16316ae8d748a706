package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	slacksvc "github.com/harulab/labbot/pkg/service/slack"
)

type Slack struct {
	botToken      string
	userToken     string
	signingSecret string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (xoxb-...)",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("LABBOT_SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-user-token",
			Usage:       "Slack User OAuth Token for status updates (xoxp-...)",
			Category:    "Slack",
			Destination: &x.userToken,
			Sources:     cli.EnvVars("LABBOT_SLACK_USER_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack Signing Secret (for webhook verification)",
			Category:    "Slack",
			Destination: &x.signingSecret,
			Sources:     cli.EnvVars("LABBOT_SLACK_SIGNING_SECRET"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.Int("user-token.len", len(x.userToken)),
		slog.Int("signing-secret.len", len(x.signingSecret)),
	)
}

// Configure creates the Slack service. The bot token and signing secret are
// mandatory; the user token is optional and only disables status sync when
// missing.
func (x *Slack) Configure() (slacksvc.Service, error) {
	if x.botToken == "" {
		return nil, goerr.Wrap(ErrNoBotToken, "set --slack-bot-token or LABBOT_SLACK_BOT_TOKEN")
	}
	if x.signingSecret == "" {
		return nil, goerr.Wrap(ErrNoSigningSecret, "set --slack-signing-secret or LABBOT_SLACK_SIGNING_SECRET")
	}

	var opts []slacksvc.Option
	if x.userToken != "" {
		opts = append(opts, slacksvc.WithUserToken(x.userToken))
	}

	svc, err := slacksvc.New(x.botToken, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize slack service")
	}
	return svc, nil
}

// HasUserToken reports whether status sync is available.
func (x *Slack) HasUserToken() bool {
	return x.userToken != ""
}

// SigningSecret returns the Slack signing secret
func (x *Slack) SigningSecret() string {
	return x.signingSecret
}
