package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidLogLevel  = goerr.New("invalid log level")
	ErrInvalidLogFormat = goerr.New("invalid log format")
	ErrNoBotToken       = goerr.New("Slack bot token is required")
	ErrNoSigningSecret  = goerr.New("Slack signing secret is required")
	ErrInvalidAppConfig = goerr.New("invalid application configuration")
)
