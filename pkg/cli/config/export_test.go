package config

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, userToken, signingSecret string) *Slack {
	return &Slack{
		botToken:      botToken,
		userToken:     userToken,
		signingSecret: signingSecret,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewAppForTest creates an App config bound to the given file path
func NewAppForTest(path string) *App {
	return &App{path: path}
}
