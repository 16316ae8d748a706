package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/harulab/labbot/pkg/domain/model"
	"github.com/harulab/labbot/pkg/domain/types"
	"github.com/harulab/labbot/pkg/service/train"
	"github.com/harulab/labbot/pkg/service/weather"
)

const defaultEventLogPath = "checkin.csv"

// App is the TOML application configuration: feed endpoints, watched train
// lines, the event log location and the presence labels. Every field has a
// default, so running without a config file works out of the box.
type App struct {
	path string

	Weather    WeatherConfig    `toml:"weather"`
	Train      TrainConfig      `toml:"train"`
	Attendance AttendanceConfig `toml:"attendance"`
}

type WeatherConfig struct {
	URL string `toml:"url"`
}

type TrainConfig struct {
	URL   string   `toml:"url"`
	Lines []string `toml:"lines"`
}

type AttendanceConfig struct {
	LogPath  string         `toml:"log_path"`
	CheckIn  PresenceConfig `toml:"check_in"`
	CheckOut PresenceConfig `toml:"check_out"`
}

type PresenceConfig struct {
	StatusText  string `toml:"status_text"`
	StatusEmoji string `toml:"status_emoji"`
}

func (x *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Category:    "Config",
			Sources:     cli.EnvVars("LABBOT_CONFIG"),
			Destination: &x.path,
		},
	}
}

func (x App) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.String("weather.url", x.Weather.URL),
		slog.String("train.url", x.Train.URL),
		slog.Any("train.lines", x.Train.Lines),
		slog.String("attendance.log_path", x.Attendance.LogPath),
	)
}

func (x *App) applyDefaults() {
	if x.Weather.URL == "" {
		x.Weather.URL = weather.DefaultFeedURL
	}
	if x.Train.URL == "" {
		x.Train.URL = train.DefaultFeedURL
	}
	if len(x.Train.Lines) == 0 {
		x.Train.Lines = []string{"中央線快速電車", "中央･総武各駅停車"}
	}
	if x.Attendance.LogPath == "" {
		x.Attendance.LogPath = defaultEventLogPath
	}

	defaults := model.DefaultPresences()
	if x.Attendance.CheckIn.StatusText == "" && x.Attendance.CheckIn.StatusEmoji == "" {
		x.Attendance.CheckIn.StatusText = defaults[types.EventKindCheckIn].StatusText
		x.Attendance.CheckIn.StatusEmoji = defaults[types.EventKindCheckIn].StatusEmoji
	}
	if x.Attendance.CheckOut.StatusText == "" && x.Attendance.CheckOut.StatusEmoji == "" {
		x.Attendance.CheckOut.StatusText = defaults[types.EventKindCheckOut].StatusText
		x.Attendance.CheckOut.StatusEmoji = defaults[types.EventKindCheckOut].StatusEmoji
	}
}

// Validate checks the loaded configuration.
func (x *App) Validate() error {
	if x.Weather.URL == "" {
		return goerr.Wrap(ErrInvalidAppConfig, "weather feed URL is empty")
	}
	if x.Train.URL == "" {
		return goerr.Wrap(ErrInvalidAppConfig, "train feed URL is empty")
	}
	for i, line := range x.Train.Lines {
		if line == "" {
			return goerr.Wrap(ErrInvalidAppConfig, "watched train line is empty", goerr.V("index", i))
		}
	}
	if x.Attendance.LogPath == "" {
		return goerr.Wrap(ErrInvalidAppConfig, "attendance log path is empty")
	}
	return nil
}

// Configure loads the TOML file when one is given, applies the defaults and
// validates the result. A missing file at the default (unset) path is fine;
// an explicitly named file must exist.
func (x *App) Configure() error {
	if x.path != "" {
		// #nosec G304 - path is provided by CLI argument
		data, err := os.ReadFile(x.path)
		if err != nil {
			return goerr.Wrap(err, "failed to read config file", goerr.V("path", x.path))
		}

		if err := toml.Unmarshal(data, x); err != nil {
			return goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", x.path))
		}
	}

	x.applyDefaults()

	if err := x.Validate(); err != nil {
		return goerr.Wrap(err, "config validation failed", goerr.V("path", x.path))
	}
	return nil
}

// Presences returns the status mapping per event kind.
func (x *App) Presences() map[types.EventKind]model.Presence {
	return map[types.EventKind]model.Presence{
		types.EventKindCheckIn: {
			StatusText:  x.Attendance.CheckIn.StatusText,
			StatusEmoji: x.Attendance.CheckIn.StatusEmoji,
		},
		types.EventKindCheckOut: {
			StatusText:  x.Attendance.CheckOut.StatusText,
			StatusEmoji: x.Attendance.CheckOut.StatusEmoji,
		},
	}
}
