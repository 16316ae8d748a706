package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/harulab/labbot/pkg/cli/config"
	httpctrl "github.com/harulab/labbot/pkg/controller/http"
	"github.com/harulab/labbot/pkg/repository/csvlog"
	"github.com/harulab/labbot/pkg/service/train"
	"github.com/harulab/labbot/pkg/service/weather"
	"github.com/harulab/labbot/pkg/usecase"
	"github.com/harulab/labbot/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.App
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("LABBOT_ADDR"),
			Destination: &addr,
		},
	}

	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the Slack webhook server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := appCfg.Configure(); err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}
			logging.Default().Info("loaded configuration", "app", appCfg)

			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure slack service")
			}
			if !slackCfg.HasUserToken() {
				logging.Default().Warn("Slack user token not configured, status sync is disabled")
			}

			eventLog, err := csvlog.New(appCfg.Attendance.LogPath)
			if err != nil {
				return goerr.Wrap(err, "failed to open attendance event log")
			}
			defer func() {
				if err := eventLog.Close(); err != nil {
					logging.Default().Error("failed to close event log", "error", err)
				}
			}()

			weatherFeed, err := weather.New(appCfg.Weather.URL)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize weather feed client")
			}
			trainFeed, err := train.New(appCfg.Train.URL)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize train feed client")
			}

			uc := usecase.New(eventLog, slackSvc, weatherFeed, trainFeed,
				usecase.WithPresences(appCfg.Presences()),
				usecase.WithWatchedLines(appCfg.Train.Lines),
			)

			httpHandler := httpctrl.New(slackCfg.SigningSecret(), uc.Slack, uc.Attendance,
				httpctrl.WithProbe("weather", func(ctx context.Context) error {
					_, err := weatherFeed.Fetch(ctx)
					return err
				}),
				httpctrl.WithProbe("train", func(ctx context.Context) error {
					_, err := trainFeed.Fetch(ctx)
					return err
				}),
			)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
