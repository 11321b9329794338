package main

import (
	"log/slog"
	"time"

	"remindme/internal/config"
	"remindme/internal/notify"
	"remindme/internal/schedule"

	cli "github.com/urfave/cli/v3"
)

const appName = "remindme"

func configPath(command *cli.Command) string {
	if path := command.String("config"); path != "" {
		return path
	}
	return config.Path()
}

func loadConfig(command *cli.Command) (*config.Config, error) {
	return config.LoadFrom(configPath(command))
}

// logLevel prefers the --log-level flag over the config file.
func logLevel(command *cli.Command, cfg *config.Config) string {
	if command.IsSet("log-level") {
		return command.String("log-level")
	}
	return cfg.Log.Level
}

// newScheduler builds the notification center for this platform and the
// controller on top of it. The center is not started.
func newScheduler(cfg *config.Config, settingsPath string, logger *slog.Logger) (*notify.Center, *schedule.Controller) {
	center := notify.NewCenter(notify.New(appName), notify.CenterConfig{
		Enabled:      cfg.Notifications.Enabled,
		SettingsPath: settingsPath,
		Logger:       logger,
	})

	ctrl := schedule.NewController(center, schedule.Options{
		Payload: schedule.Payload{
			Title: cfg.Notifications.Title,
			Body:  cfg.Notifications.Body,
			Sound: cfg.Notifications.Sound,
			Icon:  cfg.Notifications.Icon,
		},
		InitialTime: time.Now().Add(cfg.Notifications.DefaultLead),
		Logger:      logger,
	})

	return center, ctrl
}
