// Package main is the entry point for remindme.
// It loads configuration, wires the notification center, and starts the TUI
// or one of the CLI subcommands.
package main

import (
	"context"
	"fmt"
	"os"

	"remindme/internal/logging"
	"remindme/internal/ui"

	cli "github.com/urfave/cli/v3"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:                  "remindme",
		Usage:                 "Schedule a local desktop notification",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the config file (default: $XDG_CONFIG_HOME/remindme/config.yaml)",
				Sources: cli.EnvVars("REMINDME_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error); overrides log.level",
				Sources: cli.EnvVars("REMINDME_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			NewScheduleCommand(),
			NewConfigCommand(),
		},
		Action: runTUI,
	}
}

// runTUI starts the interactive screen. The terminal belongs to the UI, so
// logs go to log.file or nowhere.
func runTUI(ctx context.Context, command *cli.Command) error {
	cfg, err := loadConfig(command)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out, closeLog, err := logging.Output(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()
	logger := logging.Setup(logLevel(command, cfg), out)

	center, ctrl := newScheduler(cfg, configPath(command), logger)
	center.Start()
	defer center.Stop()

	logging.WithModule("remindme").Info("starting", "version", version, "available", center.Available())

	return ui.Run(ctx, ctrl, center.Deliveries(), ui.NewStyles(cfg), &ui.AppConfig{
		Keys:       &cfg.Keys,
		Debounce:   cfg.Picker.Debounce,
		MaxHorizon: cfg.Picker.MaxHorizon,
		Use24Hour:  cfg.Picker.Use24Hour,
	})
}
