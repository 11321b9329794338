package main

import (
	"context"
	"fmt"
	"os"

	"remindme/internal/config"

	cli "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand groups config file helpers.
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the config file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the default config file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file (the old one is kept as .bak)",
					},
				},
				Action: runConfigInit,
			},
			{
				Name:  "path",
				Usage: "Print the config file path",
				Action: func(_ context.Context, command *cli.Command) error {
					fmt.Println(configPath(command))
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Action: func(_ context.Context, command *cli.Command) error {
					cfg, err := loadConfig(command)
					if err != nil {
						return err
					}
					data, err := yaml.Marshal(cfg)
					if err != nil {
						return err
					}
					fmt.Print(string(data))
					return nil
				},
			},
		},
	}
}

func runConfigInit(_ context.Context, command *cli.Command) error {
	path := configPath(command)
	if path == "" {
		return fmt.Errorf("cannot determine config directory; pass --config")
	}

	if _, err := os.Stat(path); err == nil && !command.Bool("force") {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
