package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"remindme/internal/logging"
	"remindme/internal/picker"

	"github.com/dustin/go-humanize"
	cli "github.com/urfave/cli/v3"
)

// NewScheduleCommand schedules one notification and waits for it.
func NewScheduleCommand() *cli.Command {
	return &cli.Command{
		Name:    "schedule",
		Aliases: []string{"s"},
		Usage:   "Schedule a notification and wait until it is delivered",
		Description: "Pending notifications live in this process. The command blocks until\n" +
			"delivery; interrupting it cancels the notification.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "at",
				Usage: `Time to notify, e.g. "2026-01-02 15:04", "15:04" or "3:04PM"`,
			},
			&cli.DurationFlag{
				Name:  "in",
				Usage: "Notify after this delay, e.g. 10m (default: notifications.default_lead)",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Notification title (default: notifications.title)",
			},
			&cli.StringFlag{
				Name:  "body",
				Usage: "Notification body (default: notifications.body)",
			},
		},
		Action: runSchedule,
	}
}

func runSchedule(ctx context.Context, command *cli.Command) error {
	if command.IsSet("at") && command.IsSet("in") {
		return errors.New("use either --at or --in, not both")
	}

	cfg, err := loadConfig(command)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if command.IsSet("title") {
		cfg.Notifications.Title = command.String("title")
	}
	if command.IsSet("body") {
		cfg.Notifications.Body = command.String("body")
	}

	logger := logging.Setup(logLevel(command, cfg), os.Stderr)

	now := time.Now()
	at := now.Add(cfg.Notifications.DefaultLead)
	switch {
	case command.IsSet("at"):
		at, err = picker.Parse(command.String("at"), now)
		if err != nil {
			return err
		}
	case command.IsSet("in"):
		at = now.Add(command.Duration("in"))
	}

	center, ctrl := newScheduler(cfg, configPath(command), logger)
	center.Start()
	defer center.Stop()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	granted, err := ctrl.RequestPermission(ctx)
	if err != nil {
		return err
	}
	if !granted {
		return fmt.Errorf("notification permission denied: enable notifications.enabled in %s and install the platform notifier", configPath(command))
	}

	res, err := ctrl.Schedule(ctx, at)
	if err != nil {
		return err
	}
	fmt.Printf("Notification scheduled for %s (%s)\n",
		picker.Format(res.At, cfg.Picker.Use24Hour), humanize.RelTime(res.At, time.Now(), "ago", "from now"))

	for {
		select {
		case d := <-center.Deliveries():
			if d.ID != res.TriggerID {
				continue
			}
			ctrl.MarkDelivered(d.ID)
			if d.Err != nil {
				return fmt.Errorf("deliver notification: %w", d.Err)
			}
			fmt.Printf("Delivered %q at %s\n", d.Title, d.FiredAt.Format("15:04:05"))
			return nil

		case <-ctx.Done():
			if err := ctrl.Cancel(context.WithoutCancel(ctx)); err != nil {
				return err
			}
			fmt.Println("Cancelled before delivery")
			return nil
		}
	}
}
