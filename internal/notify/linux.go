//go:build linux

// Package notify provides desktop notification support.
// This file implements Linux notifications using notify-send.
package notify

import (
	"fmt"
	"os/exec"
)

// linuxNotifier implements notifications for Linux using notify-send.
type linuxNotifier struct {
	appName string
}

// newPlatformNotifier creates the Linux notifier.
func newPlatformNotifier(appName string) Notifier {
	return &linuxNotifier{appName: appName}
}

// Send shows the message with notify-send.
// Sound support depends on the notification daemon configuration.
func (n *linuxNotifier) Send(msg Message) error {
	cmd := exec.Command("notify-send", notifySendArgs(n.appName, msg)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send failed: %w", err)
	}
	return nil
}

// IsSupported returns true if notify-send is available.
func (n *linuxNotifier) IsSupported() bool {
	_, err := exec.LookPath("notify-send")
	return err == nil
}

// notifySendArgs builds the notify-send argument list for msg.
func notifySendArgs(appName string, msg Message) []string {
	args := []string{"--app-name=" + appName}

	urgency := msg.Urgency
	if urgency == "" {
		urgency = UrgencyNormal
	}
	args = append(args, "--urgency="+string(urgency))

	if msg.Icon != "" {
		args = append(args, "--icon="+msg.Icon)
	}
	if msg.Sound {
		args = append(args, "--hint=string:sound-name:message-new-instant")
	}

	return append(args, msg.Title, msg.Body)
}

// settingsCommand returns the command that opens the notification settings.
// GNOME's control center is preferred; otherwise the config file is opened.
func settingsCommand(configPath string) (string, []string, error) {
	if _, err := exec.LookPath("gnome-control-center"); err == nil {
		return "gnome-control-center", []string{"notifications"}, nil
	}
	if configPath == "" {
		return "", nil, fmt.Errorf("no notification settings application found")
	}
	return "xdg-open", []string{configPath}, nil
}
