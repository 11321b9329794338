//go:build darwin

// Package notify provides desktop notification support.
// This file implements macOS notifications using osascript.
package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// darwinNotifier implements notifications for macOS using osascript.
type darwinNotifier struct {
	appName string
}

// newPlatformNotifier creates the macOS notifier.
func newPlatformNotifier(appName string) Notifier {
	return &darwinNotifier{appName: appName}
}

// Send shows the message with osascript.
func (n *darwinNotifier) Send(msg Message) error {
	cmd := exec.Command("osascript", "-e", appleScript(msg))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("osascript failed: %w", err)
	}
	return nil
}

// IsSupported returns true if osascript is available.
func (n *darwinNotifier) IsSupported() bool {
	_, err := exec.LookPath("osascript")
	return err == nil
}

// appleScript builds the display notification script for msg.
func appleScript(msg Message) string {
	title := escapeAppleScript(msg.Title)
	body := escapeAppleScript(msg.Body)

	if msg.Sound {
		return fmt.Sprintf(`display notification "%s" with title "%s" sound name "default"`, body, title)
	}
	return fmt.Sprintf(`display notification "%s" with title "%s"`, body, title)
}

// escapeAppleScript escapes special characters for AppleScript strings.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// settingsCommand returns the command that opens the notification settings.
func settingsCommand(string) (string, []string, error) {
	return "open", []string{"x-apple.systempreferences:com.apple.Notifications-Settings.extension"}, nil
}
