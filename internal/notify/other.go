//go:build !darwin && !linux

// Package notify provides desktop notification support.
// This file covers platforms without a native notifier.
package notify

import "errors"

// newPlatformNotifier reports that this build has no notifier.
func newPlatformNotifier(string) Notifier {
	return nil
}

func settingsCommand(string) (string, []string, error) {
	return "", nil, errors.New("notification settings are not supported on this platform")
}
