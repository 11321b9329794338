// Package notify provides the local notification service used by remindme.
// It uses native notification mechanisms on macOS (osascript) and Linux
// (notify-send) and layers permission, channels and timestamp triggers on top.
package notify

import "runtime"

// Notifier delivers a single desktop notification right now.
type Notifier interface {
	// Send shows the message using the platform's notification mechanism.
	Send(msg Message) error

	// IsSupported returns true if the platform tool is installed.
	IsSupported() bool
}

// Urgency is the Linux notification urgency level.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

// Message is what a Notifier actually renders. Center resolves it from a
// Notification and its Channel at delivery time.
type Message struct {
	Title   string
	Body    string
	Sound   bool
	Icon    string
	Urgency Urgency
}

// Platform identifies which presentation variant a payload carries.
type Platform string

const (
	PlatformDarwin Platform = "darwin"
	PlatformLinux  Platform = "linux"
	PlatformOther  Platform = "other"
)

// CurrentPlatform returns the presentation platform for the running OS.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformDarwin
	case "linux":
		return PlatformLinux
	default:
		return PlatformOther
	}
}

// New creates the platform notifier for this build.
// Returns nil if the build has no notifier for the running OS.
func New(appName string) Notifier {
	return newPlatformNotifier(appName)
}
