// Package notify provides desktop notification support.
// This file contains tests for the notification functionality.
package notify

import (
	"os"
	"runtime"
	"testing"
	"time"
)

// TestNew tests that New() returns a notifier on supported platforms.
func TestNew(t *testing.T) {
	n := New("remindme-test")

	switch runtime.GOOS {
	case "darwin", "linux":
		if n == nil {
			t.Fatalf("New() returned nil on %s", runtime.GOOS)
		}
		t.Logf("%s notification support: %v", runtime.GOOS, n.IsSupported())
	default:
		if n != nil {
			t.Errorf("New() should return nil on %s", runtime.GOOS)
		}
	}
}

func TestCurrentPlatform(t *testing.T) {
	p := CurrentPlatform()
	switch runtime.GOOS {
	case "darwin":
		if p != PlatformDarwin {
			t.Errorf("CurrentPlatform() = %q, want darwin", p)
		}
	case "linux":
		if p != PlatformLinux {
			t.Errorf("CurrentPlatform() = %q, want linux", p)
		}
	default:
		if p != PlatformOther {
			t.Errorf("CurrentPlatform() = %q, want other", p)
		}
	}
}

// TestSend tests sending a notification.
// This is a manual test - it will actually show a notification.
func TestSend(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping notification test in short mode")
	}
	if os.Getenv("RUN_NOTIFY_TESTS") != "1" {
		t.Skip("Skipping manual notification test (set RUN_NOTIFY_TESTS=1 to enable)")
	}

	n := New("remindme-test")
	if n == nil || !n.IsSupported() {
		t.Skip("Notifications not supported on this platform")
	}

	err := n.Send(Message{Title: "remindme test", Body: "This is a test notification"})
	if err != nil {
		t.Errorf("Send() error: %v", err)
	}
}

func TestNewPresentation(t *testing.T) {
	opts := PresentationOptions{ChannelID: "scheduled", Sound: true, Icon: "alarm"}

	darwin := NewPresentation(PlatformDarwin, opts)
	if darwin.Darwin == nil || darwin.Linux != nil {
		t.Fatalf("darwin presentation = %+v, want only Darwin set", darwin)
	}
	if !darwin.Darwin.Sound || !darwin.Darwin.Banner || !darwin.Darwin.Badge || !darwin.Darwin.List {
		t.Errorf("darwin options = %+v, want all enabled", *darwin.Darwin)
	}

	linux := NewPresentation(PlatformLinux, opts)
	if linux.Linux == nil || linux.Darwin != nil {
		t.Fatalf("linux presentation = %+v, want only Linux set", linux)
	}
	if linux.Linux.ChannelID != "scheduled" || linux.Linux.Icon != "alarm" || linux.Linux.PressActionID != "default" {
		t.Errorf("linux options = %+v", *linux.Linux)
	}

	other := NewPresentation(PlatformOther, opts)
	if other.Darwin != nil || other.Linux != nil {
		t.Errorf("other presentation = %+v, want no variant", other)
	}
}

func TestImportanceUrgency(t *testing.T) {
	tests := []struct {
		importance Importance
		want       Urgency
	}{
		{ImportanceNone, UrgencyLow},
		{ImportanceMin, UrgencyLow},
		{ImportanceLow, UrgencyLow},
		{ImportanceDefault, UrgencyNormal},
		{ImportanceHigh, UrgencyCritical},
	}

	for _, tc := range tests {
		if got := tc.importance.urgency(); got != tc.want {
			t.Errorf("Importance(%d).urgency() = %q, want %q", tc.importance, got, tc.want)
		}
	}
}

func TestTimestampTrigger(t *testing.T) {
	trigger := NewTimestampTrigger(time.UnixMilli(1_760_000_000_123))

	if trigger.Type != TriggerTimestamp {
		t.Errorf("Type = %v, want TriggerTimestamp", trigger.Type)
	}
	if trigger.Timestamp != 1_760_000_000_123 {
		t.Errorf("Timestamp = %d", trigger.Timestamp)
	}
	if !trigger.Time().Equal(time.UnixMilli(1_760_000_000_123)) {
		t.Errorf("Time() = %v", trigger.Time())
	}
}

func TestAuthorizationStatusString(t *testing.T) {
	if AuthorizationProvisional.String() != "provisional" {
		t.Errorf("String() = %q", AuthorizationProvisional.String())
	}
	if !AuthorizationProvisional.Granted() || AuthorizationNotDetermined.Granted() || AuthorizationDenied.Granted() {
		t.Error("Granted() mismatch")
	}
}
