// Package ui provides the terminal user interface for remindme.
// This file defines message types for async notification service calls using
// the Bubble Tea command pattern. Every controller operation returns one of
// these messages so the event loop never blocks on the service.
package ui

import (
	"time"

	"remindme/internal/notify"
	"remindme/internal/schedule"
)

// =============================================================================
// Permission Messages
// =============================================================================

// permissionMsg is sent when a permission request resolves.
type permissionMsg struct {
	granted bool
	err     error
}

// settingsOpenedMsg is sent after the system settings were launched.
type settingsOpenedMsg struct {
	err error
}

// =============================================================================
// Scheduling Messages
// =============================================================================

// scheduledMsg is sent when a schedule attempt completes.
type scheduledMsg struct {
	result schedule.Result
	err    error
}

// cancelledMsg is sent when cancel-all completes.
type cancelledMsg struct {
	err error
}

// deliveredMsg is sent when a trigger fires. closed is set once the delivery
// stream ends.
type deliveredMsg struct {
	delivery notify.Delivery
	closed   bool
}

// =============================================================================
// Picker Messages
// =============================================================================

// pickerReadyMsg is sent when the picker debounce window ends.
type pickerReadyMsg struct{}

// =============================================================================
// Clock
// =============================================================================

// tickMsg is sent periodically for time updates.
type tickMsg time.Time
