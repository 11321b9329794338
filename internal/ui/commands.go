// Package ui provides the terminal user interface for remindme.
// This file contains tea.Cmd factories that wrap controller operations. These
// commands run notification service calls asynchronously to keep the Bubble
// Tea event loop responsive. Each command returns a corresponding message
// type defined in messages.go.
package ui

import (
	"context"
	"time"

	"remindme/internal/notify"
	"remindme/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// Permission Commands
// =============================================================================

// requestPermissionCmd returns a command that runs the permission gate.
func requestPermissionCmd(ctx context.Context, ctrl *schedule.Controller) tea.Cmd {
	return func() tea.Msg {
		granted, err := ctrl.RequestPermission(ctx)
		return permissionMsg{granted: granted, err: err}
	}
}

// openSettingsCmd returns a command that opens the system notification settings.
func openSettingsCmd(ctx context.Context, ctrl *schedule.Controller) tea.Cmd {
	return func() tea.Msg {
		return settingsOpenedMsg{err: ctrl.OpenSettings(ctx)}
	}
}

// =============================================================================
// Scheduling Commands
// =============================================================================

// scheduleCmd returns a command that schedules the selected time.
func scheduleCmd(ctx context.Context, ctrl *schedule.Controller) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.ScheduleSelected(ctx)
		return scheduledMsg{result: res, err: err}
	}
}

// cancelCmd returns a command that cancels every scheduled notification.
func cancelCmd(ctx context.Context, ctrl *schedule.Controller) tea.Cmd {
	return func() tea.Msg {
		return cancelledMsg{err: ctrl.Cancel(ctx)}
	}
}

// waitForDeliveryCmd blocks until the next delivery arrives. The app re-arms
// it after every message.
func waitForDeliveryCmd(deliveries <-chan notify.Delivery) tea.Cmd {
	if deliveries == nil {
		return nil
	}
	return func() tea.Msg {
		d, ok := <-deliveries
		return deliveredMsg{delivery: d, closed: !ok}
	}
}

// =============================================================================
// Timers
// =============================================================================

// pickerReadyCmd fires once the debounce window has passed.
func pickerReadyCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return pickerReadyMsg{}
	})
}

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
