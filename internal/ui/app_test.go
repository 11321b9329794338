// Package ui provides the terminal user interface for remindme.
// This file contains tests for the main App model: permission flow,
// scheduling, the picker guard, and quitting.
package ui

import (
	"strings"
	"testing"
	"time"

	"remindme/internal/notify"
	"remindme/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

func TestApp_NotAvailable(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{unavailable: true})

	view := app.View()
	if !strings.Contains(view, "Notifications Not Available") {
		t.Errorf("expected not-available screen, got:\n%s", view)
	}
	if strings.Contains(view, "Schedule Notification") {
		t.Error("scheduling controls should be hidden")
	}

	if cmd := press(app, "s"); cmd != nil {
		t.Error("schedule key should do nothing")
	}

	cmd := press(app, "q")
	if cmd == nil {
		t.Fatal("quit key should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestApp_PermissionGranted(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{})

	if !strings.Contains(app.View(), "Not Granted") {
		t.Error("permission should start as not granted")
	}

	grant(t, app)

	view := app.View()
	if !strings.Contains(view, "✅ Granted") {
		t.Errorf("expected granted status, got:\n%s", view)
	}
	if !strings.Contains(view, "Notification permission granted") {
		t.Error("expected status message")
	}
	if strings.Contains(view, "Request Permission") {
		t.Error("request button should be hidden once granted")
	}
}

func TestApp_PermissionDeniedOffersSettings(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{disabled: true})

	run(t, app, requestPermissionCmd(app.ctx, app.ctrl))

	if app.alert == nil {
		t.Fatal("expected permission alert")
	}
	view := app.View()
	for _, want := range []string{"Permission Required", "Cancel", "Settings"} {
		if !strings.Contains(view, want) {
			t.Errorf("alert missing %q:\n%s", want, view)
		}
	}

	// Cancel is focused first and only closes the alert.
	if cmd := press(app, "enter"); cmd != nil {
		t.Error("Cancel should not run a command")
	}
	if app.alert != nil {
		t.Error("alert should be closed")
	}

	run(t, app, requestPermissionCmd(app.ctx, app.ctrl))
	press(app, "right")
	if cmd := press(app, "enter"); cmd == nil {
		t.Error("Settings should open the notification settings")
	}
}

func TestApp_ScheduleRequiresPermission(t *testing.T) {
	setupTest(t)
	app, center := createTestApp(t, testAppOptions{disabled: true})

	if cmd := press(app, "s"); cmd != nil {
		t.Error("schedule should be disabled without permission")
	}
	if !strings.Contains(app.View(), "Grant notification permission first") {
		t.Error("expected a hint to grant permission")
	}
	if center.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", center.Pending())
	}
}

func TestApp_ScheduleAndCancel(t *testing.T) {
	setupTest(t)
	app, center := createTestApp(t, testAppOptions{})
	grant(t, app)

	run(t, app, press(app, "s"))

	if !strings.Contains(app.View(), "Notification Scheduled!") {
		t.Fatalf("expected scheduled alert, got:\n%s", app.View())
	}
	if center.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", center.Pending())
	}

	press(app, "enter")
	view := app.View()
	if !strings.Contains(view, "Notification scheduled for") {
		t.Errorf("expected scheduled banner, got:\n%s", view)
	}
	if !strings.Contains(view, "Cancel Scheduled Notification") {
		t.Error("expected cancel action while scheduled")
	}

	// Scheduling again replaces the pending trigger.
	run(t, app, press(app, "s"))
	press(app, "enter")
	if center.Pending() != 1 {
		t.Errorf("Pending() after reschedule = %d, want 1", center.Pending())
	}

	run(t, app, press(app, "c"))
	if !strings.Contains(app.View(), "All scheduled notifications have been cancelled!") {
		t.Errorf("expected cancelled alert, got:\n%s", app.View())
	}
	press(app, "enter")

	if center.Pending() != 0 {
		t.Errorf("Pending() after cancel = %d, want 0", center.Pending())
	}
	if strings.Contains(app.View(), "Cancel Scheduled Notification") {
		t.Error("cancel action should be hidden once nothing is scheduled")
	}
	if cmd := press(app, "c"); cmd != nil {
		t.Error("cancel should do nothing when nothing is scheduled")
	}
}

func TestApp_ScheduleInvalidTime(t *testing.T) {
	setupTest(t)
	app, center := createTestApp(t, testAppOptions{initial: time.Now().Add(-time.Minute)})
	grant(t, app)

	run(t, app, press(app, "s"))

	if !strings.Contains(app.View(), "Invalid Time") {
		t.Errorf("expected invalid time alert, got:\n%s", app.View())
	}
	if app.ctrl.State().Scheduled {
		t.Error("Scheduled should stay false")
	}
	if center.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", center.Pending())
	}
}

func TestApp_PickerDebounce(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{})

	if cmd := press(app, "t"); cmd == nil {
		t.Fatal("opening the picker should arm the debounce timer")
	}
	if app.selection.State() != picker.Open {
		t.Fatalf("selection state = %v, want open", app.selection.State())
	}

	press(app, "esc")
	if app.selection.Visible() {
		t.Fatal("esc should close the picker")
	}

	// Still inside the debounce window.
	if cmd := press(app, "t"); cmd != nil {
		t.Error("picker reopened during debounce")
	}
	if app.selection.Visible() {
		t.Error("picker should stay closed during debounce")
	}

	app.Update(pickerReadyMsg{})
	press(app, "t")
	if !app.selection.Visible() {
		t.Error("picker should open once the debounce window passed")
	}
}

func TestApp_PickerConfirmSetsTime(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{})
	grant(t, app)

	run(t, app, press(app, "s"))
	press(app, "enter")
	before := app.ctrl.State().ScheduledTime

	press(app, "t")
	press(app, "up") // date field: one day later
	if !strings.Contains(app.View(), "adjust") {
		t.Error("expected picker help")
	}
	press(app, "enter")

	state := app.ctrl.State()
	want := before.Truncate(time.Minute).AddDate(0, 0, 1)
	if !state.ScheduledTime.Equal(want) {
		t.Errorf("ScheduledTime = %v, want %v", state.ScheduledTime, want)
	}
	if state.Scheduled {
		t.Error("picking a new time should reset the scheduled flag")
	}
	if app.selection.Visible() {
		t.Error("picker should close on confirm")
	}
}

func TestApp_PickerDismissKeepsTime(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{})
	before := app.ctrl.State().ScheduledTime

	press(app, "t")
	press(app, "up")
	press(app, "esc")

	if got := app.ctrl.State().ScheduledTime; !got.Equal(before) {
		t.Errorf("ScheduledTime = %v, want unchanged %v", got, before)
	}
}

func TestApp_PickerTypedTime(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{})

	target := time.Now().Add(3 * time.Hour).Truncate(time.Minute)

	press(app, "t")
	press(app, "/")
	if !app.timePicker.IsTyping() {
		t.Fatal("expected typing mode")
	}
	typeText(app, target.Format("15:04"))
	press(app, "enter")

	if app.selection.Visible() {
		t.Fatalf("picker should close after a valid time, view:\n%s", app.View())
	}
	if got := app.ctrl.State().ScheduledTime; !got.Equal(target) {
		t.Errorf("ScheduledTime = %v, want %v", got, target)
	}
}

func TestApp_PickerTypedInvalid(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{})
	before := app.ctrl.State().ScheduledTime

	press(app, "t")
	press(app, "/")
	typeText(app, "nope")
	press(app, "enter")

	if !app.selection.Visible() {
		t.Fatal("picker should stay open on bad input")
	}
	if !strings.Contains(app.View(), "unrecognized time") {
		t.Errorf("expected parse error, got:\n%s", app.View())
	}
	if got := app.ctrl.State().ScheduledTime; !got.Equal(before) {
		t.Error("ScheduledTime changed on bad input")
	}

	// esc leaves typing mode, a second esc closes the picker
	press(app, "esc")
	if app.timePicker.IsTyping() || !app.selection.Visible() {
		t.Error("first esc should only leave typing mode")
	}
	press(app, "esc")
	if app.selection.Visible() {
		t.Error("second esc should close the picker")
	}
}

func TestApp_QuitConfirmWhenScheduled(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{})
	grant(t, app)
	run(t, app, press(app, "s"))
	press(app, "enter")

	if cmd := press(app, "q"); cmd != nil {
		t.Error("quit should ask for confirmation first")
	}
	if !strings.Contains(app.View(), "Quit with a scheduled notification?") {
		t.Errorf("expected quit confirmation, got:\n%s", app.View())
	}

	press(app, "n")
	if app.confirmQuit {
		t.Error("n should dismiss the confirmation")
	}

	press(app, "q")
	cmd := press(app, "y")
	if cmd == nil {
		t.Fatal("y should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !strings.Contains(app.View(), "was discarded") {
		t.Error("goodbye should mention the discarded notification")
	}
}

func TestApp_QuitWithoutSchedule(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{})

	cmd := press(app, "q")
	if cmd == nil {
		t.Fatal("q should quit immediately")
	}
	if !strings.Contains(app.View(), "See you later!") {
		t.Error("expected goodbye message")
	}
}

func TestApp_Delivery(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{})
	grant(t, app)
	run(t, app, press(app, "s"))
	press(app, "enter")

	id := app.ctrl.State().TriggerID
	_, cmd := app.Update(deliveredMsg{delivery: notify.Delivery{
		ID:      id,
		Title:   "Scheduled Notification",
		FiredAt: time.Now(),
	}})

	if cmd == nil {
		t.Error("delivery listener should be re-armed")
	}
	if app.ctrl.State().Scheduled {
		t.Error("delivery should clear the scheduled flag")
	}
	if !strings.Contains(app.View(), "Delivered") {
		t.Error("expected delivery status")
	}

	if _, cmd := app.Update(deliveredMsg{closed: true}); cmd != nil {
		t.Error("closed delivery stream should stop listening")
	}
}

func TestApp_StatusExpires(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t, testAppOptions{})

	app.SetStatus("hello", false)
	app.statusUntil = time.Now().Add(-time.Second)
	app.Update(tickMsg(time.Now()))

	if app.status != "" {
		t.Errorf("status = %q, want cleared", app.status)
	}
}
