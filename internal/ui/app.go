// Package ui provides the terminal user interface for remindme.
// This file contains the main App model which drives the scheduling screen
// and routes messages using the Bubble Tea architecture.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"remindme/internal/config"
	"remindme/internal/notify"
	"remindme/internal/picker"
	"remindme/internal/schedule"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys       *config.KeysConfig
	Debounce   time.Duration
	MaxHorizon time.Duration
	Use24Hour  bool
}

// App is the main application model.
type App struct {
	ctx         context.Context
	ctrl        *schedule.Controller
	deliveries  <-chan notify.Delivery
	styles      *Styles
	config      *AppConfig
	selection   *picker.Selection
	timePicker  *TimePicker
	helpOverlay *HelpOverlay
	alert       *alertState
	confirmQuit bool
	showHelp    bool
	busy        bool
	width       int
	height      int
	status      string
	statusErr   bool
	statusUntil time.Time
	quitting    bool

	// Key bindings
	keys       GlobalKeyMap
	screenKeys ScreenKeyMap
	alertKeys  AlertKeyMap
	helpKeys   HelpKeyMap
}

// NewApp creates a new application. The permission request is deferred to
// Init() to keep the constructor non-blocking.
func NewApp(ctrl *schedule.Controller, deliveries <-chan notify.Delivery, styles *Styles, cfg *AppConfig) *App {
	if cfg == nil {
		cfg = &AppConfig{}
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}
	if cfg.MaxHorizon <= 0 {
		cfg.MaxHorizon = 365 * 24 * time.Hour
	}

	keys := NewGlobalKeyMap(cfg.Keys)
	screenKeys := NewScreenKeyMap(cfg.Keys)
	pickerKeys := NewPickerKeyMap(cfg.Keys)

	return &App{
		ctx:         context.Background(),
		ctrl:        ctrl,
		deliveries:  deliveries,
		styles:      styles,
		config:      cfg,
		selection:   picker.NewSelection(cfg.Debounce),
		timePicker:  NewTimePicker(styles, pickerKeys, cfg.Use24Hour),
		helpOverlay: NewHelpOverlay(styles, keys, screenKeys, pickerKeys),
		keys:        keys,
		screenKeys:  screenKeys,
		alertKeys:   NewAlertKeyMap(cfg.Keys),
		helpKeys:    DefaultHelpKeyMap(),
	}
}

// Init asks for permission and starts listening for deliveries.
func (a *App) Init() tea.Cmd {
	if !a.ctrl.State().Available {
		return tickCmd()
	}
	return tea.Batch(
		tickCmd(),
		requestPermissionCmd(a.ctx, a.ctrl),
		waitForDeliveryCmd(a.deliveries),
	)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case permissionMsg:
		a.handlePermission(msg)
		return a, nil

	case settingsOpenedMsg:
		if msg.err != nil {
			a.alert = newErrorAlert("Error", "Failed to open notification settings")
			a.SetStatus("Settings: "+msg.err.Error(), true)
		}
		return a, nil

	case scheduledMsg:
		a.busy = false
		a.handleScheduled(msg)
		return a, nil

	case cancelledMsg:
		a.busy = false
		if msg.err != nil {
			a.alert = newErrorAlert("Error", "Failed to cancel notifications")
			a.SetStatus("Cancel: "+msg.err.Error(), true)
			return a, nil
		}
		a.alert = newAlert("Cancelled", "All scheduled notifications have been cancelled!")
		return a, nil

	case deliveredMsg:
		if msg.closed {
			return a, nil
		}
		a.handleDelivery(msg.delivery)
		return a, waitForDeliveryCmd(a.deliveries)

	case pickerReadyMsg:
		a.selection.Settle()
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.helpOverlay.SetSize(a.width, a.height)
		return a, nil

	case tickMsg:
		if a.status != "" && !a.statusUntil.IsZero() && time.Now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		return a, tickCmd()

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	// Cursor blink and similar messages for the typed time field.
	if a.timePicker.IsTyping() {
		var cmd tea.Cmd
		a.timePicker.input, cmd = a.timePicker.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handlePermission(msg permissionMsg) {
	switch {
	case errors.Is(msg.err, schedule.ErrCapabilityUnavailable):
	case msg.err != nil:
		a.alert = newErrorAlert("Error", "Failed to request notification permission")
		a.SetStatus("Permission: "+msg.err.Error(), true)
	case !msg.granted:
		a.alert = a.permissionAlert("Please enable notifications in your system settings to receive notifications.")
	default:
		a.SetStatus("Notification permission granted", false)
	}
}

func (a *App) handleScheduled(msg scheduledMsg) {
	switch {
	case msg.err == nil:
		a.alert = newAlert("Notification Scheduled!",
			fmt.Sprintf("Your notification has been scheduled for %s", a.formatTime(msg.result.At)))
	case errors.Is(msg.err, schedule.ErrCapabilityUnavailable):
		a.alert = newErrorAlert("Error", "Notifications are not available in this build.")
	case errors.Is(msg.err, schedule.ErrPermissionRequired):
		if a.ctrl.State().PermissionGranted {
			a.alert = newAlert("Permission Required", "Permission is now granted. Schedule again to continue.")
		} else {
			a.alert = a.permissionAlert("Please grant notification permission first.")
		}
	case errors.Is(msg.err, schedule.ErrInvalidTime):
		a.alert = newErrorAlert("Invalid Time", "Please select a future time for the notification.")
	default:
		a.alert = newErrorAlert("Error", "Failed to schedule notification")
		a.SetStatus("Schedule: "+msg.err.Error(), true)
	}
}

func (a *App) handleDelivery(d notify.Delivery) {
	a.ctrl.MarkDelivered(d.ID)
	if d.Err != nil {
		a.SetStatus("Delivery failed: "+d.Err.Error(), true)
		return
	}
	a.SetStatus(fmt.Sprintf("Delivered %q at %s", d.Title, d.FiredAt.Format("15:04:05")), false)
}

// permissionAlert offers to open the system settings.
func (a *App) permissionAlert(body string) *alertState {
	return &alertState{
		title: "Permission Required",
		body:  body,
		isErr: true,
		buttons: []alertButton{
			{label: "Cancel"},
			{label: "Settings", cmd: openSettingsCmd(a.ctx, a.ctrl)},
		},
	}
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.quitting {
		return nil
	}

	if a.alert != nil {
		switch {
		case key.Matches(msg, a.alertKeys.Next):
			a.alert.next()
		case key.Matches(msg, a.alertKeys.Prev):
			a.alert.prev()
		case key.Matches(msg, a.alertKeys.Confirm):
			cmd := a.alert.chosen()
			a.alert = nil
			return cmd
		case key.Matches(msg, a.alertKeys.Dismiss):
			a.alert = nil
		}
		return nil
	}

	if a.confirmQuit {
		switch msg.String() {
		case "y", "Y", "enter":
			a.confirmQuit = false
			a.quitting = true
			return tea.Quit
		case "n", "N", "esc":
			a.confirmQuit = false
			a.SetStatus("Canceled", false)
		}
		return nil
	}

	// Help overlay takes priority
	if a.showHelp {
		if key.Matches(msg, a.helpKeys.Close) {
			a.showHelp = false
		}
		return nil
	}

	if !a.ctrl.State().Available {
		if key.Matches(msg, a.keys.Quit) {
			a.quitting = true
			return tea.Quit
		}
		return nil
	}

	if a.selection.Visible() {
		if !a.timePicker.IsTyping() && key.Matches(msg, a.keys.Quit) {
			return a.requestQuit()
		}
		res, cmd := a.timePicker.Update(msg, a.ctrl.Now())
		switch res {
		case pickerConfirmed:
			a.ctrl.SelectTime(a.timePicker.Value())
			a.selection.Close()
		case pickerDismissed:
			a.selection.Close()
		}
		return cmd
	}

	state := a.ctrl.State()
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.requestQuit()

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true

	case key.Matches(msg, a.screenKeys.RequestPermission):
		if state.PermissionGranted {
			a.SetStatus("Notification permission already granted", false)
			return nil
		}
		return requestPermissionCmd(a.ctx, a.ctrl)

	case key.Matches(msg, a.screenKeys.OpenSettings):
		return openSettingsCmd(a.ctx, a.ctrl)

	case key.Matches(msg, a.screenKeys.OpenPicker):
		return a.openPicker()

	case key.Matches(msg, a.screenKeys.Schedule):
		if !state.PermissionGranted {
			a.SetStatus("Grant notification permission first ["+helpKey(a.screenKeys.RequestPermission)+"]", true)
			return nil
		}
		if a.busy {
			return nil
		}
		a.busy = true
		return scheduleCmd(a.ctx, a.ctrl)

	case key.Matches(msg, a.screenKeys.Cancel):
		if !state.Scheduled || a.busy {
			return nil
		}
		a.busy = true
		return cancelCmd(a.ctx, a.ctrl)
	}
	return nil
}

// openPicker shows the picker when the selection allows it and arms the
// debounce timer.
func (a *App) openPicker() tea.Cmd {
	if !a.selection.RequestOpen() {
		return nil
	}
	now := a.ctrl.Now()
	a.timePicker.Reset(a.ctrl.State().ScheduledTime, now, now.Add(a.config.MaxHorizon))
	a.selection.MarkOpen()
	return pickerReadyCmd(a.selection.Debounce())
}

func (a *App) requestQuit() tea.Cmd {
	if a.ctrl.State().Scheduled {
		a.confirmQuit = true
		return nil
	}
	a.quitting = true
	return tea.Quit
}

func (a *App) formatTime(t time.Time) string {
	return picker.Format(t, a.config.Use24Hour)
}

func (a *App) relative(t time.Time) string {
	return humanize.RelTime(t, a.ctrl.Now(), "ago", "from now")
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if !a.ctrl.State().Available {
		return a.renderNotAvailable()
	}

	if a.alert != nil {
		return a.alert.view(a.styles, a.width, a.height)
	}

	if a.confirmQuit {
		return a.renderConfirmQuit()
	}

	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder
	b.WriteString(a.renderTitleBar())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(a.renderScreen()))
	b.WriteString("\n\n")
	b.WriteString(a.renderHelpBar())

	return b.String()
}

func (a *App) renderScreen() string {
	s := a.styles
	state := a.ctrl.State()

	var b strings.Builder
	b.WriteString(s.HeadingStyle.Render("Notification Scheduler"))
	b.WriteString("\n")
	b.WriteString(s.SubtitleStyle.Render("Schedule local desktop notifications"))
	b.WriteString("\n\n")

	// Permission
	b.WriteString(s.LabelStyle.Render("Permission Status: "))
	if state.PermissionGranted {
		b.WriteString(s.GrantedStyle.Render("✅ Granted"))
	} else {
		b.WriteString(s.NotGrantedStyle.Render("❌ Not Granted"))
		b.WriteString("\n")
		b.WriteString(a.renderAction(a.screenKeys.RequestPermission, "Request Permission", true))
	}
	b.WriteString("\n\n")

	// Time button
	b.WriteString(s.LabelStyle.Render("Scheduled Time:"))
	b.WriteString("\n")
	btnStyle := s.TimeButtonStyle
	if !a.selection.Ready() || a.selection.Visible() {
		btnStyle = s.TimeButtonDisabledStyle
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		btnStyle.Render(a.formatTime(state.ScheduledTime)),
		"  ",
		s.RelativeTimeStyle.Render(a.relative(state.ScheduledTime)),
	))
	b.WriteString("\n")

	if a.selection.Visible() {
		b.WriteString(a.timePicker.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Actions
	b.WriteString(a.renderAction(a.screenKeys.Schedule, "Schedule Notification", state.PermissionGranted && !a.busy))
	if state.Scheduled {
		b.WriteString("\n")
		b.WriteString(s.HelpKeyStyle.Render("["+helpKey(a.screenKeys.Cancel)+"]") + " " +
			s.DangerActionStyle.Render("Cancel Scheduled Notification"))
		b.WriteString("\n\n")
		b.WriteString(s.ScheduledStyle.Render(fmt.Sprintf("✅ Notification scheduled for %s (%s)",
			a.formatTime(state.ScheduledTime), a.relative(state.ScheduledTime))))
	}
	b.WriteString("\n\n")

	// Instructions
	b.WriteString(s.LabelStyle.Render("Instructions:"))
	b.WriteString("\n")
	for _, line := range []string{
		"1. Make sure notifications are enabled",
		"2. Choose your preferred time (optional)",
		"3. Press \"Schedule Notification\"",
		"4. The notification appears while remindme is running",
	} {
		b.WriteString(s.HelpStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (a *App) renderAction(b key.Binding, label string, enabled bool) string {
	if !enabled {
		return a.styles.ActionDisabledStyle.Render("[" + helpKey(b) + "] " + label)
	}
	return a.styles.HelpKeyStyle.Render("["+helpKey(b)+"]") + " " + a.styles.ActionStyle.Render(label)
}

func (a *App) renderNotAvailable() string {
	overlayWidth := 64
	if a.width > 0 {
		overlayWidth = min(64, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorWarning).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorWarning).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	codeStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorAccent)

	mutedStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("⚠️ Notifications Not Available"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("This build has no desktop notification backend. Notifications need one of:"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("1. Linux with libnotify:"))
	b.WriteString("\n")
	b.WriteString(codeStyle.Render("   notify-send"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render("2. macOS with AppleScript:"))
	b.WriteString("\n")
	b.WriteString(codeStyle.Render("   osascript"))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Press " + helpKey(a.keys.Quit) + " to quit"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderConfirmQuit() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	at := a.ctrl.State().ScheduledTime

	var b strings.Builder
	b.WriteString(titleStyle.Render("Quit with a scheduled notification?"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(fmt.Sprintf("The notification for %s is only delivered while remindme is running.", a.formatTime(at))))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] quit    [n/esc] stay"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderGoodbye shows a short exit message.
func (a *App) renderGoodbye() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you later!\n")
	b.WriteString("\n")

	if state := a.ctrl.State(); state.Scheduled {
		b.WriteString(fmt.Sprintf("  The notification for %s was discarded.\n", a.formatTime(state.ScheduledTime)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTitleBar creates the top title bar with the current time.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" remindme ")
	date := a.styles.DateStyle.Render(a.ctrl.Now().Format("Mon Jan 2 · 15:04"))

	spacerWidth := a.width - lipgloss.Width(title) - lipgloss.Width(date)
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	return title + strings.Repeat(" ", spacerWidth) + date
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	if a.selection.Visible() {
		return a.styles.RenderHelp(
			"enter", "use time",
			"esc", "close",
		)
	}

	state := a.ctrl.State()
	hints := []string{helpKey(a.screenKeys.OpenPicker), "time"}
	if state.PermissionGranted {
		hints = append(hints, helpKey(a.screenKeys.Schedule), "schedule")
	} else {
		hints = append(hints, helpKey(a.screenKeys.RequestPermission), "permission")
	}
	if state.Scheduled {
		hints = append(hints, helpKey(a.screenKeys.Cancel), "cancel")
	}
	hints = append(hints,
		helpKey(a.keys.Help), "help",
		helpKey(a.keys.Quit), "quit",
	)
	return a.styles.RenderHelp(hints...)
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// Run starts the Bubble Tea program for ctrl. Deliveries from the
// notification service are read from deliveries until it closes.
func Run(ctx context.Context, ctrl *schedule.Controller, deliveries <-chan notify.Delivery, styles *Styles, cfg *AppConfig) error {
	app := NewApp(ctrl, deliveries, styles, cfg)
	app.ctx = ctx
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
