package ui

import (
	"testing"
	"time"

	"remindme/internal/config"
	"remindme/internal/notify"
	"remindme/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest prepares the test environment for deterministic rendering.
func setupTest(t *testing.T) {
	t.Helper()
	// Use ASCII profile to disable all color codes in output
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// quietNotifier accepts every message without showing it.
type quietNotifier struct{}

func (quietNotifier) Send(notify.Message) error { return nil }
func (quietNotifier) IsSupported() bool         { return true }

type testAppOptions struct {
	unavailable bool
	disabled    bool
	initial     time.Time
}

// createTestApp wires an App to a running notification center.
func createTestApp(t *testing.T, opts testAppOptions) (*App, *notify.Center) {
	t.Helper()

	var n notify.Notifier = quietNotifier{}
	if opts.unavailable {
		n = nil
	}
	center := notify.NewCenter(n, notify.CenterConfig{Enabled: !opts.disabled})
	center.Start()
	t.Cleanup(center.Stop)

	initial := opts.initial
	if initial.IsZero() {
		initial = time.Now().Add(2 * time.Minute)
	}
	ctrl := schedule.NewController(center, schedule.Options{
		Payload:     schedule.Payload{Title: "Scheduled Notification", Body: "Test"},
		Platform:    notify.PlatformLinux,
		InitialTime: initial,
	})

	app := NewApp(ctrl, center.Deliveries(), createTestStyles(), &AppConfig{
		Keys:     &config.KeysConfig{},
		Debounce: 50 * time.Millisecond,
	})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, center
}

// grant runs the permission request the way Init would.
func grant(t *testing.T, app *App) {
	t.Helper()
	app.Update(requestPermissionCmd(app.ctx, app.ctrl)())
	if !app.ctrl.State().PermissionGranted {
		t.Fatal("permission was not granted")
	}
}

// press sends a key to the app and returns the resulting command.
func press(app *App, k string) tea.Cmd {
	_, cmd := app.Update(keyMsg(k))
	return cmd
}

// run executes cmd and feeds its message back into the app.
func run(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	app.Update(cmd())
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// typeText sends each rune of s as a key press.
func typeText(app *App, s string) {
	for _, r := range s {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
