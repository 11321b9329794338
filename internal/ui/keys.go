// Package ui provides the terminal user interface for remindme.
// This file defines key bindings using the Bubble Tea key package for
// type-safe key matching, help text generation, and user customization.
package ui

import (
	"strings"

	"remindme/internal/config"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// Helpers
// =============================================================================

// parseKeys splits a comma-separated string into individual keys.
// If the input is empty, returns the default keys.
func parseKeys(customKeys string, defaultKeys ...string) []string {
	if customKeys == "" {
		return defaultKeys
	}
	keys := strings.Split(customKeys, ",")
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		trimmed := strings.TrimSpace(k)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// helpKey is the label shown for a binding in help text.
func helpKey(b key.Binding) string {
	return b.Help().Key
}

// =============================================================================
// Global Keys (available outside of input and dialogs)
// =============================================================================

// GlobalKeyMap defines keys available throughout the application.
type GlobalKeyMap struct {
	Quit key.Binding
	Help key.Binding
}

// NewGlobalKeyMap creates global key bindings from config.
func NewGlobalKeyMap(cfg *config.KeysConfig) GlobalKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	quit := parseKeys(cfg.Quit, "q", "ctrl+c")
	help := parseKeys(cfg.Help, "?")
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys(quit...),
			key.WithHelp(quit[0], "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(help...),
			key.WithHelp(help[0], "help"),
		),
	}
}

// =============================================================================
// Screen Keys
// =============================================================================

// ScreenKeyMap defines the actions on the main screen.
type ScreenKeyMap struct {
	RequestPermission key.Binding
	OpenSettings      key.Binding
	OpenPicker        key.Binding
	Schedule          key.Binding
	Cancel            key.Binding
}

// NewScreenKeyMap creates screen key bindings from config.
func NewScreenKeyMap(cfg *config.KeysConfig) ScreenKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	perm := parseKeys(cfg.RequestPermission, "p")
	settings := parseKeys(cfg.OpenSettings, "o")
	pick := parseKeys(cfg.OpenPicker, "t", " ")
	sched := parseKeys(cfg.Schedule, "s", "enter")
	cancel := parseKeys(cfg.Cancel, "c", "x")
	return ScreenKeyMap{
		RequestPermission: key.NewBinding(
			key.WithKeys(perm...),
			key.WithHelp(perm[0], "permission"),
		),
		OpenSettings: key.NewBinding(
			key.WithKeys(settings...),
			key.WithHelp(settings[0], "settings"),
		),
		OpenPicker: key.NewBinding(
			key.WithKeys(pick...),
			key.WithHelp(pick[0], "pick time"),
		),
		Schedule: key.NewBinding(
			key.WithKeys(sched...),
			key.WithHelp(sched[0], "schedule"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(cancel...),
			key.WithHelp(cancel[0], "cancel"),
		),
	}
}

// =============================================================================
// Picker Keys
// =============================================================================

// PickerKeyMap defines keys while the time picker is open.
type PickerKeyMap struct {
	PrevField key.Binding
	NextField key.Binding
	Increment key.Binding
	Decrement key.Binding
	TypeTime  key.Binding
	InputKeyMap
}

// NewPickerKeyMap creates picker key bindings from config.
func NewPickerKeyMap(cfg *config.KeysConfig) PickerKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return PickerKeyMap{
		PrevField: key.NewBinding(
			key.WithKeys(parseKeys(cfg.PrevField, "h", "left", "shift+tab")...),
			key.WithHelp("←", "prev field"),
		),
		NextField: key.NewBinding(
			key.WithKeys(parseKeys(cfg.NextField, "l", "right", "tab")...),
			key.WithHelp("→", "next field"),
		),
		Increment: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Increment, "k", "up")...),
			key.WithHelp("↑", "later"),
		),
		Decrement: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Decrement, "j", "down")...),
			key.WithHelp("↓", "earlier"),
		),
		TypeTime: key.NewBinding(
			key.WithKeys(parseKeys(cfg.TypeTime, "/")...),
			key.WithHelp("/", "type time"),
		),
		InputKeyMap: NewInputKeyMap(cfg),
	}
}

// =============================================================================
// Input Keys (shared by the typed time field and dialogs)
// =============================================================================

// InputKeyMap defines keys for text input mode.
type InputKeyMap struct {
	Confirm key.Binding
	Dismiss key.Binding
}

// NewInputKeyMap creates input key bindings from config.
func NewInputKeyMap(cfg *config.KeysConfig) InputKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return InputKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Confirm, "enter")...),
			key.WithHelp("enter", "done"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Dismiss, "esc")...),
			key.WithHelp("esc", "dismiss"),
		),
	}
}

// =============================================================================
// Alert Keys
// =============================================================================

// AlertKeyMap defines keys for alert dialogs.
type AlertKeyMap struct {
	Prev key.Binding
	Next key.Binding
	InputKeyMap
}

// NewAlertKeyMap creates alert key bindings from config.
func NewAlertKeyMap(cfg *config.KeysConfig) AlertKeyMap {
	return AlertKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", "next"),
		),
		InputKeyMap: NewInputKeyMap(cfg),
	}
}

// =============================================================================
// Help Overlay Keys
// =============================================================================

// HelpKeyMap defines keys for the help overlay.
type HelpKeyMap struct {
	Close key.Binding
}

// DefaultHelpKeyMap returns the default help overlay key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Close: key.NewBinding(
			key.WithKeys("?", "esc", "q", "enter", " "),
			key.WithHelp("any key", "close"),
		),
	}
}
