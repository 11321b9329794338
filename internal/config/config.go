// Package config handles configuration loading and defaults for remindme.
// Configuration is loaded from XDG-compliant paths (typically ~/.config/remindme/config.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"remindme/internal/fsutil"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const appName = "remindme"

// Config represents the application configuration.
type Config struct {
	// Theme customizes the visual appearance
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// Keys customizes keyboard shortcuts
	Keys KeysConfig `yaml:"keys,omitempty"`

	// Notifications configures the scheduled notification
	Notifications NotificationConfig `yaml:"notifications"`

	// Picker configures the time picker
	Picker PickerConfig `yaml:"picker"`

	// Log configures the log output
	Log LogConfig `yaml:"log"`
}

// NotificationConfig defines the notification payload and permission switch.
type NotificationConfig struct {
	// Enabled grants notification permission. When false every permission
	// request is denied.
	Enabled bool `yaml:"enabled"`

	Title string `yaml:"title" validate:"required,max=200"`
	Body  string `yaml:"body" validate:"max=1000"`

	// Sound plays the default notification sound
	Sound bool `yaml:"sound"`

	// Icon is a freedesktop icon name (Linux only)
	Icon string `yaml:"icon,omitempty"`

	// DefaultLead is how far ahead of now the initial time is
	DefaultLead time.Duration `yaml:"default_lead" validate:"gt=0s"`
}

// PickerConfig defines time picker settings.
type PickerConfig struct {
	// Debounce locks the time button after the picker opens
	Debounce time.Duration `yaml:"debounce" validate:"gte=0s"`

	// MaxHorizon is the furthest time the picker offers
	MaxHorizon time.Duration `yaml:"max_horizon" validate:"gt=0s"`

	// Use24Hour shows 15:04 instead of 3:04 PM
	Use24Hour bool `yaml:"24_hour"`
}

// LogConfig defines where logs go.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// File receives TUI logs. Empty discards them.
	File string `yaml:"file,omitempty"`
}

// ThemeConfig defines color and style settings.
type ThemeConfig struct {
	// Primary color for focused elements (hex, e.g., "#FF5733")
	Primary string `yaml:"primary,omitempty" validate:"omitempty,hexcolor"`

	// Accent color for highlights (hex)
	Accent string `yaml:"accent,omitempty" validate:"omitempty,hexcolor"`

	// Muted color for secondary text (hex)
	Muted string `yaml:"muted,omitempty" validate:"omitempty,hexcolor"`

	// Danger color for errors and destructive actions (hex)
	Danger string `yaml:"danger,omitempty" validate:"omitempty,hexcolor"`

	// Text color (hex)
	Text string `yaml:"text,omitempty" validate:"omitempty,hexcolor"`
}

// KeysConfig defines customizable keyboard shortcuts.
// Each field accepts a comma-separated list of key bindings.
// Examples: "q,ctrl+c", "tab", "l,right"
type KeysConfig struct {
	// Global keys
	Quit string `yaml:"quit,omitempty"` // default: "q,ctrl+c"
	Help string `yaml:"help,omitempty"` // default: "?"

	// Screen keys
	RequestPermission string `yaml:"request_permission,omitempty"` // default: "p"
	OpenSettings      string `yaml:"open_settings,omitempty"`      // default: "o"
	OpenPicker        string `yaml:"open_picker,omitempty"`        // default: "t,space"
	Schedule          string `yaml:"schedule,omitempty"`           // default: "s,enter"
	Cancel            string `yaml:"cancel,omitempty"`             // default: "c,x"

	// Picker keys
	PrevField string `yaml:"prev_field,omitempty"` // default: "h,left,shift+tab"
	NextField string `yaml:"next_field,omitempty"` // default: "l,right,tab"
	Increment string `yaml:"increment,omitempty"`  // default: "k,up"
	Decrement string `yaml:"decrement,omitempty"`  // default: "j,down"
	TypeTime  string `yaml:"type_time,omitempty"`  // default: "/"

	// Input keys
	Confirm string `yaml:"confirm,omitempty"` // default: "enter"
	Dismiss string `yaml:"dismiss,omitempty"` // default: "esc"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Primary: "#7C3AED", // Violet
			Accent:  "#10B981", // Emerald
			Muted:   "#6B7280", // Gray
			Danger:  "#EF4444", // Red
			Text:    "",        // Terminal default
		},
		Keys: KeysConfig{
			// Defaults are empty strings, which means use built-in defaults
		},
		Notifications: NotificationConfig{
			Enabled:     true,
			Title:       "Scheduled Notification",
			Body:        "This notification was scheduled for this time",
			Sound:       true,
			Icon:        "appointment-soon",
			DefaultLead: 2 * time.Minute,
		},
		Picker: PickerConfig{
			Debounce:   500 * time.Millisecond,
			MaxHorizon: 365 * 24 * time.Hour,
			Use24Hour:  false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the configuration directory path (XDG compliant).
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// Path returns the path to the config file.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from the default path, merging with defaults.
// If no config file exists, returns default configuration.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads configuration from path, merging with defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var userCfg Config
	if err := yaml.Unmarshal(data, &userCfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var doc yaml.Node
	_ = yaml.Unmarshal(data, &doc) // best-effort; fall back to conservative merge if this fails

	cfg.mergeFromYAML(&userCfg, &doc)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// mergeNonEmpty applies non-empty values from other to c.
// It does not touch booleans or durations (those require presence-aware merging).
func (c *Config) mergeNonEmpty(other *Config) {
	mergeString(&c.Theme.Primary, other.Theme.Primary)
	mergeString(&c.Theme.Accent, other.Theme.Accent)
	mergeString(&c.Theme.Muted, other.Theme.Muted)
	mergeString(&c.Theme.Danger, other.Theme.Danger)
	mergeString(&c.Theme.Text, other.Theme.Text)

	mergeString(&c.Keys.Quit, other.Keys.Quit)
	mergeString(&c.Keys.Help, other.Keys.Help)
	mergeString(&c.Keys.RequestPermission, other.Keys.RequestPermission)
	mergeString(&c.Keys.OpenSettings, other.Keys.OpenSettings)
	mergeString(&c.Keys.OpenPicker, other.Keys.OpenPicker)
	mergeString(&c.Keys.Schedule, other.Keys.Schedule)
	mergeString(&c.Keys.Cancel, other.Keys.Cancel)
	mergeString(&c.Keys.PrevField, other.Keys.PrevField)
	mergeString(&c.Keys.NextField, other.Keys.NextField)
	mergeString(&c.Keys.Increment, other.Keys.Increment)
	mergeString(&c.Keys.Decrement, other.Keys.Decrement)
	mergeString(&c.Keys.TypeTime, other.Keys.TypeTime)
	mergeString(&c.Keys.Confirm, other.Keys.Confirm)
	mergeString(&c.Keys.Dismiss, other.Keys.Dismiss)

	mergeString(&c.Notifications.Title, other.Notifications.Title)
	mergeString(&c.Notifications.Body, other.Notifications.Body)
	mergeString(&c.Notifications.Icon, other.Notifications.Icon)

	mergeString(&c.Log.Level, other.Log.Level)
	mergeString(&c.Log.File, other.Log.File)
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (c *Config) mergeFromYAML(other *Config, doc *yaml.Node) {
	c.mergeNonEmpty(other)

	// Without a node tree only non-zero durations can be trusted.
	if doc == nil || len(doc.Content) == 0 {
		if other.Notifications.DefaultLead > 0 {
			c.Notifications.DefaultLead = other.Notifications.DefaultLead
		}
		if other.Picker.Debounce > 0 {
			c.Picker.Debounce = other.Picker.Debounce
		}
		if other.Picker.MaxHorizon > 0 {
			c.Picker.MaxHorizon = other.Picker.MaxHorizon
		}
		return
	}

	if yamlHasPath(doc, "notifications", "enabled") {
		c.Notifications.Enabled = other.Notifications.Enabled
	}
	if yamlHasPath(doc, "notifications", "sound") {
		c.Notifications.Sound = other.Notifications.Sound
	}
	if yamlHasPath(doc, "notifications", "body") {
		c.Notifications.Body = other.Notifications.Body
	}
	if yamlHasPath(doc, "notifications", "icon") {
		c.Notifications.Icon = other.Notifications.Icon
	}
	if yamlHasPath(doc, "notifications", "default_lead") {
		c.Notifications.DefaultLead = other.Notifications.DefaultLead
	}

	if yamlHasPath(doc, "picker", "debounce") {
		c.Picker.Debounce = other.Picker.Debounce
	}
	if yamlHasPath(doc, "picker", "max_horizon") {
		c.Picker.MaxHorizon = other.Picker.MaxHorizon
	}
	if yamlHasPath(doc, "picker", "24_hour") {
		c.Picker.Use24Hour = other.Picker.Use24Hour
	}
}

func yamlHasPath(doc *yaml.Node, path ...string) bool {
	if doc == nil || len(path) == 0 {
		return false
	}

	// Document -> root mapping.
	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	for _, key := range path {
		if n == nil || n.Kind != yaml.MappingNode {
			return false
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			if k := n.Content[i]; k.Kind == yaml.ScalarNode && k.Value == key {
				next = n.Content[i+1]
				break
			}
		}
		if next == nil {
			return false
		}
		n = next
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the configuration to path, keeping a .bak of any file it
// replaces.
func (c *Config) SaveTo(path string) error {
	if path == "" {
		return nil
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	fsutil.BestEffortBackup(path, 0600)
	return fsutil.WriteFileAtomic(path, data, 0600)
}
