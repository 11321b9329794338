package ui

import (
	"remindme/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all application styles, initialized with theme configuration.
type Styles struct {
	// Colors
	ColorPrimary   lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorDanger    lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorAccent    lipgloss.Color
	ColorBgLight   lipgloss.Color
	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color

	// Component styles
	TitleStyle    lipgloss.Style
	DateStyle     lipgloss.Style
	HeadingStyle  lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style

	GrantedStyle    lipgloss.Style
	NotGrantedStyle lipgloss.Style

	TimeButtonStyle         lipgloss.Style
	TimeButtonDisabledStyle lipgloss.Style
	RelativeTimeStyle       lipgloss.Style

	PickerStyle       lipgloss.Style
	PickerFieldStyle  lipgloss.Style
	PickerActiveStyle lipgloss.Style

	ActionStyle         lipgloss.Style
	ActionDisabledStyle lipgloss.Style
	DangerActionStyle   lipgloss.Style

	ScheduledStyle lipgloss.Style

	HelpStyle    lipgloss.Style
	HelpKeyStyle lipgloss.Style

	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	InputPromptStyle lipgloss.Style
	InputTextStyle   lipgloss.Style

	ButtonStyle        lipgloss.Style
	ButtonFocusedStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from the given config.
// If a theme color is empty, it uses the appropriate default.
func NewStyles(cfg *config.Config) *Styles {
	return NewStylesFromTheme(&cfg.Theme)
}

// NewStylesFromTheme creates a new Styles instance from a ThemeConfig.
// If a theme color is empty, it uses the appropriate default.
func NewStylesFromTheme(theme *config.ThemeConfig) *Styles {
	s := &Styles{}

	s.ColorPrimary = colorOrDefault(theme.Primary, "#7C3AED")
	s.ColorAccent = colorOrDefault(theme.Accent, "#10B981")
	s.ColorMuted = colorOrDefault(theme.Muted, "#6B7280")
	s.ColorDanger = colorOrDefault(theme.Danger, "#EF4444")
	s.ColorText = colorOrDefault(theme.Text, "#F9FAFB")

	// Fixed semantic colors (not configurable from theme)
	s.ColorWarning = lipgloss.Color("#F59E0B")
	s.ColorSuccess = lipgloss.Color("#34C759")
	s.ColorBgLight = lipgloss.Color("#374151")
	s.ColorTextMuted = lipgloss.Color("#9CA3AF")

	s.initComponentStyles()

	return s
}

// colorOrDefault returns the lipgloss.Color from hex string, or default if empty.
func colorOrDefault(hex, defaultHex string) lipgloss.Color {
	if hex != "" {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(defaultHex)
}

// initComponentStyles initializes all component styles based on the color palette.
func (s *Styles) initComponentStyles() {
	// Title bar
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorText).
		Background(s.ColorPrimary).
		Padding(0, 1)

	s.DateStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.HeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary)

	s.SubtitleStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Italic(true)

	s.LabelStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Bold(true)

	// Permission status
	s.GrantedStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Bold(true)

	s.NotGrantedStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	// Time button
	s.TimeButtonStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorPrimary).
		Foreground(s.ColorText).
		Padding(0, 2)

	s.TimeButtonDisabledStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorMuted).
		Foreground(s.ColorTextMuted).
		Padding(0, 2)

	s.RelativeTimeStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	// Picker
	s.PickerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorAccent).
		Padding(0, 1)

	s.PickerFieldStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Padding(0, 1)

	s.PickerActiveStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Background(s.ColorBgLight).
		Bold(true).
		Padding(0, 1)

	// Actions
	s.ActionStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	s.ActionDisabledStyle = lipgloss.NewStyle().
		Foreground(s.ColorMuted)

	s.DangerActionStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	s.ScheduledStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess)

	// Help bar
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	// Status messages
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Italic(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	// Input
	s.InputPromptStyle = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	// Dialog buttons
	s.ButtonStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Padding(0, 1)

	s.ButtonFocusedStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Background(s.ColorPrimary).
		Bold(true).
		Padding(0, 1)
}

// RenderHelp renders help text with key bindings using the given styles.
func (s *Styles) RenderHelp(keys ...string) string {
	var result string
	for i := 0; i+1 < len(keys); i += 2 {
		if i > 0 {
			result += "  "
		}
		result += s.HelpKeyStyle.Render("["+keys[i]+"]") + " " + s.HelpStyle.Render(keys[i+1])
	}
	return result
}
