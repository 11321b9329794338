package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay renders a help screen
type HelpOverlay struct {
	width  int
	height int
	styles *Styles
	keys   GlobalKeyMap
	screen ScreenKeyMap
	picker PickerKeyMap
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay(styles *Styles, keys GlobalKeyMap, screen ScreenKeyMap, pk PickerKeyMap) *HelpOverlay {
	return &HelpOverlay{
		styles: styles,
		keys:   keys,
		screen: screen,
		picker: pk,
	}
}

// SetSize sets the overlay dimensions
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	overlayWidth := 60
	if h.width > 0 {
		overlayWidth = min(60, max(20, h.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.styles.ColorPrimary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.styles.ColorAccent).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(h.styles.ColorWarning).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(h.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(h.styles.ColorTextMuted).
		Italic(true)

	row := func(k, desc string) string {
		return keyStyle.Render(k) + descStyle.Render(desc) + "\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("remindme - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Notification"))
	b.WriteString("\n")
	b.WriteString(row(helpKey(h.screen.RequestPermission), "Request permission"))
	b.WriteString(row(helpKey(h.screen.OpenSettings), "Open notification settings"))
	b.WriteString(row(helpKey(h.screen.OpenPicker), "Choose a time"))
	b.WriteString(row(helpKey(h.screen.Schedule), "Schedule notification"))
	b.WriteString(row(helpKey(h.screen.Cancel), "Cancel scheduled notification"))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Time Picker"))
	b.WriteString("\n")
	b.WriteString(row("← / →", "Previous/next field"))
	b.WriteString(row("↑ / ↓", "Later/earlier"))
	b.WriteString(row(helpKey(h.picker.TypeTime), "Type a time"))
	b.WriteString(row("Enter", "Use this time"))
	b.WriteString(row("Esc", "Close without changes"))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Global"))
	b.WriteString("\n")
	b.WriteString(row(helpKey(h.keys.Help), "Toggle help"))
	b.WriteString(row(helpKey(h.keys.Quit), "Quit"))

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press ? or Esc to close"))

	content := overlayStyle.Render(b.String())

	return lipgloss.Place(
		h.width,
		h.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
