package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// alertButton is one choice in an alert. A nil cmd only closes the alert.
type alertButton struct {
	label string
	cmd   tea.Cmd
}

// alertState is a modal dialog with a title, a message and buttons.
type alertState struct {
	title   string
	body    string
	isErr   bool
	buttons []alertButton
	focus   int
}

// newAlert returns an alert with a single OK button.
func newAlert(title, body string) *alertState {
	return &alertState{title: title, body: body, buttons: []alertButton{{label: "OK"}}}
}

// newErrorAlert returns an OK alert drawn in the danger color.
func newErrorAlert(title, body string) *alertState {
	a := newAlert(title, body)
	a.isErr = true
	return a
}

func (a *alertState) next() {
	a.focus = (a.focus + 1) % len(a.buttons)
}

func (a *alertState) prev() {
	a.focus = (a.focus + len(a.buttons) - 1) % len(a.buttons)
}

func (a *alertState) chosen() tea.Cmd {
	return a.buttons[a.focus].cmd
}

func (a *alertState) view(s *Styles, width, height int) string {
	overlayWidth := 60
	if width > 0 {
		overlayWidth = min(60, max(20, width-4))
	}

	accent := s.ColorPrimary
	if a.isErr {
		accent = s.ColorDanger
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(s.ColorText)

	var buttons []string
	for i, btn := range a.buttons {
		if i == a.focus {
			buttons = append(buttons, s.ButtonFocusedStyle.Render(btn.label))
		} else {
			buttons = append(buttons, s.ButtonStyle.Render(btn.label))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.body))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(buttons, "  "))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
