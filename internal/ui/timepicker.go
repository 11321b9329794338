package ui

import (
	"fmt"
	"strings"
	"time"

	"remindme/internal/picker"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerResult is what a key press did to the picker panel.
type pickerResult int

const (
	pickerContinue pickerResult = iota
	pickerConfirmed
	pickerDismissed
)

// TimePicker is the panel that edits the scheduled time. It shows a field
// spinner, or a text field when the user types a time directly.
type TimePicker struct {
	spinner *picker.Spinner
	input   textinput.Model
	typing  bool
	err     string
	min     time.Time
	max     time.Time
	use24h  bool
	styles  *Styles
	keys    PickerKeyMap
}

// NewTimePicker creates a picker panel.
func NewTimePicker(styles *Styles, keys PickerKeyMap, use24h bool) *TimePicker {
	ti := textinput.New()
	ti.Placeholder = "2006-01-02 3:04PM or 15:04"
	ti.CharLimit = 32
	ti.Width = 30

	return &TimePicker{
		input:  ti,
		use24h: use24h,
		styles: styles,
		keys:   keys,
	}
}

// Reset loads value into the spinner and limits it to [min, max].
func (p *TimePicker) Reset(value, min, max time.Time) {
	p.min = min
	p.max = max
	p.spinner = picker.NewSpinner(value, min, max, p.use24h)
	p.typing = false
	p.err = ""
	p.input.Reset()
	p.input.Blur()
}

// Value returns the time currently shown.
func (p *TimePicker) Value() time.Time {
	if p.spinner == nil {
		return time.Time{}
	}
	return p.spinner.Value()
}

// IsTyping reports whether the text field has focus.
func (p *TimePicker) IsTyping() bool {
	return p.typing
}

// Update handles a key press. now is used to resolve typed input.
func (p *TimePicker) Update(msg tea.KeyMsg, now time.Time) (pickerResult, tea.Cmd) {
	if p.typing {
		return p.updateTyping(msg, now)
	}

	switch {
	case key.Matches(msg, p.keys.Confirm):
		return pickerConfirmed, nil
	case key.Matches(msg, p.keys.Dismiss):
		return pickerDismissed, nil
	case key.Matches(msg, p.keys.TypeTime):
		p.typing = true
		p.err = ""
		return pickerContinue, p.input.Focus()
	case key.Matches(msg, p.keys.NextField):
		p.spinner.NextField()
	case key.Matches(msg, p.keys.PrevField):
		p.spinner.PrevField()
	case key.Matches(msg, p.keys.Increment):
		p.spinner.Increment()
	case key.Matches(msg, p.keys.Decrement):
		p.spinner.Decrement()
	}
	return pickerContinue, nil
}

func (p *TimePicker) updateTyping(msg tea.KeyMsg, now time.Time) (pickerResult, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Confirm):
		t, err := picker.Parse(p.input.Value(), now)
		if err != nil {
			p.err = err.Error()
			return pickerContinue, nil
		}
		if t.Before(p.min) || t.After(p.max) {
			p.err = fmt.Sprintf("pick a time between %s and %s",
				picker.Format(p.min, p.use24h), picker.Format(p.max, p.use24h))
			return pickerContinue, nil
		}
		p.spinner = picker.NewSpinner(t, p.min, p.max, p.use24h)
		p.typing = false
		p.input.Blur()
		return pickerConfirmed, nil

	case key.Matches(msg, p.keys.Dismiss):
		p.typing = false
		p.err = ""
		p.input.Blur()
		return pickerContinue, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return pickerContinue, cmd
}

// View renders the panel.
func (p *TimePicker) View() string {
	var b strings.Builder

	if p.typing {
		b.WriteString(p.styles.InputPromptStyle.Render("Time: "))
		b.WriteString(p.input.View())
	} else if p.spinner != nil {
		var fields []string
		for _, part := range p.spinner.Parts() {
			if part.Active {
				fields = append(fields, p.styles.PickerActiveStyle.Render(part.Text))
			} else {
				fields = append(fields, p.styles.PickerFieldStyle.Render(part.Text))
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, fields...))
	}

	if p.err != "" {
		b.WriteString("\n")
		b.WriteString(p.styles.ErrorStyle.Render(p.err))
	}

	b.WriteString("\n")
	if p.typing {
		b.WriteString(p.styles.RenderHelp("enter", "set", "esc", "back"))
	} else {
		b.WriteString(p.styles.RenderHelp(
			"←/→", "field",
			"↑/↓", "adjust",
			helpKey(p.keys.TypeTime), "type",
			helpKey(p.keys.Confirm), "done",
			helpKey(p.keys.Dismiss), "close",
		))
	}

	return p.styles.PickerStyle.Render(b.String())
}
