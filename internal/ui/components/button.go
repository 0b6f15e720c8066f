package components

import (
	"strings"

	"github.com/abhisek/symptomcheck/internal/ui/theme"
)

// Button is a styled button component. Key handling lives in the owning
// screen so a row of buttons can share one focus cursor with other widgets.
type Button struct {
	Label   string
	Focused bool
}

// NewButton creates a new button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}

// ButtonRow renders buttons left to right, focusing the one at index
// focused (-1 for none).
func ButtonRow(labels []string, focused int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		btn := NewButton(l)
		btn.Focused = i == focused
		parts[i] = btn.View()
	}
	return strings.Join(parts, " ")
}
