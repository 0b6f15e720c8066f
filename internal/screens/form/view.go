package form

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptomcheck/internal/ui/components"
	"github.com/abhisek/symptomcheck/internal/ui/layout"
	"github.com/abhisek/symptomcheck/internal/ui/theme"
)

const (
	noDiagnosis   = "No diagnosis yet."
	noConfidence  = "-"
	noRuleFired   = "No rule fired yet."
	panelMinWidth = 30
)

func (f *FormScreen) View(width, height int) string {
	if layout.IsCompactWidth(width) {
		panelWidth := width - 4
		return lipgloss.JoinVertical(lipgloss.Left,
			f.renderSymptomPanel(panelWidth),
			f.renderResultPanel(panelWidth),
		)
	}

	panelWidth := width/2 - 3
	if panelWidth < panelMinWidth {
		panelWidth = panelMinWidth
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		f.renderSymptomPanel(panelWidth),
		"  ",
		f.renderResultPanel(panelWidth),
	)
}

// renderSymptomPanel renders the checkbox list and the button row.
func (f *FormScreen) renderSymptomPanel(width int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Select Symptoms:"))
	b.WriteString("\n\n")
	b.WriteString(f.checks.View())
	b.WriteString("\n\n")
	b.WriteString(components.ButtonRow(buttonLabels, f.focusedButton()))

	return theme.Card.Width(width).Render(b.String())
}

// renderResultPanel renders result, confidence, advice and rule fired.
func (f *FormScreen) renderResultPanel(width int) string {
	label, confidence, advice, fired := noDiagnosis, noConfidence, "", noRuleFired
	confColor := theme.TextDim
	if f.last != nil {
		c := f.last.result.Conclusion
		label = c.Label
		confidence = string(c.Confidence)
		advice = c.Advice
		fired = f.last.result.Explanation()
		confColor = theme.ConfidenceColor(confidence)
	}

	// Card border (2) plus horizontal padding (4).
	textWidth := width - 6
	if textWidth < 10 {
		textWidth = 10
	}
	wrap := lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Result"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(label))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Confidence"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(confColor).Bold(true).Render(confidence))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Advice / Next steps"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(advice))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Rule Fired"))
	b.WriteString("\n")
	b.WriteString(wrap.Foreground(theme.TextDim).Render(fired))

	if f.last != nil && f.last.advisory {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render("! Recent exposure: isolate and get tested."))
	}

	return theme.Card.Width(width).Render(b.String())
}
