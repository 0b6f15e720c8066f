package advisory

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptomcheck/internal/expert"
	"github.com/abhisek/symptomcheck/internal/router"
	"github.com/abhisek/symptomcheck/internal/screen"
	"github.com/abhisek/symptomcheck/internal/ui/components"
	"github.com/abhisek/symptomcheck/internal/ui/layout"
	"github.com/abhisek/symptomcheck/internal/ui/theme"
)

// AdvisoryScreen is a modal notice dismissed with Enter.
type AdvisoryScreen struct {
	advisory expert.Advisory
}

var _ screen.Screen = (*AdvisoryScreen)(nil)
var _ screen.KeyHintProvider = (*AdvisoryScreen)(nil)

// New creates an AdvisoryScreen for adv.
func New(adv expert.Advisory) *AdvisoryScreen {
	return &AdvisoryScreen{advisory: adv}
}

func (a *AdvisoryScreen) Init() tea.Cmd {
	return nil
}

func (a *AdvisoryScreen) Title() string {
	return a.advisory.Title
}

func (a *AdvisoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "OK"},
	}
}

func (a *AdvisoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "space", " ":
			return a, router.Pop()
		}
	}
	return a, nil
}

func (a *AdvisoryScreen) View(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(a.advisory.Title)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(40).Render(a.advisory.Message)
	ok := components.Button{Label: "OK", Focused: true}.View()

	modal := theme.Modal.Render(lipgloss.JoinVertical(lipgloss.Center, title, "", body, "", ok))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
