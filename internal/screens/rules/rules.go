package rules

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptomcheck/internal/expert"
	"github.com/abhisek/symptomcheck/internal/router"
	"github.com/abhisek/symptomcheck/internal/screen"
	"github.com/abhisek/symptomcheck/internal/ui/layout"
	"github.com/abhisek/symptomcheck/internal/ui/theme"
)

// RulesScreen shows the active rule table in precedence order.
type RulesScreen struct {
	listing expert.Listing
}

var _ screen.Screen = (*RulesScreen)(nil)
var _ screen.KeyHintProvider = (*RulesScreen)(nil)

// New creates a RulesScreen for the given listing.
func New(listing expert.Listing) *RulesScreen {
	return &RulesScreen{listing: listing}
}

func (r *RulesScreen) Init() tea.Cmd {
	return nil
}

func (r *RulesScreen) Title() string {
	return "Rules"
}

func (r *RulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Close"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *RulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return r, router.Pop()
		}
	}
	return r, nil
}

func (r *RulesScreen) View(width, height int) string {
	cardWidth := width - 8
	if cardWidth > 90 {
		cardWidth = 90
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Expert System Rules"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cardWidth - 6).
		Render(r.listing.String()))

	card := theme.Card.Width(cardWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}
