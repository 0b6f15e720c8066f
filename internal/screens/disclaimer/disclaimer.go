package disclaimer

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptomcheck/internal/router"
	"github.com/abhisek/symptomcheck/internal/screen"
	"github.com/abhisek/symptomcheck/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	// revealAfter is how long the notice stays up before a key continues.
	revealAfter = 1 * time.Second
)

const notice = "This tool applies a fixed set of rules to yes/no answers.\n" +
	"It is not a medical device and does not replace a clinician.\n" +
	"If you have severe symptoms, contact emergency services."

type tickMsg time.Time

// DisclaimerScreen shows the usage notice before handing over to the form.
type DisclaimerScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*DisclaimerScreen)(nil)

// New creates a DisclaimerScreen that is replaced by the screen produced by next.
func New(next func() screen.Screen) *DisclaimerScreen {
	return &DisclaimerScreen{next: next}
}

func (d *DisclaimerScreen) Title() string {
	return ""
}

func (d *DisclaimerScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ready reports whether a key press continues to the next screen.
func (d *DisclaimerScreen) ready() bool {
	return d.elapsed >= revealAfter
}

func (d *DisclaimerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if d.ready() {
			return d, nil
		}
		d.elapsed += tickInterval
		if d.ready() {
			return d, nil
		}
		return d, tick()

	case tea.KeyPressMsg:
		if d.ready() {
			return d, d.transition()
		}
		return d, nil
	}

	return d, nil
}

func (d *DisclaimerScreen) transition() tea.Cmd {
	if d.transitioned {
		return nil
	}
	d.transitioned = true
	return router.Replace(d.next())
}

func (d *DisclaimerScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().
			Foreground(theme.Text).
			Align(lipgloss.Center).
			Render(notice),
	}

	if d.ready() {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
