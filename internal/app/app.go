package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/symptomcheck/internal/expert"
	"github.com/abhisek/symptomcheck/internal/router"
	"github.com/abhisek/symptomcheck/internal/screen"
	"github.com/abhisek/symptomcheck/internal/screens/disclaimer"
	"github.com/abhisek/symptomcheck/internal/screens/form"
	"github.com/abhisek/symptomcheck/internal/ui/layout"
)

// Options configures the interactive application.
type Options struct {
	// Store is the rule table to evaluate against. Nil uses the built-in rules.
	Store *expert.RuleStore

	// RulesSource is shown in the header, e.g. "built-in" or a file path.
	RulesSource string

	Logger *zap.Logger

	// SkipDisclaimer opens the form directly instead of the usage notice.
	SkipDisclaimer bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	source string
	width  int
	height int
}

// newAppModel creates a new AppModel with the symptom form as root screen.
func newAppModel(opts Options) AppModel {
	store := opts.Store
	if store == nil {
		store = expert.DefaultStore()
	}
	source := opts.RulesSource
	if source == "" {
		source = "built-in"
	}
	newForm := func() screen.Screen {
		return form.New(store, opts.Logger)
	}

	var root screen.Screen
	if opts.SkipDisclaimer {
		root = newForm()
	} else {
		root = disclaimer.New(newForm)
	}
	return AppModel{
		router: router.New(root),
		source: source,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.source, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
