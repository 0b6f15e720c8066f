package form

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/symptomcheck/internal/expert"
	"github.com/abhisek/symptomcheck/internal/router"
	"github.com/abhisek/symptomcheck/internal/screen"
	"github.com/abhisek/symptomcheck/internal/screens/advisory"
	"github.com/abhisek/symptomcheck/internal/screens/rules"
	"github.com/abhisek/symptomcheck/internal/ui/components"
	"github.com/abhisek/symptomcheck/internal/ui/layout"
)

// Button indices, offset by the number of checkboxes in the focus order.
const (
	buttonDiagnose = iota
	buttonReset
	buttonRules
)

var buttonLabels = []string{"Diagnose", "Reset", "Show Rules"}

// outcome is the last diagnosis shown in the result panel.
type outcome struct {
	runID    string
	result   expert.Result
	advisory bool
}

// FormScreen collects symptom selections and shows the evaluation result.
type FormScreen struct {
	store  *expert.RuleStore
	logger *zap.Logger
	keys   keyMap

	checks components.CheckList
	focus  int
	last   *outcome

	// awaitingAck is the run id whose advisory is currently displayed.
	awaitingAck string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)
var _ screen.Resumer = (*FormScreen)(nil)

// New creates a FormScreen evaluating against store. A nil logger discards logs.
func New(store *expert.RuleStore, logger *zap.Logger) *FormScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	items := make([]components.CheckItem, 0, len(expert.AllSymptoms()))
	for _, s := range expert.AllSymptoms() {
		items = append(items, components.CheckItem{ID: string(s), Label: s.Label()})
	}
	return &FormScreen{
		store:  store,
		logger: logger,
		keys:   defaultKeyMap(),
		checks: components.NewCheckList(items),
	}
}

func (f *FormScreen) Init() tea.Cmd {
	return nil
}

func (f *FormScreen) Title() string {
	return "COVID-19 Expert System"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, 7)
	hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Move"})
	for _, b := range []key.Binding{f.keys.Toggle, f.keys.Diagnose, f.keys.Reset, f.keys.Rules, f.keys.Quit} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// Resume is called when a screen pushed by the form is popped.
func (f *FormScreen) Resume() tea.Cmd {
	if f.awaitingAck != "" {
		f.logger.Info("advisory acknowledged", zap.String("run_id", f.awaitingAck))
		f.awaitingAck = ""
	}
	return nil
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch {
	case key.Matches(kmsg, f.keys.Up):
		f.moveFocus(-1)
	case key.Matches(kmsg, f.keys.Down):
		f.moveFocus(1)
	case key.Matches(kmsg, f.keys.Toggle):
		f.checks.Toggle(f.focus)
	case key.Matches(kmsg, f.keys.Press):
		return f, f.activate()
	case key.Matches(kmsg, f.keys.Diagnose):
		return f, f.diagnose()
	case key.Matches(kmsg, f.keys.Reset):
		f.reset()
	case key.Matches(kmsg, f.keys.Rules):
		return f, f.showRules()
	case key.Matches(kmsg, f.keys.Quit):
		return f, tea.Quit
	default:
		// Digit keys toggle the matching checkbox directly.
		if s := kmsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			f.checks.Toggle(int(s[0] - '1'))
		}
	}
	return f, nil
}

// focusables is the checkbox count plus the button count.
func (f *FormScreen) focusables() int {
	return len(f.checks.Items) + len(buttonLabels)
}

func (f *FormScreen) moveFocus(delta int) {
	n := f.focusables()
	f.focus = (f.focus + delta + n) % n
	if f.focus < len(f.checks.Items) {
		f.checks.Cursor = f.focus
	} else {
		f.checks.Cursor = -1
	}
}

// focusedButton returns the focused button index, or -1 when a checkbox has focus.
func (f *FormScreen) focusedButton() int {
	if f.focus < len(f.checks.Items) {
		return -1
	}
	return f.focus - len(f.checks.Items)
}

func (f *FormScreen) activate() tea.Cmd {
	switch f.focusedButton() {
	case -1:
		f.checks.Toggle(f.focus)
	case buttonDiagnose:
		return f.diagnose()
	case buttonReset:
		f.reset()
	case buttonRules:
		return f.showRules()
	}
	return nil
}

// facts builds a fresh fact set from the current checkbox state.
func (f *FormScreen) facts() expert.FactSet {
	selected := make(map[expert.Symptom]bool, len(f.checks.Items))
	for id, on := range f.checks.Selected() {
		selected[expert.Symptom(id)] = on
	}
	return expert.FactSetFromSelections(selected)
}

func (f *FormScreen) diagnose() tea.Cmd {
	facts := f.facts()
	res := expert.Evaluate(facts, f.store)
	adv, raised := expert.CheckAdvisory(facts, res)

	symptoms := make([]string, 0, facts.Len())
	for _, s := range facts.Symptoms() {
		symptoms = append(symptoms, string(s))
	}

	f.last = &outcome{
		runID:    uuid.NewString(),
		result:   res,
		advisory: raised,
	}
	f.logger.Info("diagnosis complete",
		zap.String("run_id", f.last.runID),
		zap.Strings("symptoms", symptoms),
		zap.String("rule", res.RuleName()),
		zap.Bool("default_applied", !res.Fired()),
		zap.String("confidence", string(res.Conclusion.Confidence)),
		zap.Bool("advisory", raised),
	)

	if !raised {
		return nil
	}
	f.awaitingAck = f.last.runID
	return router.Push(advisory.New(adv))
}

func (f *FormScreen) reset() {
	f.checks.Clear()
	f.last = nil
	f.logger.Debug("form reset")
}

func (f *FormScreen) showRules() tea.Cmd {
	return router.Push(rules.New(expert.ListRules(f.store)))
}
