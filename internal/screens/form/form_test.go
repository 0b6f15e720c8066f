package form

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/symptomcheck/internal/expert"
	"github.com/abhisek/symptomcheck/internal/router"
	"github.com/abhisek/symptomcheck/internal/screens/advisory"
	"github.com/abhisek/symptomcheck/internal/screens/rules"
)

func press(f *FormScreen, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "space":
			msg = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
		case "down":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		case "up":
			msg = tea.KeyPressMsg{Code: tea.KeyUp}
		default:
			r := []rune(k)[0]
			msg = tea.KeyPressMsg{Code: r, Text: k}
		}
		_, cmd = f.Update(msg)
	}
	return cmd
}

func newObservedForm() (*FormScreen, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return New(expert.DefaultStore(), zap.New(core)), logs
}

// index returns the checkbox position of s in the form.
func index(t *testing.T, s expert.Symptom) int {
	t.Helper()
	for i, sym := range expert.AllSymptoms() {
		if sym == s {
			return i
		}
	}
	t.Fatalf("unknown symptom %q", s)
	return -1
}

func digit(t *testing.T, s expert.Symptom) string {
	t.Helper()
	return string(rune('1' + index(t, s)))
}

func TestNewFormIsUnchecked(t *testing.T) {
	f := New(expert.DefaultStore(), nil)

	assert.Equal(t, "COVID-19 Expert System", f.Title())
	assert.Len(t, f.checks.Items, len(expert.AllSymptoms()))
	assert.Equal(t, 0, f.facts().Len())
	assert.Nil(t, f.last)
}

func TestToggleWithSpaceAndDigits(t *testing.T) {
	f := New(expert.DefaultStore(), nil)

	press(f, "space")
	assert.True(t, f.facts().Has(expert.AllSymptoms()[0]))

	press(f, "space")
	assert.False(t, f.facts().Has(expert.AllSymptoms()[0]))

	press(f, digit(t, expert.SymptomCough))
	assert.True(t, f.facts().Has(expert.SymptomCough))

	// Digits past the last checkbox are ignored.
	press(f, "9")
	assert.Equal(t, 1, f.facts().Len())
}

func TestFocusWrapsThroughButtons(t *testing.T) {
	f := New(expert.DefaultStore(), nil)
	n := len(f.checks.Items)

	press(f, "up")
	assert.Equal(t, buttonRules, f.focusedButton())
	assert.Equal(t, -1, f.checks.Cursor)

	press(f, "down")
	assert.Equal(t, -1, f.focusedButton())
	assert.Equal(t, 0, f.checks.Cursor)

	for i := 0; i < n; i++ {
		press(f, "down")
	}
	assert.Equal(t, buttonDiagnose, f.focusedButton())
}

func TestDiagnoseShowsConclusion(t *testing.T) {
	tests := []struct {
		name     string
		symptoms []expert.Symptom
		label    string
		fired    string
	}{
		{
			name:     "fever and loss of taste",
			symptoms: []expert.Symptom{expert.SymptomFever, expert.SymptomLossTasteSmell},
			label:    "Likely COVID-19",
			fired:    "Fired: Rule 1: Fever + Loss of Taste/Smell",
		},
		{
			name:     "fever and cough",
			symptoms: []expert.Symptom{expert.SymptomFever, expert.SymptomCough},
			label:    "Possible COVID-19",
			fired:    "Fired: Rule 2: Fever + Cough",
		},
		{
			name:  "nothing selected",
			label: "Low likelihood of COVID-19",
			fired: "Default rule applied.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(expert.DefaultStore(), nil)
			for _, s := range tt.symptoms {
				press(f, digit(t, s))
			}

			cmd := press(f, "d")
			assert.Nil(t, cmd)
			require.NotNil(t, f.last)
			assert.Equal(t, tt.label, f.last.result.Conclusion.Label)
			assert.Equal(t, tt.fired, f.last.result.Explanation())

			view := f.View(120, 30)
			assert.Contains(t, view, tt.label)
			assert.Contains(t, view, string(f.last.result.Conclusion.Confidence))
		})
	}
}

func TestDiagnoseViaButton(t *testing.T) {
	f := New(expert.DefaultStore(), nil)
	press(f, digit(t, expert.SymptomFever), digit(t, expert.SymptomCough))

	// Move focus onto the Diagnose button.
	for i := 0; i < len(f.checks.Items); i++ {
		press(f, "down")
	}
	require.Equal(t, buttonDiagnose, f.focusedButton())

	press(f, "enter")
	require.NotNil(t, f.last)
	assert.Equal(t, expert.ConfidenceMedium, f.last.result.Conclusion.Confidence)
}

func TestDiagnosePushesAdvisoryOnExposure(t *testing.T) {
	f, logs := newObservedForm()
	press(f, digit(t, expert.SymptomFever), digit(t, expert.SymptomCough), digit(t, expert.SymptomRecentExposure))

	cmd := press(f, "d")
	require.NotNil(t, cmd)

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg, got %T", msg)
	_, ok = push.Screen.(*advisory.AdvisoryScreen)
	assert.True(t, ok)
	assert.Equal(t, "Important", push.Screen.Title())

	entries := logs.FilterMessage("diagnosis complete").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, true, fields["advisory"])
	assert.Equal(t, "Rule 2: Fever + Cough", fields["rule"])

	f.Resume()
	acks := logs.FilterMessage("advisory acknowledged").All()
	require.Len(t, acks, 1)
	assert.Equal(t, fields["run_id"], acks[0].ContextMap()["run_id"])

	// A second resume without a new advisory logs nothing.
	f.Resume()
	assert.Len(t, logs.FilterMessage("advisory acknowledged").All(), 1)
}

func TestExposureWithLowConfidenceHasNoAdvisory(t *testing.T) {
	f := New(expert.DefaultStore(), nil)
	press(f, digit(t, expert.SymptomRecentExposure))

	assert.Nil(t, press(f, "d"))
	require.NotNil(t, f.last)
	assert.False(t, f.last.advisory)
}

func TestResetClearsSelectionAndResult(t *testing.T) {
	f := New(expert.DefaultStore(), nil)
	press(f, digit(t, expert.SymptomFever), digit(t, expert.SymptomLossTasteSmell), "d")
	require.NotNil(t, f.last)

	press(f, "r")
	assert.Nil(t, f.last)
	assert.Equal(t, 0, f.facts().Len())

	view := f.View(120, 30)
	assert.Contains(t, view, noDiagnosis)
	assert.Contains(t, view, noRuleFired)
}

func TestShowRulesPushesRulesScreen(t *testing.T) {
	f := New(expert.DefaultStore(), nil)

	cmd := press(f, "s")
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*rules.RulesScreen)
	assert.True(t, ok)
}

func TestQuit(t *testing.T) {
	f := New(expert.DefaultStore(), nil)
	cmd := press(f, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewCompactStacksPanels(t *testing.T) {
	f := New(expert.DefaultStore(), nil)

	wide := f.View(120, 30)
	compact := f.View(80, 40)

	assert.Contains(t, compact, "Select Symptoms:")
	assert.Contains(t, compact, "Result")
	assert.Greater(t, strings.Count(compact, "\n"), strings.Count(wide, "\n"))
}
