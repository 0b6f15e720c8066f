package rulefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/symptomcheck/internal/expert"
)

const validYAML = `version: v1.2.0
rules:
  - name: "Breathing"
    conditions: [shortness_breath, fever]
    conclusion:
      label: "See a doctor"
      confidence: High
      advice: "Call your GP today."
  - name: "Throat"
    conditions: [sore_throat]
    conclusion:
      label: "Mild"
      confidence: Low
      advice: "Rest and fluids."
default:
  label: "Nothing notable"
  confidence: Low
  advice: "Monitor your condition."
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	store, err := Load(writeFile(t, "rules.yaml", validYAML))
	require.NoError(t, err)

	rules := store.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "Breathing", rules[0].Name)
	assert.Equal(t, []expert.Symptom{expert.SymptomShortnessBreath, expert.SymptomFever}, rules[0].Conditions)
	assert.Equal(t, expert.ConfidenceHigh, rules[0].Conclusion.Confidence)
	assert.Equal(t, "Nothing notable", store.Default().Label)

	res := expert.Evaluate(expert.NewFactSet(expert.SymptomSoreThroat), store)
	assert.Equal(t, "Throat", res.RuleName())
}

func TestLoad_JSON(t *testing.T) {
	const doc = `{
  "version": "v1.0.0",
  "rules": [],
  "default": {"label": "Only default", "confidence": "Low", "advice": "Nothing to do."}
}`
	store, err := Load(writeFile(t, "rules.json", doc))
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, "Only default", store.Default().Label)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{
			name:     "unknown extension",
			file:     "rules.toml",
			content:  "",
			contains: "unsupported rule file format",
		},
		{
			name:     "empty condition set",
			file:     "rules.yaml",
			content:  "version: v1.0.0\nrules:\n  - name: r\n    conditions: []\n    conclusion: {label: a, confidence: High, advice: b}\ndefault: {label: a, confidence: Low, advice: b}\n",
			contains: "schema validation failed",
		},
		{
			name:     "unknown symptom",
			file:     "rules.yaml",
			content:  "version: v1.0.0\nrules:\n  - name: r\n    conditions: [headache]\n    conclusion: {label: a, confidence: High, advice: b}\ndefault: {label: a, confidence: Low, advice: b}\n",
			contains: `rule 1 "r": unknown symptom: "headache"`,
		},
		{
			name:     "same symptom spelled twice",
			file:     "rules.yaml",
			content:  "version: v1.0.0\nrules:\n  - name: r\n    conditions: [fever, Fever]\n    conclusion: {label: a, confidence: High, advice: b}\ndefault: {label: a, confidence: Low, advice: b}\n",
			contains: "duplicate condition",
		},
		{
			name:     "non-string key",
			file:     "rules.yaml",
			content:  "version: v1.0.0\nrules: []\ndefault: {label: a, confidence: Low, advice: b}\n1: stray\n",
			contains: "schema validation failed",
		},
		{
			name:     "missing default",
			file:     "rules.yaml",
			content:  "version: v1.0.0\nrules: []\n",
			contains: "schema validation failed",
		},
		{
			name:     "bad confidence",
			file:     "rules.json",
			content:  `{"version":"v1.0.0","rules":[],"default":{"label":"a","confidence":"Certain","advice":"b"}}`,
			contains: "schema validation failed",
		},
		{
			name:     "duplicate rule names",
			file:     "rules.yaml",
			content:  "version: v1.0.0\nrules:\n  - name: r\n    conditions: [fever]\n    conclusion: {label: a, confidence: High, advice: b}\n  - name: r\n    conditions: [cough]\n    conclusion: {label: a, confidence: High, advice: b}\ndefault: {label: a, confidence: Low, advice: b}\n",
			contains: "duplicate rule name",
		},
		{
			name:     "invalid version",
			file:     "rules.yaml",
			content:  "version: latest\nrules: []\ndefault: {label: a, confidence: Low, advice: b}\n",
			contains: "not a valid semantic version",
		},
		{
			name:     "unsupported major version",
			file:     "rules.yaml",
			content:  "version: v2.0.0\nrules: []\ndefault: {label: a, confidence: Low, advice: b}\n",
			contains: "unsupported rule file version v2.0.0",
		},
		{
			name:     "malformed yaml",
			file:     "rules.yaml",
			content:  "version: [unterminated\n",
			contains: "decode yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			store, err := Load(path)
			require.Error(t, err)
			assert.Nil(t, store)
			assert.True(t, expert.IsConfigError(err))
			assert.Contains(t, err.Error(), tt.contains)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, expert.IsConfigError(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMarshal_RoundTripsDefaultStore(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(expert.DefaultStore(), format)
			require.NoError(t, err)

			store, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, expert.ListRules(expert.DefaultStore()), expert.ListRules(store))
			assert.Equal(t, expert.DefaultStore().Default(), store.Default())
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"yaml": FormatYAML, ".yml": FormatYAML, "JSON": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestParse_ConditionsAcceptCommandLineSpellings(t *testing.T) {
	const doc = `version: v1.0.0
rules:
  - name: Taste
    conditions: [Fever, loss-taste-smell, " cough "]
    conclusion: {label: a, confidence: High, advice: b}
default: {label: c, confidence: Low, advice: d}
`
	store, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t,
		[]expert.Symptom{expert.SymptomFever, expert.SymptomLossTasteSmell, expert.SymptomCough},
		store.Rules()[0].Conditions)
}

func TestParse_YAMLScalarsThatAreNotStrings(t *testing.T) {
	const doc = `version: v1.0.0
rules: []
default:
  label: Checked
  confidence: Low
  advice: 2020-01-01
`
	store, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01", store.Default().Advice)
}

func TestWithSource_FindsWrappedConfigError(t *testing.T) {
	inner := &expert.ConfigError{Problems: []string{"bad"}}
	err := withSource(fmt.Errorf("build store: %w", inner), "rules.yaml")

	var ce *expert.ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "rules.yaml", ce.Source)
	assert.Same(t, inner, ce)
	assert.Contains(t, err.Error(), "build store")
}
