package rulefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/symptomcheck/internal/expert"
)

// CurrentVersion is written by Marshal. Any v1.x.y file is accepted.
const CurrentVersion = "v1.0.0"

const supportedMajor = "v1"

// Format selects the on-disk encoding of a rule file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported rule file format %q (want yaml or json)", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Document is the declarative form of a rule store.
type Document struct {
	Version string            `yaml:"version" json:"version"`
	Rules   []RuleSpec        `yaml:"rules" json:"rules"`
	Default expert.Conclusion `yaml:"default" json:"default"`
}

// RuleSpec is one entry in Document.Rules.
type RuleSpec struct {
	Name       string            `yaml:"name" json:"name"`
	Conditions []string          `yaml:"conditions" json:"conditions"`
	Conclusion expert.Conclusion `yaml:"conclusion" json:"conclusion"`
}

// Load reads and validates a rule file. Any failure is returned as an
// *expert.ConfigError naming the file.
func Load(path string) (*expert.RuleStore, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &expert.ConfigError{Source: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &expert.ConfigError{Source: path, Err: fmt.Errorf("read rule file: %w", err)}
	}
	store, err := Parse(data, format)
	if err != nil {
		return nil, withSource(err, path)
	}
	return store, nil
}

// Parse decodes, validates and builds a store from raw file contents.
func Parse(data []byte, format Format) (*expert.RuleStore, error) {
	var raw any
	if err := unmarshal(data, format, &raw); err != nil {
		return nil, &expert.ConfigError{Err: fmt.Errorf("decode %s: %w", format, err)}
	}
	raw, err := jsonValue(raw)
	if err != nil {
		return nil, &expert.ConfigError{Err: fmt.Errorf("decode %s: %w", format, err)}
	}
	if err := validateDocument(raw); err != nil {
		return nil, &expert.ConfigError{Err: err}
	}

	var doc Document
	if err := unmarshal(data, format, &doc); err != nil {
		return nil, &expert.ConfigError{Err: fmt.Errorf("decode %s: %w", format, err)}
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, &expert.ConfigError{Err: err}
	}
	return doc.Store()
}

// Store converts the document into a validated rule store.
func (d Document) Store() (*expert.RuleStore, error) {
	var problems []string
	rules := make([]expert.Rule, 0, len(d.Rules))
	for i, rs := range d.Rules {
		r := expert.Rule{Name: rs.Name, Conclusion: rs.Conclusion}
		for _, c := range rs.Conditions {
			s, err := expert.ParseSymptom(c)
			if err != nil {
				problems = append(problems, fmt.Sprintf("rule %d %q: %v", i+1, rs.Name, err))
				continue
			}
			r.Conditions = append(r.Conditions, s)
		}
		rules = append(rules, r)
	}
	if len(problems) > 0 {
		return nil, &expert.ConfigError{Problems: problems}
	}
	return expert.NewRuleStore(rules, d.Default)
}

// FromStore builds the declarative form of a store.
func FromStore(store *expert.RuleStore) Document {
	doc := Document{
		Version: CurrentVersion,
		Rules:   []RuleSpec{},
		Default: store.Default(),
	}
	for _, r := range store.Rules() {
		conds := make([]string, len(r.Conditions))
		for i, c := range r.Conditions {
			conds[i] = string(c)
		}
		doc.Rules = append(doc.Rules, RuleSpec{
			Name:       r.Name,
			Conditions: conds,
			Conclusion: r.Conclusion,
		})
	}
	return doc
}

// Marshal encodes a store as a rule file that Parse accepts.
func Marshal(store *expert.RuleStore, format Format) ([]byte, error) {
	doc := FromStore(store)
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported rule file format %q", format)
}

// jsonValue converts a decoded document into the types encoding/json
// produces, which is what the schema validator understands. yaml.v3 yields
// map[interface{}]interface{} for non-string keys and time.Time for
// unquoted dates; keys are stringified and scalars re-encoded as JSON.
func jsonValue(v any) (any, error) {
	data, err := json.Marshal(stringKeys(v))
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = stringKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = stringKeys(val)
		}
		return out
	}
	return v
}

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatJSON:
		return json.Unmarshal(data, v)
	}
	return fmt.Errorf("unsupported rule file format %q", format)
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version (e.g. %s)", v, CurrentVersion)
	}
	if major := semver.Major(v); major != supportedMajor {
		return fmt.Errorf("unsupported rule file version %s (this build reads %s.x.y)", v, supportedMajor)
	}
	return nil
}

func withSource(err error, source string) error {
	var ce *expert.ConfigError
	if errors.As(err, &ce) {
		ce.Source = source
		return err
	}
	return &expert.ConfigError{Source: source, Err: err}
}
