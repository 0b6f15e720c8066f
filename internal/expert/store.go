package expert

import (
	"fmt"
	"strings"
)

// RuleStore is the ordered knowledge base. Order is precedence: the first
// matching rule wins. A store is never mutated after construction and is
// safe for concurrent reads.
//
// The zero value is not usable: a store must come from NewRuleStore or
// DefaultStore so that a validated default conclusion always exists.
// Evaluating against any other store panics.
type RuleStore struct {
	rules []Rule
	def   Conclusion
	built bool
}

// NewRuleStore validates the given table and returns a read-only store.
// All problems are reported together in a single *ConfigError.
func NewRuleStore(rules []Rule, def Conclusion) (*RuleStore, error) {
	if err := validateRules(rules, def); err != nil {
		return nil, err
	}
	s := &RuleStore{
		rules: make([]Rule, len(rules)),
		def:   def,
		built: true,
	}
	for i, r := range rules {
		s.rules[i] = r.clone()
	}
	return s, nil
}

// Rules returns a copy of the rule sequence in precedence order.
func (s *RuleStore) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.clone()
	}
	return out
}

// Default returns the conclusion used when no rule matches.
func (s *RuleStore) Default() Conclusion {
	s.mustBeBuilt()
	return s.def
}

func (s *RuleStore) mustBeBuilt() {
	if s == nil || !s.built {
		panic("expert: RuleStore used without NewRuleStore")
	}
}

// Len returns the number of conditional rules (the default is not counted).
func (s *RuleStore) Len() int {
	return len(s.rules)
}

// validateRules performs every structural check on a rule table.
// Returns a *ConfigError describing all problems found, or nil.
func validateRules(rules []Rule, def Conclusion) error {
	var errs []string

	names := make(map[string]bool, len(rules))
	for i, r := range rules {
		prefix := fmt.Sprintf("rule %d", i+1)
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, prefix+": name is required")
		} else {
			prefix = fmt.Sprintf("rule %d %q", i+1, r.Name)
			if names[r.Name] {
				errs = append(errs, fmt.Sprintf("%s: duplicate rule name", prefix))
			}
			names[r.Name] = true
		}

		if len(r.Conditions) == 0 {
			errs = append(errs, prefix+": condition set must not be empty")
		}
		seen := make(map[Symptom]bool, len(r.Conditions))
		for _, c := range r.Conditions {
			if !c.Valid() {
				errs = append(errs, fmt.Sprintf("%s: unknown symptom %q", prefix, c))
			}
			if seen[c] {
				errs = append(errs, fmt.Sprintf("%s: duplicate condition %q", prefix, c))
			}
			seen[c] = true
		}

		errs = append(errs, checkConclusion(prefix+" conclusion", r.Conclusion)...)
	}

	errs = append(errs, checkConclusion("default conclusion", def)...)

	if len(errs) > 0 {
		return &ConfigError{Problems: errs}
	}
	return nil
}

func checkConclusion(prefix string, c Conclusion) []string {
	var errs []string
	if strings.TrimSpace(c.Label) == "" {
		errs = append(errs, prefix+": label is required")
	}
	if !c.Confidence.Valid() {
		errs = append(errs, fmt.Sprintf("%s: confidence must be High, Medium or Low, got %q", prefix, c.Confidence))
	}
	if strings.TrimSpace(c.Advice) == "" {
		errs = append(errs, prefix+": advice is required")
	}
	return errs
}
