package expert

import (
	"fmt"
	"strings"
)

// RuleEntry describes one rule for display.
type RuleEntry struct {
	Name       string     `json:"name"`
	Conditions []Symptom  `json:"conditions"`
	Label      string     `json:"label"`
	Confidence Confidence `json:"confidence"`
}

// DefaultEntry describes the fallback conclusion for display.
type DefaultEntry struct {
	Label      string     `json:"label"`
	Confidence Confidence `json:"confidence"`
}

// Listing is a read-only view of a store in precedence order.
type Listing struct {
	Rules   []RuleEntry  `json:"rules"`
	Default DefaultEntry `json:"default"`
}

// ListRules describes every rule in store order, followed by the default.
func ListRules(store *RuleStore) Listing {
	store.mustBeBuilt()
	l := Listing{
		Rules: make([]RuleEntry, 0, len(store.rules)),
		Default: DefaultEntry{
			Label:      store.def.Label,
			Confidence: store.def.Confidence,
		},
	}
	for _, r := range store.rules {
		l.Rules = append(l.Rules, RuleEntry{
			Name:       r.Name,
			Conditions: append([]Symptom(nil), r.Conditions...),
			Label:      r.Conclusion.Label,
			Confidence: r.Conclusion.Confidence,
		})
	}
	return l
}

// String renders the listing as IF/THEN text.
func (l Listing) String() string {
	var b strings.Builder
	for _, e := range l.Rules {
		conds := make([]string, len(e.Conditions))
		for i, c := range e.Conditions {
			conds[i] = string(c)
		}
		fmt.Fprintf(&b, "%s:\n", e.Name)
		fmt.Fprintf(&b, "  IF %s\n", strings.Join(conds, " AND "))
		fmt.Fprintf(&b, "  THEN %s (%s)\n\n", e.Label, e.Confidence)
	}
	fmt.Fprintf(&b, "Default rule: %s (%s)", l.Default.Label, l.Default.Confidence)
	return b.String()
}
