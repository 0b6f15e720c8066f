package expert

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListRules_DefaultStore(t *testing.T) {
	want := Listing{
		Rules: []RuleEntry{
			{
				Name:       "Rule 1: Fever + Loss of Taste/Smell",
				Conditions: []Symptom{SymptomFever, SymptomLossTasteSmell},
				Label:      "Likely COVID-19",
				Confidence: ConfidenceHigh,
			},
			{
				Name:       "Rule 2: Fever + Cough",
				Conditions: []Symptom{SymptomFever, SymptomCough},
				Label:      "Possible COVID-19",
				Confidence: ConfidenceMedium,
			},
		},
		Default: DefaultEntry{
			Label:      "Low likelihood of COVID-19",
			Confidence: ConfidenceLow,
		},
	}

	got := ListRules(DefaultStore())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListRules() mismatch (-want +got):\n%s", diff)
	}
}

func TestListing_String(t *testing.T) {
	want := strings.Join([]string{
		"Rule 1: Fever + Loss of Taste/Smell:",
		"  IF fever AND loss_taste_smell",
		"  THEN Likely COVID-19 (High)",
		"",
		"Rule 2: Fever + Cough:",
		"  IF fever AND cough",
		"  THEN Possible COVID-19 (Medium)",
		"",
		"Default rule: Low likelihood of COVID-19 (Low)",
	}, "\n")

	got := ListRules(DefaultStore()).String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Listing.String() mismatch (-want +got):\n%s", diff)
	}
}

func TestListRules_DefaultOnlyStore(t *testing.T) {
	store, err := NewRuleStore(nil, seedDefault)
	if err != nil {
		t.Fatalf("NewRuleStore: %v", err)
	}
	got := ListRules(store)
	if len(got.Rules) != 0 {
		t.Errorf("got %d rules, want 0", len(got.Rules))
	}
	if got.String() != "Default rule: Low likelihood of COVID-19 (Low)" {
		t.Errorf("unexpected listing text %q", got.String())
	}
}
