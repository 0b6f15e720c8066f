package expert

import "errors"

// seedRules is the built-in knowledge base, in precedence order.
// Rule 1 is listed first so that fever + loss of taste/smell reports the
// stronger conclusion even when a cough is also present.
var seedRules = []Rule{
	{
		Name:       "Rule 1: Fever + Loss of Taste/Smell",
		Conditions: []Symptom{SymptomFever, SymptomLossTasteSmell},
		Conclusion: Conclusion{
			Label:      "Likely COVID-19",
			Confidence: ConfidenceHigh,
			Advice:     "Seek medical advice and isolate. Consider getting a PCR test.",
		},
	},
	{
		Name:       "Rule 2: Fever + Cough",
		Conditions: []Symptom{SymptomFever, SymptomCough},
		Conclusion: Conclusion{
			Label:      "Possible COVID-19",
			Confidence: ConfidenceMedium,
			Advice:     "Self-isolate, monitor symptoms and consider testing.",
		},
	},
}

var seedDefault = Conclusion{
	Label:      "Low likelihood of COVID-19",
	Confidence: ConfidenceLow,
	Advice:     "Could be normal flu. Monitor your condition and seek help if symptoms worsen.",
}

// defaultStore is built once; the seed table is validated by tests.
var defaultStore = mustRuleStore(seedRules, seedDefault)

// DefaultStore returns the built-in rule table.
func DefaultStore() *RuleStore {
	return defaultStore
}

func mustRuleStore(rules []Rule, def Conclusion) *RuleStore {
	s, err := NewRuleStore(rules, def)
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Source = "built-in"
		}
		panic(err)
	}
	return s
}
