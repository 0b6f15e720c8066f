package expert

import (
	"fmt"
	"strings"
)

// Symptom identifies a single yes/no fact the user can assert.
type Symptom string

const (
	SymptomFever           Symptom = "fever"
	SymptomCough           Symptom = "cough"
	SymptomSoreThroat      Symptom = "sore_throat"
	SymptomShortnessBreath Symptom = "shortness_breath"
	SymptomLossTasteSmell  Symptom = "loss_taste_smell"
	SymptomRecentExposure  Symptom = "recent_exposure"
)

var symptomLabels = map[Symptom]string{
	SymptomFever:           "Fever (temp > 37.5°C)",
	SymptomCough:           "Cough",
	SymptomSoreThroat:      "Sore throat",
	SymptomShortnessBreath: "Shortness of breath",
	SymptomLossTasteSmell:  "Loss of taste or smell",
	SymptomRecentExposure:  "Recent close contact with COVID-19 case",
}

// AllSymptoms returns every known symptom in form order.
func AllSymptoms() []Symptom {
	return []Symptom{
		SymptomFever,
		SymptomCough,
		SymptomSoreThroat,
		SymptomShortnessBreath,
		SymptomLossTasteSmell,
		SymptomRecentExposure,
	}
}

// Valid reports whether s is one of the known symptoms.
func (s Symptom) Valid() bool {
	_, ok := symptomLabels[s]
	return ok
}

// Label returns the human-readable form text for s.
func (s Symptom) Label() string {
	if l, ok := symptomLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParseSymptom converts an identifier such as "sore_throat" into a Symptom.
// Matching ignores case and surrounding whitespace; dashes are accepted in
// place of underscores.
func ParseSymptom(raw string) (Symptom, error) {
	id := strings.ToLower(strings.TrimSpace(raw))
	id = strings.ReplaceAll(id, "-", "_")
	s := Symptom(id)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSymptom, raw)
	}
	return s, nil
}

// Confidence is the coarse certainty attached to a conclusion.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Valid reports whether c is High, Medium or Low.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// ParseConfidence accepts "high", "Medium", "LOW" and so on.
func ParseConfidence(raw string) (Confidence, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return ConfidenceHigh, nil
	case "medium":
		return ConfidenceMedium, nil
	case "low":
		return ConfidenceLow, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidConfidence, raw)
}

// Conclusion is the outcome attached to a rule or to the store default.
type Conclusion struct {
	Label      string     `yaml:"label" json:"label"`
	Confidence Confidence `yaml:"confidence" json:"confidence"`
	Advice     string     `yaml:"advice" json:"advice"`
}

// Rule fires when every one of its conditions is present in the fact set.
type Rule struct {
	Name       string
	Conditions []Symptom
	Conclusion Conclusion
}

// Matches reports whether all of r's conditions are asserted in facts.
func (r Rule) Matches(facts FactSet) bool {
	for _, c := range r.Conditions {
		if !facts.Has(c) {
			return false
		}
	}
	return true
}

func (r Rule) clone() Rule {
	r.Conditions = append([]Symptom(nil), r.Conditions...)
	return r
}
