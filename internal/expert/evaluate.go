package expert

// Result is the outcome of a single evaluation.
type Result struct {
	// Rule is the rule that fired, or nil when the default applied.
	Rule       *Rule
	Conclusion Conclusion
}

// Fired reports whether a conditional rule matched.
func (r Result) Fired() bool {
	return r.Rule != nil
}

// RuleName returns the fired rule's name, or "" for the default.
func (r Result) RuleName() string {
	if r.Rule == nil {
		return ""
	}
	return r.Rule.Name
}

// Explanation is the "rule fired" text shown next to a result.
func (r Result) Explanation() string {
	if r.Rule == nil {
		return "Default rule applied."
	}
	return "Fired: " + r.Rule.Name
}

// Evaluate runs a single pass over the store's rules in order and returns
// the first rule whose conditions are all present in facts. Later rules are
// never consulted once one matches, even if they are more specific. When
// nothing matches the store default is returned.
//
// Evaluate has no side effects and always produces a conclusion. It panics
// if store was not built by NewRuleStore or DefaultStore.
func Evaluate(facts FactSet, store *RuleStore) Result {
	store.mustBeBuilt()
	for i := range store.rules {
		if store.rules[i].Matches(facts) {
			r := store.rules[i].clone()
			return Result{Rule: &r, Conclusion: r.Conclusion}
		}
	}
	return Result{Conclusion: store.def}
}
