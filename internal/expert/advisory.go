package expert

// Advisory is a notice raised alongside a conclusion. It is not part of
// the rule table and never changes the conclusion itself.
type Advisory struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

var exposureAdvisory = Advisory{
	Title:   "Important",
	Message: "You have recent exposure. Please isolate and get tested.",
}

// CheckAdvisory applies the exposure policy to an evaluation result:
// recent exposure combined with a High or Medium conclusion raises the
// isolation notice. The caller decides how to surface it.
func CheckAdvisory(facts FactSet, res Result) (Advisory, bool) {
	if !facts.Has(SymptomRecentExposure) {
		return Advisory{}, false
	}
	switch res.Conclusion.Confidence {
	case ConfidenceHigh, ConfidenceMedium:
		return exposureAdvisory, true
	}
	return Advisory{}, false
}
