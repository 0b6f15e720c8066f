package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/symptomcheck/internal/config"
	"github.com/abhisek/symptomcheck/internal/expert"
	"github.com/abhisek/symptomcheck/internal/logging"
)

func newDiagnoseCmd() *cobra.Command {
	diagnoseCmd := &cobra.Command{
		Use:   "diagnose [symptom...]",
		Short: "Evaluate a set of symptoms once and print the conclusion",
		Long: "Evaluate the given symptoms against the active rule table.\n\n" +
			"Symptoms can be given as arguments or with --symptom. Run\n" +
			"'symptomcheck symptoms' for the accepted identifiers.",
		Example: "  symptomcheck diagnose fever cough\n" +
			"  symptomcheck diagnose --symptom fever --symptom loss_taste_smell --json",
		RunE: runDiagnose,
	}
	diagnoseCmd.Flags().StringSliceP("symptom", "s", nil, "Symptom identifier (repeatable, comma separated)")
	diagnoseCmd.Flags().Bool("json", false, "Print the result as JSON")
	return diagnoseCmd
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	flagSymptoms, _ := cmd.Flags().GetStringSlice("symptom")
	asJSON, _ := cmd.Flags().GetBool("json")

	facts, err := parseFacts(append(args, flagSymptoms...))
	if err != nil {
		return err
	}

	store, err := config.LoadStore(cfg)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	res := expert.Evaluate(facts, store)
	adv, raised := expert.CheckAdvisory(facts, res)

	logger.Debug("diagnosis complete",
		zap.String("run_id", uuid.NewString()),
		zap.String("rules", cfg.RulesSource()),
		zap.Strings("symptoms", symptomStrings(facts)),
		zap.String("rule", res.RuleName()),
		zap.Bool("default_applied", !res.Fired()),
		zap.Bool("advisory", raised),
	)

	out := cmd.OutOrStdout()
	if asJSON {
		return writeDiagnosisJSON(out, facts, res, adv, raised)
	}
	writeDiagnosisText(out, res, adv, raised)
	return nil
}

// parseFacts converts raw identifiers into a fact set. Repeats are harmless.
func parseFacts(raw []string) (expert.FactSet, error) {
	var facts expert.FactSet
	for _, r := range raw {
		s, err := expert.ParseSymptom(r)
		if err != nil {
			return expert.FactSet{}, err
		}
		facts.Add(s)
	}
	return facts, nil
}

func symptomStrings(facts expert.FactSet) []string {
	out := make([]string, 0, facts.Len())
	for _, s := range facts.Symptoms() {
		out = append(out, string(s))
	}
	return out
}

func writeDiagnosisText(w io.Writer, res expert.Result, adv expert.Advisory, raised bool) {
	c := res.Conclusion
	fmt.Fprintf(w, "Result:     %s\n", c.Label)
	fmt.Fprintf(w, "Confidence: %s\n", c.Confidence)
	fmt.Fprintf(w, "Advice:     %s\n", c.Advice)
	fmt.Fprintf(w, "Rule Fired: %s\n", res.Explanation())
	if raised {
		fmt.Fprintf(w, "\n%s: %s\n", adv.Title, adv.Message)
	}
}

type diagnosisJSON struct {
	Symptoms       []string         `json:"symptoms"`
	Result         string           `json:"result"`
	Confidence     string           `json:"confidence"`
	Advice         string           `json:"advice"`
	Rule           string           `json:"rule,omitempty"`
	DefaultApplied bool             `json:"default_applied"`
	Advisory       *expert.Advisory `json:"advisory,omitempty"`
}

func writeDiagnosisJSON(w io.Writer, facts expert.FactSet, res expert.Result, adv expert.Advisory, raised bool) error {
	d := diagnosisJSON{
		Symptoms:       symptomStrings(facts),
		Result:         res.Conclusion.Label,
		Confidence:     string(res.Conclusion.Confidence),
		Advice:         res.Conclusion.Advice,
		Rule:           res.RuleName(),
		DefaultApplied: !res.Fired(),
	}
	if raised {
		d.Advisory = &adv
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
