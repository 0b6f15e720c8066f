package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/symptomcheck/internal/config"
)

// NewRootCmd builds the symptomcheck command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "symptomcheck",
		Short: "Rule-based COVID-19 symptom checker",
		Long: "symptomcheck evaluates yes/no symptom answers against a small, ordered rule table\n" +
			"and reports a likelihood conclusion with advice. It is not a medical device.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	rootCmd.PersistentFlags().String("rules", "", "Path to a YAML or JSON rule file (overrides SYMPTOMCHECK_RULES env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides SYMPTOMCHECK_LOG_LEVEL env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write structured logs to this file (overrides SYMPTOMCHECK_LOG_FILE env var)")
	rootCmd.Flags().Bool("no-disclaimer", false, "Skip the start-up notice and open the form directly")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Shorthand for --log-level debug")

	rootCmd.AddCommand(newDiagnoseCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newSymptomsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// resolveConfig returns the configuration using flags (highest priority),
// then SYMPTOMCHECK_* env vars, then defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.ConfigFromEnv()

	if p, _ := cmd.Flags().GetString("rules"); p != "" {
		cfg.RulesPath = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if f, _ := cmd.Flags().GetString("log-file"); f != "" {
		cfg.LogFile = f
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
