package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/symptomcheck/internal/config"
	"github.com/abhisek/symptomcheck/internal/expert"
	"github.com/abhisek/symptomcheck/internal/rulefile"
)

func newRulesCmd() *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the active rule table in precedence order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), expert.ListRules(store).String())
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a rule file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := rulefile.Load(args[0])
			if err != nil {
				return err
			}
			def := store.Default()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d rules, default: %s)\n",
				args[0], store.Len(), def.Label)
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active rule table as a rule file to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _ := cmd.Flags().GetString("format")
			format, err := rulefile.ParseFormat(f)
			if err != nil {
				return err
			}
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			data, err := rulefile.Marshal(store, format)
			if err != nil {
				return fmt.Errorf("export rules: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	exportCmd.Flags().String("format", "yaml", "Output format: yaml or json")

	rulesCmd.AddCommand(validateCmd)
	rulesCmd.AddCommand(exportCmd)
	return rulesCmd
}

func loadStore(cmd *cobra.Command) (*expert.RuleStore, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	store, err := config.LoadStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return store, nil
}
