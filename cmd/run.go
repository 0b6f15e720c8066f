package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/symptomcheck/internal/app"
	"github.com/abhisek/symptomcheck/internal/config"
	"github.com/abhisek/symptomcheck/internal/logging"
)

// runApp loads the rule table, builds the logger, and launches the TUI.
// A malformed rule file stops here, before the terminal is taken over.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	store, err := config.LoadStore(cfg)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	logger, err := logging.NewInteractive(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("starting interactive form",
		zap.String("rules", cfg.RulesSource()),
		zap.Int("rule_count", store.Len()),
	)

	skip, _ := cmd.Flags().GetBool("no-disclaimer")
	return app.Run(app.Options{
		Store:          store,
		RulesSource:    cfg.RulesSource(),
		Logger:         logger,
		SkipDisclaimer: skip,
	})
}
