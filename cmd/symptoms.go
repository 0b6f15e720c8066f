package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/symptomcheck/internal/expert"
)

func newSymptomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symptoms",
		Short: "List symptom identifiers accepted by diagnose",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, s := range expert.AllSymptoms() {
				fmt.Fprintf(out, "%-18s  %s\n", s, s.Label())
			}
		},
	}
}
