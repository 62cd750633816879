package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/splitstats/internal/csvio"
	"github.com/pable/splitstats/internal/pipeline"
	"github.com/pable/splitstats/internal/report"
)

// combosCmd validates the combinations list without touching the raw data.
var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Validate the combinations list and show how each line is computed",
	Args:  cobra.NoArgs,
	RunE:  runCombos,
}

func runCombos(cmd *cobra.Command, args []string) error {
	combos, err := csvio.ReadCombinationsFile(cfg.CombinationsPath)
	if err != nil {
		return fmt.Errorf("read combinations: %w", err)
	}
	if len(combos) == 0 {
		fmt.Fprintf(os.Stdout, "No combinations in %s.\n", cfg.CombinationsPath)
		return nil
	}
	steps, err := pipeline.Plan(combos)
	if err != nil {
		return err
	}
	report.PrintCombinationsTable(os.Stdout, steps)
	return nil
}
