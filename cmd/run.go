package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pable/splitstats/internal/csvio"
	"github.com/pable/splitstats/internal/model"
	"github.com/pable/splitstats/internal/pipeline"
	"github.com/pable/splitstats/internal/report"
	"github.com/pable/splitstats/internal/storage"
)

var (
	runVerify bool
	runPrint  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute the split report and write it as CSV",
	Long: `Read the plate-appearance data and the combinations list, compute every
requested (stat, subject, split) line and write one sorted report.

Subjects with fewer than --min-pa plate appearances in a split are left out.
Subjects whose stat has a zero denominator (e.g. AVG with no at-bats) are left
out and logged as warnings.

Example:
  splitstats run --records data/raw/pitchdata.csv --out data/processed/output.csv`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runVerify, "verify", false, "cross-check every aggregation against SQLite before writing")
	runCmd.Flags().BoolVar(&runPrint, "print", false, "also print the report as a table")
}

func runRun(cmd *cobra.Command, args []string) error {
	records, combos, err := loadInputs()
	if err != nil {
		return err
	}

	rows, summary, err := pipeline.Run(records, combos, pipeline.Options{MinPA: cfg.MinPA, Logger: logger})
	if err != nil {
		return fmt.Errorf("compute report: %w", err)
	}

	if runVerify {
		if err := verifyWithSQLite(records, combos); err != nil {
			return err
		}
	}

	if err := csvio.WriteReportFile(cfg.OutputPath, rows); err != nil {
		return err
	}
	logger.Info("report written",
		zap.String("path", cfg.OutputPath),
		zap.Int("rows", summary.Rows),
		zap.Int("zero_denominator", summary.ZeroDenominator),
	)

	if runPrint {
		report.PrintReportTable(os.Stdout, rows, 0)
	}
	report.PrintRunSummary(os.Stdout, summary, cfg.OutputPath)
	return nil
}

func loadInputs() ([]model.Record, []model.Combination, error) {
	records, err := csvio.ReadRecordsFile(cfg.InputRecordsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read records: %w", err)
	}
	combos, err := csvio.ReadCombinationsFile(cfg.CombinationsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read combinations: %w", err)
	}
	logger.Debug("inputs loaded",
		zap.Int("records", len(records)),
		zap.Int("combinations", len(combos)),
	)
	return records, combos, nil
}

// openRecordsDB loads records into a fresh in-memory SQLite database.
func openRecordsDB(records []model.Record) (*storage.DB, error) {
	db, err := storage.Open(storage.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	if err := db.InsertRecords(records); err != nil {
		db.Close()
		return nil, fmt.Errorf("load records: %w", err)
	}
	return db, nil
}

func verifyWithSQLite(records []model.Record, combos []model.Combination) error {
	db, err := openRecordsDB(records)
	if err != nil {
		return err
	}
	defer db.Close()

	steps, err := pipeline.Plan(combos)
	if err != nil {
		return err
	}
	mismatches, err := pipeline.Verify(records, steps, cfg.MinPA, db)
	if err != nil {
		return err
	}
	for _, m := range mismatches {
		logger.Error("aggregation mismatch", zap.String("detail", m.String()))
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("verify: %d aggregation mismatches", len(mismatches))
	}
	logger.Info("verify passed", zap.Int("combinations", len(steps)))
	return nil
}
