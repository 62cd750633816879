package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/splitstats/internal/csvio"
	"github.com/pable/splitstats/internal/model"
	"github.com/pable/splitstats/internal/report"
)

var (
	showSubjectID int64
	showOnly      bool
)

var showCmd = &cobra.Command{
	Use:   "show [report.csv]",
	Short: "Print a written report as a table",
	Long:  "Print a report written by 'splitstats run'. Defaults to the configured --out path.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Int64Var(&showSubjectID, "subject-id", 0, "highlight a subject id")
	showCmd.Flags().BoolVar(&showOnly, "only", false, "with --subject-id, print only that subject's rows")
}

func runShow(cmd *cobra.Command, args []string) error {
	path := cfg.OutputPath
	if len(args) == 1 {
		path = args[0]
	}

	rows, err := csvio.ReadReportFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}
	if showOnly && showSubjectID != 0 {
		var kept []model.OutputRow
		for _, r := range rows {
			if r.SubjectID == showSubjectID {
				kept = append(kept, r)
			}
		}
		rows = kept
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "No rows in %s\n", path)
		return nil
	}

	report.PrintReportTable(os.Stdout, rows, showSubjectID)
	return nil
}
