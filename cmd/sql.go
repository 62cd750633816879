package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/splitstats/internal/csvio"
	"github.com/pable/splitstats/internal/report"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a SQL query against the raw plate-appearance data",
	Long: `Load the raw data file into an in-memory SQLite database and print the
result of an arbitrary query as a table. Nothing is written to disk.

Schema:
  plate_appearances(row_num, PitcherSide, HitterSide, HitterId, HitterTeamId,
    PitcherId, PitcherTeamId, PA, AB, H, TB, BB, HBP, SF)

Example:
  splitstats sql "SELECT HitterId, SUM(PA) FROM plate_appearances WHERE PitcherSide = 'L' GROUP BY HitterId"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	records, err := csvio.ReadRecordsFile(cfg.InputRecordsPath)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}
	db, err := openRecordsDB(records)
	if err != nil {
		return err
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}
	report.PrintRawTable(os.Stdout, cols, rows)
	return nil
}
