package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/pable/splitstats/internal/csvio"
)

// summaryCmd is the cobra command for displaying a high-level overview of the raw data.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the raw data",
	Long: `Display aggregate statistics about the raw plate-appearance file:
row and PA counts, distinct hitters/pitchers/teams, PA volume per handedness
matchup, and how many subjects reach the --min-pa floor overall.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	records, err := csvio.ReadRecordsFile(cfg.InputRecordsPath)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}
	db, err := openRecordsDB(records)
	if err != nil {
		return err
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.Records == 0 {
		fmt.Fprintf(os.Stdout, "No plate appearances in %s.\n", cfg.InputRecordsPath)
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== Data Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Rows          : %d\n", ov.Records)
	fmt.Fprintf(os.Stdout, "  Total PA      : %d\n", ov.TotalPA)
	fmt.Fprintf(os.Stdout, "  Hitters       : %d  (%d teams)\n", ov.Hitters, ov.HitterTeams)
	fmt.Fprintf(os.Stdout, "  Pitchers      : %d  (%d teams)\n", ov.Pitchers, ov.PitcherTeams)

	matchups, err := db.GetMatchups()
	if err != nil {
		return fmt.Errorf("get matchups: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n--- Matchups ---\n\n")
	mt := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	mt.Header("PITCHER", "HITTER", "ROWS", "PA", "PA%")
	for _, m := range matchups {
		pct := 0.0
		if ov.TotalPA > 0 {
			pct = 100.0 * float64(m.PA) / float64(ov.TotalPA)
		}
		mt.Append(
			m.PitcherSide,
			m.HitterSide,
			fmt.Sprintf("%d", m.Records),
			fmt.Sprintf("%d", m.PA),
			fmt.Sprintf("%.1f%%", pct),
		)
	}
	mt.Render()

	qualified, err := db.GetQualifiedCounts(cfg.MinPA)
	if err != nil {
		return fmt.Errorf("get qualified counts: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n--- Subjects with at least %d PA (all splits) ---\n\n", cfg.MinPA)
	qt := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	qt.Header("SUBJECT", "DISTINCT", "QUALIFIED")
	for _, q := range qualified {
		qt.Append(q.Subject, fmt.Sprintf("%d", q.Subjects), fmt.Sprintf("%d", q.Qualified))
	}
	qt.Render()
	return nil
}
