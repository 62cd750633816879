package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/splitstats/internal/csvio"
	"github.com/pable/splitstats/internal/model"
	"github.com/pable/splitstats/internal/pipeline"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintRunSummary prints a one-line summary of a finished run.
func PrintRunSummary(w io.Writer, s pipeline.Summary, outPath string) {
	fmt.Fprintf(w, "\nCombinations: %d  |  Rows: %d  |  Zero-denominator exclusions: %d  |  Output: %s\n\n",
		s.Combinations, s.Rows, s.ZeroDenominator, outPath)
}

// PrintReportTable prints report rows in file order.
// If focusID is non-zero, that subject's rows are marked with ">".
func PrintReportTable(w io.Writer, rows []model.OutputRow, focusID int64) {
	table := newTable(w)
	table.Header(" ", "SUBJECT_ID", "STAT", "SPLIT", "SUBJECT", "VALUE")

	for _, r := range rows {
		marker := " "
		if focusID != 0 && r.SubjectID == focusID {
			marker = ">"
		}
		table.Append(
			marker,
			strconv.FormatInt(r.SubjectID, 10),
			string(r.Stat),
			string(r.Split),
			string(r.Subject),
			csvio.FormatValue(r.Value),
		)
	}
	table.Render()
}

// PrintCombinationsTable prints each planned combination with the criteria it
// will be filtered and grouped by.
func PrintCombinationsTable(w io.Writer, steps []pipeline.Step) {
	table := newTable(w)
	table.Header("#", "STAT", "SUBJECT", "SPLIT", "FILTER", "GROUP_BY", "TEAM")

	for i, s := range steps {
		team := "-"
		if s.Criteria.IsTeam {
			team = "yes"
		}
		table.Append(
			strconv.Itoa(i+1),
			string(s.Combination.Stat),
			string(s.Combination.Subject),
			string(s.Combination.Split),
			fmt.Sprintf("%s=%s", s.Criteria.FilterColumn, s.Criteria.Side),
			string(s.Criteria.SubjectColumn),
			team,
		)
	}
	table.Render()
}

// PrintRawTable prints the result of an ad hoc SQL query.
func PrintRawTable(w io.Writer, cols []string, rows [][]string) {
	table := newTable(w)

	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)

	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d rows)\n", len(rows))
}
