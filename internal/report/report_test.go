package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pable/splitstats/internal/model"
	"github.com/pable/splitstats/internal/pipeline"
)

func TestPrintReportTable_MarksFocus(t *testing.T) {
	rows := []model.OutputRow{
		{SubjectID: 1, Stat: model.StatAVG, Split: model.SplitVsRHP, Subject: model.SubjectHitter, Value: decimal.RequireFromString("0.25")},
		{SubjectID: 2, Stat: model.StatAVG, Split: model.SplitVsRHP, Subject: model.SubjectHitter, Value: decimal.RequireFromString("1")},
	}
	var buf bytes.Buffer
	PrintReportTable(&buf, rows, 2)
	out := buf.String()

	if !strings.Contains(out, "0.25") || !strings.Contains(out, "1.0") {
		t.Errorf("expected formatted values in table:\n%s", out)
	}
	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, ">") {
			marked = append(marked, line)
		}
	}
	if len(marked) != 1 || !strings.Contains(marked[0], "1.0") {
		t.Errorf("expected only subject 2 marked, got %q", marked)
	}
}

func TestPrintCombinationsTable(t *testing.T) {
	steps, err := pipeline.Plan([]model.Combination{
		{Stat: model.StatOPS, Subject: model.SubjectPitcherTeam, Split: model.SplitVsLHH},
	})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	var buf bytes.Buffer
	PrintCombinationsTable(&buf, steps)
	out := buf.String()
	for _, want := range []string{"HitterSide=L", "PitcherTeamId", "yes"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPrintRawTable_RowCount(t *testing.T) {
	var buf bytes.Buffer
	PrintRawTable(&buf, []string{"HitterId", "PA"}, [][]string{{"1", "30"}, {"2", "12"}})
	if !strings.Contains(buf.String(), "(2 rows)") {
		t.Errorf("missing row count:\n%s", buf.String())
	}
}
