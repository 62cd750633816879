package aggregator

import (
	"testing"

	"github.com/pable/splitstats/internal/model"
)

// IDs for test players and teams.
const (
	hitterA  int64 = 1
	hitterB  int64 = 2
	pitcherX int64 = 101
	teamH    int64 = 10
	teamP    int64 = 20
)

// makeRecord creates a plate-appearance row for hitterID vs a right-handed pitcher.
func makeRecord(hitterID int64, pa, ab, h int) model.Record {
	return model.Record{
		PitcherSide:   model.SideRight,
		HitterSide:    model.SideLeft,
		HitterID:      hitterID,
		HitterTeamID:  teamH,
		PitcherID:     pitcherX,
		PitcherTeamID: teamP,
		Counts:        model.Counts{PA: pa, AB: ab, H: h},
	}
}

// TestAggregate_ThresholdBoundary: 25 PA survives, 24 PA is dropped.
func TestAggregate_ThresholdBoundary(t *testing.T) {
	records := []model.Record{
		makeRecord(hitterA, 20, 18, 5),
		makeRecord(hitterA, 5, 4, 1),
		makeRecord(hitterB, 20, 18, 5),
		makeRecord(hitterB, 4, 4, 1),
	}

	totals := Aggregate(records, model.SubjectHitter, DefaultMinPA)
	if len(totals) != 1 {
		t.Fatalf("expected 1 surviving subject, got %d", len(totals))
	}
	if totals[0].SubjectID != hitterA {
		t.Errorf("expected hitter %d to survive, got %d", hitterA, totals[0].SubjectID)
	}
	if totals[0].PA != 25 || totals[0].AB != 22 || totals[0].H != 6 {
		t.Errorf("sums mismatch: %+v", totals[0].Counts)
	}
}

func TestAggregate_SumsAllFields(t *testing.T) {
	r1 := makeRecord(hitterA, 30, 25, 7)
	r1.TB, r1.BB, r1.HBP, r1.SF = 12, 3, 1, 1
	r2 := makeRecord(hitterA, 20, 15, 3)
	r2.TB, r2.BB, r2.HBP, r2.SF = 4, 4, 0, 1

	totals := Aggregate([]model.Record{r1, r2}, model.SubjectHitter, DefaultMinPA)
	if len(totals) != 1 {
		t.Fatalf("expected 1 subject, got %d", len(totals))
	}
	want := model.Counts{PA: 50, AB: 40, H: 10, TB: 16, BB: 7, HBP: 1, SF: 2}
	if totals[0].Counts != want {
		t.Errorf("got %+v, want %+v", totals[0].Counts, want)
	}
}

// TestAggregate_GroupsByTeam: two hitters on the same team collapse to one team row.
func TestAggregate_GroupsByTeam(t *testing.T) {
	records := []model.Record{
		makeRecord(hitterA, 15, 12, 3),
		makeRecord(hitterB, 15, 13, 4),
	}

	players := Aggregate(records, model.SubjectHitter, DefaultMinPA)
	if len(players) != 0 {
		t.Errorf("expected players below threshold to be dropped, got %d", len(players))
	}

	teams := Aggregate(records, model.SubjectHitterTeam, DefaultMinPA)
	if len(teams) != 1 || teams[0].SubjectID != teamH || teams[0].PA != 30 {
		t.Fatalf("unexpected team totals: %+v", teams)
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	records := []model.Record{makeRecord(hitterA, 30, 25, 7), makeRecord(hitterA, 30, 25, 7)}
	Aggregate(records, model.SubjectHitter, DefaultMinPA)
	if records[0].PA != 30 || records[1].PA != 30 {
		t.Errorf("input records were modified: %+v", records)
	}
}

func TestAggregate_SortedBySubject(t *testing.T) {
	var records []model.Record
	for _, id := range []int64{9, 3, 7, 1} {
		records = append(records, makeRecord(id, 30, 25, 5))
	}
	totals := Aggregate(records, model.SubjectHitter, DefaultMinPA)
	for i := 1; i < len(totals); i++ {
		if totals[i-1].SubjectID >= totals[i].SubjectID {
			t.Fatalf("totals not sorted: %+v", totals)
		}
	}
}

func TestFilter_BySide(t *testing.T) {
	right := makeRecord(hitterA, 1, 1, 0)
	left := makeRecord(hitterA, 1, 1, 0)
	left.PitcherSide = model.SideLeft

	got := Filter([]model.Record{right, left}, model.Criteria{
		FilterColumn: model.ColumnPitcherSide, Side: model.SideLeft,
	})
	if len(got) != 1 || got[0].PitcherSide != model.SideLeft {
		t.Errorf("unexpected filter result: %+v", got)
	}

	// Every test record is a left-handed hitter.
	got = Filter([]model.Record{right, left}, model.Criteria{
		FilterColumn: model.ColumnHitterSide, Side: model.SideRight,
	})
	if len(got) != 0 {
		t.Errorf("expected no right-handed hitters, got %d", len(got))
	}
}
