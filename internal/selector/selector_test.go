package selector

import (
	"errors"
	"testing"

	"github.com/pable/splitstats/internal/model"
)

func TestDeriveCriteria_Table(t *testing.T) {
	cases := []struct {
		split  model.Split
		team   bool
		side   model.Side
		column model.Column
		sub    model.Subject
	}{
		{model.SplitVsRHP, false, model.SideRight, model.ColumnPitcherSide, model.SubjectHitter},
		{model.SplitVsLHP, false, model.SideLeft, model.ColumnPitcherSide, model.SubjectHitter},
		{model.SplitVsRHH, false, model.SideRight, model.ColumnHitterSide, model.SubjectPitcher},
		{model.SplitVsLHH, false, model.SideLeft, model.ColumnHitterSide, model.SubjectPitcher},
		{model.SplitVsRHP, true, model.SideRight, model.ColumnPitcherSide, model.SubjectHitterTeam},
		{model.SplitVsLHP, true, model.SideLeft, model.ColumnPitcherSide, model.SubjectHitterTeam},
		{model.SplitVsRHH, true, model.SideRight, model.ColumnHitterSide, model.SubjectPitcherTeam},
		{model.SplitVsLHH, true, model.SideLeft, model.ColumnHitterSide, model.SubjectPitcherTeam},
	}
	for _, tc := range cases {
		got, err := DeriveCriteria(tc.split, tc.team)
		if err != nil {
			t.Fatalf("%s team=%v: unexpected error: %v", tc.split, tc.team, err)
		}
		if got.Side != tc.side || got.FilterColumn != tc.column || got.SubjectColumn != tc.sub {
			t.Errorf("%s team=%v: got %+v", tc.split, tc.team, got)
		}
		if got.IsTeam != tc.team {
			t.Errorf("%s: IsTeam=%v, want %v", tc.split, got.IsTeam, tc.team)
		}
	}
}

func TestDeriveCriteria_InvalidSplit(t *testing.T) {
	_, err := DeriveCriteria(model.Split("vs SHP"), false)
	if !errors.Is(err, model.ErrInvalidSplit) {
		t.Fatalf("expected ErrInvalidSplit, got %v", err)
	}
}

func TestForCombination_SubjectMismatch(t *testing.T) {
	_, err := ForCombination(model.Combination{
		Stat: model.StatAVG, Subject: model.SubjectPitcher, Split: model.SplitVsRHP,
	})
	if !errors.Is(err, model.ErrSubjectMismatch) {
		t.Fatalf("expected ErrSubjectMismatch, got %v", err)
	}

	crit, err := ForCombination(model.Combination{
		Stat: model.StatOPS, Subject: model.SubjectPitcherTeam, Split: model.SplitVsLHH,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if crit.SubjectColumn != model.SubjectPitcherTeam || !crit.IsTeam {
		t.Errorf("unexpected criteria %+v", crit)
	}
}
