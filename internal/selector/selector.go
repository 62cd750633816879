// Package selector maps a split onto the columns used to filter and group raw records.
package selector

import (
	"fmt"

	"github.com/pable/splitstats/internal/model"
)

// DeriveCriteria returns the filter column, side value and subject column for split.
// Hitter splits (vs RHP/LHP) filter on the pitcher's hand and group hitters;
// pitcher splits (vs RHH/LHH) filter on the hitter's hand and group pitchers.
func DeriveCriteria(split model.Split, isTeam bool) (model.Criteria, error) {
	suffix := "Id"
	if isTeam {
		suffix = "Team" + suffix
	}

	c := model.Criteria{IsTeam: isTeam}
	var role string
	switch split {
	case model.SplitVsRHP:
		c.Side, c.FilterColumn, role = model.SideRight, model.ColumnPitcherSide, "Hitter"
	case model.SplitVsLHP:
		c.Side, c.FilterColumn, role = model.SideLeft, model.ColumnPitcherSide, "Hitter"
	case model.SplitVsRHH:
		c.Side, c.FilterColumn, role = model.SideRight, model.ColumnHitterSide, "Pitcher"
	case model.SplitVsLHH:
		c.Side, c.FilterColumn, role = model.SideLeft, model.ColumnHitterSide, "Pitcher"
	default:
		return model.Criteria{}, fmt.Errorf("%w: %q", model.ErrInvalidSplit, string(split))
	}
	c.SubjectColumn = model.Subject(role + suffix)
	return c, nil
}

// ForCombination derives the criteria for c and checks that the split actually
// describes c.Subject, so grouping and id extraction share one column.
func ForCombination(c model.Combination) (model.Criteria, error) {
	crit, err := DeriveCriteria(c.Split, c.Subject.IsTeam())
	if err != nil {
		return model.Criteria{}, err
	}
	if crit.SubjectColumn != c.Subject {
		return model.Criteria{}, fmt.Errorf("%w: %s %s (expected %s)",
			model.ErrSubjectMismatch, c.Subject, c.Split, crit.SubjectColumn)
	}
	return crit, nil
}
