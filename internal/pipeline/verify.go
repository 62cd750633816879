package pipeline

import (
	"fmt"

	"github.com/pable/splitstats/internal/aggregator"
	"github.com/pable/splitstats/internal/model"
)

// TotalsSource computes split totals independently of the in-memory aggregator.
type TotalsSource interface {
	SplitTotals(crit model.Criteria, minPA int) ([]model.Totals, error)
}

// Mismatch describes one disagreement found by Verify.
type Mismatch struct {
	Combination model.Combination
	SubjectID   int64
	Want, Got   *model.Counts // nil when the subject is missing on that side
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s subject %d: aggregator=%s source=%s",
		m.Combination, m.SubjectID, fmtCounts(m.Want), fmtCounts(m.Got))
}

func fmtCounts(c *model.Counts) string {
	if c == nil {
		return "missing"
	}
	return fmt.Sprintf("%+v", *c)
}

// Verify recomputes each step's aggregation through src and reports every
// subject whose totals differ from the in-memory aggregator.
func Verify(records []model.Record, steps []Step, minPA int, src TotalsSource) ([]Mismatch, error) {
	if minPA <= 0 {
		minPA = aggregator.DefaultMinPA
	}
	var out []Mismatch
	for _, step := range steps {
		want := aggregator.Aggregate(aggregator.Filter(records, step.Criteria), step.Criteria.SubjectColumn, minPA)
		got, err := src.SplitTotals(step.Criteria, minPA)
		if err != nil {
			return nil, fmt.Errorf("verify %s: %w", step.Combination, err)
		}

		gotByID := make(map[int64]model.Counts, len(got))
		for _, g := range got {
			gotByID[g.SubjectID] = g.Counts
		}
		for _, w := range want {
			w := w // per-iteration copy; module targets go1.21 loop semantics
			g, ok := gotByID[w.SubjectID]
			delete(gotByID, w.SubjectID)
			switch {
			case !ok:
				out = append(out, Mismatch{Combination: step.Combination, SubjectID: w.SubjectID, Want: &w.Counts})
			case g != w.Counts:
				out = append(out, Mismatch{Combination: step.Combination, SubjectID: w.SubjectID, Want: &w.Counts, Got: &g})
			}
		}
		for id, g := range gotByID {
			g := g // per-iteration copy; module targets go1.21 loop semantics
			out = append(out, Mismatch{Combination: step.Combination, SubjectID: id, Got: &g})
		}
	}
	return out, nil
}
