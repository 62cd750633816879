package aggregator

import (
	"sort"

	"github.com/pable/splitstats/internal/model"
)

// DefaultMinPA is the plate-appearance floor below which a subject is dropped.
const DefaultMinPA = 25

// Filter returns the records whose crit.FilterColumn equals crit.Side.
func Filter(records []model.Record, crit model.Criteria) []model.Record {
	var out []model.Record
	for _, r := range records {
		if r.SideOf(crit.FilterColumn) == crit.Side {
			out = append(out, r)
		}
	}
	return out
}

// Aggregate groups records by the subject column, sums the counting stats of each
// group and drops groups whose summed PA is below minPA. The input is not modified.
func Aggregate(records []model.Record, subject model.Subject, minPA int) []model.Totals {
	// Group by subject id.
	accums := make(map[int64]*model.Counts)
	for _, r := range records {
		id := r.SubjectID(subject)
		acc := accums[id]
		if acc == nil {
			acc = &model.Counts{}
			accums[id] = acc
		}
		acc.Add(r.Counts)
	}

	// Prune small samples.
	var totals []model.Totals
	for id, acc := range accums {
		if acc.PA < minPA {
			continue
		}
		totals = append(totals, model.Totals{SubjectID: id, Counts: *acc})
	}

	// Map iteration is random; sort by id for stable output.
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].SubjectID < totals[j].SubjectID
	})
	return totals
}
