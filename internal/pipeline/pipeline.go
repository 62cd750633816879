// Package pipeline turns raw plate-appearance records and a list of requested
// combinations into the sorted, rounded split report.
package pipeline

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/pable/splitstats/internal/aggregator"
	"github.com/pable/splitstats/internal/model"
	"github.com/pable/splitstats/internal/selector"
	"github.com/pable/splitstats/internal/stats"
)

// Options tunes a run.
type Options struct {
	MinPA  int
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.MinPA <= 0 {
		o.MinPA = aggregator.DefaultMinPA
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Step is a validated combination together with its selection criteria.
type Step struct {
	Combination model.Combination
	Criteria    model.Criteria
}

// Summary counts what a run produced.
type Summary struct {
	Combinations int
	Rows         int
	// ZeroDenominator is the number of (subject, combination) pairs left out
	// because the stat's denominator was zero.
	ZeroDenominator int
}

// Plan validates every combination up front. The first invalid combination
// fails the whole plan so no partial report is produced.
func Plan(combos []model.Combination) ([]Step, error) {
	steps := make([]Step, 0, len(combos))
	for i, c := range combos {
		if _, err := model.ParseStat(string(c.Stat)); err != nil {
			return nil, fmt.Errorf("combination %d (%s): %w", i+1, c, err)
		}
		crit, err := selector.ForCombination(c)
		if err != nil {
			return nil, fmt.Errorf("combination %d (%s): %w", i+1, c, err)
		}
		steps = append(steps, Step{Combination: c, Criteria: crit})
	}
	return steps, nil
}

// Run computes the report. Combinations are processed in input order; the
// returned rows are sorted by (SubjectID, Stat, Split, Subject) and rounded.
func Run(records []model.Record, combos []model.Combination, opts Options) ([]model.OutputRow, Summary, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	steps, err := Plan(combos)
	if err != nil {
		return nil, Summary{}, err
	}

	var (
		rows    []model.OutputRow
		summary Summary
	)
	for _, step := range steps {
		c := step.Combination
		filtered := aggregator.Filter(records, step.Criteria)
		totals := aggregator.Aggregate(filtered, step.Criteria.SubjectColumn, opts.MinPA)

		rated, skipped, err := stats.Annotate(c.Stat, totals)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("combination %s: %w", c, err)
		}
		for _, s := range skipped {
			log.Warn("zero denominator, subject excluded",
				zap.Int64("subject_id", s.SubjectID),
				zap.String("stat", string(c.Stat)),
				zap.String("subject", string(c.Subject)),
				zap.String("split", string(c.Split)),
			)
		}

		for _, r := range rated {
			rows = append(rows, model.OutputRow{
				SubjectID: r.SubjectID,
				Stat:      c.Stat,
				Split:     c.Split,
				Subject:   c.Subject,
				Value:     r.Value,
			})
		}
		log.Debug("combination processed",
			zap.String("combination", c.String()),
			zap.Int("filtered", len(filtered)),
			zap.Int("subjects", len(totals)),
			zap.Int("rows", len(rated)),
		)

		summary.Combinations++
		summary.Rows += len(rated)
		summary.ZeroDenominator += len(skipped)
	}

	SortRows(rows)
	for i := range rows {
		rows[i].Value = stats.Round(rows[i].Value)
	}
	return rows, summary, nil
}

// SortRows orders rows by SubjectID, then Stat, Split and Subject.
func SortRows(rows []model.OutputRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.SubjectID != b.SubjectID {
			return a.SubjectID < b.SubjectID
		}
		if a.Stat != b.Stat {
			return a.Stat < b.Stat
		}
		if a.Split != b.Split {
			return a.Split < b.Split
		}
		return a.Subject < b.Subject
	})
}
