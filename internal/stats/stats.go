// Package stats derives AVG, OBP, SLG and OPS from aggregated counting stats.
//
// All arithmetic is exact decimal: ratios are divided to DivisionPlaces digits and
// reports are rounded half away from zero to Places digits.
package stats

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pable/splitstats/internal/model"
)

const (
	// Places is the number of fractional digits kept in a report value.
	Places = 3
	// DivisionPlaces is the precision of intermediate ratios.
	DivisionPlaces = 16
)

// ErrZeroDenominator is returned when a stat's denominator sums to zero.
var ErrZeroDenominator = errors.New("zero denominator")

// Compute returns stat for the given counting totals.
// OPS always recomputes OBP and SLG from the counts.
func Compute(stat model.Stat, c model.Counts) (decimal.Decimal, error) {
	switch stat {
	case model.StatAVG:
		return ratio(c.H, c.AB)
	case model.StatOBP:
		return onBase(c)
	case model.StatSLG:
		return ratio(c.TB, c.AB)
	case model.StatOPS:
		obp, err := onBase(c)
		if err != nil {
			return decimal.Zero, err
		}
		slg, err := ratio(c.TB, c.AB)
		if err != nil {
			return decimal.Zero, err
		}
		return obp.Add(slg), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %q", model.ErrUnknownStat, string(stat))
}

// onBase is (H + BB + HBP) / (AB + BB + HBP + SF).
func onBase(c model.Counts) (decimal.Decimal, error) {
	return ratio(c.H+c.BB+c.HBP, c.AB+c.BB+c.HBP+c.SF)
}

func ratio(num, denom int) (decimal.Decimal, error) {
	if denom == 0 {
		return decimal.Zero, ErrZeroDenominator
	}
	return decimal.NewFromInt(int64(num)).DivRound(decimal.NewFromInt(int64(denom)), DivisionPlaces), nil
}

// Round rounds v half away from zero to Places digits.
func Round(v decimal.Decimal) decimal.Decimal {
	return v.Round(Places)
}

// Rated is an aggregated subject annotated with one computed stat.
type Rated struct {
	model.Totals
	Stat  model.Stat
	Value decimal.Decimal
}

// Annotate computes stat for every row. Rows whose denominator is zero are
// returned separately in skipped instead of carrying a value.
func Annotate(stat model.Stat, totals []model.Totals) (rated []Rated, skipped []model.Totals, err error) {
	for _, t := range totals {
		v, err := Compute(stat, t.Counts)
		if errors.Is(err, ErrZeroDenominator) {
			skipped = append(skipped, t)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		rated = append(rated, Rated{Totals: t, Stat: stat, Value: v})
	}
	return rated, skipped, nil
}
