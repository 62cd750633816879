package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/splitstats/internal/model"
)

// sample is H=10, AB=40, TB=16, BB=5, HBP=1, SF=1.
var sample = model.Counts{PA: 47, AB: 40, H: 10, TB: 16, BB: 5, HBP: 1, SF: 1}

func TestCompute_Formulas(t *testing.T) {
	cases := []struct {
		stat    model.Stat
		exact   string
		rounded string
	}{
		{model.StatAVG, "0.25", "0.25"},
		{model.StatOBP, "0.3404255319148936", "0.34"},
		{model.StatSLG, "0.4", "0.4"},
		{model.StatOPS, "0.7404255319148936", "0.74"},
	}
	for _, tc := range cases {
		t.Run(string(tc.stat), func(t *testing.T) {
			got, err := Compute(tc.stat, sample)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.exact)), "exact value %s", got)
			assert.Equal(t, tc.rounded, Round(got).String())
		})
	}
}

func TestCompute_OPSIsOBPPlusSLG(t *testing.T) {
	obp, err := Compute(model.StatOBP, sample)
	require.NoError(t, err)
	slg, err := Compute(model.StatSLG, sample)
	require.NoError(t, err)
	ops, err := Compute(model.StatOPS, sample)
	require.NoError(t, err)
	assert.True(t, ops.Equal(obp.Add(slg)))
}

func TestCompute_UnknownStat(t *testing.T) {
	_, err := Compute(model.Stat("WAR"), sample)
	require.ErrorIs(t, err, model.ErrUnknownStat)
}

func TestCompute_ZeroDenominator(t *testing.T) {
	zeroAB := model.Counts{PA: 30, BB: 25, HBP: 5}
	for _, st := range []model.Stat{model.StatAVG, model.StatSLG, model.StatOPS} {
		_, err := Compute(st, zeroAB)
		assert.ErrorIs(t, err, ErrZeroDenominator, "stat %s", st)
	}
	// OBP still has a denominator from walks and HBP.
	obp, err := Compute(model.StatOBP, zeroAB)
	require.NoError(t, err)
	assert.Equal(t, "1", obp.String())

	_, err = Compute(model.StatOBP, model.Counts{PA: 30})
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

// TestRound_HalfAwayFromZero pins the rounding mode: 0.2345 rounds up, where
// half-to-even would give 0.234.
func TestRound_HalfAwayFromZero(t *testing.T) {
	v, err := Compute(model.StatAVG, model.Counts{PA: 2000, AB: 2000, H: 469})
	require.NoError(t, err)
	assert.Equal(t, "0.2345", v.String())
	assert.Equal(t, "0.235", Round(v).String())

	v, err = Compute(model.StatAVG, model.Counts{PA: 2000, AB: 2000, H: 1})
	require.NoError(t, err)
	assert.Equal(t, "0.001", Round(v).String())
}

func TestAnnotate_SkipsZeroDenominator(t *testing.T) {
	totals := []model.Totals{
		{SubjectID: 1, Counts: sample},
		{SubjectID: 2, Counts: model.Counts{PA: 30, BB: 30}},
	}
	rated, skipped, err := Annotate(model.StatAVG, totals)
	require.NoError(t, err)
	require.Len(t, rated, 1)
	require.Len(t, skipped, 1)
	assert.Equal(t, int64(1), rated[0].SubjectID)
	assert.Equal(t, model.StatAVG, rated[0].Stat)
	assert.Equal(t, int64(2), skipped[0].SubjectID)

	_, _, err = Annotate(model.Stat("ERA"), totals)
	assert.ErrorIs(t, err, model.ErrUnknownStat)
}
