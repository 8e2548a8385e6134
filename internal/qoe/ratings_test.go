// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
)

func TestRectangularRatings_Summarize(t *testing.T) {
	r, err := NewRectangularRatings([][]float64{
		{2, 4},
		{1, 5},
		{3, math.NaN()},
	})
	require.NoError(t, err)
	conds, err := r.Summarize()
	require.NoError(t, err)
	require.Len(t, conds, 3)

	assert.Equal(t, Condition{ID: "0", N: 2, MOS: 3, SOS: 1}, conds[0])
	assert.Equal(t, Condition{ID: "1", N: 2, MOS: 3, SOS: 2}, conds[1])
	assert.Equal(t, Condition{ID: "2", N: 1, MOS: 3, SOS: 0}, conds[2])
}

func TestRectangularRatings_allMissing(t *testing.T) {
	r, err := NewRectangularRatings([][]float64{{math.NaN(), math.NaN()}})
	require.NoError(t, err)
	_, err = r.Summarize()
	assert.ErrorIs(t, err, ErrUnsupportedInputType)
}

func TestNewRectangularRatings_ragged(t *testing.T) {
	_, err := NewRectangularRatings([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrUnsupportedInputType)

	_, err = NewRectangularRatings(nil)
	assert.ErrorIs(t, err, ErrUnsupportedInputType)
}

func TestLongFormRatings_Summarize(t *testing.T) {
	r := LongFormRatings{
		{Condition: "b", Rating: 1},
		{Condition: "a", Rating: 2},
		{Condition: "b", Rating: 5},
		{Condition: "a", Rating: 4},
	}
	conds, err := r.Summarize()
	require.NoError(t, err)
	require.Len(t, conds, 2)
	assert.Equal(t, Condition{ID: "b", N: 2, MOS: 3, SOS: 2}, conds[0])
	assert.Equal(t, Condition{ID: "a", N: 2, MOS: 3, SOS: 1}, conds[1])
}

func TestSOSParameter_bothForms(t *testing.T) {
	// Conditions (3, 1) and (3, 2) give a = 0.25·(1/16 + 1/4) / (2·(1/4)²).
	const want = 0.625

	rect, err := NewRectangularRatings([][]float64{{2, 4}, {1, 5}})
	require.NoError(t, err)
	a, err := SOSParameter(rect, scale.FivePoint)
	require.NoError(t, err)
	assert.InDelta(t, want, a, 1e-12)

	long := LongFormRatings{
		{Condition: "c1", Rating: 2},
		{Condition: "c1", Rating: 4},
		{Condition: "c2", Rating: 1},
		{Condition: "c2", Rating: 5},
	}
	a, err = SOSParameter(long, scale.FivePoint)
	require.NoError(t, err)
	assert.InDelta(t, want, a, 1e-12)

	_, err = SOSParameter(nil, scale.FivePoint)
	assert.ErrorIs(t, err, ErrUnsupportedInputType)
}

func TestParseTable_matrix(t *testing.T) {
	r, err := ParseTable([][]string{
		{"2", "4", ""},
		{"1", "5", "NaN"},
	})
	require.NoError(t, err)
	rect, ok := r.(RectangularRatings)
	require.True(t, ok)
	rows, cols := rect.Y.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	conds, err := r.Summarize()
	require.NoError(t, err)
	assert.Equal(t, 2, conds[0].N)
}

func TestParseTable_longForm(t *testing.T) {
	r, err := ParseTable([][]string{
		{"user", "Condition", "Rating"},
		{"u1", "c1", "2"},
		{"u2", "c1", "4"},
		{"u1", "c2", " 3 "},
	})
	require.NoError(t, err)
	long, ok := r.(LongFormRatings)
	require.True(t, ok)
	assert.Equal(t, LongFormRatings{
		{Condition: "c1", Rating: 2},
		{Condition: "c1", Rating: 4},
		{Condition: "c2", Rating: 3},
	}, long)
}

func TestParseTable_err(t *testing.T) {
	cases := map[string][][]string{
		"empty":      nil,
		"no columns": {{"user", "score"}, {"u1", "3"}},
		"bad rating": {{"condition", "rating"}, {"c1", "good"}},
		"short":      {{"condition", "rating"}, {"c1"}},
		"bad matrix": {{"1", "2"}, {"3", "x"}},
	}
	for name, records := range cases {
		_, err := ParseTable(records)
		assert.ErrorIs(t, err, ErrUnsupportedInputType, name)
	}
}

func TestParseMOSSOS(t *testing.T) {
	mos, sos, err := ParseMOSSOS([][]string{
		{"condition", "SOS", "MOS"},
		{"a", "1", "3"},
		{"b", "0.5", "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, mos)
	assert.Equal(t, []float64{1, 0.5}, sos)

	mos, sos, err = ParseMOSSOS([][]string{{"3", "1"}, {"4", "0.8"}})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, mos)
	assert.Equal(t, []float64{1, 0.8}, sos)

	_, _, err = ParseMOSSOS([][]string{{"mean", "std"}, {"3", "1"}})
	assert.ErrorIs(t, err, ErrUnsupportedInputType)

	_, _, err = ParseMOSSOS([][]string{{"3"}})
	assert.ErrorIs(t, err, ErrUnsupportedInputType)
}

func TestSOSParameter_allExtreme(t *testing.T) {
	r, err := NewRectangularRatings([][]float64{
		{1, 5, 5, 5, 5},
		{1, 1, 5, 5, 5},
		{1, 1, 1, 5, 5},
	})
	require.NoError(t, err)
	a, err := SOSParameter(r, scale.FivePoint)
	require.NoError(t, err)
	assert.LessOrEqual(t, a, 1.0)
	assert.InDelta(t, 1, a, 1e-12)
}

func TestSummarize_extremeConditions(t *testing.T) {
	s := scale.FivePoint
	for n := 1; n <= 40; n++ {
		rows := make([][]float64, 0, n+1)
		for k := 0; k <= n; k++ {
			row := make([]float64, n)
			for i := range row {
				if i < k {
					row[i] = s.Low
				} else {
					row[i] = s.High
				}
			}
			rows = append(rows, row)
		}
		r, err := NewRectangularRatings(rows)
		require.NoError(t, err)
		conds, err := r.Summarize()
		require.NoError(t, err)

		for _, c := range conds {
			_, err := ParamsForMOSSOS(c.MOS, c.SOS, s)
			require.NoError(t, err, "n %d: %+v", n, c)
			a, err := ConditionSOSParameter(c.MOS, c.SOS, s)
			require.NoError(t, err, "n %d: %+v", n, c)
			assert.LessOrEqual(t, a, 1.0)
			if !s.OnBoundary(c.MOS) {
				assert.InDelta(t, 1, a, 1e-12, "n %d: %+v", n, c)
			}
			d, err := NewDiscrete(c.MOS, a, s)
			require.NoError(t, err, "n %d: %+v", n, c)
			assert.InDelta(t, 1, floats.Sum(d.Probs()), 1e-9)
		}

		if n > 1 {
			a, err := SOSParameterForConditions(conds, s)
			require.NoError(t, err, "n %d", n)
			assert.LessOrEqual(t, a, 1.0)
			assert.InDelta(t, 1, a, 1e-12, "n %d", n)
		}
	}
}

func TestSOSParameterForConditions(t *testing.T) {
	a, err := SOSParameterForConditions([]Condition{
		{ID: "x", N: 2, MOS: 3, SOS: 1},
		{ID: "y", N: 2, MOS: 1, SOS: 0},
	}, scale.FivePoint)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, a, 1e-12)

	_, err = SOSParameterForConditions(nil, scale.FivePoint)
	assert.ErrorIs(t, err, ErrUnsupportedInputType)
}
