// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
)

func TestParams_symmetric(t *testing.T) {
	p, err := Params(3, 0.25, scale.FivePoint)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, p.Alpha, 1e-12)
	assert.InDelta(t, 1.5, p.Beta, 1e-12)
	assert.InDelta(t, 0.5, p.Mean(), 1e-12)
}

func TestParams_interior(t *testing.T) {
	s := scale.FivePoint
	for _, mos := range []float64{1.1, 2, 3.3, 4.9} {
		for _, a := range []float64{0.01, 0.2, 0.5, 0.99} {
			p, err := Params(mos, a, s)
			require.NoError(t, err)
			assert.True(t, p.Alpha > 0 && p.Beta > 0, "mos %g a %g: %+v", mos, a, p)
			assert.InDelta(t, mos, s.Unmap(p.Mean()), 1e-9, "mos %g a %g", mos, a)
		}
	}
}

func TestParams_limits(t *testing.T) {
	p, err := Params(3, 0, scale.FivePoint)
	require.NoError(t, err)
	assert.True(t, p.Degenerate())

	p, err = Params(3, 1, scale.FivePoint)
	require.NoError(t, err)
	assert.Equal(t, BetaParams{Alpha: 0, Beta: 0}, p)
}

func TestParams_err(t *testing.T) {
	_, err := Params(6, 0.25, scale.FivePoint)
	assert.ErrorIs(t, err, ErrInvalidMOS)

	_, err = Params(3, 1.5, scale.FivePoint)
	assert.ErrorIs(t, err, ErrInvalidSOSParameter)

	_, err = Params(3, -0.1, scale.FivePoint)
	assert.ErrorIs(t, err, ErrInvalidSOSParameter)

	_, err = Params(3, 0.25, scale.Rating{Low: 5, High: 1})
	assert.ErrorIs(t, err, ErrInvalidScale)

	// The scale is checked before the MOS.
	_, err = Params(6, 0.25, scale.Rating{Low: 5, High: 1})
	assert.ErrorIs(t, err, ErrInvalidScale)
}

func TestParamsForMOSSOS(t *testing.T) {
	p, err := ParamsForMOSSOS(3, 1, scale.FivePoint)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, p.Alpha, 1e-12)
	assert.InDelta(t, 1.5, p.Beta, 1e-12)

	// Matches Params with the SOS parameter of the condition.
	a, err := ConditionSOSParameter(2, 0.8, scale.FivePoint)
	require.NoError(t, err)
	want, err := Params(2, a, scale.FivePoint)
	require.NoError(t, err)
	p, err = ParamsForMOSSOS(2, 0.8, scale.FivePoint)
	require.NoError(t, err)
	assert.InDelta(t, want.Alpha, p.Alpha, 1e-9)
	assert.InDelta(t, want.Beta, p.Beta, 1e-9)

	p, err = ParamsForMOSSOS(3, 0, scale.FivePoint)
	require.NoError(t, err)
	assert.True(t, p.Degenerate())

	_, err = ParamsForMOSSOS(3, 2.1, scale.FivePoint)
	assert.ErrorIs(t, err, ErrSOSExceedsMaximum)
}

func TestNewDistribution_kinds(t *testing.T) {
	cases := []struct {
		mos, a float64
		want   Kind
	}{
		{3, 0.25, KindBeta},
		{3, 0, KindPointMass},
		{1, 0.3, KindPointMass},
		{5, 0.3, KindPointMass},
		{2, 1, KindEndpoints},
		{3, 1e-200, KindPointMass},
		{3, 1e-15, KindPointMass},
	}
	for _, c := range cases {
		d, err := NewDistribution(c.mos, c.a, scale.FivePoint)
		require.NoError(t, err)
		assert.Equal(t, c.want, d.Kind, "mos %g a %g", c.mos, c.a)
	}
}

func TestNewDistribution_extremeSOSParameter(t *testing.T) {
	s := scale.FivePoint
	for _, a := range []float64{1e-300, 1e-200, 1e-15, 1 - 1e-12} {
		for _, mos := range []float64{s.Low + 1e-12, 3, s.High - 1e-12} {
			d, err := NewDistribution(mos, a, s)
			require.NoError(t, err, "mos %g a %g", mos, a)
			assert.Equal(t, 0.0, d.CDF(s.Low), "mos %g a %g", mos, a)
			assert.Equal(t, 1.0, d.CDF(s.High), "mos %g a %g", mos, a)
			for x := s.Low + 0.5; x < s.High; x++ {
				y := d.CDF(x)
				assert.True(t, y >= 0 && y <= 1, "mos %g a %g: cdf(%g) = %g", mos, a, x, y)
			}

			dd, err := NewDiscrete(mos, a, s)
			require.NoError(t, err, "mos %g a %g", mos, a)
			assert.InDelta(t, 1, floats.Sum(dd.Probs()), 1e-9, "mos %g a %g", mos, a)
		}
	}

	y, err := CDF(3.2, 3, 1e-200, s)
	require.NoError(t, err)
	assert.Equal(t, 1.0, y)
}

func TestDistribution_CDF(t *testing.T) {
	s := scale.FivePoint
	for _, mos := range []float64{1.5, 3, 4.2} {
		for _, a := range []float64{0.1, 0.25, 0.6} {
			d, err := NewDistribution(mos, a, s)
			require.NoError(t, err)
			assert.Equal(t, 0.0, d.CDF(s.Low))
			assert.Equal(t, 1.0, d.CDF(s.High))
			prev := 0.0
			for x := s.Low; x <= s.High; x += 0.25 {
				y := d.CDF(x)
				assert.True(t, y >= prev, "CDF decreasing at %g", x)
				prev = y
			}
		}
	}
}

func TestDistribution_moments(t *testing.T) {
	d, err := NewDistribution(2, 0.3, scale.FivePoint)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d.Mean())
	assert.InDelta(t, 0.3*1*3, d.Variance(), 1e-12)

	lo, hi := d.Bounds()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 5.0, hi)
}

func TestDistribution_Quantile(t *testing.T) {
	d, err := NewDistribution(3, 0.25, scale.FivePoint)
	require.NoError(t, err)
	assert.InDelta(t, 3, d.Quantile(0.5), 1e-9)
	assert.InDelta(t, 0.9, d.CDF(d.Quantile(0.9)), 1e-9)
}

func TestDistribution_Rand(t *testing.T) {
	d, err := NewDistribution(3, 0.25, scale.FivePoint)
	require.NoError(t, err)
	src := rand.NewSource(1)
	const n = 10000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		x := d.Rand(src)
		require.True(t, 1 <= x && x <= 5)
		sum += x
		sumSq += x * x
	}
	mean := sum / n
	assert.InDelta(t, 3, mean, 0.05)
	assert.InDelta(t, 1, math.Sqrt(sumSq/n-mean*mean), 0.05)
}

func TestDistribution_endpoints(t *testing.T) {
	d, err := NewDistribution(2, 1, scale.FivePoint)
	require.NoError(t, err)
	assert.Equal(t, 0.75, d.CDF(3))
	assert.True(t, math.IsInf(d.PDF(1), 1))
	assert.Equal(t, 0.0, d.PDF(3))
	assert.InDelta(t, 3, d.Variance(), 1e-12)
}

func TestCDF(t *testing.T) {
	y, err := CDF(3, 3, 0.25, scale.FivePoint)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, y, 1e-12)

	y, err = CDF(2.9, 3, 0, scale.FivePoint)
	require.NoError(t, err)
	assert.Equal(t, 0.0, y)

	y, err = CDF(3, 3, 0, scale.FivePoint)
	require.NoError(t, err)
	assert.Equal(t, 1.0, y)

	_, err = CDF(6, 3, 0.25, scale.FivePoint)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = CDF(3, 6, 0.25, scale.FivePoint)
	assert.ErrorIs(t, err, ErrInvalidMOS)
}

func TestPDF(t *testing.T) {
	// Beta(1.5, 1.5) has density 4/π at 1/2, stretched over a width of 4.
	y, err := PDF(3, 3, 0.25, scale.FivePoint)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Pi, y, 1e-9)

	y, err = PDF(1.5, 3, 0.25, scale.FivePoint)
	require.NoError(t, err)
	assert.True(t, y > 0)

	_, err = PDF(0, 3, 0.25, scale.FivePoint)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "beta", KindBeta.String())
	assert.Equal(t, "mixture", KindMixture.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
