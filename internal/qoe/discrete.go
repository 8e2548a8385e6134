// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
	"github.com/hossfeld/approx-qoe-distribution/internal/stats"
)

// Discrete is a rating distribution over the points of a discrete
// rating scale.
type Discrete struct {
	Kind         Kind
	MOS          float64
	SOSParameter float64
	Scale        scale.Rating

	grid stats.Grid
}

// NewDiscrete returns the discrete rating distribution for mos and SOS
// parameter a on the points low, low+step, ..., high of s.
//
// Each rating point k receives the mass of the continuous distribution
// between k-step/2 and k+step/2, with the outermost bins ending at the
// scale ends. The masses are renormalized to sum to 1.
func NewDiscrete(mos, a float64, s scale.Rating) (*Discrete, error) {
	d, err := NewDistribution(mos, a, s)
	if err != nil {
		return nil, err
	}
	pts, err := points(s)
	if err != nil {
		return nil, err
	}
	g, err := stats.Discretize(d.Dist(), pts)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSOSParameter,
			"mos %g, sos parameter %g: %v", mos, a, err)
	}
	return &Discrete{Kind: d.Kind, MOS: mos, SOSParameter: a, Scale: s, grid: g}, nil
}

// DiscreteArrays returns the rating points of s and their
// probabilities under the discrete rating distribution for mos and a.
func DiscreteArrays(mos, a float64, s scale.Rating) (xs, ps []float64, err error) {
	d, err := NewDiscrete(mos, a, s)
	if err != nil {
		return nil, nil, err
	}
	return d.Values(), d.Probs(), nil
}

func points(s scale.Rating) ([]float64, error) {
	pts, ok := s.Points()
	if !ok {
		return nil, errors.Wrapf(ErrInvalidScale,
			"width %g is not a whole number of steps of %g", s.Width(), s.StepSize())
	}
	return pts, nil
}

// PMF returns P(X = k). It is 0 if k is not a rating point.
func (d *Discrete) PMF(k float64) float64 {
	return d.grid.PMF(k)
}

// CDF returns P(X <= k).
func (d *Discrete) CDF(k float64) float64 {
	return d.grid.CDF(k)
}

func (d *Discrete) Rand(src rand.Source) float64 {
	return d.grid.Rand(src)
}

// Values returns the rating points.
func (d *Discrete) Values() []float64 {
	return append([]float64(nil), d.grid.Xs...)
}

// Probs returns the probability of each rating point.
func (d *Discrete) Probs() []float64 {
	return append([]float64(nil), d.grid.Ps...)
}

// Cumulative returns P(X <= k) for each rating point k.
func (d *Discrete) Cumulative() []float64 {
	return d.grid.Cumulative()
}

// Mean returns the expected rating. Because of the binning it can
// differ slightly from MOS.
func (d *Discrete) Mean() float64 {
	return d.grid.Mean()
}

func (d *Discrete) Variance() float64 {
	return d.grid.Variance()
}

// Grid returns the underlying distribution.
func (d *Discrete) Grid() stats.Grid {
	return d.grid
}
