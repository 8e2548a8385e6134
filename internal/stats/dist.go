// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "golang.org/x/exp/rand"

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. Atoms have infinite density.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. The value of y must be in [0, 1].
	InvCDF(y float64) float64

	// Rand draws a random value from this distribution using
	// src. If src is nil, the global source is used.
	Rand(src rand.Source) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A DiscreteDist is a discrete statistical distribution over a finite
// set of points.
type DiscreteDist interface {
	// PMF returns the probability mass function Pr[X = x]. It is
	// zero for any x that is not a defined point.
	PMF(x float64) float64

	// CDF returns the cumulative probability Pr[X <= x].
	//
	// Note that while continuous and discrete probability
	// distributions differ in how they represent the probability
	// function, both have continuous cumulative distribution
	// functions. However, discrete distributions generally have
	// discontinuous CDFs.
	CDF(x float64) float64

	// Rand draws a random point from this distribution using
	// src. If src is nil, the global source is used.
	Rand(src rand.Source) float64

	// Step returns the spacing between adjacent points.
	Step() float64

	// Bounds returns the smallest and largest defined points.
	Bounds() (float64, float64)
}

// CDFEach returns d.CDF(xs[i]) for each i.
func CDFEach(d Dist, xs []float64) []float64 {
	return atEach(d.CDF, xs)
}

// uniform returns a uniform value in [0, 1) from src.
func uniform(src rand.Source) float64 {
	if src == nil {
		return rand.Float64()
	}
	return rand.New(src).Float64()
}
