// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Rating is a bounded rating scale. Ratings lie in [Low, High] and, on
// a discrete scale, are spaced Step apart starting at Low.
//
// A zero Step means 1.
type Rating struct {
	Low, High float64
	Step      float64
}

// FivePoint is the 5-point absolute category rating scale {1, ..., 5}.
var FivePoint = Rating{Low: 1, High: 5, Step: 1}

// Valid reports whether High > Low. NaN bounds are never valid.
func (r Rating) Valid() bool {
	return r.High > r.Low
}

// Width returns High - Low.
func (r Rating) Width() float64 {
	return r.High - r.Low
}

// Contains reports whether x lies in the closed interval [Low, High].
func (r Rating) Contains(x float64) bool {
	return r.Low <= x && x <= r.High
}

// OnBoundary reports whether x equals Low or High.
func (r Rating) OnBoundary(x float64) bool {
	return x == r.Low || x == r.High
}

// Map normalizes x onto [0, 1] without clamping.
func (r Rating) Map(x float64) float64 {
	return (x - r.Low) / (r.High - r.Low)
}

// Unmap is the inverse of Map.
func (r Rating) Unmap(y float64) float64 {
	return r.Low + y*(r.High-r.Low)
}

// Linear returns a Quantitative scale over r's bounds.
func (r Rating) Linear() *Linear {
	return &Linear{Min: r.Low, Max: r.High}
}

// StepSize returns the spacing between adjacent rating points.
func (r Rating) StepSize() float64 {
	if r.Step <= 0 {
		return 1
	}
	return r.Step
}

// Points returns the discrete rating points Low, Low+Step, ..., High.
// It returns false if the scale width is not a whole number of steps.
func (r Rating) Points() ([]float64, bool) {
	step := r.StepSize()
	n := r.Width() / step
	k := math.Round(n)
	if k < 1 || math.Abs(n-k) > 1e-9*math.Max(1, n) {
		return nil, false
	}
	pts := make([]float64, int(k)+1)
	for i := range pts {
		pts[i] = r.Low + float64(i)*step
	}
	pts[len(pts)-1] = r.High
	return pts, true
}
