// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps values between bounded rating scales and the
// unit interval.
package scale

// Quantitative normalizes a continuous range onto [0, 1] and back.
type Quantitative interface {
	// Map normalizes x. With clamping enabled the result is
	// limited to [0, 1].
	Map(x float64) float64

	// Unmap returns the x that Map normalizes to y.
	Unmap(y float64) float64

	SetClamp(bool)
}

// QQ converts values between two Quantitative scales by way of their
// common normalized form, for example a MOS on the 5-point scale to
// the same relative position on a 0-100 scale.
type QQ struct {
	Src, Dest Quantitative
}

// Map converts x from Src to Dest.
func (q QQ) Map(x float64) float64 {
	return q.Dest.Unmap(q.Src.Map(x))
}

// Unmap converts y from Dest back to Src.
func (q QQ) Unmap(y float64) float64 {
	return q.Src.Unmap(q.Dest.Map(y))
}

// MapEach returns q.Map(xs[i]) for each i.
func (q QQ) MapEach(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = q.Map(x)
	}
	return ys
}
