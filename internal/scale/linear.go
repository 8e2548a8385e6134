// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Linear is a Quantitative scale that maps [Min, Max] linearly onto
// [0, 1].
type Linear struct {
	Min, Max float64

	clamp bool
}

func (s Linear) Map(x float64) float64 {
	y := (x - s.Min) / (s.Max - s.Min)
	if s.clamp {
		y = clamp(y)
	}
	return y
}

func (s Linear) Unmap(y float64) float64 {
	return s.Min + y*(s.Max-s.Min)
}

func (s *Linear) SetClamp(clamp bool) {
	s.clamp = clamp
}

// clamp clamps y to the unit interval.
func clamp(y float64) float64 {
	return math.Max(0, math.Min(1, y))
}
