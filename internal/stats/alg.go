// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Miscellaneous helper algorithms

import "gonum.org/v1/gonum/floats"

// atEach returns f(x) for each x in xs.
func atEach(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}

// diff returns the successive differences ys[i+1]-ys[i].
func diff(ys []float64) []float64 {
	if len(ys) < 2 {
		return nil
	}
	res := make([]float64, len(ys)-1)
	for i := range res {
		res[i] = ys[i+1] - ys[i]
	}
	return res
}

// renormalize clips negative round-off in ps to zero and scales ps in
// place so that it sums to 1. It reports false if ps has no mass.
func renormalize(ps []float64) bool {
	for i, p := range ps {
		if p < 0 {
			ps[i] = 0
		}
	}
	sum := floats.Sum(ps)
	if !(sum > 0) {
		return false
	}
	floats.Scale(1/sum, ps)
	return true
}
