// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "golang.org/x/exp/rand"

var (
	_ Dist = Delta{}
	_ Dist = TwoPoint{}
	_ Dist = Beta{}
)

// Delta is the Dirac delta function, centered at T, with total area
// 1. It is the limit of a Beta distribution whose variance goes to 0.
//
// The CDF of the Dirac delta function is the Heaviside step function,
// centered at T. Specifically, f(T) == 1.
type Delta struct {
	T float64
}

func (d Delta) PDF(x float64) float64 {
	if x == d.T {
		return inf
	}
	return 0
}

func (d Delta) CDF(x float64) float64 {
	if x >= d.T {
		return 1
	}
	return 0
}

func (d Delta) InvCDF(y float64) float64 {
	if y < 0 || y > 1 {
		return nan
	}
	return d.T
}

func (d Delta) Rand(rand.Source) float64 {
	return d.T
}

func (d Delta) Bounds() (float64, float64) {
	return d.T - 1, d.T + 1
}

// TwoPoint puts mass 1-P on Low and mass P on High. It is the limit of
// a Beta distribution on [Low, High] with mean Low+P*(High-Low) whose
// variance approaches the largest possible value, P*(1-P)*(High-Low)².
type TwoPoint struct {
	Low, High float64
	P         float64
}

func (d TwoPoint) PDF(x float64) float64 {
	switch {
	case x == d.Low && d.P < 1, x == d.High && d.P > 0:
		return inf
	}
	return 0
}

func (d TwoPoint) CDF(x float64) float64 {
	switch {
	case x < d.Low:
		return 0
	case x < d.High:
		return 1 - d.P
	}
	return 1
}

func (d TwoPoint) InvCDF(y float64) float64 {
	switch {
	case y < 0 || y > 1:
		return nan
	case y <= 1-d.P:
		return d.Low
	}
	return d.High
}

func (d TwoPoint) Rand(src rand.Source) float64 {
	if uniform(src) < d.P {
		return d.High
	}
	return d.Low
}

func (d TwoPoint) Bounds() (float64, float64) {
	return d.Low, d.High
}
