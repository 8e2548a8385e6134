// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Beta is a beta distribution with shape parameters Alpha and Beta
// whose standard [0, 1] support is linearly rescaled onto [Low, High].
// Alpha and Beta must be positive and finite.
type Beta struct {
	Alpha, Beta float64
	Low, High   float64
}

func (b Beta) unit() distuv.Beta {
	return distuv.Beta{Alpha: b.Alpha, Beta: b.Beta}
}

func (b Beta) width() float64 {
	return b.High - b.Low
}

func (b Beta) PDF(x float64) float64 {
	if x < b.Low || x > b.High {
		return 0
	}
	return b.unit().Prob((x-b.Low)/b.width()) / b.width()
}

func (b Beta) CDF(x float64) float64 {
	return b.unit().CDF((x - b.Low) / b.width())
}

func (b Beta) InvCDF(y float64) float64 {
	if y < 0 || y > 1 {
		return nan
	}
	return b.Low + b.width()*b.unit().Quantile(y)
}

func (b Beta) Rand(src rand.Source) float64 {
	u := b.unit()
	u.Src = src
	return b.Low + b.width()*u.Rand()
}

func (b Beta) Bounds() (float64, float64) {
	return b.Low, b.High
}

// Mean returns the expected value on [Low, High].
func (b Beta) Mean() float64 {
	return b.Low + b.width()*b.unit().Mean()
}

// Variance returns the variance on [Low, High].
func (b Beta) Variance() float64 {
	w := b.width()
	return w * w * b.unit().Variance()
}
