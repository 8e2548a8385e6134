// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import (
	"math"

	"github.com/pkg/errors"

	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
)

// BetaParams are the shape parameters of a Beta distribution on the
// unit interval.
//
// Infinite parameters denote the zero-variance limit, a point mass at
// the mean. Zero parameters denote the maximum-variance limit, where
// all mass sits on the two ends of the scale.
type BetaParams struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
}

// Mean returns Alpha/(Alpha+Beta), the normalized MOS.
func (p BetaParams) Mean() float64 {
	return p.Alpha / (p.Alpha + p.Beta)
}

// Degenerate reports whether p is the zero-variance limit.
func (p BetaParams) Degenerate() bool {
	return math.IsInf(p.Alpha, 1) || math.IsInf(p.Beta, 1)
}

// Params returns the shape parameters of the Beta distribution with
// mean mos and variance a·(mos-low)(high-mos) on s.
//
// With μ = (mos-low)/(high-low) and ν = α+β = (1-a)/a, the parameters
// are α = μν and β = (1-μ)ν. For a = 0 both are +Inf.
func Params(mos, a float64, s scale.Rating) (BetaParams, error) {
	if err := Validate(mos, a, s); err != nil {
		return BetaParams{}, err
	}
	mu := s.Map(mos)
	if variance, limit := a*mu*(1-mu), mu*(1-mu); variance > limit {
		return BetaParams{}, errors.Wrapf(ErrSOSExceedsMaximum,
			"normalized variance %g, maximum %g at mos %g", variance, limit, mos)
	}
	if a == 0 {
		return BetaParams{Alpha: math.Inf(1), Beta: math.Inf(1)}, nil
	}
	nu := (1 - a) / a
	return BetaParams{Alpha: mu * nu, Beta: (1 - mu) * nu}, nil
}

// ParamsForMOSSOS returns the shape parameters of the Beta
// distribution with mean mos and standard deviation sos on s. It is
// Params with the SOS parameter of the single condition (mos, sos).
func ParamsForMOSSOS(mos, sos float64, s scale.Rating) (BetaParams, error) {
	a, err := ConditionSOSParameter(mos, sos, s)
	if err != nil {
		return BetaParams{}, err
	}
	return Params(mos, a, s)
}
