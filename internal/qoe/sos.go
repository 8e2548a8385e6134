// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
)

// tolerance is the relative rounding slack allowed when comparing an
// SOS or SOS parameter against its maximum. Ratings that are all low
// or high reach the maximum exactly, but the computed SOS may exceed
// it by a few ulps.
const tolerance = 1e-12

// MaxSOS returns the largest possible standard deviation of ratings
// on s whose mean is mos, sqrt((mos-low)(high-mos)). It is reached
// when every rating is either low or high.
func MaxSOS(mos float64, s scale.Rating) float64 {
	return math.Sqrt(math.Max(0, (mos-s.Low)*(s.High-mos)))
}

// ExpectedSOS returns the SOS that the SOS hypothesis predicts for mos
// and SOS parameter a, sqrt(a)*MaxSOS(mos).
func ExpectedSOS(mos, a float64, s scale.Rating) (float64, error) {
	if err := Validate(mos, a, s); err != nil {
		return 0, err
	}
	return math.Sqrt(a) * MaxSOS(mos, s), nil
}

// ConditionSOSParameter returns the SOS parameter of a single test
// condition, (sos/MaxSOS(mos))². A condition on a scale boundary has
// no dispersion and yields 0. An SOS within rounding of the maximum
// yields exactly 1.
func ConditionSOSParameter(mos, sos float64, s scale.Rating) (float64, error) {
	if err := checkMOSSOS(mos, sos, s); err != nil {
		return 0, err
	}
	if s.OnBoundary(mos) {
		return 0, nil
	}
	r := sos / MaxSOS(mos, s)
	return math.Min(1, r*r), nil
}

// SOSParameterForMOSSOS derives the SOS parameter a from the MOS and
// SOS values of a set of test conditions.
//
// The SOS hypothesis states SOS² = a·(mos-low)(high-mos). The returned
// a is the least-squares slope through the origin of the normalized
// variances (sos/(high-low))² against z(1-z), z = (mos-low)/(high-low):
//
//	a = Σ z(1-z)·(sos/(high-low))² / Σ (z(1-z))²
//
// Conditions whose MOS is exactly low or high have z(1-z) = 0 and are
// skipped. Individual conditions may exceed the maximum SOS, but a
// fitted a above 1 is an error. A fit within rounding of 1 is 1.
func SOSParameterForMOSSOS(mos, sos []float64, s scale.Rating) (float64, error) {
	if err := validateScale(s); err != nil {
		return 0, err
	}
	if len(mos) == 0 {
		return 0, errors.Wrap(ErrUnsupportedInputType, "no conditions")
	}
	if len(mos) != len(sos) {
		return 0, errors.Wrapf(ErrUnsupportedInputType,
			"%d MOS values but %d SOS values", len(mos), len(sos))
	}

	w := s.Width()
	xs := make([]float64, 0, len(mos))
	ys := make([]float64, 0, len(mos))
	for i, m := range mos {
		if err := validateMOS(m, s); err != nil {
			return 0, errors.Wrapf(err, "condition %d", i)
		}
		if !(sos[i] >= 0) {
			return 0, errors.Wrapf(ErrInvalidSOS, "condition %d: sos %g", i, sos[i])
		}
		if s.OnBoundary(m) {
			continue
		}
		z := s.Map(m)
		sd := sos[i] / w
		xs = append(xs, z*(1-z))
		ys = append(ys, sd*sd)
	}
	if len(xs) == 0 {
		return 0, errors.Wrapf(ErrNoInteriorConditions, "%d conditions", len(mos))
	}

	a := floats.Dot(xs, ys) / floats.Dot(xs, xs)
	if a > 1 && a <= 1+tolerance {
		a = 1
	}
	if a > 1 {
		return 0, errors.Wrapf(ErrSOSExceedsMaximum, "fitted sos parameter %g", a)
	}
	return a, nil
}

func checkMOSSOS(mos, sos float64, s scale.Rating) error {
	if err := validateScale(s); err != nil {
		return err
	}
	if err := validateMOS(mos, s); err != nil {
		return err
	}
	if !(sos >= 0) {
		return errors.Wrapf(ErrInvalidSOS, "sos %g", sos)
	}
	if sos > MaxSOS(mos, s)+tolerance*s.Width() {
		return errors.Wrapf(ErrSOSExceedsMaximum, "sos %g, maximum %g at mos %g",
			sos, MaxSOS(mos, s), mos)
	}
	return nil
}
