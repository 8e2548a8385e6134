// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import (
	"math"

	"github.com/pkg/errors"

	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
)

// Validate checks mos and the SOS parameter a against the rating scale
// s. The scale is checked first, then the MOS, then a.
func Validate(mos, a float64, s scale.Rating) error {
	if err := validateScale(s); err != nil {
		return err
	}
	if err := validateMOS(mos, s); err != nil {
		return err
	}
	if !(0 <= a && a <= 1) {
		return errors.Wrapf(ErrInvalidSOSParameter, "sos parameter %g", a)
	}
	return nil
}

func validateScale(s scale.Rating) error {
	if !s.Valid() || math.IsInf(s.Low, 0) || math.IsInf(s.High, 0) || s.Step < 0 {
		return errors.Wrapf(ErrInvalidScale, "scale [%g, %g] step %g", s.Low, s.High, s.Step)
	}
	return nil
}

func validateMOS(mos float64, s scale.Rating) error {
	if !s.Contains(mos) {
		return errors.Wrapf(ErrInvalidMOS, "mos %g on scale [%g, %g]", mos, s.Low, s.High)
	}
	return nil
}

func validateX(x float64, s scale.Rating) error {
	if !s.Contains(x) {
		return errors.Wrapf(ErrOutOfRange, "x %g on scale [%g, %g]", x, s.Low, s.High)
	}
	return nil
}
