// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import "github.com/pkg/errors"

// Errors returned by this package are wrapped with the offending
// values. Use errors.Is or errors.Cause to test for a kind.
var (
	ErrInvalidScale         = errors.New("upper bound of rating scale must be larger than lower bound")
	ErrInvalidMOS           = errors.New("MOS must be in the range [low, high]")
	ErrInvalidSOS           = errors.New("SOS must be a non-negative number")
	ErrInvalidSOSParameter  = errors.New("SOS parameter must be in the range [0, 1]")
	ErrSOSExceedsMaximum    = errors.New("SOS exceeds the maximum SOS for the given MOS")
	ErrUnsupportedInputType = errors.New("ratings must be a rectangular numeric table or a table with rating and condition columns")
	ErrOutOfRange           = errors.New("x must be in the range [low, high]")
	ErrNoInteriorConditions = errors.New("no condition has a MOS strictly inside the rating scale")
)
