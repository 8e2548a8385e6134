// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements the continuous and discrete distributions
// used to approximate rating distributions on bounded scales.
package stats

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	ErrEmptyGrid    = errors.New("grid has no points")
	ErrGridMismatch = errors.New("grids are defined on different points")
)
