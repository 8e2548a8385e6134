// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qoe approximates the distribution of subjective quality
// ratings from the mean opinion score (MOS) and the SOS parameter.
//
// The SOS hypothesis relates the standard deviation of opinion scores
// (SOS) of a test condition to its MOS on a rating scale [low, high]:
//
//	SOS² = a·(MOS-low)(high-MOS)
//
// where the SOS parameter a in [0, 1] characterizes an application or
// a user study. Given a and a MOS, the ratings are modeled by a Beta
// distribution rescaled onto the scale with exactly that mean and
// variance. The package derives a from raw ratings or from MOS/SOS
// pairs, builds the continuous distribution and discretizes it onto
// the rating points of the scale.
package qoe
