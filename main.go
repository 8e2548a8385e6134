// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qoedist approximates the distribution of subjective quality ratings
// from the mean opinion score (MOS) and the SOS parameter.
//
// Usage:
//
//	qoedist sos ratings.csv
//	qoedist params --mos 3 --sos-param 0.25
//	qoedist discrete --mos 3.4 --sos-param 0.2 [--plot]
//	qoedist cdf|pdf --mos 3 --sos-param 0.25 X...
//	qoedist sample --mos 3 --sos-param 0.25 -n 100 [--discrete]
//	qoedist system mos.csv --sos-param 0.2 [--iqx alpha,beta,gamma]
//	qoedist rescale --to-low 0 --to-high 100 MOS...
//
// The SOS parameter a of an application relates the standard deviation
// of opinion scores (SOS) to the MOS on a rating scale [low, high] by
// SOS² = a·(MOS-low)(high-MOS). Given a and a MOS, the ratings are
// modeled by a Beta distribution on the rating scale with that mean
// and variance.
//
// Example
//
// The file ratings.csv holds the ratings of two test conditions by
// two users, one condition per row:
//
//	2,4
//	1,5
//
// The sos command summarizes each condition and fits a:
//
//	$ qoedist sos ratings.csv
//	condition  n  mos  sos
//	0          2    3    1
//	1          2    3    2
//
//	sos parameter a = 0.625
//	$
//
// The discrete command then gives the probability of each rating for a
// condition with MOS 3:
//
//	$ qoedist discrete --mos 3 --sos-param 0.625
//
// The rating scale (--low, --high, --step), the output format
// (--output text|yaml) and the log level can also be set with QOEDIST_*
// environment variables or in $XDG_CONFIG_HOME/qoedist/config.yaml.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/hossfeld/approx-qoe-distribution/internal/cmd"
	"github.com/hossfeld/approx-qoe-distribution/internal/logging"
)

func main() {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		logging.NewDevInfoLogger().Fatal("qoedist", zap.Error(err))
	}
}
