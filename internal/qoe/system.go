// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
	"github.com/hossfeld/approx-qoe-distribution/internal/stats"
)

// IQX is the exponential interdependency of QoE and QoS,
// MOS = Alpha·exp(-Beta·qos) + Gamma.
type IQX struct {
	Alpha, Beta, Gamma float64
}

// MOS maps a QoS measurement to a MOS.
func (f IQX) MOS(qos float64) float64 {
	return f.Alpha*math.Exp(-f.Beta*qos) + f.Gamma
}

// MOSEach returns f.MOS(qos[i]) for each i.
func (f IQX) MOSEach(qos []float64) []float64 {
	res := make([]float64, len(qos))
	for i, x := range qos {
		res[i] = f.MOS(x)
	}
	return res
}

// SystemDistribution returns the rating distribution of a system whose
// users experience the given MOS values, for example MOS values
// obtained by mapping QoS measurements. It is the average of the
// discrete rating distributions of the individual MOS values, all with
// SOS parameter a. The returned distribution has KindMixture and its
// MOS field is the mean of mos.
func SystemDistribution(mos []float64, a float64, s scale.Rating) (*Discrete, error) {
	if len(mos) == 0 {
		return nil, errors.Wrap(ErrInvalidMOS, "no MOS values")
	}
	grids := make([]stats.Grid, len(mos))
	for i, m := range mos {
		d, err := NewDiscrete(m, a, s)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		grids[i] = d.grid
	}
	g, err := stats.Mixture(grids...)
	if err != nil {
		return nil, err
	}
	return &Discrete{
		Kind:         KindMixture,
		MOS:          stat.Mean(mos, nil),
		SOSParameter: a,
		Scale:        s,
		grid:         g,
	}, nil
}
