// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import "github.com/hossfeld/approx-qoe-distribution/internal/scale"

// PoW returns the poor-or-worse ratio, the probability of one of the
// two lowest ratings (1 or 2 on a 5-point scale).
func (d *Discrete) PoW() float64 {
	ps := d.grid.Ps
	p := 0.0
	for i := 0; i < 2 && i < len(ps); i++ {
		p += ps[i]
	}
	return p
}

// GoB returns the good-or-better ratio, the probability of one of the
// two highest ratings (4 or 5 on a 5-point scale).
func (d *Discrete) GoB() float64 {
	ps := d.grid.Ps
	p := 0.0
	for i := len(ps) - 1; i >= 0 && i >= len(ps)-2; i-- {
		p += ps[i]
	}
	return p
}

// PoorOrWorse returns the poor-or-worse ratio of the discrete rating
// distribution for mos and SOS parameter a on s.
func PoorOrWorse(mos, a float64, s scale.Rating) (float64, error) {
	d, err := NewDiscrete(mos, a, s)
	if err != nil {
		return 0, err
	}
	return d.PoW(), nil
}

// GoodOrBetter returns the good-or-better ratio of the discrete rating
// distribution for mos and SOS parameter a on s.
func GoodOrBetter(mos, a float64, s scale.Rating) (float64, error) {
	d, err := NewDiscrete(mos, a, s)
	if err != nil {
		return 0, err
	}
	return d.GoB(), nil
}
