// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
)

type Plot struct {
	// F is the function to plot.
	F func(x float64) float64

	// X and Y are the X and Y axis configuration.
	X, Y Axis

	// Xs, if non-nil, are the exact points at which to sample F,
	// for example the points of a discrete rating scale.
	Xs []float64

	// Samples is the number of samples to use on the X axis. If
	// this is zero, a default value is used.
	Samples int
}

type Axis struct {
	// Low and High specify the lower and upper bounds on this
	// Axis, respectively. If these are both 0, the Y axis is
	// autoscaled. The X axis must always be set unless Xs is.
	Low, High float64
}

func (p *Plot) sample(defSamples int) (xs []float64, ys []float64) {
	if p.Xs != nil {
		xs = p.Xs
	} else {
		if p.Samples != 0 {
			defSamples = p.Samples
		}
		xs = Linspace(p.X.Low, p.X.High, defSamples)
	}
	return xs, atEach(p.F, xs)
}

// AutoScale sets autoscaled axes according to the function being
// plotted and returns p. Non-finite values, such as the infinite
// density of an atom, are ignored.
func (p *Plot) AutoScale() *Plot {
	if p.Xs != nil && p.X.Low == 0 && p.X.High == 0 {
		p.X.Low, p.X.High = p.Xs[0], p.Xs[len(p.Xs)-1]
	}

	if p.Y.Low == 0 && p.Y.High == 0 {
		_, ys := p.sample(500)
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, y := range ys {
			if math.IsInf(y, 0) || math.IsNaN(y) {
				continue
			}
			lo, hi = math.Min(lo, y), math.Max(hi, y)
		}
		if lo > hi {
			lo, hi = 0, 1
		}
		p.Y.Low, p.Y.High = math.Min(lo, 0), hi
		if p.Y.Low == p.Y.High {
			p.Y.High += 1
		}
	}

	return p
}

// FASCII prints a bar chart of p.F to w, one row per sample.
func (p *Plot) FASCII(w io.Writer) error {
	p.AutoScale()

	const width = 60
	xs, ys := p.sample(30)

	lowY, highY := p.Y.Low, p.Y.High
	for i, y := range ys {
		n := int(width * (math.Min(y, highY) - lowY) / (highY - lowY))
		if n < 0 || math.IsNaN(y) {
			n = 0
		}
		label := fmt.Sprintf("%7.5g", xs[i])
		_, err := fmt.Fprintf(w, "%11s | %s %.4g\n", label, strings.Repeat("•", n), y)
		if err != nil {
			return err
		}
	}
	return nil
}

// FTable prints a table of "X Y" coordinates for p.F to w.
func (p *Plot) FTable(w io.Writer) error {
	p.AutoScale()

	xs, ys := p.sample(100)
	for i, y := range ys {
		if _, err := fmt.Fprintln(w, xs[i], y); err != nil {
			return err
		}
	}
	return nil
}
