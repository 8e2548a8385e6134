// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

var _ DiscreteDist = Grid{}

// A Grid is a discrete distribution that puts mass Ps[i] on point
// Xs[i]. Xs must be sorted in increasing order and Ps must sum to 1.
type Grid struct {
	Xs, Ps []float64
}

// Discretize returns the Grid on points xs that approximates the
// continuous distribution d. Each point collects the mass of d between
// the midpoints to its neighbors. The outermost bins extend to the ends
// of the support, so an atom at xs[0] or beyond xs[len(xs)-1] is kept.
// The resulting masses are renormalized to sum to exactly 1.
func Discretize(d Dist, xs []float64) (Grid, error) {
	if len(xs) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	edges := make([]float64, len(xs)+1)
	edges[0] = math.Inf(-1)
	for i := 1; i < len(xs); i++ {
		edges[i] = (xs[i-1] + xs[i]) / 2
	}
	edges[len(xs)] = math.Inf(1)

	ps := diff(CDFEach(d, edges))
	if !renormalize(ps) {
		return Grid{}, ErrEmptyGrid
	}
	return Grid{Xs: append([]float64(nil), xs...), Ps: ps}, nil
}

// Mixture returns the equally weighted mixture of gs. All grids must
// be defined on the same points.
func Mixture(gs ...Grid) (Grid, error) {
	if len(gs) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	xs := gs[0].Xs
	ps := make([]float64, len(xs))
	for _, g := range gs {
		if !floats.Equal(g.Xs, xs) {
			return Grid{}, ErrGridMismatch
		}
		floats.Add(ps, g.Ps)
	}
	renormalize(ps)
	return Grid{Xs: append([]float64(nil), xs...), Ps: ps}, nil
}

// index returns the index of the point equal to x, or -1.
func (g Grid) index(x float64) int {
	i := sort.SearchFloat64s(g.Xs, x)
	if i < len(g.Xs) && g.Xs[i] == x {
		return i
	}
	return -1
}

func (g Grid) PMF(x float64) float64 {
	if i := g.index(x); i >= 0 {
		return g.Ps[i]
	}
	return 0
}

func (g Grid) CDF(x float64) float64 {
	p := 0.0
	for i, xi := range g.Xs {
		if xi > x {
			break
		}
		p += g.Ps[i]
	}
	return math.Min(p, 1)
}

// Cumulative returns the CDF at each point of g.
func (g Grid) Cumulative() []float64 {
	return floats.CumSum(make([]float64, len(g.Ps)), g.Ps)
}

func (g Grid) Rand(src rand.Source) float64 {
	u := uniform(src)
	for i, c := range g.Cumulative() {
		if u < c {
			return g.Xs[i]
		}
	}
	return g.Xs[len(g.Xs)-1]
}

func (g Grid) Step() float64 {
	if len(g.Xs) < 2 {
		return 1
	}
	return g.Xs[1] - g.Xs[0]
}

func (g Grid) Bounds() (float64, float64) {
	return g.Xs[0], g.Xs[len(g.Xs)-1]
}

// Mean returns the expected value of g.
func (g Grid) Mean() float64 {
	return floats.Dot(g.Xs, g.Ps)
}

// Variance returns the variance of g.
func (g Grid) Variance() float64 {
	m := g.Mean()
	v := 0.0
	for i, x := range g.Xs {
		v += g.Ps[i] * (x - m) * (x - m)
	}
	return v
}
