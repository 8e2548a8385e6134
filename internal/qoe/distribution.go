// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
	"github.com/hossfeld/approx-qoe-distribution/internal/stats"
)

// Kind identifies the shape of a rating distribution.
type Kind int

const (
	// KindBeta is a Beta distribution rescaled onto the scale.
	KindBeta Kind = iota

	// KindPointMass puts all mass on the MOS. It is used when the
	// SOS parameter is 0 or too small to spread the ratings, or the
	// MOS is on a scale boundary.
	KindPointMass

	// KindEndpoints puts all mass on the two scale ends. It is used
	// when the SOS parameter is 1.
	KindEndpoints

	// KindMixture is an average of several discrete distributions.
	KindMixture
)

var kindNames = [...]string{"beta", "point-mass", "endpoints", "mixture"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Distribution is the continuous approximation of the ratings of a
// test condition with the given MOS and SOS parameter.
type Distribution struct {
	Kind         Kind
	MOS          float64
	SOSParameter float64
	Scale        scale.Rating
	Params       BetaParams

	dist stats.Dist
}

// Beyond these concentrations α+β, the Beta distribution is replaced by
// its limit: a point mass at the MOS above maxConcentration, the two
// scale ends at zero. Up to maxConcentration the incomplete beta
// function stays finite.
const maxConcentration = 1e12

// NewDistribution returns the continuous rating distribution for mos
// and SOS parameter a on s.
func NewDistribution(mos, a float64, s scale.Rating) (*Distribution, error) {
	p, err := Params(mos, a, s)
	if err != nil {
		return nil, err
	}
	d := &Distribution{MOS: mos, SOSParameter: a, Scale: s, Params: p}
	nu := p.Alpha + p.Beta
	switch {
	case p.Degenerate() || s.OnBoundary(mos) || nu > maxConcentration:
		d.Kind = KindPointMass
		d.dist = stats.Delta{T: mos}
	case nu == 0:
		d.Kind = KindEndpoints
		d.dist = stats.TwoPoint{Low: s.Low, High: s.High, P: s.Map(mos)}
	default:
		d.Kind = KindBeta
		b := stats.Beta{Alpha: p.Alpha, Beta: p.Beta, Low: s.Low, High: s.High}
		lim := limit(mos, nu, s)
		if !(p.Alpha > 0 && p.Beta > 0) || !isProb(b.CDF(mos)) {
			// Shape parameters out of the numeric range of the Beta
			// functions.
			d.Kind, d.dist = limitKind(nu), lim
			break
		}
		d.dist = guarded{Dist: b, limit: lim}
	}
	return d, nil
}

// limit returns the distribution the Beta family approaches for
// concentration nu: two scale ends for small nu, a point mass at the
// MOS for large nu.
func limit(mos, nu float64, s scale.Rating) stats.Dist {
	if nu < 1 {
		return stats.TwoPoint{Low: s.Low, High: s.High, P: s.Map(mos)}
	}
	return stats.Delta{T: mos}
}

func limitKind(nu float64) Kind {
	if nu < 1 {
		return KindEndpoints
	}
	return KindPointMass
}

func isProb(y float64) bool {
	return 0 <= y && y <= 1
}

// guarded is a Beta distribution whose CDF and density fall back to
// its limit where the incomplete beta function does not converge.
type guarded struct {
	stats.Dist
	limit stats.Dist
}

func (g guarded) CDF(x float64) float64 {
	if y := g.Dist.CDF(x); isProb(y) {
		return y
	}
	return g.limit.CDF(x)
}

func (g guarded) PDF(x float64) float64 {
	if y := g.Dist.PDF(x); !math.IsNaN(y) {
		return y
	}
	return g.limit.PDF(x)
}

// CDF returns P(X <= x).
func (d *Distribution) CDF(x float64) float64 {
	return d.dist.CDF(x)
}

// PDF returns the density at x. Atoms have infinite density.
func (d *Distribution) PDF(x float64) float64 {
	return d.dist.PDF(x)
}

// Quantile returns the smallest x with CDF(x) >= p.
func (d *Distribution) Quantile(p float64) float64 {
	return d.dist.InvCDF(p)
}

// Rand draws a rating from d using src, or the global source if src
// is nil.
func (d *Distribution) Rand(src rand.Source) float64 {
	return d.dist.Rand(src)
}

func (d *Distribution) Mean() float64 {
	return d.MOS
}

// Variance returns a·(mos-low)(high-mos).
func (d *Distribution) Variance() float64 {
	return d.SOSParameter * (d.MOS - d.Scale.Low) * (d.Scale.High - d.MOS)
}

func (d *Distribution) Bounds() (float64, float64) {
	return d.Scale.Low, d.Scale.High
}

// Dist returns the underlying distribution.
func (d *Distribution) Dist() stats.Dist {
	return d.dist
}

// CDF returns P(X <= x) for the rating distribution with mos and SOS
// parameter a on s. x must lie on the scale.
func CDF(x, mos, a float64, s scale.Rating) (float64, error) {
	d, err := NewDistribution(mos, a, s)
	if err != nil {
		return 0, err
	}
	if err := validateX(x, s); err != nil {
		return 0, err
	}
	return d.CDF(x), nil
}

// PDF returns the density at x of the rating distribution with mos and
// SOS parameter a on s. x must lie on the scale.
func PDF(x, mos, a float64, s scale.Rating) (float64, error) {
	d, err := NewDistribution(mos, a, s)
	if err != nil {
		return 0, err
	}
	if err := validateX(x, s); err != nil {
		return 0, err
	}
	return d.PDF(x), nil
}
