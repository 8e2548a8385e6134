// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hossfeld/approx-qoe-distribution/internal/qoe"
	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
	"github.com/hossfeld/approx-qoe-distribution/internal/stats"
)

type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type points []point

// evalCmd returns the cdf or pdf command, which evaluates the
// continuous rating distribution at each argument.
func evalCmd(s *session, name string) *cobra.Command {
	f := qoe.CDF
	short := "Evaluate the rating CDF at the given ratings"
	if name == "pdf" {
		f = qoe.PDF
		short = "Evaluate the rating density at the given ratings"
	}

	cmd := &cobra.Command{
		Use:   name + " [X...]",
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plot, _ := cmd.Flags().GetBool(plotFlag)
			if len(args) == 0 && !plot {
				return errors.Errorf("%s needs ratings to evaluate or --%s", name, plotFlag)
			}
			xs, err := parseFloats(args)
			if err != nil {
				return err
			}
			mos, a := distArgs(cmd)
			sc := s.cfg.Scale()
			res, err := evalEach(f, xs, mos, a, sc)
			if err != nil {
				return err
			}
			d, err := qoe.NewDistribution(mos, a, sc)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), s.cfg.Output, res, func(w io.Writer) error {
				if len(res) > 0 {
					var t table
					t.add("x", name)
					for _, p := range res {
						t.add(num(p.X), num(p.Y))
					}
					if err := t.write(w); err != nil {
						return err
					}
				}
				if !plot {
					return nil
				}
				p := &stats.Plot{F: d.CDF, X: stats.Axis{Low: sc.Low, High: sc.High}, Samples: 21}
				if name == "pdf" {
					p.F = d.PDF
				}
				return p.FASCII(w)
			})
		},
	}
	distFlags(cmd)
	cmd.Flags().Bool(plotFlag, false, "draw an ASCII chart over the rating scale")
	return cmd
}

func evalEach(f func(x, mos, a float64, s scale.Rating) (float64, error), xs []float64, mos, a float64, sc scale.Rating) (points, error) {
	res := make(points, len(xs))
	for i, x := range xs {
		y, err := f(x, mos, a, sc)
		if err != nil {
			return nil, err
		}
		res[i] = point{X: x, Y: y}
	}
	return res, nil
}
