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
)

const (
	toLowFlag  = "to-low"
	toHighFlag = "to-high"
	clampFlag  = "clamp"
)

func rescaleCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescale MOS...",
		Short: "Map MOS values from the configured scale onto another scale",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloats(args)
			if err != nil {
				return err
			}
			lo, _ := cmd.Flags().GetFloat64(toLowFlag)
			hi, _ := cmd.Flags().GetFloat64(toHighFlag)
			clamp, _ := cmd.Flags().GetBool(clampFlag)
			res, err := rescale(xs, s.cfg.Scale(), scale.Rating{Low: lo, High: hi}, clamp)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), s.cfg.Output, res, func(w io.Writer) error {
				var t table
				t.add("from", "to")
				for _, p := range res {
					t.add(num(p.X), num(p.Y))
				}
				return t.write(w)
			})
		},
	}
	cmd.Flags().Float64(toLowFlag, 0, "lowest rating of the target scale")
	cmd.Flags().Float64(toHighFlag, 100, "highest rating of the target scale")
	cmd.Flags().Bool(clampFlag, false, "clamp values outside the source scale instead of rejecting them")
	return cmd
}

func rescale(xs []float64, from, to scale.Rating, clamp bool) (points, error) {
	if !to.Valid() {
		return nil, errors.Wrapf(qoe.ErrInvalidScale, "target scale [%g, %g]", to.Low, to.High)
	}
	src := from.Linear()
	src.SetClamp(clamp)
	for _, x := range xs {
		if !clamp && !from.Contains(x) {
			return nil, errors.Wrapf(qoe.ErrInvalidMOS, "mos %g on scale [%g, %g]", x, from.Low, from.High)
		}
	}
	q := scale.QQ{Src: src, Dest: to.Linear()}
	res := make(points, len(xs))
	for i, y := range q.MapEach(xs) {
		res[i] = point{X: xs[i], Y: y}
	}
	return res, nil
}
