// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/hossfeld/approx-qoe-distribution/internal/qoe"
)

const (
	countFlag    = "count"
	seedFlag     = "seed"
	discreteFlag = "discrete"
)

func sampleCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw random ratings from the rating distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mos, a := distArgs(cmd)
			n, _ := cmd.Flags().GetInt(countFlag)
			seed, _ := cmd.Flags().GetUint64(seedFlag)
			discrete, _ := cmd.Flags().GetBool(discreteFlag)
			if n < 0 {
				return errors.Errorf("negative count %d", n)
			}

			var draw func(rand.Source) float64
			if discrete {
				d, err := qoe.NewDiscrete(mos, a, s.cfg.Scale())
				if err != nil {
					return err
				}
				draw = d.Rand
			} else {
				d, err := qoe.NewDistribution(mos, a, s.cfg.Scale())
				if err != nil {
					return err
				}
				draw = d.Rand
			}

			src := rand.NewSource(seed)
			xs := make([]float64, n)
			for i := range xs {
				xs[i] = draw(src)
			}
			s.logger.Debug("sampled ratings", zap.Int("n", n), zap.Uint64("seed", seed))

			return report(cmd.OutOrStdout(), s.cfg.Output, xs, func(w io.Writer) error {
				for _, x := range xs {
					if _, err := io.WriteString(w, num(x)+"\n"); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	distFlags(cmd)
	cmd.Flags().IntP(countFlag, "n", 10, "number of ratings to draw")
	cmd.Flags().Uint64(seedFlag, 1, "random seed")
	cmd.Flags().Bool(discreteFlag, false, "draw from the discrete distribution on the rating points")
	return cmd
}
