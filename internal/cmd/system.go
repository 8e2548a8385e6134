// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hossfeld/approx-qoe-distribution/internal/qoe"
)

const iqxFlag = "iqx"

func systemCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system FILE",
		Short: "Compute the rating distribution of a system from per-user MOS values",
		Long: heredoc.Doc(`system reads one value per line from the first column of the CSV
			file FILE ("-" for stdin) and prints the average of the
			discrete rating distributions of these MOS values, all with
			the same SOS parameter.

			With --iqx alpha,beta,gamma the values are QoS measurements
			and are first mapped to MOS values by the IQX hypothesis,
			MOS = alpha·exp(-beta·QoS) + gamma.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _ := cmd.Flags().GetFloat64(sosParamFlag)
			records, err := readRecords(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			col := make([]string, 0, len(records))
			for _, rec := range records {
				if len(rec) > 0 && rec[0] != "" {
					col = append(col, rec[0])
				}
			}
			xs, err := parseFloats(col)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed(iqxFlag) {
				coef, _ := cmd.Flags().GetFloat64Slice(iqxFlag)
				if len(coef) != 3 {
					return errors.Errorf("--%s needs 3 coefficients, got %d", iqxFlag, len(coef))
				}
				f := qoe.IQX{Alpha: coef[0], Beta: coef[1], Gamma: coef[2]}
				xs = f.MOSEach(xs)
			}

			d, err := qoe.SystemDistribution(xs, a, s.cfg.Scale())
			if err != nil {
				return err
			}
			s.logger.Info("system distribution",
				zap.Int("samples", len(xs)),
				zap.Float64("mos", d.MOS),
			)
			res := newDiscreteResult(d, false)
			return report(cmd.OutOrStdout(), s.cfg.Output, res, res.writeText)
		},
	}
	cmd.Flags().Float64(sosParamFlag, 0, "SOS parameter a in [0, 1]")
	cmd.Flags().Float64Slice(iqxFlag, nil, "IQX coefficients alpha,beta,gamma mapping QoS to MOS")
	cmd.MarkFlagRequired(sosParamFlag)
	return cmd
}
