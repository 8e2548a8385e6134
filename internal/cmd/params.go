// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hossfeld/approx-qoe-distribution/internal/qoe"
)

const (
	mosFlag      = "mos"
	sosParamFlag = "sos-param"
	sosFlag      = "sos"
)

type paramsResult struct {
	MOS          float64 `yaml:"mos"`
	SOSParameter float64 `yaml:"sos_parameter"`
	Alpha        float64 `yaml:"alpha"`
	Beta         float64 `yaml:"beta"`
	Kind         string  `yaml:"kind"`
}

func paramsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the Beta parameters for a MOS and SOS parameter or SOS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mos, _ := cmd.Flags().GetFloat64(mosFlag)
			sc := s.cfg.Scale()

			a, _ := cmd.Flags().GetFloat64(sosParamFlag)
			if cmd.Flags().Changed(sosFlag) {
				sos, _ := cmd.Flags().GetFloat64(sosFlag)
				var err error
				if a, err = qoe.ConditionSOSParameter(mos, sos, sc); err != nil {
					return err
				}
			}
			p, err := qoe.Params(mos, a, sc)
			if err != nil {
				return err
			}

			d, err := qoe.NewDistribution(mos, a, sc)
			if err != nil {
				return err
			}
			res := paramsResult{MOS: mos, SOSParameter: a, Alpha: p.Alpha, Beta: p.Beta, Kind: d.Kind.String()}
			return report(cmd.OutOrStdout(), s.cfg.Output, res, res.writeText)
		},
	}
	cmd.Flags().Float64(mosFlag, 0, "mean opinion score")
	cmd.Flags().Float64(sosParamFlag, 0, "SOS parameter a in [0, 1]")
	cmd.Flags().Float64(sosFlag, 0, "standard deviation of opinion scores")
	cmd.MarkFlagRequired(mosFlag)
	cmd.MarkFlagsOneRequired(sosParamFlag, sosFlag)
	cmd.MarkFlagsMutuallyExclusive(sosParamFlag, sosFlag)
	return cmd
}

func (r paramsResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "alpha %s\nbeta  %s\nkind  %s\n", num(r.Alpha), num(r.Beta), r.Kind)
	return err
}

// distFlags registers the flags that select a rating distribution.
func distFlags(cmd *cobra.Command) {
	cmd.Flags().Float64(mosFlag, 0, "mean opinion score")
	cmd.Flags().Float64(sosParamFlag, 0, "SOS parameter a in [0, 1]")
	cmd.MarkFlagRequired(mosFlag)
	cmd.MarkFlagRequired(sosParamFlag)
}

func distArgs(cmd *cobra.Command) (mos, a float64) {
	mos, _ = cmd.Flags().GetFloat64(mosFlag)
	a, _ = cmd.Flags().GetFloat64(sosParamFlag)
	return mos, a
}
