// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hossfeld/approx-qoe-distribution/internal/qoe"
)

const layoutFlag = "layout"

type sosResult struct {
	Conditions   []qoe.Condition `yaml:"conditions"`
	SOSParameter float64         `yaml:"sos_parameter"`
}

func sosCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sos FILE",
		Short: "Estimate the SOS parameter from subjective ratings",
		Long: heredoc.Doc(`sos reads subjective ratings from the CSV file FILE ("-" for
			stdin), summarizes each test condition by its MOS and SOS and
			fits the SOS parameter a of the SOS hypothesis.

			Layouts:
			  matrix   one row per condition, one column per user, no header
			  long     header naming a "condition" and a "rating" column
			  mos-sos  one row per condition with its MOS and SOS
			  auto     matrix if the first row is numeric, long otherwise

			Empty and NaN cells are missing ratings.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := cmd.Flags().GetString(layoutFlag)
			if err != nil {
				return err
			}
			records, err := readRecords(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := estimate(records, layout, s)
			if err != nil {
				return err
			}
			s.logger.Info("estimated sos parameter",
				zap.Int("conditions", len(res.Conditions)),
				zap.Float64("a", res.SOSParameter),
			)
			return report(cmd.OutOrStdout(), s.cfg.Output, res, res.writeText)
		},
	}
	cmd.Flags().String(layoutFlag, "auto", "input layout: auto, matrix, long or mos-sos")
	return cmd
}

func estimate(records [][]string, layout string, s *session) (*sosResult, error) {
	var r qoe.Ratings
	var err error
	switch layout {
	case "auto":
		r, err = qoe.ParseTable(records)
	case "matrix":
		r, err = qoe.ParseMatrix(records)
	case "long":
		r, err = qoe.ParseLongForm(records)
	case "mos-sos":
		return estimateMOSSOS(records, s)
	default:
		return nil, errors.Errorf("unknown layout %q", layout)
	}
	if err != nil {
		return nil, err
	}

	conds, err := r.Summarize()
	if err != nil {
		return nil, err
	}
	a, err := qoe.SOSParameterForConditions(conds, s.cfg.Scale())
	if err != nil {
		return nil, err
	}
	return &sosResult{Conditions: conds, SOSParameter: a}, nil
}

func estimateMOSSOS(records [][]string, s *session) (*sosResult, error) {
	mos, sos, err := qoe.ParseMOSSOS(records)
	if err != nil {
		return nil, err
	}
	a, err := qoe.SOSParameterForMOSSOS(mos, sos, s.cfg.Scale())
	if err != nil {
		return nil, err
	}
	conds := make([]qoe.Condition, len(mos))
	for i := range mos {
		conds[i] = qoe.Condition{ID: strconv.Itoa(i), MOS: mos[i], SOS: sos[i]}
	}
	return &sosResult{Conditions: conds, SOSParameter: a}, nil
}

func (r *sosResult) writeText(w io.Writer) error {
	var t table
	t.add("condition", "n", "mos", "sos")
	for _, c := range r.Conditions {
		n := ""
		if c.N > 0 {
			n = strconv.Itoa(c.N)
		}
		t.add(c.ID, n, num(c.MOS), num(c.SOS))
	}
	if err := t.write(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\nsos parameter a = "+num(r.SOSParameter)+"\n")
	return err
}
