// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the qoedist command line interface.
package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hossfeld/approx-qoe-distribution/internal/logging"
)

// session is the state shared by the commands of one invocation.
type session struct {
	v      *viper.Viper
	cfg    Config
	logger *zap.Logger
}

// Root returns the qoedist command with all subcommands registered.
func Root() *cobra.Command {
	s := &session{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "qoedist",
		Short: "Approximate QoE rating distributions from MOS and the SOS parameter",
		Long: heredoc.Doc(`qoedist models the distribution of subjective ratings of a
			test condition from its mean opinion score (MOS) and the SOS
			parameter a of the application.

			The SOS hypothesis relates the standard deviation of opinion
			scores to the MOS on a rating scale [low, high]:

			    SOS² = a·(MOS-low)(high-MOS)

			qoedist estimates a from subjective ratings, and maps a MOS
			and a to a Beta distribution on the rating scale, to its
			discretization on the rating points, and to the poor-or-worse
			and good-or-better ratios.

			The rating scale and output format are read from flags,
			QOEDIST_* environment variables or the config file.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(s.v)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			s.cfg = cfg
			s.logger = logging.NewDevLogger(level)
			s.logger.Debug("loaded config",
				zap.String("command", cmd.Name()),
				zap.Float64(lowFlag, cfg.Low),
				zap.Float64(highFlag, cfg.High),
				zap.Float64(stepFlag, cfg.Step),
				zap.String(outputFlag, cfg.Output),
			)
			return nil
		},
	}

	addConfigFlags(root.PersistentFlags())
	v, err := newViper(root.PersistentFlags())
	if err != nil {
		panic(err)
	}
	s.v = v

	root.AddCommand(
		sosCmd(s),
		paramsCmd(s),
		evalCmd(s, "cdf"),
		evalCmd(s, "pdf"),
		discreteCmd(s),
		sampleCmd(s),
		systemCmd(s),
		rescaleCmd(s),
	)
	return root
}
