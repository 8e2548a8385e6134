// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/hossfeld/approx-qoe-distribution/internal/qoe"
	"github.com/hossfeld/approx-qoe-distribution/internal/stats"
)

const plotFlag = "plot"

type ratingProb struct {
	Rating float64 `yaml:"rating"`
	P      float64 `yaml:"p"`
	CDF    float64 `yaml:"cdf"`
}

type discreteResult struct {
	Kind         string       `yaml:"kind"`
	MOS          float64      `yaml:"mos"`
	SOSParameter float64      `yaml:"sos_parameter"`
	Ratings      []ratingProb `yaml:"ratings"`
	Mean         float64      `yaml:"mean"`
	SOS          float64      `yaml:"sos"`
	PoW          float64      `yaml:"pow"`
	GoB          float64      `yaml:"gob"`

	plot bool
	d    *qoe.Discrete
}

func newDiscreteResult(d *qoe.Discrete, plot bool) *discreteResult {
	res := &discreteResult{
		Kind:         d.Kind.String(),
		MOS:          d.MOS,
		SOSParameter: d.SOSParameter,
		Mean:         d.Mean(),
		SOS:          sqrt(d.Variance()),
		PoW:          d.PoW(),
		GoB:          d.GoB(),
		plot:         plot,
		d:            d,
	}
	cum := d.Cumulative()
	for i, x := range d.Values() {
		res.Ratings = append(res.Ratings, ratingProb{Rating: x, P: d.Probs()[i], CDF: cum[i]})
	}
	return res
}

func sqrt(x float64) float64 {
	return math.Sqrt(math.Max(0, x))
}

func discreteCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discrete",
		Short: "Print the rating distribution on the points of the scale",
		Long: `discrete prints the probability of each rating point together with
the poor-or-worse (two lowest ratings) and good-or-better (two highest
ratings) ratios.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mos, a := distArgs(cmd)
			d, err := qoe.NewDiscrete(mos, a, s.cfg.Scale())
			if err != nil {
				return err
			}
			plot, _ := cmd.Flags().GetBool(plotFlag)
			res := newDiscreteResult(d, plot)
			return report(cmd.OutOrStdout(), s.cfg.Output, res, res.writeText)
		},
	}
	distFlags(cmd)
	cmd.Flags().Bool(plotFlag, false, "draw an ASCII bar chart of the distribution")
	return cmd
}

func (r *discreteResult) writeText(w io.Writer) error {
	var t table
	t.add("rating", "p", "cdf")
	for _, rp := range r.Ratings {
		t.add(num(rp.Rating), num(rp.P), num(rp.CDF))
	}
	if err := t.write(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nkind %s  mean %s  sos %s  PoW %s  GoB %s\n",
		r.Kind, num(r.Mean), num(r.SOS), num(r.PoW), num(r.GoB))
	if err != nil || !r.plot {
		return err
	}

	fmt.Fprintln(w)
	p := &stats.Plot{F: r.d.PMF, Xs: r.d.Values(), Y: stats.Axis{Low: 0, High: 1}}
	return p.FASCII(w)
}
