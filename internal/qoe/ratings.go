// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qoe

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
)

// Condition summarizes the ratings of one test condition.
type Condition struct {
	ID  string  `yaml:"id"`
	N   int     `yaml:"n"`
	MOS float64 `yaml:"mos"`
	SOS float64 `yaml:"sos"`
}

// Ratings is a set of subjective ratings that can be reduced to one
// Condition per test condition. It is implemented by
// RectangularRatings and LongFormRatings.
//
// SOS is always the population standard deviation (divide by n), so
// on-scale ratings never exceed MaxSOS.
type Ratings interface {
	Summarize() ([]Condition, error)
}

// RectangularRatings holds a conditions × users table: Y.At(i, j) is
// the rating of user j for condition i. NaN entries are missing.
type RectangularRatings struct {
	Y mat.Matrix
}

// NewRectangularRatings returns the RectangularRatings for rows, which
// must all have the same non-zero length.
func NewRectangularRatings(rows [][]float64) (RectangularRatings, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return RectangularRatings{}, errors.Wrap(ErrUnsupportedInputType, "empty ratings table")
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return RectangularRatings{}, errors.Wrapf(ErrUnsupportedInputType,
				"row %d has %d ratings, want %d", i, len(row), c)
		}
		data = append(data, row...)
	}
	return RectangularRatings{Y: mat.NewDense(len(rows), c, data)}, nil
}

func (r RectangularRatings) Summarize() ([]Condition, error) {
	if r.Y == nil {
		return nil, errors.Wrap(ErrUnsupportedInputType, "nil ratings matrix")
	}
	rows, _ := r.Y.Dims()
	conds := make([]Condition, 0, rows)
	var row []float64
	for i := 0; i < rows; i++ {
		row = mat.Row(row, i, r.Y)
		c, err := summarize(strconv.Itoa(i), row)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	return conds, nil
}

// Observation is a single rating of a condition.
type Observation struct {
	Condition string
	Rating    float64
}

// LongFormRatings holds one Observation per rating. Conditions are
// summarized in order of first appearance; NaN ratings are missing.
type LongFormRatings []Observation

func (r LongFormRatings) Summarize() ([]Condition, error) {
	if len(r) == 0 {
		return nil, errors.Wrap(ErrUnsupportedInputType, "no observations")
	}
	var order []string
	byCond := make(map[string][]float64)
	for _, o := range r {
		if _, ok := byCond[o.Condition]; !ok {
			order = append(order, o.Condition)
		}
		byCond[o.Condition] = append(byCond[o.Condition], o.Rating)
	}
	conds := make([]Condition, 0, len(order))
	for _, id := range order {
		c, err := summarize(id, byCond[id])
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	return conds, nil
}

// summarize reduces the non-missing values of xs to a Condition.
func summarize(id string, xs []float64) (Condition, error) {
	vals := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			vals = append(vals, x)
		}
	}
	if len(vals) == 0 {
		return Condition{}, errors.Wrapf(ErrUnsupportedInputType, "condition %s has no ratings", id)
	}
	mean, variance := stat.PopMeanVariance(vals, nil)
	return Condition{
		ID:  id,
		N:   len(vals),
		MOS: mean,
		SOS: math.Sqrt(math.Max(0, variance)),
	}, nil
}

// SOSParameter derives the SOS parameter a from raw ratings on s by
// summarizing each condition and fitting SOSParameterForMOSSOS.
func SOSParameter(r Ratings, s scale.Rating) (float64, error) {
	if r == nil {
		return 0, errors.Wrap(ErrUnsupportedInputType, "nil ratings")
	}
	conds, err := r.Summarize()
	if err != nil {
		return 0, err
	}
	return SOSParameterForConditions(conds, s)
}

// SOSParameterForConditions fits the SOS parameter to summarized
// conditions.
func SOSParameterForConditions(conds []Condition, s scale.Rating) (float64, error) {
	mos := make([]float64, len(conds))
	sos := make([]float64, len(conds))
	for i, c := range conds {
		mos[i], sos[i] = c.MOS, c.SOS
	}
	return SOSParameterForMOSSOS(mos, sos, s)
}

// ParseTable converts a table of text records into Ratings. If every
// cell of the first record is numeric (or empty), the table is read as
// RectangularRatings. Otherwise the first record is a header that must
// name a "rating" and a "condition" column, and the table is read as
// LongFormRatings.
func ParseTable(records [][]string) (Ratings, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(ErrUnsupportedInputType, "empty table")
	}
	if _, err := parseRow(records[0]); err == nil {
		return ParseMatrix(records)
	}
	return ParseLongForm(records)
}

// ParseMatrix reads records as a headerless conditions × users table.
// Empty cells are missing ratings.
func ParseMatrix(records [][]string) (RectangularRatings, error) {
	rows := make([][]float64, len(records))
	for i, rec := range records {
		row, err := parseRow(rec)
		if err != nil {
			return RectangularRatings{}, errors.Wrapf(err, "row %d", i)
		}
		rows[i] = row
	}
	return NewRectangularRatings(rows)
}

// ParseLongForm reads records as a table whose header names a "rating"
// and a "condition" column. Other columns are ignored.
func ParseLongForm(records [][]string) (LongFormRatings, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(ErrUnsupportedInputType, "empty table")
	}
	ri, ci := -1, -1
	for i, h := range records[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "rating":
			ri = i
		case "condition":
			ci = i
		}
	}
	if ri < 0 || ci < 0 {
		return nil, errors.Wrapf(ErrUnsupportedInputType, "header %q", records[0])
	}

	obs := make(LongFormRatings, 0, len(records)-1)
	for i, rec := range records[1:] {
		if ri >= len(rec) || ci >= len(rec) {
			return nil, errors.Wrapf(ErrUnsupportedInputType, "record %d has %d fields", i+1, len(rec))
		}
		x, err := parseCell(rec[ri])
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i+1)
		}
		obs = append(obs, Observation{Condition: strings.TrimSpace(rec[ci]), Rating: x})
	}
	return obs, nil
}

// ParseMOSSOS reads per-condition MOS and SOS values. If the first
// record is a header it must name a "mos" and a "sos" column;
// otherwise the first two columns are used.
func ParseMOSSOS(records [][]string) (mos, sos []float64, err error) {
	if len(records) == 0 {
		return nil, nil, errors.Wrap(ErrUnsupportedInputType, "empty table")
	}
	mi, si := 0, 1
	if _, err := parseRow(records[0]); err != nil {
		mi, si = -1, -1
		for i, h := range records[0] {
			switch strings.ToLower(strings.TrimSpace(h)) {
			case "mos":
				mi = i
			case "sos":
				si = i
			}
		}
		if mi < 0 || si < 0 {
			return nil, nil, errors.Wrapf(ErrUnsupportedInputType, "header %q", records[0])
		}
		records = records[1:]
	}

	for i, rec := range records {
		if mi >= len(rec) || si >= len(rec) {
			return nil, nil, errors.Wrapf(ErrUnsupportedInputType, "record %d has %d fields", i, len(rec))
		}
		m, err := parseCell(rec[mi])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "record %d", i)
		}
		s, err := parseCell(rec[si])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "record %d", i)
		}
		mos, sos = append(mos, m), append(sos, s)
	}
	return mos, sos, nil
}

func parseRow(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, cell := range rec {
		x, err := parseCell(cell)
		if err != nil {
			return nil, err
		}
		row[j] = x
	}
	return row, nil
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, "nan") {
		return math.NaN(), nil
	}
	x, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrUnsupportedInputType, "non-numeric rating %q", cell)
	}
	return x, nil
}
