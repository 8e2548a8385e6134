// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// A table is a header row followed by data rows. The first column is
// left-aligned and the remaining columns are right-aligned.
type table [][]string

func (t *table) add(row ...string) {
	*t = append(*t, row)
}

func (t table) write(w io.Writer) error {
	if len(t) == 0 {
		return nil
	}
	numColumn := 0
	for _, row := range t {
		if numColumn < len(row) {
			numColumn = len(row)
		}
	}

	width := make([]int, numColumn)
	for _, row := range t {
		for i, s := range row {
			if n := utf8.RuneCountInString(s); width[i] < n {
				width[i] = n
			}
		}
	}

	var buf bytes.Buffer

	// headings
	row := t[0]
	for i, s := range row {
		switch i {
		case 0:
			fmt.Fprintf(&buf, "%-*s", width[i], s)
		default:
			fmt.Fprintf(&buf, "  %*s", width[i], s)
		}
	}
	buf.WriteByte('\n')

	// data
	for _, row := range t[1:] {
		for i, s := range row {
			switch i {
			case 0:
				fmt.Fprintf(&buf, "%-*s", width[i], s)
			default:
				fmt.Fprintf(&buf, "  %*s", width[i], s)
			}
		}
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// num formats x for a table cell.
func num(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}

// report writes v as YAML if format is "yaml". Otherwise it calls
// text, which renders the human-readable form.
func report(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	if format != "yaml" {
		return text(w)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
