// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Linspace returns num values spaced evenly between lo and hi,
// inclusive. The last value is exactly hi.
func Linspace(lo, hi float64, num int) []float64 {
	if num == 1 {
		return []float64{lo}
	}
	res := make([]float64, num)
	for i := 0; i < num; i++ {
		res[i] = lo + float64(i)*(hi-lo)/float64(num-1)
	}
	if num > 1 {
		res[num-1] = hi
	}
	return res
}
