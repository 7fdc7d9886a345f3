// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package aggr implements robust statistics over series of results where missing values are NaN
package aggr

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/la"
)

// DefaultThreshold is the default value of m in the outlier-rejection criterion |x - med| / MAD < m
const DefaultThreshold = 2.0

// Stats holds statistics computed per column (quantity) of a series
type Stats struct {
	Mean       []float64 // [ncol] mean ignoring NaNs
	Median     []float64 // [ncol] median ignoring NaNs
	RejOutMean []float64 // [ncol] mean without outliers
}

// Columns computes mean, median and outlier-rejected mean of each column of series
//  Input:
//   series -- [nrows][ncols] matrix; e.g. rows are paths and columns are quantities
//   m      -- threshold for outlier rejection; e.g. DefaultThreshold
func Columns(series *la.Matrix, m float64) (o Stats) {
	o.Mean = make([]float64, series.N)
	o.Median = make([]float64, series.N)
	o.RejOutMean = make([]float64, series.N)
	col := make([]float64, series.M)
	for j := 0; j < series.N; j++ {
		for i := 0; i < series.M; i++ {
			col[i] = series.Get(i, j)
		}
		o.Mean[j] = NanMean(col)
		o.Median[j] = NanMedian(col)
		o.RejOutMean[j] = MeanWoOutliers(col, m)
	}
	return
}

// NanMean computes the mean of x excluding NaN values
//  Note: returns NaN if all values are NaN or x is empty
func NanMean(x []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// NanMedian computes the median of x excluding NaN values
//  Note: returns NaN if all values are NaN or x is empty
func NanMedian(x []float64) float64 {
	y := valid(x)
	n := len(y)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(y)
	if n%2 == 1 {
		return y[n/2]
	}
	return (y[n/2-1] + y[n/2]) / 2.0
}

// MeanWoOutliers computes the mean of the values whose scaled deviation from the median is below m
//
//   d   = |x - median(x)|
//   MAD = median(d)
//   s   = d / MAD     (s = 0 if MAD == 0)
//
//  and then returns mean({x_i : s_i < m}). NaN values are ignored everywhere
func MeanWoOutliers(x []float64, m float64) float64 {
	med := NanMedian(x)
	if math.IsNaN(med) {
		return math.NaN()
	}
	d := make([]float64, len(x))
	for i, v := range x {
		d[i] = math.Abs(v - med)
	}
	mad := NanMedian(d)
	if mad == 0 {
		return NanMean(x)
	}
	kept := make([]float64, 0, len(x))
	for i, v := range x {
		if d[i]/mad < m {
			kept = append(kept, v)
		}
	}
	return NanMean(kept)
}

// valid returns a copy of x without NaNs
func valid(x []float64) (y []float64) {
	y = make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			y = append(y, v)
		}
	}
	return
}
