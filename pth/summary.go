// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pth

import (
	"github.com/FerdiDoem/gocrack/aggr"
	"github.com/FerdiDoem/gocrack/ana"
	"github.com/cpmech/gosl/chk"
)

// Sifs holds fracture parameters aggregated over all paths with one statistic
type Sifs struct {
	J          float64 // J-integral [N/mm]
	KJ         float64 // K from J [MPa√m]
	KIinterac  float64 // K_I from interaction integral [MPa√m]
	KIIinterac float64 // K_II from interaction integral [MPa√m]
	KIChen     float64 // K_I from Bueckner-Chen a_1 [MPa√m]
	KIIChen    float64 // K_II from Bueckner-Chen b_1 [MPa√m]
	TChen      float64 // T-stress from Bueckner-Chen integral [MPa]
	TSdm       float64 // T-stress from SDM [MPa]
	TInterac   float64 // T-stress from interaction integral [MPa]
}

// Summary holds the statistics of all paths
type Summary struct {
	Mean       Sifs // mean over paths
	Median     Sifs // median over paths
	RejOutMean Sifs // mean over paths without outliers

	WilliamsMean       ana.Coefs // mean of a_n and b_n
	WilliamsMedian     ana.Coefs // median of a_n and b_n
	WilliamsRejOutMean ana.Coefs // mean of a_n and b_n without outliers

	Series *Series // raw results of all paths
}

// Aggregate computes the statistics of a complete series
//  Input:
//   series -- results of all paths
//   m      -- threshold for outlier rejection; e.g. aggr.DefaultThreshold
//  Note: missing values (NaN) are ignored; all-missing quantities yield NaN.
//        Order n=1 must be available to compute the Bueckner-Chen K_I and K_II
func Aggregate(series *Series, m float64) (o *Summary, err error) {
	if !series.Full() {
		return nil, chk.Err("series is incomplete: %d of %d paths", series.Npaths(), series.Scalars.M)
	}
	sca := aggr.Columns(series.Scalars, m)
	an := aggr.Columns(series.An, m)
	bn := aggr.Columns(series.Bn, m)

	o = &Summary{Series: series}
	o.WilliamsMean = ana.Coefs{Orders: series.Orders, A: an.Mean, B: bn.Mean}
	o.WilliamsMedian = ana.Coefs{Orders: series.Orders, A: an.Median, B: bn.Median}
	o.WilliamsRejOutMean = ana.Coefs{Orders: series.Orders, A: an.RejOutMean, B: bn.RejOutMean}

	if o.Mean, err = newSifs(sca.Mean, o.WilliamsMean); err != nil {
		return nil, err
	}
	if o.Median, err = newSifs(sca.Median, o.WilliamsMedian); err != nil {
		return nil, err
	}
	if o.RejOutMean, err = newSifs(sca.RejOutMean, o.WilliamsRejOutMean); err != nil {
		return nil, err
	}
	return
}

// newSifs collects scalar statistics and computes the Bueckner-Chen K_I and K_II
func newSifs(sca []float64, williams ana.Coefs) (o Sifs, err error) {
	o.KIChen, o.KIIChen, err = ana.ChenSifs(williams)
	if err != nil {
		return o, chk.Err("cannot compute Bueckner-Chen stress intensity factors:\n%v", err)
	}
	o.J = sca[IdxJ]
	o.KJ = sca[IdxKJ]
	o.KIinterac = sca[IdxKI]
	o.KIIinterac = sca[IdxKII]
	o.TChen = sca[IdxTChen]
	o.TSdm = sca[IdxTSdm]
	o.TInterac = sca[IdxTInt]
	return
}
