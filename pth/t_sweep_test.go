// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pth

import (
	"math"
	"testing"

	"github.com/FerdiDoem/gocrack/ana"
	"github.com/FerdiDoem/gocrack/fld"
	"github.com/FerdiDoem/gocrack/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// fakeIntegrator returns results depending on the path index
type fakeIntegrator struct {
	exts   []inp.Extent // requested extents
	failAt int          // path index returning an error; -1 => never
	clip   float64      // realized right side is min(right, clip) if clip > 0
}

func (o *fakeIntegrator) Evaluate(field *fld.Field, mat *inp.Material, dat *inp.IntegralData, ext inp.Extent, maskTol float64, orders []int) (*Result, inp.Extent, error) {
	k := len(o.exts)
	o.exts = append(o.exts, ext)
	if k == o.failAt {
		return nil, ext, chk.Err("path outside of field")
	}
	fk := float64(k)
	w := ana.NewCoefs(orders)
	for i, n := range orders {
		w.A[i] = float64(n) + fk
		w.B[i] = -float64(n)
	}
	res := &Result{
		J: 1 + fk, KJ: 2, KI: 3, KII: 4, TChen: 5, TSdm: 6, TInt: 7 + fk,
		Williams: w,
		Nnodes:   dat.Nnodes,
		TickSize: 0.1,
		Xint:     []float64{ext.Left, ext.Right},
		Yint:     []float64{ext.Bottom, ext.Top},
	}
	realized := ext
	if o.clip > 0 && realized.Right > o.clip {
		realized.Right = o.clip
	}
	return res, realized, nil
}

func newIntegralData(tst *testing.T, npaths int) *inp.IntegralData {
	dat := inp.NewIntegralData()
	dat.Npaths = npaths
	dat.SizeLeft, dat.SizeRight, dat.SizeBottom, dat.SizeTop = -2, 2, -1, 1
	dat.DistLeft, dat.DistRight, dat.DistBottom, dat.DistTop = 1, 0.5, 0.25, 0.25
	dat.Orders = []int{-1, 1, 2}
	if err := dat.PostProcess(); err != nil {
		tst.Fatalf("PostProcess failed: %v\n", err)
	}
	return dat
}

func Test_sweep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep01. nested paths and progress")

	dat := newIntegralData(tst, 4)
	ig := &fakeIntegrator{failAt: -1, clip: 3}
	var calls [][]int
	series, err := Sweep(ig, &fld.Field{}, nil, dat, func(k, total int) {
		calls = append(calls, []int{k, total})
	})
	if err != nil {
		tst.Errorf("Sweep failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of evaluations", len(ig.exts), 4)
	chk.Int(tst, "number of paths", series.Npaths(), 4)
	chk.Int(tst, "number of progress calls", len(calls), 4)
	for k, c := range calls {
		chk.Ints(tst, io.Sf("progress %d", k), c, []int{k + 1, 4})
	}
	for k, ext := range ig.exts {
		io.Pforan("path %d: %+v\n", k, ext)
		fk := float64(k)
		chk.Float64(tst, "left", 1e-15, ext.Left, -2-fk)
		chk.Float64(tst, "right", 1e-15, ext.Right, 2+0.5*fk)
		chk.Float64(tst, "bottom", 1e-15, ext.Bottom, -1-0.25*fk)
		chk.Float64(tst, "top", 1e-15, ext.Top, 1+0.25*fk)
		chk.Float64(tst, "requested right", 1e-15, series.Requested[k].Right, 2+0.5*fk)
	}
	chk.Float64(tst, "realized right 3", 1e-15, series.Sizes[3].Right, 3)
	chk.Float64(tst, "realized right 1", 1e-15, series.Sizes[1].Right, 2.5)
	chk.Float64(tst, "J of path 2", 1e-15, series.Scalars.Get(2, IdxJ), 3)
	chk.Float64(tst, "T_int of path 3", 1e-15, series.Scalars.Get(3, IdxTInt), 10)
	chk.Float64(tst, "a_2 of path 1", 1e-15, series.An.Get(1, 2), 3)
	chk.Float64(tst, "b_-1 of path 1", 1e-15, series.Bn.Get(1, 0), 1)
	chk.Array(tst, "coefs of path 0", 1e-15, series.Coefs[0], []float64{-1, 1, 2, 1, -1, -2})
	chk.Array(tst, "xint of path 0", 1e-15, series.Xint[0], []float64{-2, 2})
}

func Test_sweep02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep02. errors")

	dat := newIntegralData(tst, 5)
	ig := &fakeIntegrator{failAt: 2}
	_, err := Sweep(ig, &fld.Field{}, nil, dat, nil)
	if err == nil {
		tst.Errorf("Sweep should have failed\n")
		return
	}
	io.Pforan("err = %v\n", err)
	chk.Int(tst, "number of evaluations", len(ig.exts), 3)

	_, err = Sweep(nil, &fld.Field{}, nil, dat, nil)
	if err == nil {
		tst.Errorf("Sweep without integrator should have failed\n")
	}

	raw := inp.NewIntegralData()
	_, err = Sweep(&fakeIntegrator{failAt: -1}, &fld.Field{}, nil, raw, nil)
	if err == nil {
		tst.Errorf("Sweep with data not post-processed should have failed\n")
	}
}

func Test_series01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series01. orders mismatch and overflow")

	s := NewSeries(1, []int{1, 2})
	res := &Result{Williams: ana.NewCoefs([]int{2, 1})}
	if err := s.Append(res, inp.Extent{}, inp.Extent{}); err == nil {
		tst.Errorf("Append with permuted orders should have failed\n")
	}
	res.Williams = ana.NewCoefs([]int{1, 2})
	if err := s.Append(res, inp.Extent{}, inp.Extent{}); err != nil {
		tst.Errorf("Append failed: %v\n", err)
		return
	}
	if err := s.Append(res, inp.Extent{}, inp.Extent{}); err == nil {
		tst.Errorf("Append to full series should have failed\n")
	}
}

func Test_summary01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("summary01. aggregation over paths")

	dat := newIntegralData(tst, 4)
	series, err := Sweep(&fakeIntegrator{failAt: -1}, &fld.Field{}, nil, dat, nil)
	if err != nil {
		tst.Errorf("Sweep failed: %v\n", err)
		return
	}
	sum, err := Aggregate(series, 2)
	if err != nil {
		tst.Errorf("Aggregate failed: %v\n", err)
		return
	}
	io.Pforan("mean = %+v\n", sum.Mean)

	// J = 1,2,3,4 ; T_int = 7,8,9,10
	chk.Float64(tst, "mean J", 1e-15, sum.Mean.J, 2.5)
	chk.Float64(tst, "median J", 1e-15, sum.Median.J, 2.5)
	chk.Float64(tst, "mean T_int", 1e-15, sum.Mean.TInterac, 8.5)
	chk.Float64(tst, "mean K_J", 1e-15, sum.Mean.KJ, 2)
	chk.Float64(tst, "rejout K_J", 1e-15, sum.RejOutMean.KJ, 2)

	// a_1 = 1,2,3,4 => mean 2.5 ; b_1 = -1
	chk.Array(tst, "mean a_n", 1e-15, sum.WilliamsMean.A, []float64{0.5, 2.5, 3.5})
	chk.Array(tst, "mean b_n", 1e-15, sum.WilliamsMean.B, []float64{1, -1, -2})
	KI, KII := ana.SifsFromA1B1(2.5, -1)
	chk.Float64(tst, "K_I Chen", 1e-15, sum.Mean.KIChen, KI)
	chk.Float64(tst, "K_II Chen", 1e-15, sum.Mean.KIIChen, KII)
	chk.Float64(tst, "K_I Chen (check)", 1e-15, sum.Mean.KIChen, math.Sqrt(2*math.Pi)*2.5/math.Sqrt(1000))
}

func Test_summary02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("summary02. incomplete series and missing n=1")

	s := NewSeries(2, []int{2, 3})
	if _, err := Aggregate(s, 2); err == nil {
		tst.Errorf("Aggregate of incomplete series should have failed\n")
	}
	for k := 0; k < 2; k++ {
		res := &Result{Williams: ana.Coefs{Orders: []int{2, 3}, A: []float64{1, 2}, B: []float64{3, 4}}}
		if err := s.Append(res, inp.Extent{}, inp.Extent{}); err != nil {
			tst.Errorf("Append failed: %v\n", err)
			return
		}
	}
	if _, err := Aggregate(s, 2); err == nil {
		tst.Errorf("Aggregate without order 1 should have failed\n")
	}
}
