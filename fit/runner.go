// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/FerdiDoem/gocrack/ana"
	"github.com/FerdiDoem/gocrack/fld"
	"github.com/FerdiDoem/gocrack/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Runner runs the fitting of displacement models. A failed fit never aborts the analysis:
// it yields a result with Ok == false and all numeric fields set to NaN
type Runner struct {
	Optimizer Optimizer      // optimisation service
	Field     *fld.Field     // displacement field
	Mat       *inp.Material  // material data
	Opts      *inp.OptimData // options; must be normalized
}

// NewRunner returns a new Runner
func NewRunner(optimizer Optimizer, field *fld.Field, mat *inp.Material, opts *inp.OptimData) (o *Runner, err error) {
	if optimizer == nil {
		return nil, chk.Err("optimizer is required to fit displacement models")
	}
	if opts == nil || !opts.Normalized() {
		return nil, chk.Err("optimization data must be normalized before fitting")
	}
	return &Runner{Optimizer: optimizer, Field: field, Mat: mat, Opts: opts}, nil
}

// Cjp fits the CJP model and computes K_F, K_R, K_S, K_II and T
func (o *Runner) Cjp() CjpResult {
	sol, err := o.solve(KindCjp)
	if err != nil {
		return o.failedCjp(err)
	}
	c, err := ana.NewCjpCoefs(sol.X)
	if err != nil {
		return o.failedCjp(err)
	}
	s := c.Sifs().ToMm()
	return CjpResult{
		Ok:         true,
		Error:      sol.Cost,
		KF:         s.KF,
		KR:         s.KR,
		KS:         s.KS,
		KII:        s.KII,
		KeffYang:   math.NaN(),
		KeffNowell: math.NaN(),
		T:          s.T,
		Coefs:      append([]float64{}, sol.X...),
	}
}

// Williams fits the Williams series and computes K_I, K_II and T
func (o *Runner) Williams() WilliamsResult {
	sol, err := o.solve(KindWilliams)
	if err != nil {
		return o.failedWilliams(err)
	}
	c, err := ana.SplitCoefs(o.Opts.Terms, sol.X)
	if err != nil {
		return o.failedWilliams(err)
	}
	KI, KII, T, err := ana.WilliamsSifs(c)
	if err != nil {
		return o.failedWilliams(err)
	}
	return WilliamsResult{
		Ok:    true,
		Error: sol.Cost,
		KI:    KI,
		KII:   KII,
		KV:    math.NaN(),
		T:     T,
		Coefs: c,
	}
}

// solve calls the optimizer converting panics into errors. The optimizer is not called if the
// fitting region is empty
func (o *Runner) solve(kind string) (sol *Solution, err error) {
	if err = o.Opts.RegionErr(); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			sol, err = nil, chk.Err("%s optimizer panicked: %v", kind, r)
		}
	}()
	sol, err = o.Optimizer.Optimize(kind, o.Field, o.Mat, o.Opts)
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, chk.Err("%s optimizer returned no solution", kind)
	}
	n, err := Ncoefs(kind, o.Opts)
	if err != nil {
		return nil, err
	}
	if len(sol.X) != n {
		return nil, chk.Err("%s optimizer returned %d coefficients; %d are required", kind, len(sol.X), n)
	}
	return
}

func (o *Runner) failedCjp(err error) CjpResult {
	io.PfRed("CJP optimization failed: %v\n", err)
	return FailedCjp(err)
}

func (o *Runner) failedWilliams(err error) WilliamsResult {
	io.PfRed("Williams optimization failed: %v\n", err)
	return FailedWilliams(o.Opts.Terms, err)
}
