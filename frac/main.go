// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frac implements the fracture analysis: fitting of displacement models and line
// integrals along nested paths around the crack tip
package frac

import (
	"time"

	"github.com/FerdiDoem/gocrack/aggr"
	"github.com/FerdiDoem/gocrack/fit"
	"github.com/FerdiDoem/gocrack/fld"
	"github.com/FerdiDoem/gocrack/inp"
	"github.com/FerdiDoem/gocrack/pth"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Bundle holds the results of a fracture analysis
//  Note: nil fields correspond to phases that did not run
type Bundle struct {
	Cjp      *fit.CjpResult      // CJP fit
	Williams *fit.WilliamsResult // Williams fit
	Integral *pth.Summary        // statistics of line integrals over all paths
}

// Main holds all data for one fracture analysis
//  Note: optim == nil => no fitting; integ == nil => no line integrals
type Main struct {

	// options; may be changed before Run
	Progress  pth.ProgressFcn // progress sink; may be nil
	Threshold float64         // threshold for outlier rejection
	ShowMsg   bool            // show messages

	// input and services
	mat        *inp.Material     // material data
	field      *fld.Field        // displacement field
	tip        inp.CrackTip      // crack tip
	optim      *inp.OptimData    // fitting data; normalized
	integ      *inp.IntegralData // line integrals data; normalized
	optimizer  fit.Optimizer     // optimisation service
	integrator pth.Integrator    // line integral service

	// results
	bundle *Bundle // allocated by Run
	ran    bool    // Run has been called
}

// NewMain returns a new Main structure
//  Input:
//   mat        -- material data
//   field      -- displacement field
//   tip        -- crack tip
//   optim      -- fitting data; nil => skip fitting
//   integ      -- line integrals data; nil => skip line integrals
//   optimizer  -- optimisation service; required if optim != nil
//   integrator -- line integral service; required if integ != nil
//   verbose    -- show messages
//  Note: optim and integ are normalized here (once)
func NewMain(mat *inp.Material, field *fld.Field, tip inp.CrackTip, optim *inp.OptimData, integ *inp.IntegralData,
	optimizer fit.Optimizer, integrator pth.Integrator, verbose bool) (o *Main, err error) {

	// check
	if mat == nil {
		return nil, chk.Err("material data is required")
	}
	if field == nil {
		return nil, chk.Err("displacement field is required")
	}
	if optim != nil && optimizer == nil {
		return nil, chk.Err("optimizer is required when optimization data is given")
	}
	if integ != nil && integrator == nil {
		return nil, chk.Err("line integrator is required when integral data is given")
	}

	// normalize input data
	if optim != nil {
		err = optim.PostProcess(tip.X)
		if err != nil {
			return nil, chk.Err("invalid optimization data:\n%v", err)
		}
	}
	if integ != nil {
		err = integ.PostProcess()
		if err != nil {
			return nil, chk.Err("invalid integral data:\n%v", err)
		}
	}

	// new Main object
	o = &Main{
		Threshold:  aggr.DefaultThreshold,
		ShowMsg:    verbose,
		mat:        mat,
		field:      field,
		tip:        tip,
		optim:      optim,
		integ:      integ,
		optimizer:  optimizer,
		integrator: integrator,
	}
	if o.ShowMsg {
		io.Pf("> Material: %v\n", mat)
		io.Pf("> Field %q with %d points\n", field.Name, field.Npoints())
	}
	return
}

// NewMainFromAnalysis returns a new Main structure from analysis data
func NewMainFromAnalysis(a *inp.Analysis, field *fld.Field, optimizer fit.Optimizer, integrator pth.Integrator, verbose bool) (*Main, error) {
	return NewMain(a.Material, field, a.CrackTip, a.Optim, a.Integral, optimizer, integrator, verbose)
}

// Run runs the fracture analysis. The fits run first and never fail the analysis; an error
// from the line integral service aborts the run. Results of completed phases stay available through Results
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// single use
	if o.ran {
		return chk.Err("fracture analysis has already been run")
	}
	o.ran = true
	o.bundle = new(Bundle)

	// fitting
	if o.optim != nil {
		if o.ShowMsg {
			io.Pf("> Fitting displacement models\n")
		}
		var runner *fit.Runner
		runner, err = fit.NewRunner(o.optimizer, o.field, o.mat, o.optim)
		if err != nil {
			return
		}
		cjp := runner.Cjp()
		williams := runner.Williams()
		o.bundle.Cjp = &cjp
		o.bundle.Williams = &williams
	}

	// line integrals
	if o.integ != nil {
		if o.ShowMsg {
			io.Pf("> Running path sweep with %d paths\n", o.integ.Npaths)
		}
		var series *pth.Series
		series, err = pth.Sweep(o.integrator, o.field, o.mat, o.integ, o.progress)
		if err != nil {
			return
		}
		o.bundle.Integral, err = pth.Aggregate(series, o.Threshold)
		if err != nil {
			return
		}
	}
	return
}

// Results returns a copy of the results bundle; nil if Run has not been called
func (o *Main) Results() *Bundle {
	if o.bundle == nil {
		return nil
	}
	b := *o.bundle
	return &b
}

// Tip returns the crack tip
func (o *Main) Tip() inp.CrackTip {
	return o.tip
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// progress forwards notifications to the progress sink
func (o *Main) progress(k, total int) {
	if o.ShowMsg {
		io.Pf("> path %d of %d\n", k, total)
	}
	if o.Progress != nil {
		o.Progress(k, total)
	}
}

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) error {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
