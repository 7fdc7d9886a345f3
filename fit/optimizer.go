// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fit implements the fitting of crack-tip displacement models (CJP and Williams)
package fit

import (
	"github.com/FerdiDoem/gocrack/ana"
	"github.com/FerdiDoem/gocrack/fld"
	"github.com/FerdiDoem/gocrack/inp"
	"github.com/cpmech/gosl/chk"
)

// kinds of displacement models
const (
	KindCjp      = "cjp"      // five-parameter CJP model
	KindWilliams = "williams" // Williams series with orders given by OptimData.Terms
)

// Solution holds the output of one optimisation
type Solution struct {
	X    []float64 `json:"x"    yaml:"x"`    // coefficients
	Cost float64   `json:"cost" yaml:"cost"` // final value of the cost function (residual)
}

// Optimizer fits a displacement model to a field
//  Note: implementations may fail by returning an error or by panicking (e.g. chk.Panic
//        due to singular Jacobian or non-convergence); both are handled by Runner
type Optimizer interface {
	Optimize(kind string, field *fld.Field, mat *inp.Material, opts *inp.OptimData) (*Solution, error)
}

// Ncoefs returns the number of coefficients of a model kind
func Ncoefs(kind string, opts *inp.OptimData) (n int, err error) {
	nfcn, ok := ncoefs[kind]
	if !ok {
		return 0, chk.Err("model kind %q is not available", kind)
	}
	return nfcn(opts), nil
}

// ncoefs holds all available model kinds; kind => number of coefficients
var ncoefs = map[string]func(opts *inp.OptimData) int{
	KindCjp:      func(opts *inp.OptimData) int { return ana.NcoefsCjp },
	KindWilliams: func(opts *inp.OptimData) int { return 2 * len(opts.Terms) },
}
