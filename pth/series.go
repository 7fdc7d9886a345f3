// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pth

import (
	"github.com/FerdiDoem/gocrack/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Series accumulates the results of all paths of one sweep
type Series struct {
	Orders    []int        // Williams orders
	Scalars   *la.Matrix   // [npaths][Nscalars] scalar quantities
	An        *la.Matrix   // [npaths][norders] a_n from Bueckner-Chen integral
	Bn        *la.Matrix   // [npaths][norders] b_n from Bueckner-Chen integral
	Coefs     [][]float64  // [npaths][2*norders] {a_n..., b_n...}
	Requested []inp.Extent // [npaths] requested sides of paths
	Sizes     []inp.Extent // [npaths] realized sides of paths
	Nnodes    []int        // [npaths] number of nodes along paths
	TickSizes []float64    // [npaths] distance between nodes along paths
	Xint      [][]float64  // [npaths][nip] x-coordinates of integration points
	Yint      [][]float64  // [npaths][nip] y-coordinates of integration points
	npaths    int          // number of appended paths
}

// NewSeries allocates a series for npaths paths
func NewSeries(npaths int, orders []int) (o *Series) {
	o = new(Series)
	o.Orders = append([]int{}, orders...)
	o.Scalars = la.NewMatrix(npaths, Nscalars)
	o.An = la.NewMatrix(npaths, len(orders))
	o.Bn = la.NewMatrix(npaths, len(orders))
	return
}

// Npaths returns the number of paths appended so far
func (o *Series) Npaths() int {
	return o.npaths
}

// Full tells whether all allocated paths have been appended
func (o *Series) Full() bool {
	return o.npaths == o.Scalars.M
}

// Append appends the results of the next path
func (o *Series) Append(res *Result, requested, realized inp.Extent) (err error) {
	k := o.npaths
	if k >= o.Scalars.M {
		return chk.Err("series is full: cannot append more than %d paths", o.Scalars.M)
	}
	w := res.Williams
	if len(w.Orders) != len(o.Orders) || len(w.A) != len(o.Orders) || len(w.B) != len(o.Orders) {
		return chk.Err("path %d: Williams coefficients %v do not correspond to orders %v", k, w.Orders, o.Orders)
	}
	for i, n := range o.Orders {
		if w.Orders[i] != n {
			return chk.Err("path %d: Williams coefficients %v do not correspond to orders %v", k, w.Orders, o.Orders)
		}
	}
	for j, v := range res.Scalars() {
		o.Scalars.Set(k, j, v)
	}
	for j := range o.Orders {
		o.An.Set(k, j, w.A[j])
		o.Bn.Set(k, j, w.B[j])
	}
	o.Coefs = append(o.Coefs, w.Vector())
	o.Requested = append(o.Requested, requested)
	o.Sizes = append(o.Sizes, realized)
	o.Nnodes = append(o.Nnodes, res.Nnodes)
	o.TickSizes = append(o.TickSizes, res.TickSize)
	o.Xint = append(o.Xint, append([]float64{}, res.Xint...))
	o.Yint = append(o.Yint, append([]float64{}, res.Yint...))
	o.npaths++
	return
}
