// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pth implements the evaluation of path-independent line integrals along a sweep of
// nested rectangular paths around the crack tip and the aggregation of their results
package pth

import (
	"github.com/FerdiDoem/gocrack/ana"
	"github.com/FerdiDoem/gocrack/fld"
	"github.com/FerdiDoem/gocrack/inp"
)

// Nscalars is the number of scalar quantities computed along each path
const Nscalars = 7

// indices of scalar quantities in Result.Scalars
const (
	IdxJ     = iota // J-integral
	IdxKJ           // K from J
	IdxKI           // K_I from interaction integral
	IdxKII          // K_II from interaction integral
	IdxTChen        // T-stress from Bueckner-Chen integral
	IdxTSdm         // T-stress from SDM
	IdxTInt         // T-stress from interaction integral
)

// Result holds the output of the line integrals evaluated along one path
type Result struct {
	J        float64   `json:"j"        yaml:"j"`        // J-integral [N/mm]
	KJ       float64   `json:"kj"       yaml:"kj"`       // K computed from J [MPa√m]
	KI       float64   `json:"ki"       yaml:"ki"`       // K_I from interaction integral [MPa√m]
	KII      float64   `json:"kii"      yaml:"kii"`      // K_II from interaction integral [MPa√m]
	TChen    float64   `json:"tchen"    yaml:"tchen"`    // T-stress from Bueckner-Chen integral [MPa]
	TSdm     float64   `json:"tsdm"     yaml:"tsdm"`     // T-stress from SDM [MPa]
	TInt     float64   `json:"tint"     yaml:"tint"`     // T-stress from interaction integral [MPa]
	Williams ana.Coefs `json:"williams" yaml:"williams"` // a_n and b_n from Bueckner-Chen integral
	Nnodes   int       `json:"nnodes"   yaml:"nnodes"`   // number of nodes along path
	TickSize float64   `json:"ticksize" yaml:"ticksize"` // distance between nodes along path
	Xint     []float64 `json:"xint"     yaml:"xint"`     // x-coordinates of integration points
	Yint     []float64 `json:"yint"     yaml:"yint"`     // y-coordinates of integration points
}

// Scalars returns the scalar quantities ordered by the Idx constants
func (o *Result) Scalars() []float64 {
	return []float64{o.J, o.KJ, o.KI, o.KII, o.TChen, o.TSdm, o.TInt}
}

// Integrator evaluates the line integrals along one rectangular path
//  Input:
//   field   -- displacement field
//   mat     -- material data
//   dat     -- sweep data (normalized)
//   ext     -- requested sides of the path
//   maskTol -- tolerance to mask points of the field
//   orders  -- Williams orders to compute with the Bueckner-Chen integral
//  Output:
//   res      -- results along path
//   realized -- sides of the path actually used; e.g. clipped to the field
//  Note: an error aborts the whole analysis
type Integrator interface {
	Evaluate(field *fld.Field, mat *inp.Material, dat *inp.IntegralData, ext inp.Extent, maskTol float64, orders []int) (res *Result, realized inp.Extent, err error)
}

// ProgressFcn receives a notification after each completed path
//  Note: k is the number of completed paths (1 to total)
type ProgressFcn func(k, total int)
