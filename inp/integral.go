// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gopkg.in/yaml.v3"
)

// Extent holds the positions of the four sides of a rectangular integration path
// relative to the crack tip [mm]. Left and bottom are negative; right and top are positive
type Extent struct {
	Left   float64 `json:"left"   yaml:"left"`
	Right  float64 `json:"right"  yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Top    float64 `json:"top"    yaml:"top"`
}

// Valid tells whether the rectangle encloses the crack tip
func (o Extent) Valid() bool {
	return o.Left < 0 && o.Right > 0 && o.Bottom < 0 && o.Top > 0
}

// IntegralData holds data for the sweep of line integrals along nested rectangular paths
type IntegralData struct {

	// innermost path
	SizeLeft   float64 `json:"sizeleft"   yaml:"sizeleft"`   // left side of first path
	SizeRight  float64 `json:"sizeright"  yaml:"sizeright"`  // right side of first path
	SizeBottom float64 `json:"sizebottom" yaml:"sizebottom"` // bottom side of first path
	SizeTop    float64 `json:"sizetop"    yaml:"sizetop"`    // top side of first path

	// increments between consecutive paths
	DistLeft   float64 `json:"distleft"   yaml:"distleft"`   // subtracted from left side
	DistRight  float64 `json:"distright"  yaml:"distright"`  // added to right side
	DistBottom float64 `json:"distbottom" yaml:"distbottom"` // subtracted from bottom side
	DistTop    float64 `json:"disttop"    yaml:"disttop"`    // added to top side

	// sweep and quadrature
	Npaths   int     `json:"npaths"   yaml:"npaths"`   // number of paths
	Nnodes   int     `json:"nnodes"   yaml:"nnodes"`   // number of nodes along each path
	TickSize float64 `json:"ticksize" yaml:"ticksize"` // distance between path nodes; 0 => computed by integrator
	MaskTol  float64 `json:"masktol"  yaml:"masktol"`  // tolerance to mask field points near the path; 0 => default
	Orders   []int   `json:"orders"   yaml:"orders"`   // Williams orders resolved with the Bueckner-Chen integral

	// derived
	normalized bool
}

// NewIntegralData returns IntegralData with default values
func NewIntegralData() (o *IntegralData) {
	o = new(IntegralData)
	o.SetDefault()
	return
}

// SetDefault sets default values
func (o *IntegralData) SetDefault() {
	o.SizeLeft = -5
	o.SizeRight = 5
	o.SizeBottom = -5
	o.SizeTop = 5
	o.DistLeft = 0.5
	o.DistRight = 0.5
	o.DistBottom = 0.5
	o.DistTop = 0.5
	o.Npaths = 10
	o.Nnodes = 100
	o.Orders = []int{-1, 1, 2, 3, 4, 5}
}

// PostProcess fills derived defaults and validates data. Only the first call has effect
func (o *IntegralData) PostProcess() (err error) {
	if o.normalized {
		return
	}
	if o.Npaths < 1 {
		return chk.Err("number of paths must be at least 1. npaths = %d is invalid", o.Npaths)
	}
	if o.Nnodes < 1 {
		o.Nnodes = 100
	}
	if o.MaskTol <= 0 {
		o.MaskTol = 2 * utl.Max(utl.Max(o.DistLeft, o.DistRight), utl.Max(o.DistBottom, o.DistTop))
	}
	if len(o.Orders) == 0 {
		o.Orders = []int{-1, 1, 2, 3, 4, 5}
	}
	if err = checkOrders(o.Orders, "Bueckner-Chen", 1); err != nil {
		return
	}

	// the sweep is affine in the path index => checking first and last paths suffices
	for _, k := range []int{0, o.Npaths - 1} {
		if ext := o.Extent(k); !ext.Valid() {
			return chk.Err("path %d does not enclose the crack tip: %+v", k, ext)
		}
	}
	o.normalized = true
	return
}

// Normalized tells whether PostProcess has been successfully called
func (o *IntegralData) Normalized() bool {
	return o.normalized
}

// Extent returns the sides of path k (0-indexed)
//   left_k   = left_0   - k・dleft
//   right_k  = right_0  + k・dright
//   bottom_k = bottom_0 - k・dbottom
//   top_k    = top_0    + k・dtop
func (o *IntegralData) Extent(k int) Extent {
	fk := float64(k)
	return Extent{
		Left:   o.SizeLeft - fk*o.DistLeft,
		Right:  o.SizeRight + fk*o.DistRight,
		Bottom: o.SizeBottom - fk*o.DistBottom,
		Top:    o.SizeTop + fk*o.DistTop,
	}
}

// Next returns the extent following ext
func (o *IntegralData) Next(ext Extent) Extent {
	return Extent{
		Left:   ext.Left - o.DistLeft,
		Right:  ext.Right + o.DistRight,
		Bottom: ext.Bottom - o.DistBottom,
		Top:    ext.Top + o.DistTop,
	}
}

// decoding with defaults //////////////////////////////////////////////////////////////////////////

type integralData IntegralData

// UnmarshalJSON sets defaults before decoding
func (o *IntegralData) UnmarshalJSON(b []byte) error {
	o.SetDefault()
	return json.Unmarshal(b, (*integralData)(o))
}

// UnmarshalYAML sets defaults before decoding
func (o *IntegralData) UnmarshalYAML(node *yaml.Node) error {
	o.SetDefault()
	return node.Decode((*integralData)(o))
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// checkOrders checks that orders are unique and contain all required ones
func checkOrders(orders []int, desc string, required ...int) error {
	seen := make(map[int]bool)
	for _, n := range orders {
		if seen[n] {
			return chk.Err("%s orders must be unique. %v is invalid", desc, orders)
		}
		seen[n] = true
	}
	for _, n := range required {
		if !seen[n] {
			return chk.Err("%s orders must contain n=%d. %v is invalid", desc, n, orders)
		}
	}
	return nil
}
