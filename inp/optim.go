// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// OptimData holds data for fitting displacement models (CJP and Williams) to the field
type OptimData struct {

	// fitting region: annulus around the crack tip without a wedge along the crack faces
	MinRadius float64 `json:"minradius" yaml:"minradius"` // inner radius [mm]; 0 => MaxRadius/5
	MaxRadius float64 `json:"maxradius" yaml:"maxradius"` // outer radius [mm]; 0 => |x_tip|/2
	AngleGap  float64 `json:"anglegap"  yaml:"anglegap"`  // wedge excluded around the crack faces [deg]
	TickSize  float64 `json:"ticksize"  yaml:"ticksize"`  // spacing of fitting points [mm]

	// Williams series
	Terms []int `json:"terms" yaml:"terms"` // orders n of the fitted Williams series

	// optimizer
	Method string  `json:"method" yaml:"method"` // ex: "lm" (Levenberg-Marquardt), "trf"
	MaxIt  int     `json:"maxit"  yaml:"maxit"`  // max number of iterations
	Tol    float64 `json:"tol"    yaml:"tol"`    // tolerance on the cost function

	// derived
	normalized bool
}

// NewOptimData returns OptimData with default values
func NewOptimData() (o *OptimData) {
	o = new(OptimData)
	o.SetDefault()
	return
}

// SetDefault sets default values
func (o *OptimData) SetDefault() {
	o.AngleGap = 10
	o.TickSize = 0.01
	o.Terms = []int{-1, 0, 1, 2, 3, 4, 5}
	o.Method = "lm"
	o.MaxIt = 1000
	o.Tol = 1e-8
}

// PostProcess resolves defaults depending on the crack tip position and validates data.
// Only the first call has effect
//  Note: an empty fitting region is not an error here; see RegionErr
func (o *OptimData) PostProcess(crackTipX float64) (err error) {
	if o.normalized {
		return
	}
	if o.MaxRadius <= 0 {
		o.MaxRadius = math.Abs(crackTipX) / 2
	}
	if o.MinRadius <= 0 {
		o.MinRadius = o.MaxRadius / 5
	}
	if o.AngleGap < 0 || o.AngleGap >= 180 {
		return chk.Err("angle gap must be in [0, 180). anglegap = %g is invalid", o.AngleGap)
	}
	if len(o.Terms) == 0 {
		o.Terms = []int{-1, 0, 1, 2, 3, 4, 5}
	}
	if err = checkOrders(o.Terms, "Williams fitting"); err != nil {
		return
	}
	if o.Method == "" {
		o.Method = "lm"
	}
	if o.MaxIt < 1 {
		o.MaxIt = 1000
	}
	o.normalized = true
	return
}

// Normalized tells whether PostProcess has been successfully called
func (o *OptimData) Normalized() bool {
	return o.normalized
}

// RegionErr returns an error if the fitting annulus is empty; e.g. crack tip at x=0 without radii.
// Fitting then fails but the integral sweep still runs
func (o *OptimData) RegionErr() error {
	if o.MaxRadius <= o.MinRadius {
		return chk.Err("fitting region is empty: minradius=%g must be smaller than maxradius=%g", o.MinRadius, o.MaxRadius)
	}
	return nil
}

// decoding with defaults //////////////////////////////////////////////////////////////////////////

type optimData OptimData

// UnmarshalJSON sets defaults before decoding
func (o *OptimData) UnmarshalJSON(b []byte) error {
	o.SetDefault()
	return json.Unmarshal(b, (*optimData)(o))
}

// UnmarshalYAML sets defaults before decoding
func (o *OptimData) UnmarshalYAML(node *yaml.Node) error {
	o.SetDefault()
	return node.Decode((*optimData)(o))
}
