// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/FerdiDoem/gocrack/ana"
)

// CjpResult holds the fracture parameters obtained by fitting the CJP model
//  Note: if Ok == false, all numeric fields are NaN
type CjpResult struct {
	Ok         bool      // fit succeeded
	Err        error     // reason of failure
	Error      float64   // residual (cost) of optimisation
	KF         float64   // K_F [MPa√m]
	KR         float64   // K_R [MPa√m]
	KS         float64   // K_S [MPa√m]
	KII        float64   // K_II [MPa√m]
	KeffYang   float64   // effective K after Yang; not computed (always NaN)
	KeffNowell float64   // effective K after Nowell; not computed (always NaN)
	T          float64   // T-stress [MPa]
	Coefs      []float64 // {A_r, B_r, B_i, C, E}
}

// FailedCjp returns a CJP result with all fields undefined
func FailedCjp(err error) CjpResult {
	nan := math.NaN()
	return CjpResult{
		Err:        err,
		Error:      nan,
		KF:         nan,
		KR:         nan,
		KS:         nan,
		KII:        nan,
		KeffYang:   nan,
		KeffNowell: nan,
		T:          nan,
		Coefs:      []float64{nan, nan, nan, nan, nan},
	}
}

// WilliamsResult holds the fracture parameters obtained by fitting the Williams series
//  Note: if Ok == false, all numeric fields are NaN; Coefs still holds the configured orders
type WilliamsResult struct {
	Ok    bool      // fit succeeded
	Err   error     // reason of failure
	Error float64   // residual (cost) of optimisation
	KI    float64   // K_I [MPa√m]
	KII   float64   // K_II [MPa√m]
	KV    float64   // K_V; not computed (always NaN)
	T     float64   // T-stress [MPa]
	Coefs ana.Coefs // a_n and b_n keyed by order
}

// FailedWilliams returns a Williams result with all fields undefined
func FailedWilliams(orders []int, err error) WilliamsResult {
	nan := math.NaN()
	return WilliamsResult{
		Err:   err,
		Error: nan,
		KI:    nan,
		KII:   nan,
		KV:    nan,
		T:     nan,
		Coefs: ana.NewCoefs(orders),
	}
}
