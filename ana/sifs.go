// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form relations between crack-tip field coefficients and
// fracture parameters
//  References:
//   [1] Christopher CJ, James MN, Patterson EA, Tee KF (2007) Towards a new model of crack tip
//       stress fields. Int Journal of Fracture 148, 361-371
//   [2] Christopher CJ, Laboviciute G, James MN, Patterson EA (2013) Extension of the CJP model
//       to mixed mode I and mode II. Frattura ed Integrità Strutturale 25, 161-168
//   [3] Kuna M (2013) Finite Elements in Fracture Mechanics. Springer. Eq. (3.45)
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// NcoefsCjp is the number of coefficients of the CJP displacement model
const NcoefsCjp = 5

// SqrtMm converts stress-intensity-like values computed with lengths in m to MPa√mm-based reporting:
//  K[reported] = K / SqrtMm
var SqrtMm = math.Sqrt(1000)

// ToMm scales a stress-intensity-like value; stress-like values (T) are not scaled
func ToMm(k float64) float64 {
	return k / SqrtMm
}

// CjpCoefs holds the coefficients of the CJP displacement model
type CjpCoefs struct {
	Ar float64 // A_r
	Br float64 // B_r
	Bi float64 // B_i
	C  float64 // C
	E  float64 // E
}

// NewCjpCoefs returns CJP coefficients from x = {A_r, B_r, B_i, C, E}
func NewCjpCoefs(x []float64) (o CjpCoefs, err error) {
	if len(x) != NcoefsCjp {
		return o, chk.Err("CJP model requires %d coefficients. %d were given", NcoefsCjp, len(x))
	}
	return CjpCoefs{Ar: x[0], Br: x[1], Bi: x[2], C: x[3], E: x[4]}, nil
}

// CjpSifs holds fracture parameters derived from the CJP model
type CjpSifs struct {
	KF  float64 // K_F
	KR  float64 // K_R
	KS  float64 // K_S
	KII float64 // K_II
	T   float64 // T-stress
}

// Sifs computes K_F, K_R, K_S, K_II and T (see [2] Eqs. 4-8) without unit scaling
//
//   K_F  =  √(π/2)・(A_r - 3 B_r - 8 E)
//   K_R  = -4 √(π/2)・(2 B_i + π E)
//   K_S  = -√(π/2)・(A_r + B_r)
//   K_II =  2 √(2π)・B_i
//   T    = -C
//
func (o CjpCoefs) Sifs() (s CjpSifs) {
	c := math.Sqrt(math.Pi / 2)
	s.KF = c * (o.Ar - 3*o.Br - 8*o.E)
	s.KR = -4 * c * (2*o.Bi + o.E*math.Pi)
	s.KS = -c * (o.Ar + o.Br)
	s.KII = 2 * math.Sqrt(2*math.Pi) * o.Bi
	s.T = -o.C
	return
}

// ToMm returns a copy with all stress intensity factors scaled by 1/√1000
func (o CjpSifs) ToMm() CjpSifs {
	return CjpSifs{KF: ToMm(o.KF), KR: ToMm(o.KR), KS: ToMm(o.KS), KII: ToMm(o.KII), T: o.T}
}

// SifsFromA1B1 computes K_I and K_II from the first-order Williams coefficients (see [3]);
// the results are scaled by 1/√1000
func SifsFromA1B1(a1, b1 float64) (KI, KII float64) {
	c := math.Sqrt(2 * math.Pi)
	return ToMm(c * a1), ToMm(-c * b1)
}

// WilliamsSifs computes K_I, K_II and T from fitted Williams coefficients
//   K_I  =  √(2π)・a_1 / √1000
//   K_II = -√(2π)・b_1 / √1000
//   T    =  4・a_2
func WilliamsSifs(c Coefs) (KI, KII, T float64, err error) {
	a1, b1, err := c.Get(1)
	if err != nil {
		return nan3(err)
	}
	a2, _, err := c.Get(2)
	if err != nil {
		return nan3(err)
	}
	KI, KII = SifsFromA1B1(a1, b1)
	T = 4 * a2
	return
}

// ChenSifs computes K_I and K_II from Williams coefficients obtained with the Bueckner-Chen
// integral. Order n=1 must be available
func ChenSifs(c Coefs) (KI, KII float64, err error) {
	a1, b1, err := c.Get(1)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	KI, KII = SifsFromA1B1(a1, b1)
	return
}

func nan3(err error) (a, b, c float64, e error) {
	return math.NaN(), math.NaN(), math.NaN(), err
}
