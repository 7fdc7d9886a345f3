// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds the (read-only) material data of the specimen
type Material struct {

	// input
	Name  string     `json:"name"  yaml:"name"`  // name of material. ex: AA2024-T3
	Model string     `json:"model" yaml:"model"` // name of model. ex: "elast"
	Prms  dbf.Params `json:"prms"  yaml:"prms"`  // parameters. ex: E, nu, pstress

	// derived
	E       float64 // Young's modulus [MPa]
	Nu      float64 // Poisson's coefficient
	Pstress bool    // plane-stress (otherwise plane-strain)
}

// NewElastic returns an initialised linear elastic material
func NewElastic(name string, E, nu float64, pstress bool) (o *Material, err error) {
	ps := 0.0
	if pstress {
		ps = 1
	}
	o = &Material{Name: name, Model: "elast", Prms: dbf.Params{
		&dbf.P{N: "E", V: E},
		&dbf.P{N: "nu", V: nu},
		&dbf.P{N: "pstress", V: ps},
	}}
	err = o.Init()
	return
}

// Init initialises derived values
func (o *Material) Init() (err error) {
	if o.Model == "" {
		o.Model = "elast"
	}
	if o.Model != "elast" {
		return chk.Err("material %q: model %q is not available; only \"elast\" is", o.Name, o.Model)
	}
	o.Pstress = true
	for _, p := range o.Prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "pstress":
			o.Pstress = p.V > 0
		default:
			return chk.Err("material %q: parameter %q is invalid", o.Name, p.N)
		}
	}
	if o.E <= 0 {
		return chk.Err("material %q: Young's modulus must be positive. E = %g is invalid", o.Name, o.E)
	}
	if o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("material %q: Poisson's coefficient must be in [0, 0.5). nu = %g is invalid", o.Name, o.Nu)
	}
	return
}

// G returns the shear modulus
func (o Material) G() float64 {
	return o.E / (2.0 * (1.0 + o.Nu))
}

// Kappa returns Kolosov's constant κ
func (o Material) Kappa() float64 {
	if o.Pstress {
		return (3.0 - o.Nu) / (1.0 + o.Nu)
	}
	return 3.0 - 4.0*o.Nu
}

// String returns a short description
func (o Material) String() string {
	state := "plane-strain"
	if o.Pstress {
		state = "plane-stress"
	}
	return io.Sf("%s (%s): E=%g nu=%g %s", o.Name, o.Model, o.E, o.Nu, state)
}

// CrackTip holds the crack tip position and orientation in the coordinate system of the measurement
type CrackTip struct {
	X     float64 `json:"x"     yaml:"x"`     // x-coordinate [mm]
	Y     float64 `json:"y"     yaml:"y"`     // y-coordinate [mm]
	Angle float64 `json:"angle" yaml:"angle"` // angle of crack path [deg]
}
