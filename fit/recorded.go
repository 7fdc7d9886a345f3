// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"github.com/FerdiDoem/gocrack/fld"
	"github.com/FerdiDoem/gocrack/inp"
	"github.com/cpmech/gosl/chk"
)

// Recorded implements Optimizer by returning solutions computed elsewhere; kind => solution
type Recorded map[string]*Solution

// ReadRecorded reads solutions from the "fits" section of a .json or .yaml file
//  Note: a missing section yields an empty set; i.e. all fits will fail
func ReadRecorded(fnpath string) (o Recorded, err error) {
	var data struct {
		Fits Recorded `json:"fits" yaml:"fits"`
	}
	err = inp.Decode(fnpath, &data)
	if err != nil {
		return
	}
	if data.Fits == nil {
		data.Fits = make(Recorded)
	}
	for kind := range data.Fits {
		if _, ok := ncoefs[kind]; !ok {
			return nil, chk.Err("file %q has solution for unknown model kind %q", fnpath, kind)
		}
	}
	return data.Fits, nil
}

// Optimize returns the recorded solution
func (o Recorded) Optimize(kind string, field *fld.Field, mat *inp.Material, opts *inp.OptimData) (*Solution, error) {
	sol, ok := o[kind]
	if !ok || sol == nil {
		return nil, chk.Err("there is no recorded solution for model kind %q", kind)
	}
	return &Solution{X: append([]float64{}, sol.X...), Cost: sol.Cost}, nil
}
