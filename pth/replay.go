// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pth

import (
	"github.com/FerdiDoem/gocrack/fld"
	"github.com/FerdiDoem/gocrack/inp"
	"github.com/cpmech/gosl/chk"
)

// Record holds a previously evaluated path
type Record struct {
	Result `yaml:",inline"`
	Sizes  *inp.Extent `json:"sizes" yaml:"sizes"` // realized sides; nil => as requested
}

// Replay implements Integrator by serving recorded paths in order; e.g. paths exported by
// another line-integral code
type Replay struct {
	Records []*Record // recorded paths
	next    int       // index of next record
}

// ReadReplay reads recorded paths from the "paths" section of a .json or .yaml file
func ReadReplay(fnpath string) (o *Replay, err error) {
	var data struct {
		Paths []*Record `json:"paths" yaml:"paths"`
	}
	err = inp.Decode(fnpath, &data)
	if err != nil {
		return
	}
	if len(data.Paths) == 0 {
		return nil, chk.Err("file %q has no recorded paths", fnpath)
	}
	return &Replay{Records: data.Paths}, nil
}

// Evaluate returns the next recorded path
func (o *Replay) Evaluate(field *fld.Field, mat *inp.Material, dat *inp.IntegralData, ext inp.Extent, maskTol float64, orders []int) (res *Result, realized inp.Extent, err error) {
	if o.next >= len(o.Records) {
		return nil, ext, chk.Err("no more recorded paths: %d were available", len(o.Records))
	}
	rec := o.Records[o.next]
	o.next++
	realized = ext
	if rec.Sizes != nil {
		realized = *rec.Sizes
	}
	res = &rec.Result
	return
}

// Remaining returns the number of records not yet served
func (o *Replay) Remaining() int {
	return len(o.Records) - o.next
}

// Check returns an error if the number of records not yet served differs from npaths. Extra
// records would otherwise be ignored by a sweep
func (o *Replay) Check(npaths int) error {
	if o.Remaining() != npaths {
		return chk.Err("number of recorded paths (%d) must be equal to number of paths (%d)", o.Remaining(), npaths)
	}
	return nil
}
