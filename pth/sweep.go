// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pth

import (
	"github.com/FerdiDoem/gocrack/fld"
	"github.com/FerdiDoem/gocrack/inp"
	"github.com/cpmech/gosl/chk"
)

// Sweep evaluates the line integrals along dat.Npaths nested paths. The first path has the sides
// given in dat; the next ones are obtained by moving left and bottom by -dist and right and top
// by +dist. The first error returned by the integrator aborts the sweep
//  Note: progress may be nil
func Sweep(ig Integrator, field *fld.Field, mat *inp.Material, dat *inp.IntegralData, progress ProgressFcn) (series *Series, err error) {
	if ig == nil {
		return nil, chk.Err("line integrator is required to sweep paths")
	}
	if dat == nil || !dat.Normalized() {
		return nil, chk.Err("integral data must be normalized before sweeping paths")
	}
	series = NewSeries(dat.Npaths, dat.Orders)
	ext := dat.Extent(0)
	for k := 0; k < dat.Npaths; k++ {
		res, realized, e := ig.Evaluate(field, mat, dat, ext, dat.MaskTol, dat.Orders)
		if e != nil {
			return nil, chk.Err("line integral along path %d failed:\n%v", k, e)
		}
		if res == nil {
			return nil, chk.Err("line integral along path %d returned no results", k)
		}
		err = series.Append(res, ext, realized)
		if err != nil {
			return nil, err
		}
		ext = dat.Next(ext)
		if progress != nil {
			progress(k+1, dat.Npaths)
		}
	}
	return
}
