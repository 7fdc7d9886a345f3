// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_recorded01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recorded01. solutions read from file")

	rec, err := ReadRecorded("data/fits.yaml")
	if err != nil {
		tst.Errorf("ReadRecorded failed: %v\n", err)
		return
	}
	r := newRunner(tst, rec, []int{0, 1, 2})

	cjp := r.Cjp()
	io.Pforan("cjp = %+v\n", cjp)
	if !cjp.Ok {
		tst.Errorf("CJP fit should have succeeded: %v\n", cjp.Err)
		return
	}
	chk.Float64(tst, "T", 1e-15, cjp.T, -2)
	chk.Float64(tst, "error", 1e-15, cjp.Error, 0.25)

	wll := r.Williams()
	if !wll.Ok {
		tst.Errorf("Williams fit should have succeeded: %v\n", wll.Err)
		return
	}
	chk.Float64(tst, "K_I", 1e-15, wll.KI, math.Sqrt(2*math.Pi)/math.Sqrt(1000))
	chk.Float64(tst, "T", 1e-15, wll.T, 2)

	// recorded data are not modified
	cjp.Coefs[0] = 123
	chk.Float64(tst, "A_r", 1e-15, rec[KindCjp].X[0], 1)
}

func Test_recorded02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recorded02. missing solutions")

	r := newRunner(tst, Recorded{}, []int{0, 1, 2})
	if res := r.Williams(); res.Ok {
		tst.Errorf("Williams fit without recorded solution should have failed\n")
	}
	if _, err := ReadRecorded("data/inexistent.json"); err == nil {
		tst.Errorf("ReadRecorded should have failed\n")
	}
}
