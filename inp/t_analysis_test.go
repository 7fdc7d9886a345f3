// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_integral01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integral01")

	o := NewIntegralData()
	o.Npaths = 4
	o.MaskTol = 0
	err := o.PostProcess()
	if err != nil {
		tst.Errorf("PostProcess failed: %v\n", err)
		return
	}
	chk.Float64(tst, "masktol", 1e-15, o.MaskTol, 1.0)

	ext := o.Extent(0)
	for k := 0; k < o.Npaths; k++ {
		fk := float64(k)
		chk.Float64(tst, io.Sf("left%d", k), 1e-15, ext.Left, -5-fk*0.5)
		chk.Float64(tst, io.Sf("right%d", k), 1e-15, ext.Right, 5+fk*0.5)
		chk.Float64(tst, io.Sf("bottom%d", k), 1e-15, ext.Bottom, -5-fk*0.5)
		chk.Float64(tst, io.Sf("top%d", k), 1e-15, ext.Top, 5+fk*0.5)
		chk.Float64(tst, io.Sf("Extent(%d).Top", k), 1e-15, o.Extent(k).Top, ext.Top)
		ext = o.Next(ext)
	}

	// second call has no effect
	o.Npaths = 0
	err = o.PostProcess()
	if err != nil {
		tst.Errorf("second PostProcess should be a no-op: %v\n", err)
	}
}

func Test_integral02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integral02. invalid data")

	o := NewIntegralData()
	o.Npaths = 0
	if err := o.PostProcess(); err == nil {
		tst.Errorf("npaths=0 should have failed\n")
	}

	// shrinking paths collapse
	o = NewIntegralData()
	o.DistLeft = -1
	o.Npaths = 6
	if err := o.PostProcess(); err == nil {
		tst.Errorf("collapsing sweep should have failed\n")
	}
	o.Npaths = 5
	if err := o.PostProcess(); err != nil {
		tst.Errorf("sweep with 5 paths is valid: %v\n", err)
	}

	// n=1 is required for Chen SIFs
	o = NewIntegralData()
	o.Orders = []int{-1, 2, 3}
	if err := o.PostProcess(); err == nil {
		tst.Errorf("orders without n=1 should have failed\n")
	}

	o = NewIntegralData()
	o.Orders = []int{1, 2, 2}
	if err := o.PostProcess(); err == nil {
		tst.Errorf("repeated orders should have failed\n")
	}
}

func Test_optim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("optim01")

	o := NewOptimData()
	err := o.PostProcess(-40)
	if err != nil {
		tst.Errorf("PostProcess failed: %v\n", err)
		return
	}
	chk.Float64(tst, "maxradius", 1e-15, o.MaxRadius, 20)
	chk.Float64(tst, "minradius", 1e-15, o.MinRadius, 4)
	chk.Ints(tst, "terms", o.Terms, []int{-1, 0, 1, 2, 3, 4, 5})

	// once only
	err = o.PostProcess(100)
	if err != nil {
		tst.Errorf("second PostProcess should be a no-op: %v\n", err)
	}
	chk.Float64(tst, "maxradius", 1e-15, o.MaxRadius, 20)

	if err = o.RegionErr(); err != nil {
		tst.Errorf("fitting region should not be empty: %v\n", err)
	}

	// empty region is accepted but flagged
	o = NewOptimData()
	if err = o.PostProcess(0); err != nil {
		tst.Errorf("PostProcess with tip at x=0 failed: %v\n", err)
		return
	}
	if !o.Normalized() {
		tst.Errorf("data should be normalized\n")
	}
	if err = o.RegionErr(); err == nil {
		tst.Errorf("empty fitting region should have been flagged\n")
	}
	io.Pforan("%v\n", o.RegionErr())

	o = NewOptimData()
	o.MinRadius, o.MaxRadius = 5, 3
	if err = o.PostProcess(-40); err != nil {
		tst.Errorf("PostProcess failed: %v\n", err)
		return
	}
	if err = o.RegionErr(); err == nil {
		tst.Errorf("minradius > maxradius should have been flagged\n")
	}
}

func Test_material01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material01")

	mat, err := NewElastic("steel", 210e3, 0.3, true)
	if err != nil {
		tst.Errorf("NewElastic failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", mat)
	chk.Float64(tst, "G", 1e-10, mat.G(), 210e3/2.6)
	chk.Float64(tst, "kappa", 1e-15, mat.Kappa(), 2.7/1.3)

	mat.Pstress = false
	chk.Float64(tst, "kappa", 1e-15, mat.Kappa(), 1.8)

	if _, err = NewElastic("bad", -1, 0.3, false); err == nil {
		tst.Errorf("negative E should have failed\n")
	}
	if _, err = NewElastic("bad", 1, 0.5, false); err == nil {
		tst.Errorf("nu=0.5 should have failed\n")
	}
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. yaml")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "ct-specimen.yaml")
	err := os.WriteFile(fn, []byte(`
desc: CT specimen
nodemap: nodemap.txt
material:
  name: AA2024
  prms:
    - {n: E, v: 72000}
    - {n: nu, v: 0.33}
cracktip: {x: 20.5, y: -0.3, angle: 1.2}
integral:
  npaths: 3
  distright: 1.0
optimization:
  terms: [1, 2, 3]
`), 0644)
	if err != nil {
		tst.Errorf("cannot write file: %v\n", err)
		return
	}

	a, err := ReadAnalysis(fn)
	if err != nil {
		tst.Errorf("ReadAnalysis failed: %v\n", err)
		return
	}
	chk.String(tst, a.Key, "ct-specimen")
	chk.String(tst, a.NodemapPath(), filepath.Join(dir, "nodemap.txt"))
	chk.Float64(tst, "E", 1e-15, a.Material.E, 72000)
	chk.Float64(tst, "x_tip", 1e-15, a.CrackTip.X, 20.5)
	chk.Int(tst, "npaths", a.Integral.Npaths, 3)
	chk.Float64(tst, "distright", 1e-15, a.Integral.DistRight, 1.0)
	chk.Float64(tst, "distleft (default)", 1e-15, a.Integral.DistLeft, 0.5)
	chk.Ints(tst, "orders (default)", a.Integral.Orders, []int{-1, 1, 2, 3, 4, 5})
	chk.Ints(tst, "terms", a.Optim.Terms, []int{1, 2, 3})
	chk.Float64(tst, "anglegap (default)", 1e-15, a.Optim.AngleGap, 10)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. json without optional sections")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "plate.json")
	err := os.WriteFile(fn, []byte(`{
  "material" : { "name" : "steel", "prms" : [ {"n":"E", "v":210000}, {"n":"nu", "v":0.3} ] },
  "cracktip" : { "x" : 10, "y" : 0 }
}`), 0644)
	if err != nil {
		tst.Errorf("cannot write file: %v\n", err)
		return
	}

	a, err := ReadAnalysis(fn)
	if err != nil {
		tst.Errorf("ReadAnalysis failed: %v\n", err)
		return
	}
	if a.Integral != nil || a.Optim != nil {
		tst.Errorf("optional sections must be nil\n")
	}
	chk.String(tst, a.NodemapPath(), "")

	if _, err = ReadAnalysis(filepath.Join(dir, "plate.txt")); err == nil {
		tst.Errorf("unknown extension should have failed\n")
	}
}
