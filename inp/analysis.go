// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from analysis (.json or .yaml) files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Analysis holds all input data of one fracture analysis
//  Note: Integral == nil => no line integrals; Optim == nil => no fitting
type Analysis struct {

	// input
	Desc     string        `json:"desc"         yaml:"desc"`         // description of analysis
	Nodemap  string        `json:"nodemap"      yaml:"nodemap"`      // file with displacement field; relative to the analysis file
	Material *Material     `json:"material"     yaml:"material"`     // material data
	CrackTip CrackTip      `json:"cracktip"     yaml:"cracktip"`     // crack tip information
	Integral *IntegralData `json:"integral"     yaml:"integral"`     // line integrals sweep
	Optim    *OptimData    `json:"optimization" yaml:"optimization"` // fitting of displacement models

	// derived
	Dir string // directory of analysis file
	Key string // analysis key; e.g. ct-specimen.yaml => ct-specimen
}

// ReadAnalysis reads analysis data from a .json or .yaml file
func ReadAnalysis(fnpath string) (o *Analysis, err error) {
	o = new(Analysis)
	err = Decode(fnpath, o)
	if err != nil {
		return nil, err
	}
	o.Dir = filepath.Dir(fnpath)
	o.Key = io.FnKey(filepath.Base(fnpath))
	if o.Material == nil {
		return nil, chk.Err("analysis file %q must have material data", fnpath)
	}
	err = o.Material.Init()
	if err != nil {
		return nil, err
	}
	return
}

// NodemapPath returns the full path of the nodemap file or "" if not given
func (o *Analysis) NodemapPath() string {
	if o.Nodemap == "" {
		return ""
	}
	if filepath.IsAbs(o.Nodemap) {
		return o.Nodemap
	}
	return filepath.Join(o.Dir, o.Nodemap)
}

// Decode decodes a .json, .yaml or .yml file into v
func Decode(fnpath string, v interface{}) (err error) {
	b, err := os.ReadFile(os.ExpandEnv(fnpath))
	if err != nil {
		return chk.Err("cannot read file %q:\n%v", fnpath, err)
	}
	switch strings.ToLower(filepath.Ext(fnpath)) {
	case ".json":
		err = json.Unmarshal(b, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		return chk.Err("cannot decode %q: extension must be .json, .yaml or .yml", fnpath)
	}
	if err != nil {
		return chk.Err("cannot decode file %q:\n%v", fnpath, err)
	}
	return
}
