// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fld implements the in-memory representation of measured displacement fields
package fld

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Field holds a table of positions and displacements measured at the surface of a specimen
//  Note: the fracture analysis passes the field through to the fitting and integration services
type Field struct {
	Name  string               // name of source. ex: nodemap file key
	X     []float64            // [npoints] x-coordinates [mm]
	Y     []float64            // [npoints] y-coordinates [mm]
	Ux    []float64            // [npoints] x-displacements [mm]
	Uy    []float64            // [npoints] y-displacements [mm]
	Extra map[string][]float64 // other columns; e.g. strains "eps_x"
}

// Npoints returns the number of points
func (o *Field) Npoints() int {
	return len(o.X)
}

// Provider yields fields from a measurement source; e.g. a filename
type Provider interface {
	Field(source string) (*Field, error)
}

// NodemapReader implements Provider for text nodemap files
type NodemapReader struct{}

// Field reads a nodemap file
func (NodemapReader) Field(source string) (*Field, error) {
	return ReadNodemap(source)
}

// required columns
var required = []string{"x", "y", "ux", "uy"}

// ReadNodemap reads a whitespace-separated table. The first non-comment line holds the column
// keys which must include x, y, ux and uy. Lines starting with "# " are ignored
func ReadNodemap(fn string) (o *Field, err error) {

	// io.ReadTable panics on unreadable files and bad numbers
	var keys []string
	var table map[string][]float64
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = chk.Err("cannot read nodemap file %q:\n%v", fn, r)
			}
		}()
		keys, table = io.ReadTable(fn)
	}()
	if err != nil {
		return
	}

	// columns
	cols := make(map[string][]float64)
	for i, key := range keys {
		keys[i] = strings.ToLower(key)
		cols[keys[i]] = table[key]
	}
	for _, key := range required {
		if _, ok := cols[key]; !ok {
			return nil, chk.Err("nodemap file %q must have column %q", fn, key)
		}
	}
	npoints := len(cols["x"])
	for _, key := range keys {
		if len(cols[key]) != npoints {
			return nil, chk.Err("nodemap file %q: column %q has %d values but column \"x\" has %d", fn, key, len(cols[key]), npoints)
		}
	}

	// results
	o = &Field{Name: fn, X: cols["x"], Y: cols["y"], Ux: cols["ux"], Uy: cols["uy"], Extra: make(map[string][]float64)}
	for _, key := range keys {
		switch key {
		case "x", "y", "ux", "uy":
		default:
			o.Extra[key] = cols[key]
		}
	}
	return
}
