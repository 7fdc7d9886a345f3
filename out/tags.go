// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the naming, tabulation and storage of results of fracture analyses
package out

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Tag holds the name, unit and label (LaTeX) of one result quantity
type Tag struct {
	Tag   string `json:"tag"   yaml:"tag"`
	Unit  string `json:"unit"  yaml:"unit"`
	Label string `json:"label" yaml:"label"`
}

// groups of results
const (
	GroupTip      = "Crack_tip"
	GroupCjp      = "CJP_results"
	GroupWilliams = "Williams_fit_results"
	GroupIntegral = "SIFs_integral"
	GroupWllmsInt = "Williams_int_results"
)

// statistics over paths
const (
	StatMean   = "mean"
	StatMedian = "median"
	StatWoOut  = "mean_wo_outliers"
)

// Stats holds all statistics in output order
var Stats = []string{StatMean, StatMedian, StatWoOut}

// units
const (
	unitK    = `$MPa\sqrt{m}$`
	unitT    = `$MPa$`
	unitJ    = `$N/mm$`
	unitMm   = `$mm$`
	unitNone = `-`
)

// TipTags holds the tags of the crack tip
var TipTags = []Tag{
	{"Crack_tip_x", unitMm, `Crack tip $x_{ct}$`},
	{"Crack_tip_y", unitMm, `Crack tip $y_{ct}$`},
	{"Crack_tip_phi", `$^o$`, `Crack tip $\phi_{ct}$`},
}

// CjpTags holds the tags of the CJP fit
var CjpTags = []Tag{
	{"Error", unitNone, `Error`},
	{"K_F", unitK, `$K_{F,CJP}$`},
	{"K_R", unitK, `$K_{R,CJP}$`},
	{"K_S", unitK, `$K_{S,CJP}$`},
	{"K_II", unitK, `$K_{II,CJP}$`},
	{"K_eff_Yang", unitK, `$K_{eff,Yang}$`},
	{"K_eff_Nowell", unitK, `$K_{eff,Nowell}$`},
	{"T", unitT, `$T_{CJP}$`},
}

// WilliamsTags holds the tags of the Williams fit; the coefficients are given by CoefTag
var WilliamsTags = []Tag{
	{"Error", unitNone, `Error`},
	{"K_I", unitK, `$K_{I,Wllms}$`},
	{"K_II", unitK, `$K_{II,Wllms}$`},
	{"K_V", unitK, `$K_{V,Wllms}$`},
	{"T", unitT, `$T_{Wllms}$`},
}

// integral quantities in output order: key, unit, label
var integralKeys = []struct{ key, unit, sym string }{
	{"J", unitJ, `J_{PthInt}`},
	{"K_J", unitK, `K_{J,PthInt}`},
	{"K_I_interac", unitK, `K_{I,intrc,PthInt}`},
	{"K_II_interac", unitK, `K_{II,intrc,PthInt}`},
	{"T_interac", unitT, `T_{intrc,PthInt}`},
	{"K_I_Chen", unitK, `K_{I,Chen,PthInt}`},
	{"K_II_Chen", unitK, `K_{II,Chen,PthInt}`},
	{"T_Chen", unitT, `T_{Chen,PthInt}`},
	{"T_SDM", unitT, `T_{SDM,PthInt}`},
}

// IntegralTags returns the tags of the line integral results for one statistic
func IntegralTags(stat string) (tags []Tag, err error) {
	prefix, err := statPrefix(stat)
	if err != nil {
		return
	}
	tags = make([]Tag, len(integralKeys))
	for i, k := range integralKeys {
		tags[i] = Tag{Tag: k.key + "_" + stat, Unit: k.unit, Label: io.Sf("%s $%s$", prefix, k.sym)}
	}
	if stat == StatWoOut {
		tags[2].Label = `$\overline{K_I}_{,cpy-Int.}$`
	}
	return
}

// CoefTag returns the tag of the Williams coefficient prefix_n; e.g. a_1 or b_2
//  Note: the unit is MPa m^(1-n/2)
func CoefTag(prefix string, n int) Tag {
	return Tag{
		Tag:   io.Sf("%s_%d", prefix, n),
		Unit:  io.Sf("$MPa m^{%s}$", pyFloat(1-0.5*float64(n))),
		Label: io.Sf("$%s_{%d}$", prefix, n),
	}
}

// IntCoefTag returns the tag of the Williams coefficient prefix_n obtained with the Bueckner-Chen
// integral and aggregated with the given statistic
func IntCoefTag(prefix string, n int, stat string) (tag Tag, err error) {
	sp, err := statPrefix(stat)
	if err != nil {
		return
	}
	tag = CoefTag(prefix, n)
	tag.Tag += "_" + stat
	tag.Label = io.Sf("%s $%s_{%d,PthInt}$", sp, prefix, n)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func statPrefix(stat string) (string, error) {
	switch stat {
	case StatMean:
		return "Mean", nil
	case StatMedian:
		return "Median", nil
	case StatWoOut:
		return `Mean$_{wo\\ outlrs}$`, nil
	}
	return "", chk.Err("statistic %q is not available. options are %v", stat, Stats)
}

// pyFloat formats x with at least one decimal; e.g. 1 => "1.0" and 0.5 => "0.5"
func pyFloat(x float64) string {
	s := io.Sf("%g", x)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}
