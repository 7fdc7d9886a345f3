// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/FerdiDoem/gocrack/ana"
	"github.com/FerdiDoem/gocrack/frac"
	"github.com/FerdiDoem/gocrack/inp"
	"github.com/FerdiDoem/gocrack/pth"
	"github.com/cpmech/gosl/io"
)

// Row holds one tagged result
type Row struct {
	Group string  // group of results; e.g. CJP_results
	Tag          // name, unit and label
	Value float64 // value; NaN => undefined
}

// Flatten converts the results of an analysis into tagged rows. Phases that did not run yield no rows
func Flatten(tip inp.CrackTip, b *frac.Bundle) (rows []Row, err error) {
	rows = appendRows(rows, GroupTip, TipTags, tip.X, tip.Y, tip.Angle)
	if b == nil {
		return
	}
	if r := b.Cjp; r != nil {
		rows = appendRows(rows, GroupCjp, CjpTags, r.Error, r.KF, r.KR, r.KS, r.KII, r.KeffYang, r.KeffNowell, r.T)
	}
	if r := b.Williams; r != nil {
		rows = appendRows(rows, GroupWilliams, WilliamsTags, r.Error, r.KI, r.KII, r.KV, r.T)
		rows = appendCoefs(rows, r.Coefs)
	}
	if s := b.Integral; s != nil {
		all := []struct {
			sifs     pth.Sifs
			williams ana.Coefs
		}{
			{s.Mean, s.WilliamsMean},
			{s.Median, s.WilliamsMedian},
			{s.RejOutMean, s.WilliamsRejOutMean},
		}
		for i, stat := range Stats {
			var tags []Tag
			tags, err = IntegralTags(stat)
			if err != nil {
				return
			}
			v := all[i].sifs
			rows = appendRows(rows, GroupIntegral, tags, v.J, v.KJ, v.KIinterac, v.KIIinterac, v.TInterac, v.KIChen, v.KIIChen, v.TChen, v.TSdm)
			rows, err = appendIntCoefs(rows, all[i].williams, stat)
			if err != nil {
				return
			}
		}
	}
	return
}

// Table returns a text table with the rows
func Table(rows []Row) (l string) {
	wg, wt, wu := 5, 3, 4
	for _, r := range rows {
		wg = imax(wg, len(r.Group))
		wt = imax(wt, len(r.Tag.Tag))
		wu = imax(wu, len(r.Unit))
	}
	fmtS := io.Sf("%%-%ds  %%-%ds  %%-%ds  %%s\n", wg, wt, wu)
	l = io.Sf(fmtS, "group", "tag", "unit", "value")
	for _, r := range rows {
		val := "NaN"
		if !math.IsNaN(r.Value) {
			val = io.Sf("%.8g", r.Value)
		}
		l += io.Sf(fmtS, r.Group, r.Tag.Tag, r.Unit, val)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func appendRows(rows []Row, group string, tags []Tag, values ...float64) []Row {
	for i, t := range tags {
		rows = append(rows, Row{Group: group, Tag: t, Value: values[i]})
	}
	return rows
}

func appendCoefs(rows []Row, c ana.Coefs) []Row {
	for i, n := range c.Orders {
		rows = append(rows, Row{Group: GroupWilliams, Tag: CoefTag("a", n), Value: c.A[i]})
	}
	for i, n := range c.Orders {
		rows = append(rows, Row{Group: GroupWilliams, Tag: CoefTag("b", n), Value: c.B[i]})
	}
	return rows
}

func appendIntCoefs(rows []Row, c ana.Coefs, stat string) ([]Row, error) {
	for _, prefix := range []string{"a", "b"} {
		vals := c.A
		if prefix == "b" {
			vals = c.B
		}
		for i, n := range c.Orders {
			tag, err := IntCoefTag(prefix, n, stat)
			if err != nil {
				return rows, err
			}
			rows = append(rows, Row{Group: GroupWllmsInt, Tag: tag, Value: vals[i]})
		}
	}
	return rows, nil
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
