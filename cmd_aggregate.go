// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/FerdiDoem/gocrack/aggr"
	"github.com/FerdiDoem/gocrack/fit"
	"github.com/FerdiDoem/gocrack/fld"
	"github.com/FerdiDoem/gocrack/frac"
	"github.com/FerdiDoem/gocrack/inp"
	"github.com/FerdiDoem/gocrack/out"
	"github.com/FerdiDoem/gocrack/pth"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var aggregateFlags struct {
	nodemap   string
	db        string
	threshold float64
	verbose   bool
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate <analysis.(json|yaml)>",
	Short: "Run a fracture analysis with recorded fits and line integrals",
	Long: "aggregate reads an analysis file with material, crack tip and the optional \"optimization\"\n" +
		"and \"integral\" sections. Solutions of fits are taken from its \"fits\" section and line\n" +
		"integrals along each path from its \"paths\" section.",
	Args: cobra.ExactArgs(1),
	RunE: runAggregate,
}

func init() {
	f := aggregateCmd.Flags()
	f.StringVar(&aggregateFlags.nodemap, "nodemap", "", "nodemap file; overrides the one in the analysis file")
	f.StringVar(&aggregateFlags.db, "db", "", "SQLite database to store results")
	f.Float64Var(&aggregateFlags.threshold, "threshold", aggr.DefaultThreshold, "threshold for outlier rejection")
	f.BoolVarP(&aggregateFlags.verbose, "verbose", "v", false, "show messages")
}

func runAggregate(cmd *cobra.Command, args []string) (err error) {

	// input data
	fnpath := args[0]
	dat, err := inp.ReadAnalysis(fnpath)
	if err != nil {
		return
	}
	if aggregateFlags.verbose {
		io.Pf("> Analysis %q: %s\n", dat.Key, dat.Desc)
	}

	// field
	nodemap := dat.NodemapPath()
	if aggregateFlags.nodemap != "" {
		nodemap = aggregateFlags.nodemap
	}
	field := &fld.Field{Name: dat.Key}
	if nodemap != "" {
		field, err = fld.NodemapReader{}.Field(nodemap)
		if err != nil {
			return
		}
	}

	// services
	var optimizer fit.Optimizer
	if dat.Optim != nil {
		optimizer, err = fit.ReadRecorded(fnpath)
		if err != nil {
			return
		}
	}
	var integrator pth.Integrator
	var replay *pth.Replay
	if dat.Integral != nil {
		replay, err = pth.ReadReplay(fnpath)
		if err != nil {
			return
		}
		integrator = replay
	}

	// run
	analysis, err := frac.NewMainFromAnalysis(dat, field, optimizer, integrator, aggregateFlags.verbose)
	if err != nil {
		return
	}
	if replay != nil {
		if err = replay.Check(dat.Integral.Npaths); err != nil {
			return chk.Err("file %q: %v", fnpath, err)
		}
	}
	analysis.Threshold = aggregateFlags.threshold
	err = analysis.Run()
	if err != nil {
		return
	}

	// results
	rows, err := out.Flatten(analysis.Tip(), analysis.Results())
	if err != nil {
		return
	}
	io.Pf("%s", out.Table(rows))
	if aggregateFlags.db == "" {
		return
	}
	store, err := out.NewStore(aggregateFlags.db)
	if err != nil {
		return
	}
	defer store.Close()
	id, err := store.Save(filepath.Base(field.Name), dat.CrackTip, rows)
	if err != nil {
		return chk.Err("cannot store results:\n%v", err)
	}
	io.Pf("> Results stored in %q with run id %s\n", aggregateFlags.db, id)
	return
}
