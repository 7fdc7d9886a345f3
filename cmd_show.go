// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/FerdiDoem/gocrack/out"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <db> [run-id]",
	Short: "Show stored results; without run-id, list all runs",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runShow,
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags, units and labels of all results",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func runShow(cmd *cobra.Command, args []string) (err error) {
	store, err := out.NewStore(args[0])
	if err != nil {
		return
	}
	defer store.Close()

	// list runs
	if len(args) == 1 {
		ids, err := store.Runs()
		if err != nil {
			return err
		}
		for _, id := range ids {
			io.Pf("%s\n", id)
		}
		return nil
	}

	// one run
	run, err := store.Load(args[1])
	if err != nil {
		return
	}
	io.Pf("run     = %s\n", run.Id)
	io.Pf("nodemap = %s\n", run.Nodemap)
	io.Pf("created = %v\n", run.CreatedAt)
	io.Pf("%s", out.Table(run.Rows))
	return
}

func runTags(cmd *cobra.Command, args []string) (err error) {
	pf := func(group string, tags []out.Tag) {
		for _, t := range tags {
			io.Pf("%-22s %-32s %-16s %s\n", group, t.Tag, t.Unit, t.Label)
		}
	}
	pf(out.GroupTip, out.TipTags)
	pf(out.GroupCjp, out.CjpTags)
	pf(out.GroupWilliams, append(append([]out.Tag{}, out.WilliamsTags...), out.CoefTag("a", 1), out.CoefTag("b", 1)))
	for _, stat := range out.Stats {
		tags, err := out.IntegralTags(stat)
		if err != nil {
			return err
		}
		pf(out.GroupIntegral, tags)
	}
	for _, stat := range out.Stats {
		tag, err := out.IntCoefTag("a", 1, stat)
		if err != nil {
			return err
		}
		pf(out.GroupWllmsInt, []out.Tag{tag})
	}
	return
}
