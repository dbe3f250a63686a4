// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// datgo labels the UniProt .dat entries passing a filter with the
// presence of the ATP binding, GTP binding and metal binding GO terms.
// Output is tab separated: accession, ATP, GTP, metal and, optionally,
// the sequence.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/biogo/proteinscan/dat"
)

var (
	inf    = flag.String("in", "", "input .dat file name, optionally gzip compressed. Defaults to stdin.")
	config = flag.String("config", "", "YAML file of filter options. Flags override the file.")
	seqs   = flag.Bool("seq", false, "include the sequence in the output.")
	help   = flag.Bool("help", false, "help prints this message.")

	opts = dat.DefaultOptions()
)

type label struct {
	dat.Entry
	atp, gtp, metal dat.GOTag
}

func main() {
	opts.AddFlags(flag.CommandLine)
	err := opts.ParseFlags(flag.CommandLine, config, os.Args[1:])
	if err != nil {
		log.Fatalf("failed to read options: %v", err)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	fn := func(rec dat.Record) (label, bool, error) {
		e, ok, err := dat.Filter(rec, opts)
		if !ok || err != nil {
			return label{}, ok, err
		}
		return label{Entry: e, atp: rec.IsATPBinding(), gtp: rec.IsGTPBinding(), metal: rec.IsMetalBinding()}, true, nil
	}
	var labels []label
	if *inf == "" {
		labels, err = dat.Scan[label](os.Stdin, fn)
	} else {
		labels, err = dat.ScanFile[label](*inf, fn)
	}
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	for _, l := range labels {
		fmt.Fprintf(w, "%s\t%v\t%v\t%v", l.Accession, l.atp, l.gtp, l.metal)
		if *seqs {
			fmt.Fprintf(w, "\t%s", l.Sequence)
		}
		fmt.Fprintln(w)
	}
	err = w.Flush()
	if err != nil {
		log.Fatalf("failed to write: %v", err)
	}
}
