// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// unirefclust reads a UniRef XML file and writes a cluster file. Each line
// of the cluster file is a space separated list of the UniProtKB accession
// numbers grouped into a cluster by UniRef. Clusters without UniProtKB
// members are omitted.
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/biogo/proteinscan/uniref"
)

var (
	inf      = flag.String("in", "", "input UniRef XML file name, optionally gzip compressed (required).")
	outf     = flag.String("out", "", "output cluster file name (required).")
	enc      = flag.String("encoding", uniref.DefaultEncoding, "character set of the input.")
	progress = flag.Int("progress", uniref.DefaultProgress, "lines between progress reports (negative to disable).")
	help     = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *inf == "" || *outf == "" {
		flag.Usage()
		os.Exit(1)
	}

	x := uniref.Extractor{
		Log:           log.Default(),
		ProgressEvery: *progress,
	}
	sum, err := x.ExtractFile(*inf, *outf, *enc)
	if err != nil {
		log.Fatalf("failed to extract clusters from %q: %v", *inf, err)
	}
	if sum.Mismatches != 0 {
		log.Warn("entries with member count mismatches", "n", sum.Mismatches)
	}
}
