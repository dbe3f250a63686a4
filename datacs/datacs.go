// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// datacs prints the primary accession number of every entry in a
// UniProt .dat file.
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
	inf  = flag.String("in", "", "input .dat file name, optionally gzip compressed. Defaults to stdin.")
	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	var (
		acs []string
		err error
	)
	if *inf == "" {
		acs, err = dat.AllPrimaryAccessions(os.Stdin)
	} else {
		acs, err = dat.AllPrimaryAccessionsFile(*inf)
	}
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	for _, ac := range acs {
		fmt.Fprintln(w, ac)
	}
	err = w.Flush()
	if err != nil {
		log.Fatalf("failed to write: %v", err)
	}
}
