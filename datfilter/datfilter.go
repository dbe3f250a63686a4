// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// datfilter selects UniProt .dat entries for inclusion in a sequence
// data set and writes their accessions and sequences as FASTA or as
// tab separated text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/charmbracelet/log"

	"github.com/biogo/proteinscan/dat"
)

var (
	inf     = flag.String("in", "", "input .dat file name, optionally gzip compressed. Defaults to stdin.")
	outf    = flag.String("out", "", "output file name. Defaults to stdout.")
	fullf   = flag.String("full", "", "file name to write the complete retained entries to.")
	config  = flag.String("config", "", "YAML file of filter options. Flags override the file.")
	format  = flag.String("format", "fasta", "output format: fasta or tsv.")
	width   = flag.Int("width", 60, "FASTA line width.")
	verbose = flag.Bool("verbose", false, "log debugging information.")
	help    = flag.Bool("help", false, "help prints this message.")

	opts = dat.DefaultOptions()
)

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
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *format != "fasta" && *format != "tsv" {
		log.Fatalf("unknown format %q", *format)
	}
	log.Debug("filtering", "options", fmt.Sprintf("%+v", opts))

	var (
		entries []dat.Entry
		recs    []dat.Record
	)
	if *inf == "" {
		entries, recs, err = dat.ScanFull(os.Stdin, opts.Func())
	} else {
		entries, recs, err = dat.ScanFileFull(*inf, opts.Func())
	}
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	log.Info("retained entries", "n", len(entries))

	var out *os.File
	if *outf == "" {
		out = os.Stdout
	} else if out, err = os.Create(*outf); err != nil {
		log.Fatalf("failed to open %q: %v", *outf, err)
	}
	defer out.Close()

	buf := bufio.NewWriter(out)
	if *format == "fasta" {
		err = writeFasta(buf, entries)
	} else {
		err = writeTSV(buf, entries)
	}
	if err == nil {
		err = buf.Flush()
	}
	if err != nil {
		log.Fatalf("failed to write entries: %v", err)
	}

	if *fullf != "" {
		err = writeRecords(*fullf, recs)
		if err != nil {
			log.Fatalf("failed to write full entries: %v", err)
		}
	}
}

func writeFasta(w io.Writer, entries []dat.Entry) error {
	fw := fasta.NewWriter(w, *width)
	for _, e := range entries {
		_, err := fw.Write(e.Seq())
		if err != nil {
			return fmt.Errorf("%s: %w", e.Accession, err)
		}
	}
	return nil
}

func writeTSV(w io.Writer, entries []dat.Entry) error {
	for _, e := range entries {
		_, err := fmt.Fprintf(w, "%s\t%s\n", e.Accession, e.Sequence)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeRecords(path string, recs []dat.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, r := range recs {
		_, err = r.WriteTo(w)
		if err != nil {
			return err
		}
	}
	err = w.Flush()
	if err != nil {
		return err
	}
	return f.Close()
}
