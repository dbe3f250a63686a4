// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// datstats calculates and prints sequence length statistics for the
// entries of a UniProt .dat file that pass a filter. It prints the
// number of sequences, total residues, min, max, mean, standard
// deviation, median and N50, and can plot a length histogram.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/proteinscan/dat"
)

// lenStats holds the reported statistics in residues.
type lenStats struct {
	name    string // From input filename (empty, if stdin).
	totSeqs int
	size    int
	min     int
	max     int
	avg     float64
	stdDev  float64
	median  float64
	n50     int
}

var (
	inf    = flag.String("in", "", "input .dat file name, optionally gzip compressed. Defaults to stdin.")
	config = flag.String("config", "", "YAML file of filter options. Flags override the file.")
	all    = flag.Bool("all", false, "use all entries, ignoring the filter options.")
	plotf  = flag.String("plot", "", "file name for a length histogram (format from extension).")
	bins   = flag.Int("bins", 50, "number of histogram bins.")
	help   = flag.Bool("help", false, "help prints this message.")

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

	fn := func(rec dat.Record) (float64, bool, error) {
		e, ok, err := dat.Filter(rec, opts)
		return float64(len(e.Sequence)), ok, err
	}
	if *all {
		fn = func(rec dat.Record) (float64, bool, error) {
			return float64(len(rec.Sequence())), true, nil
		}
	}
	var lens []float64
	if *inf == "" {
		lens, err = dat.Scan[float64](os.Stdin, fn)
	} else {
		lens, err = dat.ScanFile[float64](*inf, fn)
	}
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	if len(lens) == 0 {
		log.Fatal("no sequences")
	}

	b := stats(lens)
	b.name = strings.Split(filepath.Base(*inf), ".")[0]
	fmt.Printf("%+v\n", b)

	if *plotf != "" {
		err = histogram(*plotf, lens, *bins)
		if err != nil {
			log.Fatalf("failed to plot histogram: %v", err)
		}
	}
}

func stats(lens []float64) lenStats {
	sorted := make([]float64, len(lens))
	copy(sorted, lens)
	sort.Float64s(sorted)

	var b lenStats
	b.totSeqs = len(sorted)
	b.size = int(floats.Sum(sorted))
	b.min = int(sorted[0])
	b.max = int(sorted[len(sorted)-1])
	b.avg, b.stdDev = stat.MeanStdDev(sorted, nil)
	b.median = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	// N50 is the length of the sequence at which the cumulative
	// length of longer sequences reaches half the total.
	var csum int
	for i := len(sorted) - 1; i >= 0; i-- {
		csum += int(sorted[i])
		if 2*csum >= b.size {
			b.n50 = int(sorted[i])
			break
		}
	}
	return b
}

func histogram(path string, lens []float64, n int) error {
	h, err := plotter.NewHist(plotter.Values(lens), n)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = "Sequence lengths"
	p.X.Label.Text = "length (residues)"
	p.Y.Label.Text = "sequences"
	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
