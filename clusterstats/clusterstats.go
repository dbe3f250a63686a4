// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// clusterstats prints cluster size statistics for a cluster file
// written by unirefclust, and can plot a cluster size histogram.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/proteinscan/textfile"
	"github.com/biogo/proteinscan/uniref"
)

type sizeStats struct {
	clusters   int
	accessions int
	singletons int
	max        int
	avg        float64
	stdDev     float64
	median     float64
}

var (
	inf   = flag.String("in", "", "input cluster file name, optionally gzip compressed. Defaults to stdin.")
	plotf = flag.String("plot", "", "file name for a cluster size histogram (format from extension).")
	bins  = flag.Int("bins", 50, "number of histogram bins.")
	help  = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	var in io.Reader = os.Stdin
	if *inf != "" {
		f, err := textfile.Open(*inf, "")
		if err != nil {
			log.Fatalf("failed to open %q: %v", *inf, err)
		}
		defer f.Close()
		in = f
	}

	sizes, err := clusterSizes(in)
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	if len(sizes) == 0 {
		log.Fatal("no clusters")
	}
	fmt.Printf("%+v\n", stats(sizes))

	if *plotf != "" {
		h, err := plotter.NewHist(plotter.Values(sizes), *bins)
		if err != nil {
			log.Fatalf("failed to bin cluster sizes: %v", err)
		}
		p := plot.New()
		p.Title.Text = "Cluster sizes"
		p.X.Label.Text = "accessions"
		p.Y.Label.Text = "clusters"
		p.Add(h)
		err = p.Save(6*vg.Inch, 4*vg.Inch, *plotf)
		if err != nil {
			log.Fatalf("failed to plot histogram: %v", err)
		}
	}
}

func clusterSizes(r io.Reader) ([]float64, error) {
	var sizes []float64
	cr := uniref.NewClusterReader(r)
	for cr.Next() {
		sizes = append(sizes, float64(len(cr.Cluster())))
	}
	return sizes, cr.Err()
}

func stats(sizes []float64) sizeStats {
	sorted := make([]float64, len(sizes))
	copy(sorted, sizes)
	sort.Float64s(sorted)

	var b sizeStats
	b.clusters = len(sorted)
	b.accessions = int(floats.Sum(sorted))
	b.max = int(sorted[len(sorted)-1])
	for _, s := range sorted {
		if s != 1 {
			break
		}
		b.singletons++
	}
	b.avg, b.stdDev = stat.MeanStdDev(sorted, nil)
	b.median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return b
}
