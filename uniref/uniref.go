// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uniref extracts sequence clusters from UniRef XML files.
//
// The XML is not parsed. Each line is examined for the tags of the UniRef
// entry and member elements and their property children, on the
// assumption that each tag is on its own line. This keeps memory use
// bounded by the size of a single cluster however large the input.
package uniref

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/biogo/proteinscan/textfile"
)

const (
	// DefaultEncoding is the character set of UniRef XML files.
	DefaultEncoding = "ISO-8859-1"

	// DefaultProgress is the default line interval between
	// progress reports.
	DefaultProgress = 100000000
)

// Summary holds the counts accumulated during an extraction.
type Summary struct {
	Lines      int // Lines read.
	Entries    int // Entry elements opened.
	Accessions int // UniProtKB accessions written.
	Clusters   int // Cluster lines written.
	Mismatches int // Entries whose member count did not match.
}

// Extractor writes the UniProtKB accessions of the members of each UniRef
// entry as a line of space separated accessions.
type Extractor struct {
	// Log receives progress, warning and summary
	// messages. If nil, messages are written to stderr.
	Log *log.Logger

	// ProgressEvery is the number of lines between progress
	// reports. If zero, DefaultProgress is used. Negative
	// values disable progress reports.
	ProgressEvery int
}

var property = regexp.MustCompile(`<property.*type="(.*?)".*value="(.*?)"`)

type state int

const (
	idle state = iota
	inEntry
	inMember
)

// cluster is the accumulator for an open entry.
type cluster struct {
	members  int
	expected int
	declared bool
	accs     []string
	member   []string
}

func (c *cluster) reset() {
	c.members = 0
	c.expected = 0
	c.declared = false
	c.accs = c.accs[:0]
}

// Extract reads UniRef XML from in and writes one line to out for each
// entry with at least one UniProtKB member accession. Entries where the
// number of members seen differs from the declared member count are
// reported to the log and counted, but are otherwise handled normally.
func (x *Extractor) Extract(in io.Reader, out io.Writer) (Summary, error) {
	logger := x.Log
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	every := x.ProgressEvery
	if every == 0 {
		every = DefaultProgress
	}

	var (
		sum Summary
		st  state
		cl  cluster
	)
	w := bufio.NewWriter(out)
	sc := textfile.NewLineScanner(in)
	for i := 0; sc.Scan(); i++ {
		line := sc.Text()
		sum.Lines++
		if every > 0 && i%every == 0 {
			logger.Info("progress", "line", i, "text", strings.TrimSpace(line))
		}

		switch {
		case strings.Contains(line, "<entry"):
			st = inEntry
			cl.reset()
			sum.Entries++

		case strings.Contains(line, "</entry"):
			if st == idle {
				continue
			}
			st = idle
			if !cl.declared || cl.members != cl.expected {
				sum.Mismatches++
				var expected interface{} = "none"
				if cl.declared {
					expected = cl.expected
				}
				logger.Warn("member count mismatch", "count", cl.members, "expected", expected, "line", i+1)
			}
			sum.Accessions += len(cl.accs)
			if len(cl.accs) == 0 {
				continue
			}
			_, err := fmt.Fprintln(w, strings.Join(cl.accs, " "))
			if err != nil {
				return sum, err
			}
			sum.Clusters++

		case strings.Contains(line, "<member"), strings.Contains(line, "<representativeMember"):
			if st == idle {
				continue
			}
			st = inMember
			cl.member = cl.member[:0]

		case strings.Contains(line, "</member"), strings.Contains(line, "</representativeMember"):
			if st != inMember {
				continue
			}
			st = inEntry
			cl.accs = append(cl.accs, cl.member...)
			cl.members++

		case strings.Contains(line, "<property"):
			m := property.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			v := strings.TrimSpace(m[2])
			switch strings.ToLower(m[1]) {
			case "member count":
				if st == idle {
					continue
				}
				n, err := strconv.Atoi(v)
				if err != nil {
					return sum, fmt.Errorf("uniref: line %d: invalid member count: %w", i+1, err)
				}
				cl.expected = n
				cl.declared = true
			case "uniprotkb accession":
				if st == inMember {
					cl.member = append(cl.member, v)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return sum, err
	}
	if err := w.Flush(); err != nil {
		return sum, err
	}
	logger.Info("extracted clusters", "entries", sum.Entries, "accessions", sum.Accessions, "mismatches", sum.Mismatches)
	return sum, nil
}

// ExtractFile extracts clusters from the possibly gzip compressed UniRef
// XML file at inPath, decoded from the enc character set, to a newly
// created cluster file at outPath. If enc is empty, DefaultEncoding is used.
func (x *Extractor) ExtractFile(inPath, outPath, enc string) (sum Summary, err error) {
	if enc == "" {
		enc = DefaultEncoding
	}
	in, err := textfile.Open(inPath, enc)
	if err != nil {
		return sum, err
	}
	defer in.Close()
	out, err := os.Create(outPath)
	if err != nil {
		return sum, err
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()
	return x.Extract(in, out)
}

// ClusterReader reads cluster files written by an Extractor.
type ClusterReader struct {
	sc      *bufio.Scanner
	cluster []string
}

// NewClusterReader returns a ClusterReader reading from r.
func NewClusterReader(r io.Reader) *ClusterReader {
	return &ClusterReader{sc: textfile.NewLineScanner(r)}
}

// Next advances to the next non-blank line of the cluster file.
func (r *ClusterReader) Next() bool {
	for r.sc.Scan() {
		r.cluster = strings.Fields(r.sc.Text())
		if len(r.cluster) != 0 {
			return true
		}
	}
	r.cluster = nil
	return false
}

// Cluster returns the accessions of the current cluster.
func (r *ClusterReader) Cluster() []string { return r.cluster }

// Err returns the first non-EOF error encountered by the ClusterReader.
func (r *ClusterReader) Err() error { return r.sc.Err() }
