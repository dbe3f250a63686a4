// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dat reads UniProt flat file (.dat) entries, extracts fields
// from them and filters them for inclusion in sequence data sets.
package dat

import (
	"bufio"
	"io"
	"strings"

	"github.com/biogo/proteinscan/textfile"
)

// Terminator is the line that ends each entry of a .dat file.
const Terminator = "//"

// A Record is the ordered set of lines making up a single .dat entry,
// excluding the terminator line.
type Record []string

// Reader segments a stream of .dat lines into Records. A run of lines that
// is not followed by a terminator at the end of the stream is still
// returned as a Record.
type Reader struct {
	sc  *bufio.Scanner
	rec Record
	err error
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: textfile.NewLineScanner(r)}
}

// Next advances the Reader to the next Record, which is then available
// through the Record method. It returns false when the stream is exhausted
// or an error occurs.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	var rec Record
	for r.sc.Scan() {
		line := r.sc.Text()
		if strings.TrimSpace(line) == Terminator {
			if len(rec) == 0 {
				continue
			}
			r.rec = rec
			return true
		}
		rec = append(rec, line)
	}
	r.err = r.sc.Err()
	if r.err != nil || len(rec) == 0 {
		r.rec = nil
		return false
	}
	r.rec = rec
	return true
}

// Record returns the current Record. The returned Record is not reused by
// subsequent calls to Next.
func (r *Reader) Record() Record { return r.rec }

// Err returns the first non-EOF error encountered by the Reader.
func (r *Reader) Err() error { return r.err }

// WriteTo writes rec to w in .dat form, followed by a terminator line.
func (rec Record) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, l := range rec {
		c, err := io.WriteString(w, l+"\n")
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	c, err := io.WriteString(w, Terminator+"\n")
	return n + int64(c), err
}
