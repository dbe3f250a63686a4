// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"fmt"
	"io"

	"github.com/biogo/proteinscan/textfile"
)

// ScanFunc extracts a value from a Record. If ok is false the record is
// ignored. A non-nil error aborts the scan.
type ScanFunc[T any] func(rec Record) (v T, ok bool, err error)

// Scan applies fn to each Record read from r and returns the values for
// which fn reported ok.
func Scan[T any](r io.Reader, fn ScanFunc[T]) ([]T, error) {
	res, _, err := scan(r, fn, false)
	return res, err
}

// ScanFull is like Scan but also returns the Records corresponding to each
// returned value.
func ScanFull[T any](r io.Reader, fn ScanFunc[T]) ([]T, []Record, error) {
	return scan(r, fn, true)
}

// ScanFile is like Scan but reads from the possibly gzip compressed file
// at path.
func ScanFile[T any](path string, fn ScanFunc[T]) ([]T, error) {
	f, err := textfile.Open(path, "")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Scan(f, fn)
}

// ScanFileFull is like ScanFull but reads from the possibly gzip
// compressed file at path.
func ScanFileFull[T any](path string, fn ScanFunc[T]) ([]T, []Record, error) {
	f, err := textfile.Open(path, "")
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ScanFull(f, fn)
}

func scan[T any](r io.Reader, fn ScanFunc[T], full bool) ([]T, []Record, error) {
	var (
		res  []T
		recs []Record
	)
	dr := NewReader(r)
	for i := 0; dr.Next(); i++ {
		rec := dr.Record()
		v, ok, err := fn(rec)
		if err != nil {
			return res, recs, fmt.Errorf("entry %d: %w", i, err)
		}
		if !ok {
			continue
		}
		res = append(res, v)
		if full {
			recs = append(recs, rec)
		}
	}
	return res, recs, dr.Err()
}

func primaryAccession(rec Record) (string, bool, error) {
	ac, err := rec.PrimaryAccession()
	return ac, err == nil, err
}

// AllPrimaryAccessions returns the primary accession number of every
// entry read from r.
func AllPrimaryAccessions(r io.Reader) ([]string, error) {
	return Scan[string](r, primaryAccession)
}

// AllPrimaryAccessionsFile returns the primary accession number of every
// entry in the file at path.
func AllPrimaryAccessionsFile(path string) ([]string, error) {
	return ScanFile[string](path, primaryAccession)
}
