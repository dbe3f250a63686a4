// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textfile opens possibly compressed text files and decodes them
// to UTF-8.
package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// MaxLineLen is the longest line a LineScanner will accept.
const MaxLineLen = 16 << 20

type file struct {
	io.Reader
	closers []io.Closer
}

// Close closes the decompressor, if any, and the underlying file.
func (f *file) Close() error {
	var err error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if cerr := f.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens the file at path for reading. If path ends in ".gz" the
// contents are gzip decompressed. If enc is not empty and does not name
// UTF-8, the text is decoded from the named IANA character set. The caller
// must Close the returned io.ReadCloser.
func Open(path, enc string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := &file{Reader: f, closers: []io.Closer{f}}
	if strings.HasSuffix(path, ".gz") {
		z, err := pgzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("textfile: %s: %w", path, err)
		}
		r.Reader = z
		r.closers = append(r.closers, z)
	}
	if !isUTF8(enc) {
		e, err := ianaindex.IANA.Encoding(enc)
		if err == nil && e == nil {
			err = fmt.Errorf("unsupported encoding %q", enc)
		}
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("textfile: %w", err)
		}
		r.Reader = transform.NewReader(r.Reader, e.NewDecoder())
	}
	return r, nil
}

func isUTF8(enc string) bool {
	switch strings.ToLower(enc) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// NewLineScanner returns a bufio.Scanner splitting r into lines and
// accepting lines up to MaxLineLen bytes.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), MaxLineLen)
	return sc
}
