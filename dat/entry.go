// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// Entry is the primary accession number and sequence of a retained record.
type Entry struct {
	Accession string
	Sequence  string
}

// Seq returns the entry as a protein sequence named by its accession.
func (e Entry) Seq() *linear.Seq {
	return linear.NewSeq(e.Accession, alphabet.BytesToLetters([]byte(e.Sequence)), alphabet.Protein)
}
