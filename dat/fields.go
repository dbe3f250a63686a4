// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Line codes used by the field extractors.
const (
	AC = "AC" // Accession numbers.
	DE = "DE" // Description.
	PE = "PE" // Protein existence.
	KW = "KW" // Keywords.
	DR = "DR" // Database cross-references.
	OS = "OS" // Organism species.
	SQ = "SQ" // Sequence header.
)

// ErrMissingField is the error wrapped by a FieldError when a record
// lacks a required line.
var ErrMissingField = errors.New("dat: missing field")

// FieldError is returned when a field cannot be extracted from a record.
type FieldError struct {
	Code   string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("dat: %s line: %s", e.Code, e.Reason)
}

func (e *FieldError) Unwrap() error { return e.Err }

func missing(code string) error {
	return &FieldError{Code: code, Reason: "not found", Err: ErrMissingField}
}

// LinesWithCode returns the lines of rec that begin with code followed by
// a space, in order, with the code and following white space removed.
func (rec Record) LinesWithCode(code string) []string {
	var lines []string
	prefix := code + " "
	for _, l := range rec {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, prefix) {
			lines = append(lines, strings.TrimLeftFunc(l[len(code):], unicode.IsSpace))
		}
	}
	return lines
}

func (rec Record) first(code string) (string, error) {
	lines := rec.LinesWithCode(code)
	if len(lines) == 0 {
		return "", missing(code)
	}
	return lines[0], nil
}

// PrimaryAccession returns the first accession number listed in rec.
func (rec Record) PrimaryAccession() (string, error) {
	l, err := rec.first(AC)
	if err != nil {
		return "", err
	}
	return strings.SplitN(l, ";", 2)[0], nil
}

// Existence returns the protein existence level of rec, 1 to 5 with
// lower values indicating stronger evidence.
func (rec Record) Existence() (int, error) {
	l, err := rec.first(PE)
	if err != nil {
		return 0, err
	}
	if l == "" || l[0] < '0' || '9' < l[0] {
		return 0, &FieldError{Code: PE, Reason: fmt.Sprintf("no evidence level in %q", l)}
	}
	return int(l[0] - '0'), nil
}

// Name returns the descriptive name of the protein. Any flags given on
// later DE lines are appended in sorted order within parentheses.
func (rec Record) Name() (string, error) {
	lines := rec.LinesWithCode(DE)
	if len(lines) == 0 {
		return "", missing(DE)
	}
	f := strings.Split(lines[0], "=")
	if len(f) < 2 {
		return "", &FieldError{Code: DE, Reason: fmt.Sprintf("no name in %q", lines[0])}
	}
	name := strings.TrimRight(f[1], ";")

	set := make(map[string]struct{})
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "Flags") {
			continue
		}
		for _, flag := range strings.Fields(l)[1:] {
			flag = strings.TrimRight(flag, ";")
			if flag != "" {
				set[flag] = struct{}{}
			}
		}
	}
	if len(set) == 0 {
		return name, nil
	}
	flags := make([]string, 0, len(set))
	for fl := range set {
		flags = append(flags, fl)
	}
	sort.Strings(flags)
	return name + " (" + strings.Join(flags, "; ") + ")", nil
}

// Sequence returns the amino acid sequence held in the lines following
// the SQ header line of rec.
func (rec Record) Sequence() string {
	var parts []string
	header := SQ + " "
	for i := len(rec) - 1; i >= 0; i-- {
		l := strings.TrimSpace(rec[i])
		if strings.HasPrefix(l, header) {
			break
		}
		parts = append(parts, strings.ReplaceAll(l, " ", ""))
	}
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
	}
	return sb.String()
}

// GOLines returns the Gene Ontology cross-reference lines of rec.
func (rec Record) GOLines() []string {
	var lines []string
	for _, l := range rec.LinesWithCode(DR) {
		if strings.HasPrefix(l, "GO;") {
			lines = append(lines, l)
		}
	}
	return lines
}

// GOTag labels the presence of a GO term in a record.
type GOTag bool

const (
	Neg GOTag = false
	Pos GOTag = true
)

func (t GOTag) String() string {
	if t {
		return "pos"
	}
	return "neg"
}

// Gene Ontology terms as they appear in DR lines.
const (
	ATPBinding   = "GO:0005524;"
	GTPBinding   = "GO:0005525;"
	MetalBinding = "GO:0046872;"
)

// GOTermPresent returns Pos if term occurs in any GO line of rec.
func (rec Record) GOTermPresent(term string) GOTag {
	for _, l := range rec.GOLines() {
		if strings.Contains(l, term) {
			return Pos
		}
	}
	return Neg
}

func (rec Record) IsATPBinding() GOTag   { return rec.GOTermPresent(ATPBinding) }
func (rec Record) IsGTPBinding() GOTag   { return rec.GOTermPresent(GTPBinding) }
func (rec Record) IsMetalBinding() GOTag { return rec.GOTermPresent(MetalBinding) }

// Keywords returns the lower-cased keywords of rec in the order listed.
func (rec Record) Keywords() []string {
	var kws []string
	for _, l := range rec.LinesWithCode(KW) {
		for _, kw := range strings.Split(l, ";") {
			kw = strings.TrimSpace(kw)
			kw = strings.TrimSpace(strings.TrimRight(kw, "."))
			if kw != "" {
				kws = append(kws, strings.ToLower(kw))
			}
		}
	}
	return kws
}
