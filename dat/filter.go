// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"io/ioutil"
	"strings"

	"gopkg.in/yaml.v2"
)

// AminoAcids is the set of the 20 standard amino acid letters.
const AminoAcids = "ACDEFGHIKLMNPQRSTVWY"

var isAminoAcid [256]bool

func init() {
	for i := 0; i < len(AminoAcids); i++ {
		isAminoAcid[AminoAcids[i]] = true
	}
}

// IsStandard returns whether s is composed only of the 20 standard amino
// acid letters.
func IsStandard(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAminoAcid[s[i]] {
			return false
		}
	}
	return true
}

// StringList is a list of strings that may be given in YAML either as a
// sequence or as a single string, and on the command line as a comma
// separated list.
type StringList []string

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (l *StringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		*l = StringList{s}
		return nil
	}
	var ss []string
	err := unmarshal(&ss)
	if err != nil {
		return err
	}
	*l = ss
	return nil
}

// String implements the flag.Value interface.
func (l *StringList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set implements the flag.Value interface. Each call appends the comma
// separated elements of s.
func (l *StringList) Set(s string) error {
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			*l = append(*l, e)
		}
	}
	return nil
}

// Options specifies the criteria used by Filter. String matching is case
// insensitive.
type Options struct {
	// RestrictTo20AA rejects sequences containing letters other
	// than the 20 standard amino acids.
	RestrictTo20AA bool `yaml:"restrictTo20AA"`

	// MinLen and MaxLen give the inclusive range of accepted
	// sequence lengths. A negative MaxLen removes the upper limit.
	MinLen int `yaml:"minLen"`
	MaxLen int `yaml:"maxLen"`

	// MaxPE is the weakest accepted protein existence level.
	// Zero accepts all levels.
	MaxPE int `yaml:"maxPE"`

	// RequireInSpecies must occur in the first OS line.
	RequireInSpecies string `yaml:"requireInSpecies"`

	// ElimKWs rejects entries with any of the keywords and
	// RequireKWs rejects entries without all of them.
	ElimKWs    StringList `yaml:"elimKWs"`
	RequireKWs StringList `yaml:"requireKWs"`

	// RequireInName must occur in the descriptive name and
	// none of ExcludeStrs may.
	RequireInName string     `yaml:"requireInName"`
	ExcludeStrs   StringList `yaml:"excludeStrs"`
}

// DefaultOptions returns the default filter options: standard amino acids
// only, with lengths between 50 and 400.
func DefaultOptions() Options {
	return Options{
		RestrictTo20AA: true,
		MinLen:         50,
		MaxLen:         400,
	}
}

// LoadOptions reads YAML encoded filter options from the file at path.
// Options not given in the file take their default values.
func LoadOptions(path string) (Options, error) {
	o := DefaultOptions()
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return o, err
	}
	err = yaml.Unmarshal(b, &o)
	return o, err
}

// Func returns a ScanFunc that filters records using the receiver.
func (o Options) Func() ScanFunc[Entry] {
	return func(rec Record) (Entry, bool, error) {
		return Filter(rec, o)
	}
}

// Filter returns the primary accession number and sequence of rec if
// the entry satisfies o. Records lacking a line needed for the evaluation
// result in a non-nil error.
//
// The sequence, keyword, length, existence and species criteria are
// evaluated in that order before the name criteria, and evaluation stops
// at the first failed criterion.
func Filter(rec Record, o Options) (e Entry, ok bool, err error) {
	seq := rec.Sequence()
	kws := rec.Keywords()
	if o.RestrictTo20AA && !IsStandard(seq) {
		return e, false, nil
	}
	for _, kw := range o.ElimKWs {
		if contains(kws, strings.ToLower(kw)) {
			return e, false, nil
		}
	}
	for _, kw := range o.RequireKWs {
		if !contains(kws, strings.ToLower(kw)) {
			return e, false, nil
		}
	}
	if len(seq) < o.MinLen || (o.MaxLen >= 0 && len(seq) > o.MaxLen) {
		return e, false, nil
	}
	if o.MaxPE > 0 {
		pe, err := rec.Existence()
		if err != nil {
			return e, false, err
		}
		if pe > o.MaxPE {
			return e, false, nil
		}
	}
	species, err := rec.first(OS)
	if err != nil {
		return e, false, err
	}
	if !strings.Contains(strings.ToLower(species), strings.ToLower(o.RequireInSpecies)) {
		return e, false, nil
	}

	name, err := rec.Name()
	if err != nil {
		return e, false, err
	}
	name = strings.ToLower(name)
	if !strings.Contains(name, strings.ToLower(o.RequireInName)) {
		return e, false, nil
	}
	for _, s := range o.ExcludeStrs {
		if strings.Contains(name, strings.ToLower(s)) {
			return e, false, nil
		}
	}

	ac, err := rec.PrimaryAccession()
	if err != nil {
		return e, false, err
	}
	return Entry{Accession: ac, Sequence: seq}, true, nil
}

func contains(set []string, s string) bool {
	for _, e := range set {
		if e == s {
			return true
		}
	}
	return false
}
