// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"gopkg.in/check.v1"
)

// entry returns a well formed record holding a sequence of n residues.
func entry(n int, lines ...string) Record {
	rec := Record{
		"ID   TEST",
		"AC   A00001;",
		"DE   RecName: Full=Test protein;",
		"OS   Homo sapiens (Human).",
		"PE   3: Inferred from homology;",
		"KW   Kinase; Transferase.",
	}
	rec = append(rec, lines...)
	rec = append(rec, "SQ   SEQUENCE")
	return append(rec, "     "+strings.Repeat("A", n))
}

func (s *S) TestFilterLength(c *check.C) {
	o := DefaultOptions()
	for i, t := range []struct {
		n    int
		want bool
	}{
		{n: o.MinLen - 1, want: false},
		{n: o.MinLen, want: true},
		{n: o.MaxLen, want: true},
		{n: o.MaxLen + 1, want: false},
	} {
		_, ok, err := Filter(entry(t.n), o)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(ok, check.Equals, t.want, check.Commentf("Test %d: length %d", i, t.n))
	}

	o.MaxLen = -1
	_, ok, err := Filter(entry(10000), o)
	c.Check(err, check.Equals, nil)
	c.Check(ok, check.Equals, true)
}

func (s *S) TestFilter(c *check.C) {
	for i, t := range []struct {
		rec  Record
		opt  func(*Options)
		want bool
	}{
		{rec: entry(100), opt: func(*Options) {}, want: true},
		{rec: append(entry(100), "XB"), opt: func(*Options) {}, want: false},
		{rec: append(entry(100), "XB"), opt: func(o *Options) { o.RestrictTo20AA = false }, want: true},
		{rec: entry(100), opt: func(o *Options) { o.MaxPE = 2 }, want: false},
		{rec: entry(100), opt: func(o *Options) { o.MaxPE = 3 }, want: true},
		{rec: entry(100), opt: func(o *Options) { o.RequireInSpecies = "homo sapiens" }, want: true},
		{rec: entry(100), opt: func(o *Options) { o.RequireInSpecies = "Mus musculus" }, want: false},
		{rec: entry(100), opt: func(o *Options) { o.ElimKWs = StringList{"kinase"} }, want: false},
		{rec: entry(100), opt: func(o *Options) { o.ElimKWs = StringList{"Signal"} }, want: true},
		{rec: entry(100), opt: func(o *Options) { o.RequireKWs = StringList{"kinase", "Transferase"} }, want: true},
		{rec: entry(100), opt: func(o *Options) { o.RequireKWs = StringList{"kinase", "signal"} }, want: false},
		{rec: entry(100), opt: func(o *Options) { o.RequireInName = "PROTEIN" }, want: true},
		{rec: entry(100), opt: func(o *Options) { o.RequireInName = "kinase" }, want: false},
		{rec: entry(100), opt: func(o *Options) { o.ExcludeStrs = StringList{"uncharacterized", "test"} }, want: false},
		{rec: entry(100, "DE   Flags: Fragment;"), opt: func(o *Options) { o.ExcludeStrs = StringList{"fragment"} }, want: false},
	} {
		o := DefaultOptions()
		t.opt(&o)
		e, ok, err := Filter(t.rec, o)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(ok, check.Equals, t.want, check.Commentf("Test %d", i))
		if ok {
			c.Check(e.Accession, check.Equals, "A00001", check.Commentf("Test %d", i))
			c.Check(e, check.DeepEquals, Entry{Accession: "A00001", Sequence: t.rec.Sequence()}, check.Commentf("Test %d", i))
		}

		// Filtering holds no state.
		e2, ok2, err2 := Filter(t.rec, o)
		c.Check(e2, check.DeepEquals, e, check.Commentf("Test %d", i))
		c.Check(ok2, check.Equals, ok, check.Commentf("Test %d", i))
		c.Check(err2, check.Equals, err, check.Commentf("Test %d", i))
	}
}

func (s *S) TestFilterMalformed(c *check.C) {
	// A missing species line is an error since the species is always examined.
	rec := Record{"AC   A1;", "DE   RecName: Full=X;", "SQ   SEQUENCE", strings.Repeat("M", 60)}
	_, _, err := Filter(rec, DefaultOptions())
	c.Check(errors.Is(err, ErrMissingField), check.Equals, true)

	// A missing PE line is only examined when MaxPE is set.
	rec = Record{"AC   A1;", "DE   RecName: Full=X;", "OS   Homo sapiens.", "SQ   SEQUENCE", strings.Repeat("M", 60)}
	_, ok, err := Filter(rec, DefaultOptions())
	c.Check(err, check.Equals, nil)
	c.Check(ok, check.Equals, true)
	o := DefaultOptions()
	o.MaxPE = 5
	_, _, err = Filter(rec, o)
	c.Check(errors.Is(err, ErrMissingField), check.Equals, true)

	// Rejection before the first missing field is not an error.
	o.MinLen = 100
	_, ok, err = Filter(rec, o)
	c.Check(err, check.Equals, nil)
	c.Check(ok, check.Equals, false)
}

func (s *S) TestLoadOptions(c *check.C) {
	dir := c.MkDir()
	for i, t := range []struct {
		yaml string
		want Options
	}{
		{
			yaml: "",
			want: DefaultOptions(),
		},
		{
			yaml: "maxLen: 1000\nmaxPE: 2\nelimKWs: Signal\nrequireKWs: [Kinase, ATP-binding]\nexcludeStrs:\n  - fragment\n  - putative\n",
			want: Options{
				RestrictTo20AA: true,
				MinLen:         50,
				MaxLen:         1000,
				MaxPE:          2,
				ElimKWs:        StringList{"Signal"},
				RequireKWs:     StringList{"Kinase", "ATP-binding"},
				ExcludeStrs:    StringList{"fragment", "putative"},
			},
		},
		{
			yaml: "restrictTo20AA: false\nrequireInSpecies: Homo sapiens\nrequireInName: kinase\n",
			want: Options{
				MinLen:           50,
				MaxLen:           400,
				RequireInSpecies: "Homo sapiens",
				RequireInName:    "kinase",
			},
		},
	} {
		path := filepath.Join(dir, "filter.yaml")
		c.Assert(os.WriteFile(path, []byte(t.yaml), 0o644), check.Equals, nil)
		o, err := LoadOptions(path)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(o, check.DeepEquals, t.want, check.Commentf("Test %d", i))
	}

	_, err := LoadOptions(filepath.Join(dir, "missing.yaml"))
	c.Check(err, check.NotNil)
}

func (s *S) TestStringListFlag(c *check.C) {
	var l StringList
	c.Check(l.Set("signal, transmembrane"), check.Equals, nil)
	c.Check(l.Set("repeat,"), check.Equals, nil)
	c.Check(l, check.DeepEquals, StringList{"signal", "transmembrane", "repeat"})
	c.Check(l.String(), check.Equals, "signal,transmembrane,repeat")
}

func (s *S) TestEntryFasta(c *check.C) {
	o := DefaultOptions()
	o.MinLen = 0
	entries, err := Scan(strings.NewReader(kinase+gtpase), o.Func())
	c.Assert(err, check.Equals, nil)
	c.Assert(entries, check.HasLen, 2)

	var buf bytes.Buffer
	w := fasta.NewWriter(&buf, 60)
	for _, e := range entries {
		_, err := w.Write(e.Seq())
		c.Assert(err, check.Equals, nil)
	}

	sc := seqio.NewScanner(fasta.NewReader(&buf, linear.NewSeq("", nil, alphabet.Protein)))
	var got []Entry
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		got = append(got, Entry{Accession: s.Name(), Sequence: s.Seq.String()})
	}
	c.Check(sc.Error(), check.Equals, nil)
	c.Check(got, check.DeepEquals, entries)
}

func (s *S) TestParseFlags(c *check.C) {
	path := filepath.Join(c.MkDir(), "filter.yaml")
	c.Assert(os.WriteFile(path, []byte("minLen: 20\nmaxLen: 300\nelimKWs: signal\n"), 0o644), check.Equals, nil)

	for i, t := range []struct {
		args []string
		want Options
	}{
		{
			args: nil,
			want: DefaultOptions(),
		},
		{
			args: []string{"-min", "10", "-elim", "repeat,zinc", "-std=false"},
			want: Options{MinLen: 10, MaxLen: 400, ElimKWs: StringList{"repeat", "zinc"}},
		},
		{
			args: []string{"-config", path},
			want: Options{RestrictTo20AA: true, MinLen: 20, MaxLen: 300, ElimKWs: StringList{"signal"}},
		},
		{
			args: []string{"-config", path, "-max", "-1", "-elim", "repeat", "-species", "sapiens"},
			want: Options{RestrictTo20AA: true, MinLen: 20, MaxLen: -1, ElimKWs: StringList{"signal", "repeat"}, RequireInSpecies: "sapiens"},
		},
	} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		config := fs.String("config", "", "")
		o := DefaultOptions()
		o.AddFlags(fs)
		err := o.ParseFlags(fs, config, t.args)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(o, check.DeepEquals, t.want, check.Commentf("Test %d", i))
	}
}
