// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import "flag"

// AddFlags registers flags on fs that set the fields of o. The current
// values of o are used as the flag defaults. List flags append to the
// existing list.
func (o *Options) AddFlags(fs *flag.FlagSet) {
	fs.BoolVar(&o.RestrictTo20AA, "std", o.RestrictTo20AA, "accept only sequences of the 20 standard amino acids.")
	fs.IntVar(&o.MinLen, "min", o.MinLen, "minimum sequence length.")
	fs.IntVar(&o.MaxLen, "max", o.MaxLen, "maximum sequence length (negative for no limit).")
	fs.IntVar(&o.MaxPE, "maxpe", o.MaxPE, "weakest accepted protein existence level (0 for no limit).")
	fs.StringVar(&o.RequireInSpecies, "species", o.RequireInSpecies, "text required in the organism species.")
	fs.Var(&o.ElimKWs, "elim", "comma separated keywords that reject an entry.")
	fs.Var(&o.RequireKWs, "require", "comma separated keywords required of an entry.")
	fs.StringVar(&o.RequireInName, "name", o.RequireInName, "text required in the protein name.")
	fs.Var(&o.ExcludeStrs, "exclude", "comma separated text that rejects an entry when in the protein name.")
}

// ParseFlags parses args with fs, which must have had o's flags added
// with AddFlags. If the parsed config flag value names a file, o is loaded
// from the file and args are parsed again so that flags take precedence
// over the file.
func (o *Options) ParseFlags(fs *flag.FlagSet, config *string, args []string) error {
	err := fs.Parse(args)
	if err != nil || *config == "" {
		return err
	}
	*o, err = LoadOptions(*config)
	if err != nil {
		return err
	}
	return fs.Parse(args)
}
