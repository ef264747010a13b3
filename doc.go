// SPDX-License-Identifier: MIT
// Copyright (c) 2026 neogeographica
// Source: github.com/neogeographica/expak

/*
Package expak extracts and processes resources from Quake-style pak files.

A pak file is a flat archive: a 4-byte "PACK" signature, the location of a
directory table, and a data region. Each 64-byte directory record names one
resource (56 NUL-padded bytes) and points at its payload (offset + length).
The package enumerates, extracts, or transforms those resources across one
or more pak files with precise partial-failure semantics: every source is
attempted, failures never stop sibling archives, and caller-owned selections
report afterward exactly which resources were never satisfied.

# Listing

Names returns the union of resource names across sources, or an error if
any source is unreadable or not a pak (enumeration is all-or-nothing):

	names, err := expak.Names("pak0.pak", "pak1.pak")
	if err != nil {
	    return err
	}
	for name := range names {
	    fmt.Println(name)
	}

# Extracting

Extract everything from several paks into a destination directory:

	if err := expak.ExtractTo("out", []string{"pak0.pak", "pak1.pak"}, expak.All); err != nil {
	    return err
	}

Extract only specific resources, then check what was not found. Handled
names are removed from the selection in place:

	want := expak.NewNameSet("sound/misc/basekey.wav", "sound/misc/medkey.wav")
	err := expak.Extract([]string{"pak0.pak", "pak1.pak"}, want)
	for _, name := range want.Names() {
	    fmt.Println("not found (or not successfully extracted):", name)
	}

A RenameMap materializes each resource under a different output name:

	targets := expak.RenameMap{
	    "sound/misc/basekey.wav": "base_key.wav",
	    "sound/misc/medkey.wav":  "medieval_key.wav",
	}
	err := expak.Extract([]string{"pak1.pak"}, targets)

Pattern-based selection compiles gitignore-like rules:

	sel, err := expak.NewRuleSet([]pathrules.Rule{
	    {Action: pathrules.ActionInclude, Pattern: "sound/**"},
	}, pathrules.MatcherOptions{CaseInsensitive: true})
	if err != nil {
	    return err
	}
	err = expak.ExtractTo("out", []string{"pak0.pak"}, sel)

# Processing

Process applies a caller-supplied Transform to each selected resource
instead of writing it verbatim. Returning true acknowledges the resource
(removing it from a NameSet or RenameMap); returning an error marks the
archive as failed without stopping its remaining resources:

	ogg := func(data []byte, name string) (bool, error) {
	    converted, err := toOGG(data)
	    if err != nil {
	        return false, err
	    }
	    return true, os.WriteFile(name, converted, 0o600)
	}
	targets := expak.RenameMap{"sound/misc/basekey.wav": "base_key.ogg"}
	err := expak.Process([]string{"pak0.pak", "pak1.pak"}, ogg, targets)

# Random access

For direct access to one archive, open a Reader:

	r, err := expak.Open("pak0.pak")
	if err != nil {
	    return err
	}
	defer r.Close()
	for _, e := range r.Entries() {
	    data, _ := r.ReadEntry(e.Name)
	    // use data
	}

Use errors.Is(err, expak.ErrNotPak) to distinguish "not a pak file" from
genuine read failures. Diagnostic output goes through a package logger that
SetQuiet silences and SetLogger replaces; suppression never changes results.
*/
package expak
