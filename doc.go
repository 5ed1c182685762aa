// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

/*
Package dnsname classifies DNS names against the Public Suffix List.

The package splits a name into its public suffix (for example "com" or "co.uk"),
the registrable root one label above the suffix, and the registrable label itself.
It performs no lookups and no network I/O; classification is a pure function of
the name and a compiled rule index.

Basic flow:
  - parse PSL text (`ParseList` / `ParseRules`)
  - optionally load rules from files (`LoadRulesFile` / `LoadIndexFile`)
  - optionally add site-local suffixes (`ParseSuffixes` / `MergeRules`)
  - compile the index once (`NewIndex` / `CompileList` / `BuildIndex`)
  - classify names (`Classify` / `Matcher.Classify`)

Example:

	idx, err := dnsname.BuildIndex("com\nuk.com\n", dnsname.IndexOptions{})
	if err != nil {
		return err
	}

	n, err := dnsname.Classify("wWw.BlUeCaTnEtWoRkS.Uk.CoM.", idx)
	if err != nil {
		return err
	}

	n.Name()        // "www.bluecatnetworks.uk.com."
	n.RName()       // ".moc.ku.skrowtentaceulb.www"
	n.Root()        // "bluecatnetworks.uk.com.", true
	n.Suffix()      // "uk.com.", true
	n.Registrable() // "bluecatnetworks", true

An Index is immutable and may be shared by any number of goroutines. For rule files
that change on disk, use `Provider`, which swaps whole indexes atomically and can
watch the file for changes (`Provider.Watch`).

Unicode and punycode labels are compared in one canonical form chosen by the index
`Codec`: `PunycodeCodec` (default) or `UnicodeCodec`.
*/
package dnsname
