// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import "strings"

// Name is an immutable classification result for one DNS name.
//
// All parts are views of the canonical name, so a rooted name keeps
// its trailing dot in Name, Root and Suffix.
type Name struct {
	// name is canonical dot-joined name.
	name string
	// rname is name reversed rune by rune.
	rname string
	// rule is the prevailing rule when matched is true.
	rule Rule
	// suffixStart and rootStart are byte offsets into name.
	suffixStart int
	rootStart   int
	hasSuffix   bool
	hasRoot     bool
	matched     bool
	rooted      bool
}

// rootName returns the result for the DNS root ".".
func rootName() Name {
	return Name{
		name:   ".",
		rname:  ".",
		rooted: true,
	}
}

// newName builds a result with suffixLen rightmost labels as the suffix.
func newName(n normalizedName, suffixLen int, rule *Rule) Name {
	name := strings.Join(n.labels, ".")
	if n.rooted {
		name += "."
	}

	res := Name{
		name:   name,
		rname:  reverseString(name),
		rooted: n.rooted,
	}

	if rule != nil {
		res.rule = *rule
		res.matched = true
	}

	count := len(n.labels)
	if suffixLen >= 1 && suffixLen <= count {
		res.suffixStart = labelOffset(n.labels, count-suffixLen)
		res.hasSuffix = true
	}

	if res.hasSuffix && count > suffixLen {
		res.rootStart = labelOffset(n.labels, count-suffixLen-1)
		res.hasRoot = true
	}

	return res
}

// Name returns the canonical name.
func (n Name) Name() string {
	return n.name
}

// RName returns the canonical name reversed character by character,
// so names sharing a suffix sort next to each other.
func (n Name) RName() string {
	return n.rname
}

// Root returns the registrable domain: the suffix plus one label.
func (n Name) Root() (string, bool) {
	if !n.hasRoot {
		return "", false
	}

	return n.name[n.rootStart:], true
}

// Suffix returns the public suffix.
func (n Name) Suffix() (string, bool) {
	if !n.hasSuffix {
		return "", false
	}

	return n.name[n.suffixStart:], true
}

// Registrable returns the single label left of the suffix.
func (n Name) Registrable() (string, bool) {
	if !n.hasRoot {
		return "", false
	}

	return n.name[n.rootStart : n.suffixStart-1], true
}

// Rule returns the prevailing rule; false means the implicit "*" rule applied.
func (n Name) Rule() (Rule, bool) {
	return n.rule, n.matched
}

// ICANN reports whether the prevailing rule comes from the ICANN section.
func (n Name) ICANN() bool {
	return n.matched && n.rule.Section == SectionICANN
}

// IsRooted reports whether the name is fully qualified.
func (n Name) IsRooted() bool {
	return n.rooted
}

// IsRoot reports whether the name is the DNS root ".".
func (n Name) IsRoot() bool {
	return n.name == "."
}

// String returns the canonical name.
func (n Name) String() string {
	return n.name
}

// labelOffset returns the byte offset of label i in the dot-joined labels.
func labelOffset(labels []string, i int) int {
	off := 0
	for j := 0; j < i; j++ {
		off += len(labels[j]) + 1
	}

	return off
}

// reverseString reverses s rune by rune.
func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return string(r)
}
