// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

// Kind represents the kind of one suffix rule.
type Kind uint8

const (
	// KindUnknown is unset/invalid kind placeholder.
	KindUnknown Kind = iota
	// KindNormal is a plain suffix rule such as "co.uk".
	KindNormal
	// KindWildcard is a "*.x" rule matching any single label left of "x".
	KindWildcard
	// KindException is a "!x" rule carving "x" out of a wildcard rule.
	KindException
)

// Section is the list partition a rule was declared in.
type Section uint8

const (
	// SectionNone marks rules declared outside any section markers.
	SectionNone Section = iota
	// SectionICANN marks rules between the ICANN DOMAINS markers.
	SectionICANN
	// SectionPrivate marks rules between the PRIVATE DOMAINS markers.
	SectionPrivate
)

// Rule is one public suffix rule.
type Rule struct {
	// Value is the dot-separated suffix without "!" or "*." prefix.
	Value string `json:"value" yaml:"value"`
	// Kind is the rule kind.
	Kind Kind `json:"kind" yaml:"kind"`
	// Section is the list partition the rule came from.
	Section Section `json:"section,omitempty" yaml:"section,omitempty"`
	// Line is the 1-based source line, 0 for rules built in memory.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// RuleList is a parsed rule file with its header metadata.
type RuleList struct {
	// Version is the value of the "// VERSION:" header comment.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Commit is the value of the "// COMMIT:" header comment.
	Commit string `json:"commit,omitempty" yaml:"commit,omitempty"`
	// Rules are rules in source order.
	Rules []Rule `json:"rules" yaml:"rules"`
}

// IndexOptions controls index compilation.
type IndexOptions struct {
	// Codec converts labels to the canonical comparison form.
	// Nil defaults to PunycodeCodec.
	Codec Codec `json:"-" yaml:"-"`
}

// MatcherOptions controls classification behavior.
type MatcherOptions struct {
	// ExcludePrivate ignores rules from the private section, leaving ICANN
	// and unsectioned rules in effect.
	ExcludePrivate bool `json:"exclude_private,omitempty" yaml:"exclude_private,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *IndexOptions) applyDefaults() {
	if opts.Codec == nil {
		opts.Codec = PunycodeCodec{}
	}
}

// String returns the rule in list syntax.
func (r Rule) String() string {
	switch r.Kind {
	case KindWildcard:
		if r.Value == "" {
			return "*"
		}

		return "*." + r.Value
	case KindException:
		return "!" + r.Value
	default:
		return r.Value
	}
}

// valid reports whether kind value is supported.
func (k Kind) valid() bool {
	return k == KindNormal || k == KindWildcard || k == KindException
}

// String returns a short kind name.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindWildcard:
		return "wildcard"
	case KindException:
		return "exception"
	default:
		return "unknown"
	}
}

// String returns a short section name.
func (s Section) String() string {
	switch s {
	case SectionICANN:
		return "icann"
	case SectionPrivate:
		return "private"
	default:
		return "none"
	}
}
