// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import (
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// acePrefix is the ASCII-compatible encoding prefix of punycode labels.
const acePrefix = "xn--"

// Codec converts one label into the canonical form used for comparison.
//
// Rules and candidate names are passed through the same codec, so a list
// written in Unicode matches names written in punycode and vice versa.
// Implementations must be safe for concurrent use.
type Codec interface {
	Canonical(label string) (string, error)
}

// PunycodeCodec canonicalizes labels to lower-case ASCII, encoding
// non-ASCII labels with IDNA lookup rules.
type PunycodeCodec struct{}

// Canonical implements Codec.
func (PunycodeCodec) Canonical(label string) (string, error) {
	if isASCII(label) {
		return asciiLower(label), nil
	}

	ascii, err := idna.Lookup.ToASCII(label)
	if err != nil {
		return "", err
	}

	return asciiLower(ascii), nil
}

// UnicodeCodec canonicalizes labels to case-folded NFC Unicode,
// decoding punycode labels first.
type UnicodeCodec struct{}

// Canonical implements Codec.
func (UnicodeCodec) Canonical(label string) (string, error) {
	if isASCII(label) {
		label = asciiLower(label)
		if !strings.HasPrefix(label, acePrefix) {
			return label, nil
		}

		decoded, err := idna.Lookup.ToUnicode(label)
		if err != nil {
			return "", err
		}

		label = decoded
	}

	// Caser keeps internal state, so one is created per call.
	return norm.NFC.String(cases.Fold().String(label)), nil
}
