// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DNS presentation limits, excluding the trailing root dot.
const (
	maxLabelLength = 63
	maxNameLength  = 253
)

// normalizedName is a candidate name split into canonical labels.
type normalizedName struct {
	// labels are canonical labels in written (left-to-right) order.
	labels []string
	// rooted reports whether input ended with the root dot.
	rooted bool
}

// normalizeName validates raw and converts its labels with codec.
//
// The bare root "." yields zero labels and rooted=true.
func normalizeName(raw string, codec Codec) (normalizedName, error) {
	if raw == "" {
		return normalizedName{}, nameError(raw, 0, ErrEmptyName)
	}

	if raw == "." {
		return normalizedName{rooted: true}, nil
	}

	body, rooted := strings.CutSuffix(raw, ".")
	if strings.HasSuffix(body, ".") {
		return normalizedName{}, nameError(raw, len(body)-1, ErrTrailingDots)
	}

	n := normalizedName{
		labels: make([]string, 0, strings.Count(body, ".")+1),
		rooted: rooted,
	}

	total := -1
	for offset := 0; offset <= len(body); {
		end := strings.IndexByte(body[offset:], '.')
		if end < 0 {
			end = len(body)
		} else {
			end += offset
		}

		label := body[offset:end]
		if label == "" {
			return normalizedName{}, nameError(raw, offset, ErrEmptyLabel)
		}

		if i := invalidNameByte(label); i >= 0 {
			return normalizedName{}, nameError(raw, offset+i, ErrInvalidCharacter)
		}

		canonical, err := codec.Canonical(label)
		if err != nil {
			return normalizedName{}, nameError(raw, offset, fmt.Errorf("%w: %v", ErrInvalidLabel, err))
		}

		// IDNA maps ideographic full stops to ".", which would split the label.
		if strings.Contains(canonical, ".") {
			return normalizedName{}, nameError(raw, offset, fmt.Errorf("%w: %q maps to %q", ErrInvalidLabel, label, canonical))
		}

		if len(canonical) > maxLabelLength {
			return normalizedName{}, nameError(raw, offset, ErrLabelTooLong)
		}

		total += len(canonical) + 1
		n.labels = append(n.labels, canonical)
		offset = end + 1
	}

	if total > maxNameLength {
		return normalizedName{}, nameError(raw, 0, ErrNameTooLong)
	}

	return n, nil
}

// nameError builds a NameSyntaxError for raw.
func nameError(raw string, pos int, reason error) error {
	return &NameSyntaxError{
		Name:     raw,
		Position: pos,
		Reason:   reason,
	}
}

// invalidNameByte returns the offset of the first control, space or DEL byte,
// or of the first byte that is not part of valid UTF-8, or -1.
func invalidNameByte(label string) int {
	for i := 0; i < len(label); {
		c := label[i]
		if c < utf8.RuneSelf {
			if c <= ' ' || c == 0x7f {
				return i
			}

			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(label[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}

		i += size
	}

	return -1
}

// invalidRuleByte returns the offset of the first ASCII byte that is not
// a letter, digit, hyphen or underscore, or of the first invalid UTF-8 byte,
// or -1. Valid non-ASCII runes are left to the codec.
func invalidRuleByte(label string) int {
	for i := 0; i < len(label); {
		c := label[i]
		switch {
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(label[i:])
			if r == utf8.RuneError && size == 1 {
				return i
			}

			i += size
			continue
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return i
		}

		i++
	}

	return -1
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}

// isASCII reports whether s contains only ASCII bytes.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
