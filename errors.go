// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import (
	"errors"
	"fmt"
)

// Sentinel errors for dnsname operations.
var (
	// ErrInvalidRule indicates malformed rule list input.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidName indicates malformed candidate name input.
	ErrInvalidName = errors.New("invalid name")
	// ErrNilIndex indicates a nil Index passed to classification.
	ErrNilIndex = errors.New("index is nil")
	// ErrNilProvider indicates a nil Provider receiver.
	ErrNilProvider = errors.New("provider is nil")
)

// Syntax violation reasons carried by RuleSyntaxError and NameSyntaxError.
var (
	// ErrEmptyName indicates an empty candidate name.
	ErrEmptyName = errors.New("empty name")
	// ErrEmptyLabel indicates an empty label between dots.
	ErrEmptyLabel = errors.New("empty label")
	// ErrTrailingDots indicates more than one trailing dot.
	ErrTrailingDots = errors.New("multiple trailing dots")
	// ErrInvalidCharacter indicates a byte not allowed in a label.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidLabel indicates a label rejected by the codec.
	ErrInvalidLabel = errors.New("invalid label")
	// ErrLabelTooLong indicates a label longer than 63 octets.
	ErrLabelTooLong = errors.New("label too long")
	// ErrNameTooLong indicates a name longer than 253 octets.
	ErrNameTooLong = errors.New("name too long")
	// ErrMisplacedWildcard indicates "*" outside the leftmost rule position.
	ErrMisplacedWildcard = errors.New("misplaced wildcard")
	// ErrShortException indicates an exception rule with a single label.
	ErrShortException = errors.New("exception rule needs at least two labels")
	// ErrLineTooLong indicates a list line longer than the parser accepts.
	ErrLineTooLong = errors.New("line too long")
)

// RuleSyntaxError reports a rule line that cannot be compiled.
type RuleSyntaxError struct {
	// Reason is one of the syntax reason sentinels.
	Reason error
	// Text is the offending rule as written.
	Text string
	// Line is the 1-based source line, 0 for rules built in memory.
	Line int
}

// Error implements error.
func (e *RuleSyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d %q: %v", ErrInvalidRule, e.Line, e.Text, e.Reason)
	}

	return fmt.Sprintf("%v: %q: %v", ErrInvalidRule, e.Text, e.Reason)
}

// Unwrap exposes ErrInvalidRule and the violation reason to errors.Is.
func (e *RuleSyntaxError) Unwrap() []error {
	return []error{ErrInvalidRule, e.Reason}
}

// NameSyntaxError reports a candidate name that cannot be classified.
type NameSyntaxError struct {
	// Reason is one of the syntax reason sentinels.
	Reason error
	// Name is the raw input name.
	Name string
	// Position is the byte offset in Name where the violation starts.
	Position int
}

// Error implements error.
func (e *NameSyntaxError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d: %v", ErrInvalidName, e.Name, e.Position, e.Reason)
}

// Unwrap exposes ErrInvalidName and the violation reason to errors.Is.
func (e *NameSyntaxError) Unwrap() []error {
	return []error{ErrInvalidName, e.Reason}
}
