// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Header and section markers of the public suffix list format.
const (
	versionPrefix      = "VERSION:"
	commitPrefix       = "COMMIT:"
	beginICANNMarker   = "===BEGIN ICANN DOMAINS==="
	endICANNMarker     = "===END ICANN DOMAINS==="
	beginPrivateMarker = "===BEGIN PRIVATE DOMAINS==="
	endPrivateMarker   = "===END PRIVATE DOMAINS==="
)

// maxListLineLength bounds one list line, comments included.
const maxListLineLength = 64 * 1024

// ParseList parses public suffix list text from reader.
//
// Semantics:
// - blank lines and "//" comments are ignored
// - only the first whitespace-separated field of a line is read
// - "!" creates exception rule
// - "*." creates wildcard rule
// - other lines create normal rule
// - section markers tag rules with ICANN or private section
//
// Labels are not validated here; compilation reports syntax errors with line numbers.
func ParseList(r io.Reader) (*RuleList, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxListLineLength)
	list := &RuleList{
		Rules: make([]Rule, 0, 64),
	}

	section := SectionNone
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		if comment, ok := strings.CutPrefix(line, "//"); ok {
			comment = strings.TrimSpace(comment)
			switch {
			case comment == beginICANNMarker:
				section = SectionICANN
			case comment == beginPrivateMarker:
				section = SectionPrivate
			case comment == endICANNMarker, comment == endPrivateMarker:
				section = SectionNone
			case strings.HasPrefix(comment, versionPrefix) && list.Version == "":
				list.Version = strings.TrimSpace(comment[len(versionPrefix):])
			case strings.HasPrefix(comment, commitPrefix) && list.Commit == "":
				list.Commit = strings.TrimSpace(comment[len(commitPrefix):])
			}

			continue
		}

		if i := strings.IndexAny(line, " \t"); i >= 0 {
			line = line[:i]
		}

		list.Rules = append(list.Rules, parseRuleText(line, section, lineNo))
	}

	if err := s.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &RuleSyntaxError{Line: lineNo + 1, Reason: ErrLineTooLong}
		}

		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return list, nil
}

// ParseListString parses public suffix list text from string input.
func ParseListString(src string) (*RuleList, error) {
	return ParseList(strings.NewReader(src))
}

// ParseRules parses rules from reader, dropping list metadata.
func ParseRules(r io.Reader) ([]Rule, error) {
	list, err := ParseList(r)
	if err != nil {
		return nil, err
	}

	return list.Rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

// parseRuleText splits the kind prefix from one rule token.
func parseRuleText(text string, section Section, line int) Rule {
	rule := Rule{
		Kind:    KindNormal,
		Value:   text,
		Section: section,
		Line:    line,
	}

	switch {
	case strings.HasPrefix(text, "!"):
		rule.Kind = KindException
		rule.Value = text[1:]
	case text == "*":
		rule.Kind = KindWildcard
		rule.Value = ""
	case strings.HasPrefix(text, "*.") && len(text) > 2:
		// A lone "*." stays a normal rule and fails compilation with an empty label.
		rule.Kind = KindWildcard
		rule.Value = text[2:]
	}

	return rule
}
