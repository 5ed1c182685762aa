// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import (
	"errors"
	"strings"
	"testing"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	list, err := ParseListString(`
// VERSION: 2026-01-02_03-04-05_UTC
// COMMIT: abc123
tld
// ===BEGIN ICANN DOMAINS===
com
*.ck
!www.ck
co.uk  trailing text is ignored
// ===END ICANN DOMAINS===
// ===BEGIN PRIVATE DOMAINS===
uk.com
// ===END PRIVATE DOMAINS===
after
`)
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}

	if list.Version != "2026-01-02_03-04-05_UTC" || list.Commit != "abc123" {
		t.Fatalf("metadata version=%q commit=%q", list.Version, list.Commit)
	}

	want := []Rule{
		{Value: "tld", Kind: KindNormal, Section: SectionNone, Line: 4},
		{Value: "com", Kind: KindNormal, Section: SectionICANN, Line: 6},
		{Value: "ck", Kind: KindWildcard, Section: SectionICANN, Line: 7},
		{Value: "www.ck", Kind: KindException, Section: SectionICANN, Line: 8},
		{Value: "co.uk", Kind: KindNormal, Section: SectionICANN, Line: 9},
		{Value: "uk.com", Kind: KindNormal, Section: SectionPrivate, Line: 12},
		{Value: "after", Kind: KindNormal, Section: SectionNone, Line: 14},
	}

	if len(list.Rules) != len(want) {
		t.Fatalf("len(rules)=%d, want %d: %+v", len(list.Rules), len(want), list.Rules)
	}

	for i := range want {
		if list.Rules[i] != want[i] {
			t.Fatalf("rule[%d]=%+v, want %+v", i, list.Rules[i], want[i])
		}
	}
}

func TestParseRulesBareWildcard(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString("*\n")
	if err != nil {
		t.Fatalf("ParseRulesString: %v", err)
	}

	if len(rules) != 1 || rules[0].Kind != KindWildcard || rules[0].Value != "" {
		t.Fatalf("unexpected rules: %+v", rules)
	}

	if got := rules[0].String(); got != "*" {
		t.Fatalf("String()=%q, want *", got)
	}
}

func TestRuleString(t *testing.T) {
	t.Parallel()

	cases := map[string]Rule{
		"com":     {Value: "com", Kind: KindNormal},
		"*.ck":    {Value: "ck", Kind: KindWildcard},
		"!www.ck": {Value: "www.ck", Kind: KindException},
	}

	for want, rule := range cases {
		if got := rule.String(); got != want {
			t.Fatalf("String()=%q, want %q", got, want)
		}
	}
}

func TestParseListLineTooLong(t *testing.T) {
	t.Parallel()

	src := "com\n" + strings.Repeat("a", maxListLineLength+1) + "\n"

	_, err := ParseListString(src)

	var syntaxErr *RuleSyntaxError
	if !errors.As(err, &syntaxErr) || !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("ParseListString err=%v, want ErrLineTooLong", err)
	}

	if syntaxErr.Line != 2 {
		t.Fatalf("line=%d, want 2", syntaxErr.Line)
	}
}
