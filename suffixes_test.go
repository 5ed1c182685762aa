// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import "testing"

func TestParseSuffixes(t *testing.T) {
	t.Parallel()

	rules := ParseSuffixes([]string{
		"corp.internal",
		" .lan ",
		"home.arpa.",
		"*.svc.cluster",
		"!www.svc.cluster",
		"",
		".",
	})

	want := []string{"corp.internal", "lan", "home.arpa", "*.svc.cluster", "!www.svc.cluster"}
	if len(rules) != len(want) {
		t.Fatalf("len(rules)=%d, want %d: %+v", len(rules), len(want), rules)
	}

	for i := range want {
		if rules[i].String() != want[i] || rules[i].Section != SectionPrivate {
			t.Fatalf("rule[%d]=%+v, want %q in private section", i, rules[i], want[i])
		}
	}
}

func TestParseSuffixesWithList(t *testing.T) {
	t.Parallel()

	list, err := LoadRulesFile(testListPath)
	if err != nil {
		t.Fatalf("LoadRulesFile: %v", err)
	}

	idx, err := NewIndex(MergeRules(list, ParseSuffixes([]string{"corp.internal"})), IndexOptions{})
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	n, err := idx.Classify("host.team.corp.internal")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	checkName(t, n, wantName{
		input:       "host.team.corp.internal",
		name:        "host.team.corp.internal",
		root:        "team.corp.internal",
		suffix:      "corp.internal",
		registrable: "team",
	})

	if n.ICANN() {
		t.Fatalf("site-local suffix must not report ICANN")
	}
}
