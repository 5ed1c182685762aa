// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

// MergeRules concatenates rule sets in order and drops repeated rules.
//
// A rule repeats an earlier one when both have the same kind and the same
// ASCII-lowercased value; the first occurrence and its section are kept,
// matching first-wins compilation. Values that differ only in encoding
// ("рф" and "xn--p1ai") are left for the index to collapse.
func MergeRules(ruleSets ...[]Rule) []Rule {
	total := 0
	for _, set := range ruleSets {
		total += len(set)
	}

	type ruleKey struct {
		kind  Kind
		value string
	}

	seen := make(map[ruleKey]struct{}, total)
	out := make([]Rule, 0, total)
	for _, set := range ruleSets {
		for _, rule := range set {
			key := ruleKey{kind: rule.Kind, value: asciiLower(rule.Value)}
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			out = append(out, rule)
		}
	}

	return out
}
