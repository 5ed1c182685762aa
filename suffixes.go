// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import "strings"

// ParseSuffixes converts a loose suffix list to private-section rules.
//
// Accepted suffix forms:
//   - "corp.internal"
//   - ".corp.internal"
//   - "corp.internal."
//   - "*.corp.internal"
//   - "!www.corp.internal"
//
// Empty values are skipped. Returned rules preserve input order; label
// syntax is checked when the rules are compiled.
func ParseSuffixes(values []string) []Rule {
	rules := make([]Rule, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		value = strings.TrimSuffix(value, ".")
		if !strings.HasPrefix(value, "*") && !strings.HasPrefix(value, "!") {
			value = strings.TrimLeft(value, ".")
		}

		if value == "" {
			continue
		}

		rules = append(rules, parseRuleText(value, SectionPrivate, 0))
	}

	return rules
}
