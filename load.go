// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import (
	"fmt"
	"os"
)

// LoadListFile reads and parses a public suffix list file.
func LoadListFile(path string) (*RuleList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	list, err := ParseList(f)
	if err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	return list, nil
}

// LoadRulesFile reads and parses rules from a file.
func LoadRulesFile(path string) ([]Rule, error) {
	list, err := LoadListFile(path)
	if err != nil {
		return nil, err
	}

	return list.Rules, nil
}

// LoadRulesFiles reads rule files in the given order and merges them with
// MergeRules, so a rule repeated in a later file is dropped.
func LoadRulesFiles(paths ...string) ([]Rule, error) {
	sets := make([][]Rule, 0, len(paths))
	for _, path := range paths {
		rules, err := LoadRulesFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}

		sets = append(sets, rules)
	}

	return MergeRules(sets...), nil
}

// LoadIndexFile reads, parses and compiles a public suffix list file.
func LoadIndexFile(path string, opts IndexOptions) (*Index, error) {
	list, err := LoadListFile(path)
	if err != nil {
		return nil, err
	}

	idx, err := CompileList(list, opts)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}

	return idx, nil
}
