// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Index is an immutable label trie compiled from suffix rules.
//
// Labels are indexed from the rightmost label inward. An Index is never
// modified after construction and is safe for concurrent use.
type Index struct {
	// root is the trie node above all top-level labels.
	root *node
	// codec canonicalizes rule and name labels.
	codec Codec
	// version and commit are list header metadata.
	version string
	commit  string
	// rules is the number of distinct rules compiled into the trie.
	rules int
}

// node is one trie position.
type node struct {
	// children are literal label edges.
	children map[string]*node
	// wildcard is the "*" edge, separate from any literal label.
	wildcard *node
	// terminal is set when a normal or wildcard rule ends here.
	terminal *Rule
	// exception is set when an exception rule ends here.
	exception *Rule
}

// NewIndex compiles ordered rules into an index.
func NewIndex(rules []Rule, opts IndexOptions) (*Index, error) {
	return CompileList(&RuleList{Rules: rules}, opts)
}

// CompileList compiles a parsed list into an index, keeping its header metadata.
//
// Compilation is atomic: the first invalid rule fails the whole list.
// When the same rule appears twice, the first occurrence wins.
func CompileList(list *RuleList, opts IndexOptions) (*Index, error) {
	opts.applyDefaults()

	idx := &Index{
		root:  &node{},
		codec: opts.Codec,
	}
	if list == nil {
		return idx, nil
	}

	idx.version = list.Version
	idx.commit = list.Commit

	for i := range list.Rules {
		if err := idx.insert(list.Rules[i]); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// BuildIndex parses and compiles public suffix list text.
func BuildIndex(src string, opts IndexOptions) (*Index, error) {
	return ReadIndex(strings.NewReader(src), opts)
}

// ReadIndex parses and compiles public suffix list text from reader.
func ReadIndex(r io.Reader, opts IndexOptions) (*Index, error) {
	list, err := ParseList(r)
	if err != nil {
		return nil, err
	}

	return CompileList(list, opts)
}

// Len returns the number of distinct rules in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}

	return idx.rules
}

// Version returns the list "VERSION" header, empty when absent.
func (idx *Index) Version() string {
	if idx == nil {
		return ""
	}

	return idx.version
}

// Commit returns the list "COMMIT" header, empty when absent.
func (idx *Index) Commit() string {
	if idx == nil {
		return ""
	}

	return idx.commit
}

// Classify classifies raw with default matcher options.
func (idx *Index) Classify(raw string) (Name, error) {
	return Classify(raw, idx)
}

// insert validates one rule and adds it to the trie.
func (idx *Index) insert(rule Rule) error {
	labels, err := idx.ruleLabels(rule)
	if err != nil {
		return err
	}

	cur := idx.root
	for i := len(labels) - 1; i >= 0; i-- {
		cur = cur.child(labels[i])
	}

	if rule.Kind == KindWildcard {
		if cur.wildcard == nil {
			cur.wildcard = &node{}
		}
		cur = cur.wildcard
	}

	stored := rule
	stored.Value = strings.Join(labels, ".")

	slot := &cur.terminal
	if rule.Kind == KindException {
		slot = &cur.exception
	}

	if *slot != nil {
		return nil
	}

	*slot = &stored
	idx.rules++
	return nil
}

// ruleLabels validates rule syntax and returns canonical labels of rule value.
func (idx *Index) ruleLabels(rule Rule) ([]string, error) {
	ruleErr := func(reason error) error {
		return &RuleSyntaxError{
			Line:   rule.Line,
			Text:   rule.String(),
			Reason: reason,
		}
	}

	if !rule.Kind.valid() {
		return nil, ruleErr(fmt.Errorf("unsupported kind %d", rule.Kind))
	}

	// A bare "*" is the wildcard over the root and has no literal labels.
	if rule.Kind == KindWildcard && rule.Value == "" {
		return nil, nil
	}

	if rule.Value == "" {
		return nil, ruleErr(ErrEmptyLabel)
	}

	raw := strings.Split(rule.Value, ".")
	if slices.Contains(raw, "") {
		return nil, ruleErr(ErrEmptyLabel)
	}

	if rule.Kind == KindException && len(raw) < 2 {
		return nil, ruleErr(ErrShortException)
	}

	labels := make([]string, 0, len(raw))
	for _, label := range raw {
		if strings.Contains(label, "*") {
			return nil, ruleErr(ErrMisplacedWildcard)
		}

		if invalidRuleByte(label) >= 0 {
			return nil, ruleErr(ErrInvalidCharacter)
		}

		canonical, err := idx.codec.Canonical(label)
		if err != nil {
			return nil, ruleErr(fmt.Errorf("%w: %v", ErrInvalidLabel, err))
		}

		if strings.Contains(canonical, ".") {
			return nil, ruleErr(fmt.Errorf("%w: %q maps to %q", ErrInvalidLabel, label, canonical))
		}

		if len(canonical) > maxLabelLength {
			return nil, ruleErr(ErrLabelTooLong)
		}

		labels = append(labels, canonical)
	}

	return labels, nil
}

// child returns the literal child for label, creating it when missing.
func (n *node) child(label string) *node {
	if n.children == nil {
		n.children = make(map[string]*node, 1)
	}

	c, ok := n.children[label]
	if !ok {
		c = &node{}
		n.children[label] = c
	}

	return c
}
