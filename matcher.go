// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

// Matcher classifies names against a compiled index.
type Matcher struct {
	index          *Index
	excludePrivate bool
}

// matchState tracks the deepest terminals reached during one lookup.
type matchState struct {
	rule      *Rule
	exception *Rule
	depth     int
	excDepth  int
}

// NewMatcher creates a matcher over idx.
func NewMatcher(idx *Index, opts MatcherOptions) (*Matcher, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}

	return &Matcher{
		index:          idx,
		excludePrivate: opts.ExcludePrivate,
	}, nil
}

// Classify classifies raw against idx with default matcher options.
func Classify(raw string, idx *Index) (Name, error) {
	if idx == nil {
		return Name{}, ErrNilIndex
	}

	m := Matcher{index: idx}
	return m.Classify(raw)
}

// Classify normalizes raw and splits it into suffix, root and registrable parts.
//
// Decision policy:
// - the longest matching normal or wildcard rule defines the suffix
// - an exception at least as deep as that rule prevails and its leftmost
//   label is not part of the suffix; a shallower exception is ignored
// - if no rule matched, the rightmost label is the suffix
func (m *Matcher) Classify(raw string) (Name, error) {
	n, err := normalizeName(raw, m.index.codec)
	if err != nil {
		return Name{}, err
	}

	if len(n.labels) == 0 {
		return rootName(), nil
	}

	var st matchState
	m.walk(m.index.root, n.labels, 0, &st)

	suffixLen := 1
	var prevailing *Rule
	switch {
	case st.exception != nil && st.excDepth >= st.depth:
		suffixLen = st.excDepth - 1
		prevailing = st.exception
	case st.rule != nil:
		suffixLen = st.depth
		prevailing = st.rule
	}

	return newName(n, suffixLen, prevailing), nil
}

// walk follows literal and wildcard edges for labels read right to left.
//
// Both edges are explored so an intermediate literal node does not hide a
// wildcard rule at the same position.
func (m *Matcher) walk(cur *node, labels []string, depth int, st *matchState) {
	if depth == len(labels) {
		return
	}

	label := labels[len(labels)-1-depth]
	if next, ok := cur.children[label]; ok {
		m.visit(next, depth+1, st)
		m.walk(next, labels, depth+1, st)
	}

	if cur.wildcard != nil {
		m.visit(cur.wildcard, depth+1, st)
		m.walk(cur.wildcard, labels, depth+1, st)
	}
}

// visit records terminals of n reached at depth labels.
func (m *Matcher) visit(n *node, depth int, st *matchState) {
	if n.terminal != nil && m.accepts(n.terminal) && depth > st.depth {
		st.rule = n.terminal
		st.depth = depth
	}

	if n.exception != nil && m.accepts(n.exception) && depth > st.excDepth {
		st.exception = n.exception
		st.excDepth = depth
	}
}

// accepts reports whether rule participates under matcher options.
func (m *Matcher) accepts(rule *Rule) bool {
	return !m.excludePrivate || rule.Section != SectionPrivate
}
