// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import (
	"fmt"

	"github.com/miekg/dns"
)

// ClassifyQuestion classifies the owner name of a DNS question.
//
// Message names are fully qualified, so the result is always rooted.
func (m *Matcher) ClassifyQuestion(q dns.Question) (Name, error) {
	return m.Classify(dns.Fqdn(q.Name))
}

// ClassifyRR classifies the owner name of a resource record.
func (m *Matcher) ClassifyRR(rr dns.RR) (Name, error) {
	if rr == nil {
		return Name{}, nameError("", 0, ErrEmptyName)
	}

	return m.Classify(dns.Fqdn(rr.Header().Name))
}

// ClassifyMsg classifies every question of msg in order.
func (m *Matcher) ClassifyMsg(msg *dns.Msg) ([]Name, error) {
	if msg == nil {
		return nil, nil
	}

	out := make([]Name, 0, len(msg.Question))
	for i, q := range msg.Question {
		n, err := m.ClassifyQuestion(q)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}

		out = append(out, n)
	}

	return out, nil
}
