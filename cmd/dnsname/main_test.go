// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/woozymasta/dnsname"
)

func newTestClassifier(t *testing.T, cfg *Config, out *bytes.Buffer) *classifier {
	t.Helper()

	cfg.List = filepath.Join("..", "..", "testdata", "public_suffix_list.dat")
	p, err := dnsname.NewProvider(cfg.List, cfg.providerOptions())
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	return &classifier{provider: p, fqdn: cfg.FQDN, enc: json.NewEncoder(out)}
}

func decodeResults(t *testing.T, out *bytes.Buffer) []result {
	t.Helper()

	var results []result
	d := json.NewDecoder(out)
	for d.More() {
		var res result
		if err := d.Decode(&res); err != nil {
			t.Fatalf("Decode: %v", err)
		}

		results = append(results, res)
	}

	return results
}

func TestClassifierNames(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := newTestClassifier(t, &Config{}, &out)

	if err := c.classifyNames([]string{"www.Example.co.uk", "a..b"}); err != nil {
		t.Fatalf("classifyNames: %v", err)
	}

	results := decodeResults(t, &out)
	if len(results) != 2 {
		t.Fatalf("len(results)=%d, want 2", len(results))
	}

	want := result{
		Name:        "www.example.co.uk",
		RName:       "ku.oc.elpmaxe.www",
		Suffix:      "co.uk",
		Root:        "example.co.uk",
		Registrable: "example",
		ICANN:       true,
	}
	if results[0] != want {
		t.Fatalf("results[0]=%+v, want %+v", results[0], want)
	}

	if results[1].Name != "a..b" || results[1].Error == "" {
		t.Fatalf("results[1]=%+v, want error record", results[1])
	}
}

func TestClassifierLines(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := newTestClassifier(t, &Config{FQDN: true, ICANNOnly: true}, &out)

	in := strings.NewReader("foo.blogspot.co.uk\n\n  www.ck  \n")
	w := bufio.NewWriter(&out)
	if err := c.classifyLines(context.Background(), in, w, true); err != nil {
		t.Fatalf("classifyLines: %v", err)
	}

	results := decodeResults(t, &out)
	if len(results) != 2 {
		t.Fatalf("len(results)=%d, want 2", len(results))
	}

	if results[0].Name != "foo.blogspot.co.uk." || results[0].Suffix != "co.uk." || !results[0].ICANN {
		t.Fatalf("results[0]=%+v", results[0])
	}

	if results[1].Root != "www.ck." || results[1].Registrable != "www" {
		t.Fatalf("results[1]=%+v", results[1])
	}
}

func TestClassifierLinesStopsOnCancel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := newTestClassifier(t, &Config{}, &out)

	// The pipe is never written, so only cancellation can end the loop.
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.classifyLines(ctx, pr, bufio.NewWriter(&out), true) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("classifyLines: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("classifyLines did not return after cancel")
	}
}
