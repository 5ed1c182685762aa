// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/dnsname"
)

// errNoList is returned when neither config nor flags name a list file.
var errNoList = errors.New("no public suffix list file configured")

// Config is the dnsname command configuration.
type Config struct {
	// List is the public suffix list file path.
	List string `json:"list" yaml:"list"`
	// Suffixes are extra site-local suffixes compiled after the list.
	Suffixes []string `json:"suffixes,omitempty" yaml:"suffixes,omitempty"`
	// ICANNOnly ignores rules from the private section.
	ICANNOnly bool `json:"icann_only,omitempty" yaml:"icann_only,omitempty"`
	// FQDN classifies every input name as fully qualified.
	FQDN bool `json:"fqdn,omitempty" yaml:"fqdn,omitempty"`
	// Follow keeps reading input and reloads the list when it changes.
	Follow bool `json:"follow,omitempty" yaml:"follow,omitempty"`
	// Unicode reports names in Unicode form instead of punycode.
	Unicode bool `json:"unicode,omitempty" yaml:"unicode,omitempty"`
}

// decodeConfig reads YAML config from r, rejecting unknown keys.
func decodeConfig(r io.Reader) (*Config, error) {
	cfg := &Config{}

	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// loadConfig reads YAML config from path.
func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	return decodeConfig(f)
}

// applyFlags overrides config values with flags explicitly set on fs.
func (c *Config) applyFlags(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "list":
			c.List = flagList
		case "suffix":
			c.Suffixes = append(c.Suffixes, flagSuffixes...)
		case "icann-only":
			c.ICANNOnly = flagICANNOnly
		case "fqdn":
			c.FQDN = flagFQDN
		case "follow":
			c.Follow = flagFollow
		case "unicode":
			c.Unicode = flagUnicode
		}
	})
}

// validate checks that the config can build a provider.
func (c *Config) validate() error {
	if c.List == "" {
		return errNoList
	}

	return nil
}

// providerOptions converts config values to provider options.
func (c *Config) providerOptions() dnsname.ProviderOptions {
	opts := dnsname.ProviderOptions{
		ExtraRules: dnsname.ParseSuffixes(c.Suffixes),
		MatcherOptions: dnsname.MatcherOptions{
			ExcludePrivate: c.ICANNOnly,
		},
	}

	if c.Unicode {
		opts.IndexOptions.Codec = dnsname.UnicodeCodec{}
	}

	return opts
}
