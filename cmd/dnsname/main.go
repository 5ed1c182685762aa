// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

// Command dnsname splits domain names into public suffix, registrable root
// and subdomain parts, printing one JSON object per name.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chronos-tachyon/go-autolog"
	"github.com/miekg/dns"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/dnsname"
)

var (
	flagConfig    string
	flagList      string
	flagSuffixes  []string
	flagICANNOnly bool
	flagFQDN      bool
	flagFollow    bool
	flagUnicode   bool
)

func init() {
	registerFlags(flag.CommandLine)
}

// registerFlags binds command flags on fs.
func registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "path to YAML config file")
	fs.StringVar(&flagList, "list", "", "path to public suffix list file")
	fs.Func("suffix", "extra site-local suffix rule (repeatable)", func(in string) error {
		flagSuffixes = append(flagSuffixes, in)
		return nil
	})
	fs.BoolVar(&flagICANNOnly, "icann-only", false, "ignore rules from the private section")
	fs.BoolVar(&flagFQDN, "fqdn", false, "classify names as fully qualified")
	fs.BoolVar(&flagFollow, "follow", false, "keep reading stdin and reload the list on change")
	fs.BoolVar(&flagUnicode, "unicode", false, "report names in Unicode form")
}

func main() {
	autolog.Init()
	defer func() {
		err := autolog.Done()
		if err != nil {
			panic(err)
		}
	}()
	flag.Parse()

	cfg := &Config{}
	if flagConfig != "" {
		var err error
		cfg, err = loadConfig(flagConfig)
		if err != nil {
			log.Logger.Fatal().
				Str("path", flagConfig).
				Err(err).
				Msg("failed to load config")
		}
	}
	cfg.applyFlags(flag.CommandLine)

	if err := cfg.validate(); err != nil {
		log.Logger.Fatal().
			Err(err).
			Msg("invalid configuration")
	}

	opts := cfg.providerOptions()
	opts.Logger = log.Logger

	p, err := dnsname.NewProvider(cfg.List, opts)
	if err != nil {
		log.Logger.Fatal().
			Str("path", cfg.List).
			Err(err).
			Msg("failed to load public suffix list")
	}

	log.Logger.Debug().
		Str("path", p.Path()).
		Int("rules", p.Index().Len()).
		Str("version", p.Index().Version()).
		Msg("public suffix list loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Follow {
		go func() {
			err := p.Watch(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Logger.Error().
					Str("path", p.Path()).
					Err(err).
					Msg("failed to watch public suffix list")
			}
		}()
	}

	out := bufio.NewWriter(os.Stdout)
	defer func() { _ = out.Flush() }()

	c := &classifier{provider: p, fqdn: cfg.FQDN, enc: json.NewEncoder(out)}
	if args := flag.Args(); len(args) > 0 {
		err = c.classifyNames(args)
	} else {
		// Follow mode flushes per line so output keeps pace with input.
		err = c.classifyLines(ctx, os.Stdin, out, cfg.Follow)
	}

	if err != nil {
		log.Logger.Error().
			Err(err).
			Msg("failed to write output")
	}
}

// result is one output record.
type result struct {
	Name        string `json:"name"`
	RName       string `json:"rname,omitempty"`
	Suffix      string `json:"suffix,omitempty"`
	Root        string `json:"root,omitempty"`
	Registrable string `json:"registrable,omitempty"`
	ICANN       bool   `json:"icann"`
	Error       string `json:"error,omitempty"`
}

// classifier turns input names into output records.
type classifier struct {
	provider *dnsname.Provider
	fqdn     bool
	enc      *json.Encoder
}

// classify builds the output record for one raw name.
func (c *classifier) classify(raw string) result {
	if c.fqdn {
		raw = dns.Fqdn(raw)
	}

	n, err := c.provider.Classify(raw)
	if err != nil {
		return result{Name: raw, Error: err.Error()}
	}

	res := result{
		Name:  n.Name(),
		RName: n.RName(),
		ICANN: n.ICANN(),
	}
	res.Suffix, _ = n.Suffix()
	res.Root, _ = n.Root()
	res.Registrable, _ = n.Registrable()

	return res
}

// classifyNames writes one record per name.
func (c *classifier) classifyNames(names []string) error {
	for _, raw := range names {
		if err := c.enc.Encode(c.classify(raw)); err != nil {
			return err
		}
	}

	return nil
}

// classifyLines writes one record per non-blank input line until r is
// exhausted or ctx is done. Lines are read in a separate goroutine so a
// cancelled ctx returns without waiting for more input.
func (c *classifier) classifyLines(ctx context.Context, r io.Reader, out *bufio.Writer, flush bool) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			errc <- err
			close(lines)
		}()

		s := bufio.NewScanner(r)
		for s.Scan() {
			select {
			case lines <- s.Text():
			case <-ctx.Done():
				return
			}
		}
		err = s.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case line, ok := <-lines:
			if !ok {
				return <-errc
			}

			raw := strings.TrimSpace(line)
			if raw == "" {
				continue
			}

			if err := c.enc.Encode(c.classify(raw)); err != nil {
				return err
			}

			if flush {
				if err := out.Flush(); err != nil {
					return err
				}
			}
		}
	}
}
