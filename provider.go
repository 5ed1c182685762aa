// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dnsname

package dnsname

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ProviderOptions configures file-backed index provider behavior.
type ProviderOptions struct {
	// Logger receives reload and watch events. Zero value disables logging.
	Logger zerolog.Logger `json:"-" yaml:"-"`
	// ExtraRules are in-memory rules compiled after the file rules.
	ExtraRules []Rule `json:"extra_rules,omitempty" yaml:"extra_rules,omitempty"`
	// IndexOptions controls index compilation.
	IndexOptions IndexOptions `json:"index_options" yaml:"index_options"`
	// MatcherOptions controls Provider.Classify behavior.
	MatcherOptions MatcherOptions `json:"matcher_options" yaml:"matcher_options"`
}

// Provider serves an index compiled from a list file and replaces it on reload.
//
// Readers always see a complete index: a failed reload keeps the previous one.
type Provider struct {
	// current is the active compiled index.
	current atomic.Pointer[Index]
	// logger receives reload and watch events.
	logger zerolog.Logger
	// path is absolute list file path.
	path string
	// extraRules are appended after file rules on every load.
	extraRules []Rule

	// mu serializes reloads.
	mu sync.Mutex
	// indexOptions are shared compilation options.
	indexOptions IndexOptions
	// matcherOptions are used by Classify.
	matcherOptions MatcherOptions
}

// NewProvider loads and compiles the list file at path.
func NewProvider(path string, opts ProviderOptions) (*Provider, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	opts.IndexOptions.applyDefaults()

	p := &Provider{
		path:           absPath,
		logger:         opts.Logger,
		extraRules:     opts.ExtraRules,
		indexOptions:   opts.IndexOptions,
		matcherOptions: opts.MatcherOptions,
	}

	idx, err := p.load()
	if err != nil {
		return nil, err
	}

	p.current.Store(idx)
	return p, nil
}

// Path returns the absolute list file path.
func (p *Provider) Path() string {
	if p == nil {
		return ""
	}

	return p.path
}

// Index returns the active index snapshot.
func (p *Provider) Index() *Index {
	if p == nil {
		return nil
	}

	return p.current.Load()
}

// Matcher returns a matcher over the active index snapshot.
func (p *Provider) Matcher(opts MatcherOptions) (*Matcher, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	return NewMatcher(p.current.Load(), opts)
}

// Classify classifies raw against the active index with provider matcher options.
func (p *Provider) Classify(raw string) (Name, error) {
	if p == nil {
		return Name{}, ErrNilProvider
	}

	m, err := p.Matcher(p.matcherOptions)
	if err != nil {
		return Name{}, err
	}

	return m.Classify(raw)
}

// Reload re-reads the list file and activates the new index.
//
// On failure the previous index stays active and the error is returned.
func (p *Provider) Reload() error {
	if p == nil {
		return ErrNilProvider
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	idx, err := p.load()
	if err != nil {
		p.logger.Warn().
			Str("path", p.path).
			Err(err).
			Msg("reload failed, keeping previous index")
		return err
	}

	p.current.Store(idx)
	p.logger.Info().
		Str("path", p.path).
		Int("rules", idx.Len()).
		Str("version", idx.Version()).
		Msg("index reloaded")
	return nil
}

// Watch reloads the index whenever the list file is written, created or
// renamed into place, until ctx is done.
//
// The parent directory is watched so editors and atomic renames that
// replace the file are observed.
func (p *Provider) Watch(ctx context.Context) error {
	if p == nil {
		return ErrNilProvider
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(p.path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != p.path {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			// Errors are logged by Reload and the previous index stays active.
			_ = p.Reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			if errors.Is(err, fsnotify.ErrEventOverflow) {
				_ = p.Reload()
				continue
			}

			p.logger.Error().
				Str("path", p.path).
				Err(err).
				Msg("watch error")
		}
	}
}

// load reads and compiles the list file with extra rules.
func (p *Provider) load() (*Index, error) {
	list, err := LoadListFile(p.path)
	if err != nil {
		return nil, err
	}

	if len(p.extraRules) > 0 {
		list.Rules = MergeRules(list.Rules, p.extraRules)
	}

	idx, err := CompileList(list, p.indexOptions)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", p.path, err)
	}

	return idx, nil
}
