// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import (
	"fmt"
	"io/fs"
	"log/slog"

	"dario.cat/mergo"
)

// ClassifierOptions controls classifier behavior.
type ClassifierOptions struct {
	// Logger receives one debug record per rejected rule. Nil discards records.
	Logger *slog.Logger `json:"-" yaml:"-"`
	// DistDir is the build output directory relative to project root.
	// Empty value defaults to ".next".
	DistDir string `json:"dist_dir,omitempty" yaml:"dist_dir,omitempty"`
}

// Capabilities are optional feature flags probed from build output.
type Capabilities struct {
	// AppDirRouter reports App Router usage.
	AppDirRouter bool `json:"app_dir_router" yaml:"app_dir_router"`
	// NextImage reports next/image usage.
	NextImage bool `json:"next_image" yaml:"next_image"`
	// UnoptimizedImage reports images.unoptimized.
	UnoptimizedImage bool `json:"unoptimized_image" yaml:"unoptimized_image"`
	// ImageOptimization reports next/image usage with optimization enabled.
	ImageOptimization bool `json:"image_optimization" yaml:"image_optimization"`
}

// Classifier filters and normalizes Next.js routing config for Firebase Hosting.
//
// A Classifier is immutable and safe for concurrent use.
type Classifier struct {
	logger  *slog.Logger
	distDir string
}

// defaultClassifierOptions returns defaults applied to zero-valued options.
func defaultClassifierOptions() ClassifierOptions {
	return ClassifierOptions{
		Logger:  slog.New(slog.DiscardHandler),
		DistDir: DefaultDistDir,
	}
}

// NewClassifier creates a classifier with zero-valued options filled from defaults.
func NewClassifier(opts ClassifierOptions) (*Classifier, error) {
	if err := mergo.Merge(&opts, defaultClassifierOptions()); err != nil {
		return nil, fmt.Errorf("apply classifier defaults: %w", err)
	}

	distDir, err := cleanDistDir(opts.DistDir)
	if err != nil {
		return nil, fmt.Errorf("dist dir %q: %w", opts.DistDir, err)
	}

	return &Classifier{
		logger:  opts.Logger,
		distDir: distDir,
	}, nil
}

// Classify runs linearization, support filtering and normalization with a default classifier.
func Classify(cfg NextConfig) Result {
	c := &Classifier{
		logger:  slog.New(slog.DiscardHandler),
		distDir: DefaultDistDir,
	}

	return c.Classify(cfg)
}

// Classify returns supported rules in Firebase Hosting shape and records every rejected rule.
//
// Pipeline:
// - rewrites are linearized with RewritesToUse; dropped phases are rejected with ReasonRoutingPhase
// - each rule is checked by its support predicate
// - supported sources are passed through CleanEscapedChars
func (c *Classifier) Classify(cfg NextConfig) Result {
	res := Result{
		Rewrites:  make([]HostingRewrite, 0, cfg.Rewrites.Len()),
		Redirects: make([]HostingRedirect, 0, len(cfg.Redirects)),
		Headers:   make([]HostingHeader, 0, len(cfg.Headers)),
	}

	for i, rewrite := range RewritesToUse(cfg.Rewrites) {
		if reason := rewrite.UnsupportedReason(); reason != ReasonNone {
			c.reject(&res, RuleRewrite, i, rewrite.Source, reason)
			continue
		}

		res.Rewrites = append(res.Rewrites, HostingRewrite{
			Source:      CleanEscapedChars(rewrite.Source),
			Destination: rewrite.Destination,
		})
	}

	for i, rewrite := range DroppedRules(cfg.Rewrites) {
		c.reject(&res, RuleRewrite, i, rewrite.Source, ReasonRoutingPhase)
	}

	for i, redirect := range cfg.Redirects {
		if reason := redirect.UnsupportedReason(); reason != ReasonNone {
			c.reject(&res, RuleRedirect, i, redirect.Source, reason)
			continue
		}

		redirectType, _ := HostingRedirectType(redirect)
		res.Redirects = append(res.Redirects, HostingRedirect{
			Source:      CleanEscapedChars(redirect.Source),
			Destination: redirect.Destination,
			Type:        redirectType,
		})
	}

	for i, header := range cfg.Headers {
		if reason := header.UnsupportedReason(); reason != ReasonNone {
			c.reject(&res, RuleHeader, i, header.Source, reason)
			continue
		}

		res.Headers = append(res.Headers, HostingHeader{
			Source:  CleanEscapedChars(header.Source),
			Headers: MergeRules(header.Headers),
		})
	}

	c.logger.Debug("routing config classified",
		"rewrites", len(res.Rewrites),
		"redirects", len(res.Redirects),
		"headers", len(res.Headers),
		"rejected", len(res.Rejected),
	)

	return res
}

// Inspect probes build output capability flags under project filesystem.
func (c *Classifier) Inspect(fsys fs.FS) (Capabilities, error) {
	var caps Capabilities
	var err error

	if caps.AppDirRouter, err = UsesAppDirRouter(fsys); err != nil {
		return Capabilities{}, fmt.Errorf("probe app router: %w", err)
	}

	if caps.NextImage, err = UsesNextImage(fsys, c.distDir); err != nil {
		return Capabilities{}, fmt.Errorf("probe next/image: %w", err)
	}

	if caps.UnoptimizedImage, err = HasUnoptimizedImage(fsys, c.distDir); err != nil {
		return Capabilities{}, fmt.Errorf("probe unoptimized images: %w", err)
	}

	caps.ImageOptimization = caps.NextImage && !caps.UnoptimizedImage

	return caps, nil
}

// reject records one rejected rule.
func (c *Classifier) reject(res *Result, kind RuleKind, index int, source string, reason Reason) {
	c.logger.Debug("rule not supported by hosting",
		"kind", kind.String(),
		"index", index,
		"source", source,
		"reason", string(reason),
	)

	res.Rejected = append(res.Rejected, Rejection{
		Kind:   kind,
		Index:  index,
		Source: source,
		Reason: reason,
	})
}
