// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cfg := NextConfig{
		Rewrites: PhasedRoutes(
			[]Rewrite{
				{Source: `/en\(default\)/:slug`, Destination: "/:slug"},
				{Source: `/post/:id(\d+)`, Destination: "/p/:id"},
				{Source: "/proxy/:path*", Destination: "https://api.example.com/:path*"},
			},
			[]Rewrite{{Source: "/after", Destination: "/x"}},
			[]Rewrite{{Source: "/:path*", Destination: "/fallback"}},
		),
		Redirects: []Redirect{
			{Source: "/old", Destination: "/new", Permanent: boolPtr(true)},
			{Source: `/a\+b`, Destination: "/ab", StatusCode: 307},
			{Source: "/see", Destination: "/other", StatusCode: 303},
		},
		Headers: []Header{
			{Source: "/assets/**", Headers: []HeaderEntry{{Key: "cache-control", Value: "max-age=60"}}},
			{Source: "/blog/:slug", Headers: []HeaderEntry{{Key: "x-slug", Value: ":slug"}}},
		},
	}

	got := Classify(cfg)

	want := Result{
		Rewrites: []HostingRewrite{
			{Source: "/en(default)/:slug", Destination: "/:slug"},
		},
		Redirects: []HostingRedirect{
			{Source: "/old", Destination: "/new", Type: 301},
			{Source: "/a+b", Destination: "/ab", Type: 302},
		},
		Headers: []HostingHeader{
			{Source: "/assets/**", Headers: []HeaderEntry{{Key: "cache-control", Value: "max-age=60"}}},
		},
		Rejected: []Rejection{
			{Kind: RuleRewrite, Index: 1, Source: `/post/:id(\d+)`, Reason: ReasonRegexSource},
			{Kind: RuleRewrite, Index: 2, Source: "/proxy/:path*", Reason: ReasonRemoteDestination},
			{Kind: RuleRewrite, Index: 0, Source: "/after", Reason: ReasonRoutingPhase},
			{Kind: RuleRewrite, Index: 1, Source: "/:path*", Reason: ReasonRoutingPhase},
			{Kind: RuleRedirect, Index: 2, Source: "/see", Reason: ReasonStatusCode},
			{Kind: RuleHeader, Index: 1, Source: "/blog/:slug", Reason: ReasonTemplatedHeader},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_HeadersAreCopied(t *testing.T) {
	t.Parallel()

	entries := []HeaderEntry{{Key: "x-a", Value: "1"}}
	res := Classify(NextConfig{Headers: []Header{{Source: "/a", Headers: entries}}})

	entries[0].Value = "mutated"
	if res.Headers[0].Headers[0].Value != "1" {
		t.Fatalf("hosting headers alias input entries")
	}
}

func TestClassify_SourcesAreClean(t *testing.T) {
	t.Parallel()

	rewrites := make([]Rewrite, 0, len(pathsWithEscapedChars))
	for _, path := range pathsWithEscapedChars {
		rewrites = append(rewrites, Rewrite{Source: path, Destination: "/"})
	}

	res := Classify(NextConfig{Rewrites: FlatRoutes(rewrites...)})
	if len(res.Rewrites) != len(rewrites) {
		t.Fatalf("len(res.Rewrites)=%d, want %d; rejected=%+v", len(res.Rewrites), len(rewrites), res.Rejected)
	}

	for _, rewrite := range res.Rewrites {
		for _, seq := range []string{`\(`, `\)`, `\{`, `\}`, `\:`, `\+`, `\?`, `\*`} {
			if strings.Contains(rewrite.Source, seq) {
				t.Fatalf("source %q still contains %q", rewrite.Source, seq)
			}
		}
	}
}

func TestClassifier_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := NewClassifier(ClassifierOptions{Logger: logger})
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}

	c.Classify(NextConfig{Rewrites: FlatRoutes(Rewrite{Source: `/x/:id(\d+)`, Destination: "/y"})})

	out := buf.String()
	if !strings.Contains(out, "reason=regex-source") || !strings.Contains(out, "kind=rewrite") {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestNewClassifier_InvalidDistDir(t *testing.T) {
	t.Parallel()

	if _, err := NewClassifier(ClassifierOptions{DistDir: "../build"}); !errors.Is(err, ErrPathOutsideRoot) {
		t.Fatalf("err=%v, want ErrPathOutsideRoot", err)
	}
}

func TestClassifier_Inspect(t *testing.T) {
	t.Parallel()

	c, err := NewClassifier(ClassifierOptions{DistDir: "build"})
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}

	fsys := fstest.MapFS{
		"app/layout.tsx":              {Data: []byte("x")},
		"build/export-marker.json":    {Data: []byte(`{"isNextImageImported":true}`)},
		"build/images-manifest.json":  {Data: []byte(`{"images":{"unoptimized":false}}`)},
		".next/export-marker.json":    {Data: []byte(`{"isNextImageImported":false}`)},
		".next/images-manifest.json":  {Data: []byte(`{"images":{"unoptimized":true}}`)},
		"build/routes-manifest.json":  {Data: []byte(`{}`)},
		"pages/api/hello.ts":          {Data: []byte("x")},
		"public/favicon.ico":          {Data: []byte{0}},
		"build/server/pages/404.html": {Data: []byte("x")},
	}

	caps, err := c.Inspect(fsys)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	want := Capabilities{
		AppDirRouter:      true,
		NextImage:         true,
		UnoptimizedImage:  false,
		ImageOptimization: true,
	}
	if diff := cmp.Diff(want, caps); diff != "" {
		t.Fatalf("capabilities mismatch (-want +got):\n%s", diff)
	}

	delete(fsys, "build/images-manifest.json")
	if _, err := c.Inspect(fsys); err == nil {
		t.Fatalf("Inspect must fail when images manifest is missing")
	}
}

func TestClassify_RoutesManifest(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		".next/routes-manifest.json": {Data: []byte(routesManifestFixture)},
	}

	manifest, err := LoadRoutesManifest(fsys, DefaultDistDir)
	if err != nil {
		t.Fatalf("LoadRoutesManifest: %v", err)
	}

	res := Classify(manifest.NextConfig)

	wantRewrites := []HostingRewrite{{Source: "/en(default)/:slug", Destination: "/:slug"}}
	if diff := cmp.Diff(wantRewrites, res.Rewrites); diff != "" {
		t.Fatalf("rewrites mismatch (-want +got):\n%s", diff)
	}

	wantRedirects := []HostingRedirect{{Source: "/old-blog/:slug", Destination: "/blog/:slug", Type: 301}}
	if diff := cmp.Diff(wantRedirects, res.Redirects); diff != "" {
		t.Fatalf("redirects mismatch (-want +got):\n%s", diff)
	}

	if len(res.Headers) != 1 || res.Headers[0].Source != "/:path*" {
		t.Fatalf("unexpected headers: %+v", res.Headers)
	}

	if len(res.Rejected) != 5 {
		t.Fatalf("len(res.Rejected)=%d, want 5: %+v", len(res.Rejected), res.Rejected)
	}
}
