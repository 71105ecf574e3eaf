// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRewritesToUse_Flat(t *testing.T) {
	t.Parallel()

	rewrites := []Rewrite{
		{Source: "/a", Destination: "/1"},
		{Source: `/b/:id(\d+)`, Destination: "/2"},
		{Source: "/c", Destination: "https://example.com"},
	}

	got := RewritesToUse(FlatRoutes(rewrites...))
	if len(got) != len(rewrites) {
		t.Fatalf("len(got)=%d, want %d", len(got), len(rewrites))
	}

	if diff := cmp.Diff(rewrites, got); diff != "" {
		t.Fatalf("flat rewrites mismatch (-want +got):\n%s", diff)
	}

	if &got[0] != &rewrites[0] {
		t.Fatalf("flat rewrites must be returned unchanged")
	}
}

func TestRewritesToUse_Phased(t *testing.T) {
	t.Parallel()

	before := []Rewrite{
		{Source: "/before-1", Destination: "/x"},
		{Source: "/before-2", Destination: "/y"},
	}
	after := []Rewrite{{Source: "/after", Destination: "/z"}}
	fallback := []Rewrite{{Source: "/:path*", Destination: "https://legacy.example.com/:path*"}}

	got := RewritesToUse(PhasedRoutes(before, after, fallback))
	if diff := cmp.Diff(before, got); diff != "" {
		t.Fatalf("phased rewrites mismatch (-want +got):\n%s", diff)
	}

	dropped := DroppedRules(PhasedRoutes(before, after, fallback))
	want := []Rewrite{after[0], fallback[0]}
	if diff := cmp.Diff(want, dropped); diff != "" {
		t.Fatalf("dropped rewrites mismatch (-want +got):\n%s", diff)
	}
}

func TestRewritesToUse_PhasedWithoutBeforeFiles(t *testing.T) {
	t.Parallel()

	cfg := PhasedRoutes(nil, []Rewrite{{Source: "/after", Destination: "/z"}}, nil)

	got := RewritesToUse(cfg)
	if got == nil || len(got) != 0 {
		t.Fatalf("got=%#v, want empty non-nil slice", got)
	}

	if cfg.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", cfg.Len())
	}
}

func TestDroppedRules_Flat(t *testing.T) {
	t.Parallel()

	if dropped := DroppedRules(FlatRoutes(Header{Source: "/a"})); dropped != nil {
		t.Fatalf("flat config must not drop rules, got %+v", dropped)
	}
}

func TestRulesToUse_Generic(t *testing.T) {
	t.Parallel()

	headers := PhasedRoutes(
		[]Header{{Source: "/h1"}},
		[]Header{{Source: "/h2"}},
		nil,
	)

	got := RulesToUse(headers)
	if len(got) != 1 || got[0].Source != "/h1" {
		t.Fatalf("unexpected header rules: %+v", got)
	}

	if headers.Kind.String() != "phased" || RoutesFlat.String() != "flat" {
		t.Fatalf("unexpected kind names")
	}
}
