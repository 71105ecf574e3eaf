// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

// RoutesKind is the shape tag of a RoutesConfig.
type RoutesKind uint8

const (
	// RoutesFlat is the legacy ordered list shape.
	RoutesFlat RoutesKind = iota
	// RoutesPhased is the beforeFiles/afterFiles/fallback object shape.
	RoutesPhased
)

// String returns the shape name.
func (k RoutesKind) String() string {
	if k == RoutesPhased {
		return "phased"
	}

	return "flat"
}

// RoutesConfig is a routing rule list in one of its legal shapes.
//
// Only the fields of the active Kind are meaningful.
type RoutesConfig[T any] struct {
	// Kind selects the active shape.
	Kind RoutesKind `json:"kind" yaml:"kind"`
	// Rules holds the flat list.
	Rules []T `json:"rules,omitempty" yaml:"rules,omitempty"`
	// BeforeFiles runs before filesystem resolution.
	BeforeFiles []T `json:"beforeFiles,omitempty" yaml:"beforeFiles,omitempty"`
	// AfterFiles runs after filesystem resolution, before dynamic routes.
	AfterFiles []T `json:"afterFiles,omitempty" yaml:"afterFiles,omitempty"`
	// Fallback runs after dynamic routes.
	Fallback []T `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// FlatRoutes builds a flat RoutesConfig.
func FlatRoutes[T any](rules ...T) RoutesConfig[T] {
	return RoutesConfig[T]{Kind: RoutesFlat, Rules: rules}
}

// PhasedRoutes builds a phased RoutesConfig.
func PhasedRoutes[T any](beforeFiles, afterFiles, fallback []T) RoutesConfig[T] {
	return RoutesConfig[T]{
		Kind:        RoutesPhased,
		BeforeFiles: beforeFiles,
		AfterFiles:  afterFiles,
		Fallback:    fallback,
	}
}

// RulesToUse returns the ordered rules that can be mapped onto hosting routing.
//
// Policy:
// - flat config is returned unchanged
// - phased config yields beforeFiles only, in order
// - afterFiles and fallback need filesystem fallthrough semantics and are dropped
func RulesToUse[T any](cfg RoutesConfig[T]) []T {
	if cfg.Kind != RoutesPhased {
		return cfg.Rules
	}

	if cfg.BeforeFiles == nil {
		return []T{}
	}

	return cfg.BeforeFiles
}

// RewritesToUse returns the rewrites that can be mapped onto hosting routing.
func RewritesToUse(cfg RoutesConfig[Rewrite]) []Rewrite {
	return RulesToUse(cfg)
}

// DroppedRules returns rules excluded by RulesToUse: afterFiles then fallback.
func DroppedRules[T any](cfg RoutesConfig[T]) []T {
	if cfg.Kind != RoutesPhased {
		return nil
	}

	return MergeRules(cfg.AfterFiles, cfg.Fallback)
}

// Len returns the total number of rules across all shapes.
func (c RoutesConfig[T]) Len() int {
	if c.Kind != RoutesPhased {
		return len(c.Rules)
	}

	return len(c.BeforeFiles) + len(c.AfterFiles) + len(c.Fallback)
}
