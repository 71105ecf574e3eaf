// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

// RouteHas is one conditional matcher of a "has" or "missing" list.
type RouteHas struct {
	// Type is the matched request part: "header", "cookie", "query" or "host".
	Type string `json:"type" yaml:"type" mapstructure:"type"`
	// Key is the header, cookie or query name. Empty for "host".
	Key string `json:"key,omitempty" yaml:"key,omitempty" mapstructure:"key"`
	// Value is an optional value pattern.
	Value string `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`
}

// Rewrite maps an incoming path pattern to a destination without changing the visible address.
type Rewrite struct {
	// Source is the incoming path pattern.
	Source string `json:"source" yaml:"source" mapstructure:"source"`
	// Destination is an internal path or a remote URL.
	Destination string `json:"destination" yaml:"destination" mapstructure:"destination"`
	// BasePath set to false disables basePath prefixing. Ignorable.
	BasePath *bool `json:"basePath,omitempty" yaml:"basePath,omitempty" mapstructure:"basePath"`
	// Locale set to false disables locale prefixing. Ignorable.
	Locale *bool `json:"locale,omitempty" yaml:"locale,omitempty" mapstructure:"locale"`
	// Has lists conditions that must match. Presence disqualifies the rule.
	Has []RouteHas `json:"has,omitempty" yaml:"has,omitempty" mapstructure:"has"`
	// Missing lists conditions that must not match. Presence disqualifies the rule.
	Missing []RouteHas `json:"missing,omitempty" yaml:"missing,omitempty" mapstructure:"missing"`
}

// Redirect instructs the client to navigate from a path pattern to a destination.
type Redirect struct {
	Source      string     `json:"source" yaml:"source" mapstructure:"source"`
	Destination string     `json:"destination" yaml:"destination" mapstructure:"destination"`
	Permanent   *bool      `json:"permanent,omitempty" yaml:"permanent,omitempty" mapstructure:"permanent"`
	StatusCode  int        `json:"statusCode,omitempty" yaml:"statusCode,omitempty" mapstructure:"statusCode"`
	BasePath    *bool      `json:"basePath,omitempty" yaml:"basePath,omitempty" mapstructure:"basePath"`
	Locale      *bool      `json:"locale,omitempty" yaml:"locale,omitempty" mapstructure:"locale"`
	Has         []RouteHas `json:"has,omitempty" yaml:"has,omitempty" mapstructure:"has"`
	Missing     []RouteHas `json:"missing,omitempty" yaml:"missing,omitempty" mapstructure:"missing"`
	// Internal marks redirects generated by the framework itself (trailing slash handling).
	Internal bool `json:"internal,omitempty" yaml:"internal,omitempty" mapstructure:"internal"`
}

// HeaderEntry is one response header key/value pair.
type HeaderEntry struct {
	Key   string `json:"key" yaml:"key" mapstructure:"key"`
	Value string `json:"value" yaml:"value" mapstructure:"value"`
}

// Header attaches an ordered set of response headers to requests matching a path pattern.
type Header struct {
	Source   string        `json:"source" yaml:"source" mapstructure:"source"`
	Headers  []HeaderEntry `json:"headers" yaml:"headers" mapstructure:"headers"`
	BasePath *bool         `json:"basePath,omitempty" yaml:"basePath,omitempty" mapstructure:"basePath"`
	Locale   *bool         `json:"locale,omitempty" yaml:"locale,omitempty" mapstructure:"locale"`
	Has      []RouteHas    `json:"has,omitempty" yaml:"has,omitempty" mapstructure:"has"`
	Missing  []RouteHas    `json:"missing,omitempty" yaml:"missing,omitempty" mapstructure:"missing"`
}

// NextConfig is the routing part of a resolved Next.js configuration.
type NextConfig struct {
	// Rewrites may be flat or phased.
	Rewrites RoutesConfig[Rewrite] `json:"rewrites" yaml:"rewrites"`
	// Redirects are always a flat ordered list.
	Redirects []Redirect `json:"redirects,omitempty" yaml:"redirects,omitempty"`
	// Headers are always a flat ordered list.
	Headers []Header `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// HostingRewrite is a Firebase Hosting rewrite entry.
type HostingRewrite struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
}

// HostingRedirect is a Firebase Hosting redirect entry.
type HostingRedirect struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	// Type is 301 or 302.
	Type int `json:"type" yaml:"type"`
}

// HostingHeader is a Firebase Hosting headers entry.
type HostingHeader struct {
	Source  string        `json:"source" yaml:"source"`
	Headers []HeaderEntry `json:"headers" yaml:"headers"`
}

// RuleKind identifies a rule variant.
type RuleKind uint8

const (
	// RuleRewrite is a rewrite rule.
	RuleRewrite RuleKind = iota + 1
	// RuleRedirect is a redirect rule.
	RuleRedirect
	// RuleHeader is a header rule.
	RuleHeader
)

// String returns the lower-case variant name.
func (k RuleKind) String() string {
	switch k {
	case RuleRewrite:
		return "rewrite"
	case RuleRedirect:
		return "redirect"
	case RuleHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Reason explains why a rule cannot be expressed by the hosting matcher.
type Reason string

const (
	// ReasonNone means the rule is supported.
	ReasonNone Reason = ""
	// ReasonRegexSource means the source uses regex syntax.
	ReasonRegexSource Reason = "regex-source"
	// ReasonConditional means the rule has "has" or "missing" matchers.
	ReasonConditional Reason = "conditional"
	// ReasonRemoteDestination means a rewrite proxies to a remote URL.
	ReasonRemoteDestination Reason = "remote-destination"
	// ReasonStatusCode means the redirect status has no 301/302 equivalent.
	ReasonStatusCode Reason = "status-code"
	// ReasonInternalRedirect means the redirect was generated by the framework.
	ReasonInternalRedirect Reason = "internal-redirect"
	// ReasonTemplatedHeader means a header key or value references a path parameter.
	ReasonTemplatedHeader Reason = "templated-header"
	// ReasonRoutingPhase means the rule belongs to the afterFiles or fallback phase.
	ReasonRoutingPhase Reason = "routing-phase"
)

// Rejection records one rule left out of the hosting config.
type Rejection struct {
	// Kind is the rule variant.
	Kind RuleKind `json:"kind" yaml:"kind"`
	// Index is the rule index in its input list, or in afterFiles+fallback order for ReasonRoutingPhase.
	Index int `json:"index" yaml:"index"`
	// Source is the original source pattern.
	Source string `json:"source" yaml:"source"`
	// Reason is the first disqualifying check.
	Reason Reason `json:"reason" yaml:"reason"`
}

// Result is the normalized, filtered output of one classification.
type Result struct {
	Rewrites  []HostingRewrite  `json:"rewrites" yaml:"rewrites"`
	Redirects []HostingRedirect `json:"redirects" yaml:"redirects"`
	Headers   []HostingHeader   `json:"headers" yaml:"headers"`
	Rejected  []Rejection       `json:"rejected,omitempty" yaml:"rejected,omitempty"`
}

// conditional reports whether has/missing matchers are declared.
func conditional(has []RouteHas, missing []RouteHas) bool {
	return has != nil || missing != nil
}
