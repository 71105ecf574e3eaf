// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import "net/http"

// IsRewriteSupported reports whether rewrite can be expressed as a Firebase Hosting rewrite.
func IsRewriteSupported(rewrite Rewrite) bool {
	return rewrite.UnsupportedReason() == ReasonNone
}

// IsRedirectSupported reports whether redirect can be expressed as a Firebase Hosting redirect.
func IsRedirectSupported(redirect Redirect) bool {
	return redirect.UnsupportedReason() == ReasonNone
}

// IsHeaderSupported reports whether header can be expressed as a Firebase Hosting headers entry.
func IsHeaderSupported(header Header) bool {
	return header.UnsupportedReason() == ReasonNone
}

// UnsupportedReason returns the first disqualifying check, or ReasonNone.
//
// Check order: conditions, destination, source pattern.
func (r Rewrite) UnsupportedReason() Reason {
	if conditional(r.Has, r.Missing) {
		return ReasonConditional
	}

	if isRemoteDestination(r.Destination) {
		return ReasonRemoteDestination
	}

	if PathHasRegex(r.Source) {
		return ReasonRegexSource
	}

	return ReasonNone
}

// UnsupportedReason returns the first disqualifying check, or ReasonNone.
//
// Check order: conditions, internal flag, status code, source pattern.
func (r Redirect) UnsupportedReason() Reason {
	if conditional(r.Has, r.Missing) {
		return ReasonConditional
	}

	if r.Internal {
		return ReasonInternalRedirect
	}

	if _, ok := HostingRedirectType(r); !ok {
		return ReasonStatusCode
	}

	if PathHasRegex(r.Source) {
		return ReasonRegexSource
	}

	return ReasonNone
}

// UnsupportedReason returns the first disqualifying check, or ReasonNone.
//
// Check order: conditions, header templates, source pattern.
func (h Header) UnsupportedReason() Reason {
	if conditional(h.Has, h.Missing) {
		return ReasonConditional
	}

	for _, entry := range h.Headers {
		if hasNamedParam(entry.Key) || hasNamedParam(entry.Value) {
			return ReasonTemplatedHeader
		}
	}

	if PathHasRegex(h.Source) {
		return ReasonRegexSource
	}

	return ReasonNone
}

// HostingRedirectType maps redirect status onto the two codes Firebase Hosting supports.
//
// Mapping:
// - statusCode 301 or 308 -> 301
// - statusCode 302 or 307 -> 302
// - any other explicit statusCode -> not representable
// - without statusCode: permanent true -> 301, otherwise 302
func HostingRedirectType(redirect Redirect) (int, bool) {
	switch redirect.StatusCode {
	case 0:
	case http.StatusMovedPermanently, http.StatusPermanentRedirect:
		return http.StatusMovedPermanently, true
	case http.StatusFound, http.StatusTemporaryRedirect:
		return http.StatusFound, true
	default:
		return 0, false
	}

	if redirect.Permanent != nil && *redirect.Permanent {
		return http.StatusMovedPermanently, true
	}

	return http.StatusFound, true
}
