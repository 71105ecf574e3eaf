// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import "strings"

// escapeMarker prefixes a byte that must be read literally.
const escapeMarker = '\\'

// escapableChars are bytes whose escaped form is a literal in Next.js path patterns.
var escapableChars = [256]bool{
	'(': true,
	')': true,
	'{': true,
	'}': true,
	':': true,
	'+': true,
	'?': true,
	'*': true,
}

// regexChars are bytes that carry regex meaning whenever they are not escaped.
var regexChars = [256]bool{
	'(': true,
	')': true,
	'{': true,
	'}': true,
	'+': true,
	'?': true,
}

// PathHasRegex reports whether path uses regex syntax the hosting matcher cannot express.
//
// Semantics:
// - "\" escapes the next byte, including another "\"
// - unescaped "(", ")", "{", "}", "+", "?" mean regex
// - unescaped "*" is a glob token ("*", "**", "*.html", "/:path*")
// - unescaped "*" quantifying "." (".*") means regex, unless the "." starts
//   a segment ("/.*") or follows a glob "*" ("*.*")
func PathHasRegex(path string) bool {
	var prev, beforePrev byte
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == escapeMarker {
			// Skip the escaped byte; it is a literal and cannot be quantified either.
			i++
			prev, beforePrev = 0, 0
			continue
		}

		if regexChars[c] {
			return true
		}

		if c == '*' && prev == '.' && beforePrev != '/' && beforePrev != '*' {
			return true
		}

		beforePrev, prev = prev, c
	}

	return false
}

// CleanEscapedChars removes the escape marker in front of each escapable byte.
//
// Escaped backslashes ("\\") are kept verbatim, so the result never gains new
// escape sequences and repeated calls return the same string.
func CleanEscapedChars(path string) string {
	if strings.IndexByte(path, escapeMarker) < 0 {
		return path
	}

	var b strings.Builder
	b.Grow(len(path))

	for i := 0; i < len(path); i++ {
		c := path[i]
		if c != escapeMarker || i+1 >= len(path) {
			b.WriteByte(c)
			continue
		}

		next := path[i+1]
		switch {
		case escapableChars[next]:
			b.WriteByte(next)
			i++
		case next == escapeMarker:
			b.WriteByte(c)
			b.WriteByte(next)
			i++
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// hasNamedParam reports whether s references a ":name" path parameter.
func hasNamedParam(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == escapeMarker {
			i++
			continue
		}

		if s[i] == ':' && isParamStart(s[i+1]) {
			return true
		}
	}

	return false
}

// isParamStart reports whether c may start a named parameter identifier.
func isParamStart(c byte) bool {
	return c == '_' || isASCIIAlpha(c)
}

// isASCIIAlpha reports whether c is an ASCII letter.
func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isASCIIDigit reports whether c is an ASCII digit.
func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isRemoteDestination reports whether destination points to another origin.
func isRemoteDestination(destination string) bool {
	destination = strings.TrimSpace(destination)
	if strings.HasPrefix(destination, "//") {
		return true
	}

	scheme, rest, ok := strings.Cut(destination, "://")
	if !ok || scheme == "" || rest == "" {
		return false
	}

	// RFC 3986 scheme: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
	for i := 0; i < len(scheme); i++ {
		c := scheme[i]
		if isASCIIAlpha(c) {
			continue
		}

		if i > 0 && (isASCIIDigit(c) || c == '+' || c == '-' || c == '.') {
			continue
		}

		return false
	}

	return true
}
