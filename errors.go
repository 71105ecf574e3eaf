// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import "errors"

// Sentinel errors for nexthosting operations.
var (
	// ErrInvalidRoutesConfig indicates a routes value that is neither a list nor a phased object.
	ErrInvalidRoutesConfig = errors.New("invalid routes config")
	// ErrInvalidRule indicates a rule entry that cannot be decoded.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidDocument indicates a build artifact that is not valid JSON or violates its schema.
	ErrInvalidDocument = errors.New("invalid build output document")
	// ErrUnsupportedConfigFormat indicates a config file extension without a known codec.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	// ErrNilFS indicates a nil project filesystem.
	ErrNilFS = errors.New("project filesystem is nil")
	// ErrPathOutsideRoot indicates path traversal or non-relative build output directory.
	ErrPathOutsideRoot = errors.New("path is outside project root")
)
