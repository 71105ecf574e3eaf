// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// cleanDistDir normalizes build output directory to a valid fs.FS path.
//
// Empty value defaults to DefaultDistDir. Absolute paths and paths escaping
// the project root fail with ErrPathOutsideRoot.
func cleanDistDir(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultDistDir, nil
	}

	if filepath.IsAbs(trimmed) {
		return "", ErrPathOutsideRoot
	}

	p := filepath.ToSlash(trimmed)
	if strings.HasPrefix(p, "/") {
		return "", ErrPathOutsideRoot
	}

	p = path.Clean(p)
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", ErrPathOutsideRoot
	}

	if !fs.ValidPath(p) {
		return "", ErrPathOutsideRoot
	}

	return p, nil
}

// artifactPath joins build output directory and artifact name.
func artifactPath(distDir string, name string) string {
	if distDir == "." {
		return name
	}

	return distDir + "/" + name
}
