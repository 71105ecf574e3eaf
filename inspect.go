// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cast"
)

// Build output layout.
const (
	// DefaultDistDir is the Next.js build output directory.
	DefaultDistDir = ".next"
	// AppDirName is the App Router directory under project root.
	AppDirName = "app"
	// ExportMarkerFile is the export marker document under build output.
	ExportMarkerFile = "export-marker.json"
	// ImagesManifestFile is the images manifest document under build output.
	ImagesManifestFile = "images-manifest.json"
	// MiddlewareManifestFile is the middleware manifest document under build output.
	MiddlewareManifestFile = "server/middleware-manifest.json"
	// RoutesManifestFile is the resolved routing manifest under build output.
	RoutesManifestFile = "routes-manifest.json"
)

// exportMarker is the part of export-marker.json the probes read.
type exportMarker struct {
	IsNextImageImported bool `json:"isNextImageImported"`
}

// imagesManifest is the part of images-manifest.json the probes read.
type imagesManifest struct {
	Images struct {
		Unoptimized bool `json:"unoptimized"`
	} `json:"images"`
}

// middlewareManifest is the part of middleware-manifest.json the probes read.
type middlewareManifest struct {
	Middleware map[string]json.RawMessage `json:"middleware"`
}

// RoutesManifest is the resolved routing manifest written by next build.
type RoutesManifest struct {
	// Version is the manifest format version.
	Version int `json:"version" yaml:"version"`
	// BasePath is the configured basePath, empty when unset.
	BasePath string `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	// NextConfig holds decoded rewrites, redirects and headers.
	NextConfig `yaml:",inline"`
}

// UsesAppDirRouter reports whether the project root has an "app" directory.
//
// Absence is a plain false. Other stat failures are returned.
func UsesAppDirRouter(fsys fs.FS) (bool, error) {
	if fsys == nil {
		return false, ErrNilFS
	}

	info, err := fs.Stat(fsys, AppDirName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("stat %s: %w", AppDirName, err)
	}

	return info.IsDir(), nil
}

// UsesNextImage reports export marker "isNextImageImported" flag.
//
// A missing field is false. Read, parse and schema failures are returned.
func UsesNextImage(fsys fs.FS, distDir string) (bool, error) {
	var doc exportMarker
	if err := readArtifact(fsys, distDir, ExportMarkerFile, &doc); err != nil {
		return false, err
	}

	return doc.IsNextImageImported, nil
}

// HasUnoptimizedImage reports images manifest "images.unoptimized" flag.
//
// A missing field is false. Read, parse and schema failures are returned.
func HasUnoptimizedImage(fsys fs.FS, distDir string) (bool, error) {
	var doc imagesManifest
	if err := readArtifact(fsys, distDir, ImagesManifestFile, &doc); err != nil {
		return false, err
	}

	return doc.Images.Unoptimized, nil
}

// UsesImageOptimization reports whether next/image is used with optimization enabled.
func UsesImageOptimization(fsys fs.FS, distDir string) (bool, error) {
	usesImage, err := UsesNextImage(fsys, distDir)
	if err != nil || !usesImage {
		return false, err
	}

	unoptimized, err := HasUnoptimizedImage(fsys, distDir)
	if err != nil {
		return false, err
	}

	return !unoptimized, nil
}

// UsesMiddleware reports whether the middleware manifest declares at least one middleware.
func UsesMiddleware(fsys fs.FS, distDir string) (bool, error) {
	var doc middlewareManifest
	if err := readArtifact(fsys, distDir, MiddlewareManifestFile, &doc); err != nil {
		return false, err
	}

	return len(doc.Middleware) > 0, nil
}

// LoadRoutesManifest reads and decodes routes-manifest.json.
func LoadRoutesManifest(fsys fs.FS, distDir string) (RoutesManifest, error) {
	raw := make(map[string]any)
	if err := readArtifact(fsys, distDir, RoutesManifestFile, &raw); err != nil {
		return RoutesManifest{}, err
	}

	cfg, err := DecodeNextConfig(raw)
	if err != nil {
		return RoutesManifest{}, fmt.Errorf("decode %s: %w", RoutesManifestFile, err)
	}

	return RoutesManifest{
		Version:    cast.ToInt(raw["version"]),
		BasePath:   cast.ToString(raw["basePath"]),
		NextConfig: cfg,
	}, nil
}

// readArtifact reads one build output document, validates and decodes it into out.
func readArtifact(fsys fs.FS, distDir string, name string, out any) error {
	if fsys == nil {
		return ErrNilFS
	}

	dir, err := cleanDistDir(distDir)
	if err != nil {
		return fmt.Errorf("dist dir %q: %w", distDir, err)
	}

	p := artifactPath(dir, name)
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("read %s: %w", p, err)
	}

	if err := validateArtifact(name, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, p, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, p, err)
	}

	return nil
}
