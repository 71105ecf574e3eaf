// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFormat is a config file codec.
type ConfigFormat string

const (
	// FormatJSON decodes JSON documents.
	FormatJSON ConfigFormat = "json"
	// FormatYAML decodes YAML documents.
	FormatYAML ConfigFormat = "yaml"
)

// FormatFromPath detects config format by file extension.
func FormatFromPath(path string) (ConfigFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, filepath.Ext(path))
	}
}

// ParseNextConfig decodes routing config from a JSON or YAML document.
func ParseNextConfig(data []byte, format ConfigFormat) (NextConfig, error) {
	raw := make(map[string]any)

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return NextConfig{}, fmt.Errorf("parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return NextConfig{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return NextConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, format)
	}

	return DecodeNextConfig(raw)
}

// LoadNextConfigFile reads and decodes routing config from a JSON or YAML file.
func LoadNextConfigFile(path string) (NextConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return NextConfig{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return NextConfig{}, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := ParseNextConfig(data, format)
	if err != nil {
		return NextConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}
