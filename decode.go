// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// Phase keys of the phased routes object.
const (
	phaseBeforeFiles = "beforeFiles"
	phaseAfterFiles  = "afterFiles"
	phaseFallback    = "fallback"
)

// DecodeNextConfig decodes the routing keys of a raw Next.js config object.
//
// Keys:
// - "rewrites": flat list or phased object
// - "redirects": flat list
// - "headers": flat list
// Other keys are ignored. Absent or null keys decode to empty config.
func DecodeNextConfig(raw map[string]any) (NextConfig, error) {
	var cfg NextConfig

	if v, ok := raw["rewrites"]; ok && v != nil {
		rewrites, err := DecodeRoutesConfig[Rewrite](v)
		if err != nil {
			return NextConfig{}, fmt.Errorf("decode rewrites: %w", err)
		}

		cfg.Rewrites = rewrites
	}

	if v, ok := raw["redirects"]; ok && v != nil {
		redirects, err := decodeRules[Redirect](v)
		if err != nil {
			return NextConfig{}, fmt.Errorf("decode redirects: %w", err)
		}

		cfg.Redirects = redirects
	}

	if v, ok := raw["headers"]; ok && v != nil {
		headers, err := decodeRules[Header](v)
		if err != nil {
			return NextConfig{}, fmt.Errorf("decode headers: %w", err)
		}

		cfg.Headers = headers
	}

	return cfg, nil
}

// DecodeRoutesConfig resolves a raw routes value into its tagged shape.
//
// A list decodes to RoutesFlat, an object with beforeFiles/afterFiles/fallback
// keys decodes to RoutesPhased. Anything else fails with ErrInvalidRoutesConfig.
func DecodeRoutesConfig[T any](raw any) (RoutesConfig[T], error) {
	switch v := raw.(type) {
	case nil:
		return RoutesConfig[T]{Kind: RoutesFlat}, nil
	case []T:
		return RoutesConfig[T]{Kind: RoutesFlat, Rules: v}, nil
	case RoutesConfig[T]:
		return v, nil
	case map[string]any:
		return decodePhasedRoutes[T](v)
	}

	if isList(raw) {
		rules, err := decodeRules[T](raw)
		if err != nil {
			return RoutesConfig[T]{}, err
		}

		return RoutesConfig[T]{Kind: RoutesFlat, Rules: rules}, nil
	}

	return RoutesConfig[T]{}, fmt.Errorf("%w: unexpected %T", ErrInvalidRoutesConfig, raw)
}

// decodePhasedRoutes decodes the beforeFiles/afterFiles/fallback object shape.
func decodePhasedRoutes[T any](raw map[string]any) (RoutesConfig[T], error) {
	unknown := make([]string, 0)
	for key := range raw {
		switch key {
		case phaseBeforeFiles, phaseAfterFiles, phaseFallback:
		default:
			unknown = append(unknown, key)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return RoutesConfig[T]{}, fmt.Errorf("%w: unknown phase keys %s", ErrInvalidRoutesConfig, strings.Join(unknown, ", "))
	}

	cfg := RoutesConfig[T]{Kind: RoutesPhased}
	phases := []struct {
		dst *[]T
		key string
	}{
		{key: phaseBeforeFiles, dst: &cfg.BeforeFiles},
		{key: phaseAfterFiles, dst: &cfg.AfterFiles},
		{key: phaseFallback, dst: &cfg.Fallback},
	}

	for _, phase := range phases {
		v, ok := raw[phase.key]
		if !ok || v == nil {
			continue
		}

		if !isList(v) {
			return RoutesConfig[T]{}, fmt.Errorf("%w: %s must be a list, got %T", ErrInvalidRoutesConfig, phase.key, v)
		}

		rules, err := decodeRules[T](v)
		if err != nil {
			return RoutesConfig[T]{}, fmt.Errorf("%s: %w", phase.key, err)
		}

		*phase.dst = rules
	}

	return cfg, nil
}

// decodeRules decodes a raw list into typed rules preserving order.
func decodeRules[T any](raw any) ([]T, error) {
	if !isList(raw) {
		return nil, fmt.Errorf("%w: expected list, got %T", ErrInvalidRoutesConfig, raw)
	}

	out := make([]T, 0, reflect.ValueOf(raw).Len())
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       coerceScalarHook,
		Result:           &out,
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}

	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	return out, nil
}

// coerceScalarHook coerces loosely typed status codes and flags
// ("308", 308.0, "true") into int and bool fields.
func coerceScalarHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if data == nil || from == to {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int:
		if from.Kind() == reflect.Int {
			return data, nil
		}

		return cast.ToIntE(data)
	case reflect.Bool:
		return cast.ToBoolE(data)
	default:
		return data, nil
	}
}

// isList reports whether raw is a slice or array value.
func isList(raw any) bool {
	if raw == nil {
		return false
	}

	kind := reflect.TypeOf(raw).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}
