// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

// MergeRules merges rule slices preserving input order.
//
// The result never aliases input backing arrays.
func MergeRules[T any](ruleSets ...[]T) []T {
	total := 0
	for _, set := range ruleSets {
		total += len(set)
	}

	out := make([]T, 0, total)
	for _, set := range ruleSets {
		out = append(out, set...)
	}

	return out
}
