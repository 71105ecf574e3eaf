// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

/*
Package nexthosting classifies Next.js routing configuration against the Firebase Hosting routing model.

Next.js accepts path patterns in path-to-regexp syntax, while Firebase Hosting only understands
glob and named-segment patterns. The package statically decides which rewrites, redirects and
headers can be expressed by the hosting matcher and normalizes the ones that can.
No request is ever matched against a real address.

Basic flow:
  - decode raw config (`DecodeNextConfig`) or load it from file (`LoadNextConfigFile`)
  - linearize phased rewrites (`RulesToUse` / `RewritesToUse`)
  - filter rules (`IsRewriteSupported` / `IsRedirectSupported` / `IsHeaderSupported`)
  - or run the whole pipeline at once (`NewClassifier` / `Classify`)

Path syntax helpers:
  - `PathHasRegex` reports regex intent with escape-aware scanning
  - `CleanEscapedChars` strips escape markers from tracked special characters

Build output probes take an `fs.FS` rooted at the project directory:
  - `UsesAppDirRouter`
  - `UsesNextImage` / `HasUnoptimizedImage` / `UsesImageOptimization`
  - `UsesMiddleware` / `LoadRoutesManifest`
*/
package nexthosting
