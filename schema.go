// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nexthosting

package nexthosting

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.schema.json
var schemaFiles embed.FS

// schemaBaseURL names embedded schema resources independent of the working directory.
const schemaBaseURL = "mem:///schemas/"

// artifactSchemas holds compiled build output schemas keyed by artifact file name.
var artifactSchemas struct {
	byName map[string]*jsonschema.Schema
	err    error
	once   sync.Once
}

// compileArtifactSchemas compiles every embedded schema once.
func compileArtifactSchemas() (map[string]*jsonschema.Schema, error) {
	entries, err := fs.ReadDir(schemaFiles, "schemas")
	if err != nil {
		return nil, fmt.Errorf("list schemas: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	out := make(map[string]*jsonschema.Schema, len(entries))

	for _, entry := range entries {
		data, err := fs.ReadFile(schemaFiles, "schemas/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", entry.Name(), err)
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", entry.Name(), err)
		}

		if err := compiler.AddResource(schemaBaseURL+entry.Name(), doc); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", entry.Name(), err)
		}
	}

	for _, entry := range entries {
		sch, err := compiler.Compile(schemaBaseURL + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", entry.Name(), err)
		}

		artifact := strings.TrimSuffix(entry.Name(), ".schema.json") + ".json"
		out[artifact] = sch
	}

	return out, nil
}

// validateArtifact parses data as JSON and validates it against the artifact schema.
//
// Artifacts without a registered schema are only checked for JSON syntax.
func validateArtifact(name string, data []byte) error {
	artifactSchemas.once.Do(func() {
		artifactSchemas.byName, artifactSchemas.err = compileArtifactSchemas()
	})

	if artifactSchemas.err != nil {
		return artifactSchemas.err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse json: %w", err)
	}

	sch, ok := artifactSchemas.byName[path.Base(name)]
	if !ok {
		return nil
	}

	return sch.Validate(inst)
}
