/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

// Package metadata loads token documentation metadata and rewrites the
// raw token names embedded in its free text into their canonical,
// user-facing form.
package metadata

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/seaglass-design/themegen/fs"
	"github.com/seaglass-design/themegen/token"
)

// File is the YAML metadata document: a flat sequence of token entries.
type File struct {
	Tokens []*token.Meta `yaml:"tokens"`
}

// Parse decodes metadata entries from YAML data.
func Parse(data []byte) ([]*token.Meta, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	return file.Tokens, nil
}

// Load reads and parses a single metadata file.
func Load(filesystem fs.FileSystem, path string) ([]*token.Meta, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata %s: %w", path, err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// LoadAll reads and parses several metadata files, concatenating their
// entries in file order.
func LoadAll(filesystem fs.FileSystem, paths []string) ([]*token.Meta, error) {
	var all []*token.Meta
	for _, path := range paths {
		entries, err := Load(filesystem, path)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}
