/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for themegen.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Config represents the themegen configuration.
type Config struct {
	// Prefix namespaces generated identifiers (default "sg").
	Prefix string `yaml:"prefix" json:"prefix"`

	// DefaultTheme names the theme bound to the default map.
	DefaultTheme string `yaml:"defaultTheme" json:"defaultTheme"`

	// OutputDir is where the generated modules are written.
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// Metadata specifies token metadata files to load (paths or globs).
	Metadata []FileSpec `yaml:"metadata" json:"metadata"`
}

// FileSpec represents a metadata file specification.
// It can be specified as a simple string path or as an object.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Optional tolerates a missing file instead of failing the run.
	Optional bool `yaml:"optional" json:"optional"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Prefix:       "",
		DefaultTheme: "",
		OutputDir:    "scss/generated",
		Metadata:     nil,
	}
}
