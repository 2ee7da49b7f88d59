/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

// Package token provides color token metadata types and the token name
// formatter shared by every generator component.
package token

// Meta is the documentation metadata for a single color token.
type Meta struct {
	// Name is the token's raw identifier as it appears in the theme
	// tables and metadata file (e.g., "interactive01").
	Name string `yaml:"name" json:"name"`

	// Role describes where the token is intended to be used, one
	// sentence per entry.
	Role []string `yaml:"role,omitempty" json:"role,omitempty"`

	// Alias is another token this one mirrors, if any.
	Alias string `yaml:"alias,omitempty" json:"alias,omitempty"`

	// Deprecated indicates the token should no longer be used.
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Set holds metadata entries keyed by raw token name. At most one entry
// exists per token; tokens without metadata are simply absent.
type Set struct {
	order   []string
	entries map[string]*Meta
}

// NewSet builds a Set from entries. Later duplicates replace earlier
// ones without disturbing the original position.
func NewSet(entries []*Meta) *Set {
	s := &Set{entries: make(map[string]*Meta, len(entries))}
	for _, entry := range entries {
		if _, exists := s.entries[entry.Name]; !exists {
			s.order = append(s.order, entry.Name)
		}
		s.entries[entry.Name] = entry
	}
	return s
}

// Lookup returns the metadata for a raw token name. The second return
// distinguishes "no metadata" from an empty entry.
func (s *Set) Lookup(name string) (*Meta, bool) {
	if s == nil {
		return nil, false
	}
	entry, ok := s.entries[name]
	return entry, ok
}

// Names returns the raw token names in first-seen order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Len returns the number of entries in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
