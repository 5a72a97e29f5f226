// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package queryset provides the search expressions a probe run submits.
// The built-in set goes from most restrictive to most permissive per language,
// so a regression in qualifier handling shows up as a gap between neighbours.
package queryset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrEmpty is returned when a query file lists no queries.
var ErrEmpty = errors.New("query set is empty")

var builtin = []string{
	"language:dart stars:>=1 followers:>=1",
	"language:dart",
	"language:typescript stars:>=1 followers:>=1",
	"language:typescript",
}

// Default returns a copy of the built-in queries in their fixed order.
func Default() []string {
	out := make([]string, len(builtin))
	copy(out, builtin)
	return out
}

// File is the on-disk representation of a query set.
//
//	queries:
//	  - "language:go followers:>=10"
//	  - "location:lisbon"
type File struct {
	Queries []string `yaml:"queries"`
}

// Load reads a query set from a YAML file. Queries keep file order and are
// trimmed; a blank entry is an error.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML query set.
func Parse(data []byte) ([]string, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	if len(f.Queries) == 0 {
		return nil, ErrEmpty
	}

	out := make([]string, 0, len(f.Queries))
	for i, q := range f.Queries {
		q = strings.TrimSpace(q)
		if q == "" {
			return nil, fmt.Errorf("query %d is blank", i+1)
		}
		out = append(out, q)
	}
	return out, nil
}

// Write saves queries to path in the format Load reads.
func Write(path string, queries []string) error {
	data, err := yaml.Marshal(&File{Queries: queries})
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Resolve returns the queries from path, or the built-in set when path is empty.
func Resolve(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
