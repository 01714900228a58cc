// Package config loads operator-precedence extension files. A file adds to
// or overrides the parser's built-in binary operators without touching any
// parsing logic.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the operator file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// operatorFile is the on-disk shape shared by both formats:
//
//	[operators]        operators:
//	"|" = 5              "|": 5
//	"%" = 45             "%": 45
type operatorFile struct {
	Operators map[string]int `toml:"operators" yaml:"operators"`
}

// LoadOperators loads additional binary operators from path, auto-detecting
// the format from the file extension.
func LoadOperators(path string) (map[byte]int, error) {
	return LoadOperatorsWithFormat(path, FormatAuto)
}

// LoadOperatorsWithFormat loads additional binary operators from path in the
// given format. Each operator must be a single ASCII character with a
// positive precedence.
func LoadOperatorsWithFormat(path string, format Format) (map[byte]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading operator file: %w", err)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	var file operatorFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing operator file %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing operator file %s: %w", path, err)
		}
	}

	ops := make(map[byte]int, len(file.Operators))
	for op, prec := range file.Operators {
		if len(op) != 1 || op[0] > 127 {
			return nil, fmt.Errorf("operator %q must be a single ASCII character", op)
		}
		if prec <= 0 {
			return nil, fmt.Errorf("operator %q precedence must be positive, got %d", op, prec)
		}
		ops[op[0]] = prec
	}

	return ops, nil
}

// detectFormat determines the file format from the extension, defaulting to
// TOML.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
