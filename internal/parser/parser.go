// Package parser loads run result snapshots written by the upstream
// result collector. Snapshots are already structured; this package only
// decodes them.
package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/teaspoon-report/internal/models"
)

// Format represents the encoding of a snapshot file
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatYAML represents a YAML (.yaml, .yml) snapshot
	FormatYAML
	// FormatJSON represents a JSON (.json) snapshot
	FormatJSON
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name ("yaml", "yml", "json") to a Format.
func ParseFormat(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// Parser decodes a snapshot into a RunResult.
type Parser interface {
	Parse(r io.Reader) (*models.RunResult, error)
}

// DetectFormat detects the snapshot format from the file extension
//   - .yaml, .yml -> FormatYAML
//   - .json -> FormatJSON
//   - all others -> FormatUnknown
func DetectFormat(filename string) Format {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// NewParser creates a parser for the specified format
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatYAML:
		return NewYAMLParser(), nil
	case FormatJSON:
		return NewJSONParser(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// ParseFile detects the format of path from its extension and decodes it.
func ParseFile(path string) (*models.RunResult, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unknown file format: %s (supported: .yaml, .yml, .json)", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file, format)
}

// ParseReader decodes a snapshot of the given format from r.
func ParseReader(r io.Reader, format Format) (*models.RunResult, error) {
	parser, err := NewParser(format)
	if err != nil {
		return nil, err
	}

	result, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s snapshot: %w", format, err)
	}
	return result, nil
}
