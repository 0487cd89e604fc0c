package obstacles

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingData is returned when the document lacks a "data" value.
	ErrMissingData = errors.New("obstacles: document has no data")

	// ErrBadPair is returned when an entry is not an [x, y] pair.
	ErrBadPair = errors.New("obstacles: entry must be an [x, y] pair")
)

// Format names a document encoding.
type Format int

const (
	// JSON documents, the default.
	JSON Format = iota
	// YAML documents.
	YAML
)

// String returns the lower-case format name.
func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}

	return "json"
}

// FormatOf returns YAML for ".yaml"/".yml" paths and JSON otherwise.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}
