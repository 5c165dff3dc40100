package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/kundali/pkg/errors"
)

// Format names a request file encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

var extFormats = map[string]Format{
	".json":  FormatJSON,
	".jsonc": FormatJSONC,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".toml":  FormatTOML,
}

// ParseFormat resolves a format name (case-insensitive, "yml" accepted).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "jsonc":
		return FormatJSONC, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown request format %q (must be json, jsonc, yaml or toml)", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer request format from %q", filepath.Base(path))
}
