package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
)

// WriteLayout encodes a layout as indented JSON. Identical layouts produce
// identical bytes. The output can be read back with [ReadLayout].
func WriteLayout(w io.Writer, l chart.Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportLayoutFile writes a layout to a JSON file at path.
func ExportLayoutFile(path string, l chart.Layout) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(f, l)
}

// WriteRequest encodes a request in the given format.
func WriteRequest(w io.Writer, req chart.Request, format Format) error {
	switch format {
	case FormatJSON, FormatJSONC, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(req)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(req); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(req)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported request format %q", format)
}
