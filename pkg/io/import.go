package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
)

// ReadRequest decodes a chart request from r.
//
// JSON input may carry comments and trailing commas; both json and jsonc are
// stripped with jsonc before decoding. Unknown fields are rejected in every
// format so that typos like "placement" do not silently produce an empty chart.
//
// The request is only decoded here, not assembled: sign names and ranges are
// checked later by [chart.Assemble].
func ReadRequest(r io.Reader, format Format) (chart.Request, error) {
	var req chart.Request

	data, err := io.ReadAll(r)
	if err != nil {
		return req, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return req, errors.New(errors.ErrCodeInvalidInput, "empty request")
	}

	switch format {
	case FormatJSON, FormatJSONC, "":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		err = dec.Decode(&req)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&req)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &req)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				return req, errors.New(errors.ErrCodeInvalidFormat, "decode toml request: unknown keys %s", strings.Join(keys, ", "))
			}
		}
	default:
		return req, errors.New(errors.ErrCodeInvalidFormat, "unsupported request format %q", format)
	}
	if err != nil {
		return req, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s request", formatName(format))
	}

	if strings.TrimSpace(req.Ascendant) == "" && len(req.Placements) == 0 {
		return req, errors.New(errors.ErrCodeInvalidInput, "request has neither an ascendant nor placements")
	}
	return req, nil
}

// ImportRequest reads a request file, inferring the format from its extension.
func ImportRequest(path string) (chart.Request, error) {
	if err := errors.ValidatePath(path); err != nil {
		return chart.Request{}, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return chart.Request{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return chart.Request{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadRequest(f, format)
}

// ReadLayout decodes a layout previously written by [WriteLayout].
func ReadLayout(r io.Reader) (chart.Layout, error) {
	var l chart.Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return l, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}
	if len(l.Houses) != 12 {
		return l, errors.New(errors.ErrCodeInvalidFormat, "layout has %d houses, want 12", len(l.Houses))
	}
	for i, h := range l.Houses {
		if h.Number != i+1 {
			return l, errors.New(errors.ErrCodeInvalidFormat, "layout house %d out of order (got %d)", i+1, h.Number)
		}
	}
	return l, nil
}

// ImportLayout reads a layout JSON file.
func ImportLayout(path string) (chart.Layout, error) {
	if err := errors.ValidatePath(path); err != nil {
		return chart.Layout{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return chart.Layout{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadLayout(f)
}

func formatName(f Format) string {
	if f == "" {
		return string(FormatJSON)
	}
	return string(f)
}
