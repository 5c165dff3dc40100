package render

import (
	"context"
	"strings"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
)

// Output formats accepted by [Render].
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// Formats lists every output format.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatDOT, FormatJSON}

// ContentTypes maps output formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	FormatJSON: "application/json",
}

// Options configures [Render].
type Options struct {
	Size    float64
	Degrees bool
	Title   string
	Theme   Theme
}

// ParseFormat normalizes a format name.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "" {
		return FormatSVG, nil
	}
	if _, ok := ContentTypes[f]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (must be one of %s)", s, strings.Join(Formats, ", "))
}

// Render produces one output format for a layout.
func Render(ctx context.Context, l chart.Layout, format string, opts Options) ([]byte, error) {
	if opts.Theme.Name == "" {
		opts.Theme = ThemeLight
	}
	svgOpts := []SVGOption{WithSize(opts.Size), WithTheme(opts.Theme)}
	if opts.Degrees {
		svgOpts = append(svgOpts, WithDegrees())
	}
	if opts.Title != "" {
		svgOpts = append(svgOpts, WithTitle(opts.Title))
	}

	switch format {
	case FormatSVG:
		return RenderSVG(l, svgOpts...), nil
	case FormatPDF:
		return ToPDF(ctx, RenderSVG(l, svgOpts...))
	case FormatDOT:
		return []byte(ToDOTWithTheme(l, opts.Theme)), nil
	case FormatPNG:
		return RenderPNG(ctx, ToDOTWithTheme(l, opts.Theme))
	case FormatJSON:
		return RenderJSON(l)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", format)
}
