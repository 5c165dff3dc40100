// Package pipeline runs the assemble → render pipeline for the CLI and the
// HTTP server.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Assemble: resolve the reference sign for the requested mode and build
//     the [chart.Layout]
//  2. Render: produce the requested output formats (SVG, PNG, PDF, DOT, JSON)
//
// Both stages are cached. Layouts are keyed by the chart fingerprint and mode,
// artifacts by layout and render options, so the CLI and the server share
// entries when they share a cache backend.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Request: req,
//	    Mode:    chart.ModeMoon,
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [AssembleModes] resolves the Ascendant, Moon and Sun charts concurrently.
//
// [chart.Layout]: github.com/matzehuels/kundali/pkg/chart.Layout
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kundali/pkg/cache"
	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSize is the default chart side length in pixels.
	DefaultSize = render.DefaultSize

	// MaxSize bounds the chart side length accepted from API callers.
	MaxSize = 4096.0

	// DefaultTheme is the default color theme.
	DefaultTheme = "light"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Request chart.Request `json:"request"`

	// Mode overrides Request.Mode when set.
	Mode chart.Mode `json:"mode,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Size    float64  `json:"size,omitempty"`
	Degrees bool     `json:"degrees,omitempty"`
	Title   string   `json:"title,omitempty"`
	Theme   string   `json:"theme,omitempty"`

	// Refresh bypasses cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the assembled chart.
	Layout chart.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Planets      int
	AssembleTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats normalizes and checks every format name.
func ValidateFormats(formats []string) ([]string, error) {
	out := make([]string, 0, len(formats))
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		norm, err := render.ParseFormat(f)
		if err != nil {
			return nil, err
		}
		if !seen[norm] {
			seen[norm] = true
			out = append(out, norm)
		}
	}
	return out, nil
}

// ValidateSize checks a chart size in pixels. Zero means the default.
func ValidateSize(size float64) error {
	if size < 0 || size > MaxSize {
		return errors.New(errors.ErrCodeInvalidInput, "size %.0f out of range (0..%.0f)", size, MaxSize)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForAssemble(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForAssemble resolves the mode and sets the logger default.
func (o *Options) ValidateForAssemble() error {
	mode := o.Mode
	if mode == "" {
		mode = o.Request.Mode
	}
	m, err := chart.ParseMode(string(mode))
	if err != nil {
		return err
	}
	o.Mode = m
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForRender checks render options and sets their defaults.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	formats, err := ValidateFormats(o.Formats)
	if err != nil {
		return err
	}
	o.Formats = formats
	if err := ValidateSize(o.Size); err != nil {
		return err
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if _, err := render.ThemeByName(o.Theme); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// RenderOptions converts the options for [render.Render]. Call after
// validation.
func (o *Options) RenderOptions() render.Options {
	theme, _ := render.ThemeByName(o.Theme)
	return render.Options{
		Size:    o.Size,
		Degrees: o.Degrees,
		Title:   o.Title,
		Theme:   theme,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  format,
		Size:    o.Size,
		Degrees: o.Degrees,
		Title:   o.Title,
		Theme:   o.Theme,
	}
}
