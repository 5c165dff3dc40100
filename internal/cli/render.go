package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/pkg/chart"
	kio "github.com/matzehuels/kundali/pkg/io"
	"github.com/matzehuels/kundali/pkg/pipeline"
	"github.com/matzehuels/kundali/pkg/render"
)

// layoutSuffix marks files written by the layout command.
const layoutSuffix = ".layout.json"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path
	formats []string // svg, png, pdf, dot, json
	mode    string   // ascendant, moon or sun
	size    float64  // chart edge in pixels
	degrees bool     // append degrees to planet labels
	title   string   // optional heading above the chart
	theme   string   // light or dark
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{size: pipeline.DefaultSize, theme: pipeline.DefaultTheme}

	cmd := &cobra.Command{
		Use:   "render [chart.yaml | chart.layout.json]",
		Short: "Render a chart to SVG, PNG, PDF, DOT or JSON",
		Long: `Render a chart to SVG, PNG, PDF, DOT or JSON.

The input is either a chart request (JSON, YAML or TOML) or a layout written by
'kundali layout' (*.layout.json). Requests are assembled first, in the mode
given by --mode.

PNG output is produced with Graphviz; PDF output needs rsvg-convert on PATH.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := pipeline.ValidateFormats(parseFormats(formatsStr))
			if err != nil {
				return err
			}
			opts.formats = formats
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "chart mode for requests: ascendant (default), moon, sun")
	cmd.Flags().Float64Var(&opts.size, "size", opts.size, "chart size in pixels")
	cmd.Flags().BoolVar(&opts.degrees, "degrees", false, "show degrees next to planet names")
	cmd.Flags().StringVar(&opts.title, "title", "", "title drawn above the chart")
	cmd.Flags().StringVar(&opts.theme, "theme", opts.theme, "color theme: "+strings.Join(render.ThemeNames(), ", "))
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached layouts and renders")

	return cmd
}

// runRender renders input to every requested format and writes one file per
// format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.formats, ", ")))
	spinner.Start()

	var (
		artifacts map[string][]byte
		layout    chart.Layout
		cached    bool
		err       error
	)
	if strings.HasSuffix(input, layoutSuffix) {
		layout, artifacts, err = renderLayoutFile(ctx, input, opts)
	} else {
		layout, artifacts, cached, err = c.renderRequestFile(ctx, input, opts)
	}
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(opts.output, input)
	printSuccess("Render complete")
	for _, format := range opts.formats {
		path := base + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debugf("Generated %s: %d bytes", format, len(artifacts[format]))
		printFile(path)
	}
	printStats(string(layout.Mode), layout.PlanetCount(), cached)
	return nil
}

// renderRequestFile assembles and renders a request through the cached
// pipeline.
func (c *CLI) renderRequestFile(ctx context.Context, input string, opts *renderOpts) (chart.Layout, map[string][]byte, bool, error) {
	req, err := readRequest(input)
	if err != nil {
		return chart.Layout{}, nil, false, err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return chart.Layout{}, nil, false, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Request: req,
		Mode:    chart.Mode(opts.mode),
		Formats: opts.formats,
		Size:    opts.size,
		Degrees: opts.degrees,
		Title:   opts.title,
		Theme:   opts.theme,
		Refresh: opts.refresh,
		Logger:  loggerFromContext(ctx),
	})
	if err != nil {
		return chart.Layout{}, nil, false, err
	}
	cached := result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit
	return result.Layout, result.Artifacts, cached, nil
}

// renderLayoutFile renders an existing layout. Layout files are not cached:
// they are already the cached stage.
func renderLayoutFile(ctx context.Context, input string, opts *renderOpts) (chart.Layout, map[string][]byte, error) {
	layout, err := kio.ImportLayout(input)
	if err != nil {
		return chart.Layout{}, nil, err
	}

	popts := pipeline.Options{
		Formats: opts.formats,
		Size:    opts.size,
		Degrees: opts.degrees,
		Title:   opts.title,
		Theme:   opts.theme,
	}
	if err := popts.ValidateForRender(); err != nil {
		return chart.Layout{}, nil, err
	}

	artifacts := make(map[string][]byte, len(opts.formats))
	for _, format := range popts.Formats {
		data, err := render.Render(ctx, layout, format, popts.RenderOptions())
		if err != nil {
			return chart.Layout{}, nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
	}
	return layout, artifacts, nil
}

// basePath derives the output base from -o and the input path. A known
// format extension on -o is stripped; "chart.layout.json" becomes "chart".
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "chart"
		}
		if strings.HasSuffix(input, layoutSuffix) {
			return strings.TrimSuffix(input, layoutSuffix)
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil && ext != "" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
