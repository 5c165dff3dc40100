package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/pkg/chart"
	kio "github.com/matzehuels/kundali/pkg/io"
	"github.com/matzehuels/kundali/pkg/pipeline"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		mode    string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "layout [chart.yaml]",
		Short: "Assemble a chart request into layout JSON",
		Long: `Assemble a chart request into layout JSON.

The request lists the ascendant and each planet's sign, degree and status. It
may be JSON (comments allowed), YAML or TOML; the format follows the file
extension. The layout records the sign in each of the twelve houses and the
position and visual state of every planet. Write it to a file with -o or
render it later with 'kundali render'.

Use "-" to read a JSON request from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], chart.Mode(mode), output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "chart mode: ascendant (default), moon, sun")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached layouts")

	return cmd
}

// runLayout reads the request, assembles it, and writes the layout.
func (c *CLI) runLayout(ctx context.Context, input string, mode chart.Mode, output string, noCache, refresh bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	req, err := readRequest(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	layout, cacheHit, err := runner.AssembleWithCacheInfo(ctx, pipeline.Options{
		Request: req,
		Mode:    mode,
		Refresh: refresh,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	prog.done("Assembled chart")

	outputPath := output
	if outputPath == "" {
		outputPath = layoutPath(input)
	}
	if err := kio.ExportLayoutFile(outputPath, layout); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(string(layout.Mode), layout.PlanetCount(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)
	return nil
}

// readRequest imports a request file, or a JSON request from stdin for "-".
func readRequest(input string) (chart.Request, error) {
	if input == "-" {
		return kio.ReadRequest(stdin, kio.FormatJSON)
	}
	return kio.ImportRequest(input)
}

// layoutPath derives "<base>.layout.json" from a request path.
func layoutPath(input string) string {
	if input == "-" {
		return "chart.layout.json"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
}
