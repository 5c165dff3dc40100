package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/pipeline"
	"github.com/matzehuels/kundali/pkg/render"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var (
		mode        string
		degrees     bool
		interactive bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "show [chart.yaml]",
		Short: "Print a chart as a table of houses",
		Long: `Print a chart as a table of houses, one row per house with its sign and
planets. Planets are colored by state (retrograde, combust, both) and carry
↑ for exalted and ↓ for debilitated.

With --interactive the ascendant, moon and sun charts are assembled together
and can be switched with ←/→ or tab.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return c.runShowInteractive(cmd.Context(), args[0], degrees, noCache)
			}
			return c.runShow(cmd.Context(), args[0], chart.Mode(mode), degrees, noCache)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "chart mode: ascendant (default), moon, sun")
	cmd.Flags().BoolVar(&degrees, "degrees", false, "show degrees next to planet names")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse all chart modes interactively")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runShow(ctx context.Context, input string, mode chart.Mode, degrees, noCache bool) error {
	req, err := readRequest(input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	layout, err := runner.Assemble(ctx, pipeline.Options{Request: req, Mode: mode, Logger: loggerFromContext(ctx)})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, chartHeading(req.Name, layout))
	fmt.Fprintln(out, chartTable(layout, degrees))
	return nil
}

func (c *CLI) runShowInteractive(ctx context.Context, input string, degrees, noCache bool) error {
	req, err := readRequest(input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	layouts, err := runner.AssembleModes(ctx, req)
	if err != nil {
		return err
	}
	if len(layouts) == 0 {
		return fmt.Errorf("no chart mode could be assembled: the request needs an ascendant, a Moon or a Sun")
	}

	_, err = tea.NewProgram(newModeViewModel(req.Name, layouts, degrees), tea.WithContext(ctx)).Run()
	return err
}

// chartHeading is the line printed above a chart table.
func chartHeading(name string, l chart.Layout) string {
	title := strings.TrimSpace(name)
	if title == "" {
		title = "Chart"
	}
	return StyleTitle.Render(title) + " " +
		StyleDim.Render(fmt.Sprintf("%s chart · %s in house 1", l.Mode, l.Reference))
}

// chartTable renders one row per house.
func chartTable(l chart.Layout, degrees bool) string {
	rows := make([][]string, 0, len(l.Houses))
	for _, h := range l.Houses {
		planets := make([]string, len(h.Occupants))
		for i, o := range h.Occupants {
			label := planetStyle(o.State).Render(render.Label(o, degrees))
			planets[i] = joinNonEmpty(" ", label, StyleDim.Render(nakshatraNote(o.Placement)))
		}
		rows = append(rows, []string{strconv.Itoa(h.Number), h.SignName, strings.Join(planets, "  ")})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("House", "Sign", "Planets").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			s := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				s = s.Align(lipgloss.Right).Foreground(colorGray)
			}
			return s
		}).
		Render()
}

// nakshatraNote is "(Rohini 4)", "(Rohini)" or empty.
func nakshatraNote(p chart.Placement) string {
	if p.Nakshatra == "" {
		return ""
	}
	pada := ""
	if p.Pada > 0 {
		pada = strconv.Itoa(p.Pada)
	}
	return "(" + joinNonEmpty(" ", p.Nakshatra, pada) + ")"
}
