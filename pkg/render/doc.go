// Package render draws an assembled chart layout.
//
// # Overview
//
// Renderers never compute positions: every coordinate comes from the
// [chart.Layout], so all outputs agree with each other. Available outputs:
//
//   - SVG via [RenderSVG], drawn directly
//   - DOT via [ToDOT], with nodes pinned for Graphviz neato
//   - PNG via [RenderPNG] and Graphviz SVG via [RenderGraphvizSVG]
//   - PDF via [ToPDF] (requires rsvg-convert)
//   - JSON via [RenderJSON]
//
// [Render] dispatches on a format name and is what the CLI and HTTP server use.
//
// # Styling
//
// Each planet is drawn with the CSS class of its base state (direct,
// retrograde, combust, retrograde-combust). Exalted and debilitated planets get
// an up or down arrow after their label. Colors come from a [Theme]:
//
//	svg := render.RenderSVG(layout,
//	    render.WithSize(600),
//	    render.WithDegrees(),
//	    render.WithTheme(render.ThemeDark),
//	)
//
// [chart.Layout]: github.com/matzehuels/kundali/pkg/chart.Layout
package render
