package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/geometry"
)

// dotInches is the side length of the chart in Graphviz inches.
const dotInches = 6.0

// ToDOT converts a layout to a Graphviz graph with every node pinned at its
// layout position, so neato draws the chart exactly as resolved.
//
// Frame corners and edge midpoints become invisible point nodes joined by
// undirected edges; sign numbers and planets are plaintext nodes.
func ToDOT(l chart.Layout) string {
	return ToDOTWithTheme(l, ThemeLight)
}

// ToDOTWithTheme is [ToDOT] with explicit colors.
func ToDOTWithTheme(l chart.Layout, t Theme) string {
	var buf bytes.Buffer
	buf.WriteString("graph kundali {\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", t.Background)
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\", fontsize=12, margin=0, width=0, height=0];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=2];\n", t.Frame)
	buf.WriteString("\n")

	points := make(map[geometry.Point]string)
	pointID := func(p geometry.Point) string {
		if id, ok := points[p]; ok {
			return id
		}
		id := fmt.Sprintf("f%d", len(points))
		points[p] = id
		fmt.Fprintf(&buf, "  %s [shape=point, width=0.01, style=invis, pos=%q];\n", id, dotPos(p))
		return id
	}
	for _, s := range geometry.Frame() {
		from, to := pointID(s.From), pointID(s.To)
		fmt.Fprintf(&buf, "  %s -- %s;\n", from, to)
	}

	buf.WriteString("\n")
	for _, h := range l.Houses {
		fmt.Fprintf(&buf, "  \"sign%d\" [label=\"%d\", fontcolor=%q, fontsize=10, pos=%q, tooltip=%q];\n",
			h.Number, h.Sign, t.SignNumber, dotPos(h.Label), h.SignName)
		for i, o := range h.Occupants {
			fmt.Fprintf(&buf, "  \"h%d_p%d\" [label=%q, fontcolor=%q, pos=%q, class=%q];\n",
				h.Number, i, Label(o, false), stateColor(t, o), dotPos(o.Anchor), o.State.Class())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotPos converts chart percent coordinates (y down) to pinned Graphviz
// inches (y up).
func dotPos(p geometry.Point) string {
	k := dotInches / geometry.Size
	return fmt.Sprintf("%.3f,%.3f!", p.X*k, (geometry.Size-p.Y)*k)
}

func stateColor(t Theme, o chart.Occupant) string {
	switch {
	case o.State.IsRetrograde() && o.State.IsCombust():
		return t.RetroCombust
	case o.State.IsRetrograde():
		return t.Retrograde
	case o.State.IsCombust():
		return t.Combust
	}
	return t.Direct
}

// RenderGraphvizSVG lays out a DOT graph with neato and returns SVG.
func RenderGraphvizSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderPNG lays out a DOT graph with neato and returns PNG bytes.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
