package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/geometry"
	"github.com/matzehuels/kundali/pkg/status"
)

const (
	DefaultSize = 480.0
	fontFamily  = "'Noto Sans', 'DejaVu Sans', sans-serif"
	titleHeight = 32.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	size    float64
	degrees bool
	title   string
	theme   Theme
}

// WithSize sets the side length of the chart square in pixels.
func WithSize(px float64) SVGOption {
	return func(r *svgRenderer) {
		if px > 0 {
			r.size = px
		}
	}
}

// WithDegrees appends each planet's degree to its label.
func WithDegrees() SVGOption { return func(r *svgRenderer) { r.degrees = true } }

// WithTitle draws a caption above the chart.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// WithTheme selects the color theme.
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// RenderSVG draws the layout as a standalone SVG document.
//
// Planet text carries the class "planet" plus the base state name
// ("retrograde-combust", ...) so pages embedding the chart can restyle or
// animate states. Output is deterministic.
func RenderSVG(l chart.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{size: DefaultSize, theme: ThemeLight}
	for _, opt := range opts {
		opt(&r)
	}

	top := 0.0
	if r.title != "" {
		top = titleHeight
	}
	height := r.size + top

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.size, height, r.size, height)
	r.renderStyle(&buf)
	fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.1f" height="%.1f"/>`+"\n", r.size, height)

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text class="title" x="%.2f" y="%.2f" text-anchor="middle">%s</text>`+"\n",
			r.size/2, titleHeight*0.7, escapeXML(r.title))
	}

	fmt.Fprintf(&buf, `  <g transform="translate(0 %.1f)">`+"\n", top)
	r.renderFrame(&buf)
	for _, h := range l.Houses {
		r.renderHouse(&buf, h)
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) scale(p geometry.Point) (float64, float64) {
	k := r.size / geometry.Size
	return p.X * k, p.Y * k
}

func (r *svgRenderer) fontSize() float64 {
	return r.size / 28
}

func (r *svgRenderer) renderStyle(buf *bytes.Buffer) {
	t := r.theme
	fmt.Fprintf(buf, "  <style>\n")
	fmt.Fprintf(buf, "    .background { fill: %s; }\n", t.Background)
	fmt.Fprintf(buf, "    .frame { stroke: %s; stroke-width: %.2f; stroke-linecap: round; }\n", t.Frame, r.size/240)
	fmt.Fprintf(buf, "    .sign { fill: %s; font-family: %s; font-size: %.1fpx; }\n", t.SignNumber, fontFamily, r.fontSize()*0.85)
	fmt.Fprintf(buf, "    .title { fill: %s; font-family: %s; font-size: %.1fpx; font-weight: bold; }\n", t.Title, fontFamily, titleHeight*0.55)
	fmt.Fprintf(buf, "    .planet { font-family: %s; font-size: %.1fpx; dominant-baseline: central; }\n", fontFamily, r.fontSize())
	for _, s := range []struct {
		base  status.Base
		color string
	}{
		{status.Direct, t.Direct},
		{status.Retrograde, t.Retrograde},
		{status.Combust, t.Combust},
		{status.RetrogradeAndCombust, t.RetroCombust},
	} {
		fmt.Fprintf(buf, "    .planet.%s { fill: %s; }\n", s.base, s.color)
	}
	buf.WriteString("    .planet.retrograde { font-style: italic; }\n")
	buf.WriteString("    .planet.combust { text-decoration: underline; }\n")
	buf.WriteString("    .planet.retrograde-combust { font-weight: bold; text-decoration: overline; }\n")
	buf.WriteString("  </style>\n")
}

func (r *svgRenderer) renderFrame(buf *bytes.Buffer) {
	for _, s := range geometry.Frame() {
		x1, y1 := r.scale(s.From)
		x2, y2 := r.scale(s.To)
		fmt.Fprintf(buf, `    <line class="frame" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", x1, y1, x2, y2)
	}
}

func (r *svgRenderer) renderHouse(buf *bytes.Buffer, h chart.House) {
	fmt.Fprintf(buf, `    <g class="house %s" id="house-%d" data-sign="%s">`+"\n", h.Shape, h.Number, escapeXML(h.SignName))

	x, y := r.scale(h.Label)
	fmt.Fprintf(buf, `      <text class="sign" x="%.2f" y="%.2f" text-anchor="middle"><title>%s</title>%d</text>`+"\n",
		x, y, escapeXML(h.SignName), h.Sign)

	for _, o := range h.Occupants {
		x, y := r.scale(o.Anchor)
		fmt.Fprintf(buf, `      <text class="planet %s" x="%.2f" y="%.2f" text-anchor="middle" data-planet="%s">%s</text>`+"\n",
			o.State.Class(), x, y, escapeXML(o.Placement.Name), escapeXML(Label(o, r.degrees)))
	}
	buf.WriteString("    </g>\n")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
