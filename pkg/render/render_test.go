package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/status"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

func testLayout(t *testing.T) chart.Layout {
	t.Helper()
	l, err := chart.Assemble(zodiac.Capricorn, []chart.Placement{
		{Name: "Sun", Sign: "Taurus", Degree: 3, Status: "[C]"},
		{Name: "Mercury", Sign: "Taurus", Degree: 9, Status: "[R C]"},
		{Name: "Mars", Sign: "Aries", Degree: 22},
		{Name: "Saturn", Sign: "Capricorn", Degree: 11, Status: "[R]"},
		{Name: "Jupiter", Sign: "Cancer", Degree: 5, Exalted: true},
		{Name: "Moon", Sign: "Scorpio", Degree: 17, Debilitated: true},
		{Name: "Chiron <x>", Sign: "Pisces", Degree: 1},
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return l
}

func TestRenderSVG(t *testing.T) {
	l := testLayout(t)
	svg := string(RenderSVG(l, WithSize(600), WithDegrees(), WithTitle("Rāśi & chart")))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600.0 632.0"`) {
		t.Errorf("unexpected header: %.120s", svg)
	}
	if n := strings.Count(svg, `class="frame"`); n != 10 {
		t.Errorf("frame lines = %d, want 10", n)
	}
	if n := strings.Count(svg, `<g class="house `); n != 12 {
		t.Errorf("house groups = %d, want 12", n)
	}
	if n := strings.Count(svg, `class="planet `); n != l.PlanetCount() {
		t.Errorf("planet labels = %d, want %d", n, l.PlanetCount())
	}

	for _, want := range []string{
		`<g class="house diamond" id="house-1" data-sign="Capricorn">`,
		`class="planet combust"`,
		`class="planet retrograde-combust"`,
		`class="planet retrograde"`,
		`class="planet direct"`,
		`>Ju 5°↑<`,
		`>Mo 17°↓<`,
		`Rāśi &amp; chart`,
		`data-planet="Chiron &lt;x&gt;"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	l := testLayout(t)
	a := RenderSVG(l, WithTheme(ThemeDark))
	b := RenderSVG(l, WithTheme(ThemeDark))
	if !bytes.Equal(a, b) {
		t.Error("RenderSVG output differs for the same layout")
	}
	if !bytes.Contains(a, []byte(ThemeDark.Background)) {
		t.Error("dark theme background not applied")
	}
}

func TestToDOT(t *testing.T) {
	l := testLayout(t)
	dot := ToDOT(l)

	if !strings.HasPrefix(dot, "graph kundali {") {
		t.Errorf("unexpected DOT header: %.40s", dot)
	}
	if n := strings.Count(dot, " -- "); n != 10 {
		t.Errorf("frame edges = %d, want 10", n)
	}
	if n := strings.Count(dot, "shape=point"); n != 8 {
		t.Errorf("frame points = %d, want 8", n)
	}
	// House 1 label sits on the top diamond's vertical axis.
	if !strings.Contains(dot, `"sign1" [label="10"`) {
		t.Error("house 1 should show Capricorn (10)")
	}
	if !strings.Contains(dot, `"h4_p0" [label="Ma"`) {
		t.Error("Mars missing from house 4")
	}
	if !strings.Contains(dot, `pos="3.000,6.000!"`) {
		t.Error("top midpoint not pinned at 3,6 inches")
	}
	if ToDOT(l) != dot {
		t.Error("ToDOT is not deterministic")
	}
}

func TestRenderGraphvizSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering in short mode")
	}
	svg, err := RenderGraphvizSVG(context.Background(), ToDOT(testLayout(t)))
	if err != nil {
		t.Fatalf("RenderGraphvizSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("output is not SVG")
	}
}

func TestRenderJSON(t *testing.T) {
	l := testLayout(t)
	a, err := RenderJSON(l)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := RenderJSON(testLayout(t))
	if !bytes.Equal(a, b) {
		t.Error("RenderJSON differs for identical input")
	}
	if !bytes.HasSuffix(a, []byte("}\n")) {
		t.Error("RenderJSON should end with a newline")
	}
	if !bytes.Contains(a, []byte(`"reference": "Capricorn"`)) {
		t.Error("reference sign not encoded by name")
	}
}

func TestRenderDispatch(t *testing.T) {
	l := testLayout(t)
	ctx := context.Background()

	for _, f := range []string{FormatSVG, FormatDOT, FormatJSON} {
		out, err := Render(ctx, l, f, Options{})
		if err != nil {
			t.Errorf("Render(%s): %v", f, err)
			continue
		}
		if len(out) == 0 {
			t.Errorf("Render(%s) returned nothing", f)
		}
	}

	if _, err := Render(ctx, l, "gif", Options{}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(gif) error = %v, want INVALID_FORMAT", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", FormatSVG, false},
		{"PNG", FormatPNG, false},
		{" dot ", FormatDOT, false},
		{"json", FormatJSON, false},
		{"bmp", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		o       chart.Occupant
		degrees bool
		want    string
	}{
		{chart.Occupant{Placement: chart.Placement{Name: "Jupiter", Degree: 5}}, false, "Ju"},
		{chart.Occupant{Placement: chart.Placement{Name: "jupiter", Degree: 5}}, true, "Ju 5°"},
		{chart.Occupant{Placement: chart.Placement{Name: "Uranus"}, State: status.Visual{Exalted: true, Debilitated: true}}, false, "Ur↑↓"},
		{chart.Occupant{Placement: chart.Placement{Name: "Gulika"}}, false, "Gu"},
		{chart.Occupant{Placement: chart.Placement{Name: "X"}}, false, "X"},
	}
	for _, tt := range tests {
		if got := Label(tt.o, tt.degrees); got != tt.want {
			t.Errorf("Label(%s, %v) = %q, want %q", tt.o.Placement.Name, tt.degrees, got, tt.want)
		}
	}
}

func TestThemeByName(t *testing.T) {
	if th, err := ThemeByName(""); err != nil || th.Name != "light" {
		t.Errorf("ThemeByName(\"\") = %v, %v", th.Name, err)
	}
	if th, err := ThemeByName("dark"); err != nil || th != ThemeDark {
		t.Errorf("ThemeByName(dark) = %v, %v", th.Name, err)
	}
	if _, err := ThemeByName("neon"); err == nil {
		t.Error("expected error for unknown theme")
	}
}
