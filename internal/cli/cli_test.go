package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/kundali/internal/config"
	"github.com/matzehuels/kundali/pkg/chart"
	kio "github.com/matzehuels/kundali/pkg/io"
)

// captureOutput redirects status output to w until the returned func runs.
func captureOutput(w io.Writer) func() {
	prev := out
	out = w
	return func() { out = prev }
}

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	return &CLI{
		Logger: newLogger(io.Discard, LogInfo),
		Config: config.Config{CacheDir: t.TempDir()},
	}
}

// execute runs the root command with args and returns stdout and status
// output combined.
func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	restore := captureOutput(&buf)
	defer restore()

	root := c.RootCommand()
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeRequestFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	format, err := kio.FormatFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := kio.WriteRequest(f, exampleRequest(), format); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLayoutCommand(t *testing.T) {
	c := newTestCLI(t)
	input := writeRequestFile(t, "chart.yaml")

	got, err := execute(t, c, "layout", input)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	outPath := strings.TrimSuffix(input, ".yaml") + ".layout.json"
	if !strings.Contains(got, outPath) {
		t.Errorf("output should name %s:\n%s", outPath, got)
	}
	if !strings.Contains(got, "9 planets") || !strings.Contains(got, "fresh") {
		t.Errorf("output missing stats:\n%s", got)
	}

	l, err := kio.ImportLayout(outPath)
	if err != nil {
		t.Fatalf("ImportLayout: %v", err)
	}
	if l.PlanetCount() != 9 || l.Mode != chart.ModeAscendant {
		t.Errorf("layout has %d planets in %q mode", l.PlanetCount(), l.Mode)
	}

	got, err = execute(t, c, "layout", input, "--mode", "moon", "-o", filepath.Join(t.TempDir(), "moon.json"))
	if err != nil {
		t.Fatalf("layout --mode moon: %v", err)
	}
	if !strings.Contains(got, "moon chart") {
		t.Errorf("output missing mode:\n%s", got)
	}
}

func TestLayoutCommandCached(t *testing.T) {
	c := newTestCLI(t)
	input := writeRequestFile(t, "chart.toml")

	if _, err := execute(t, c, "layout", input); err != nil {
		t.Fatalf("first layout: %v", err)
	}
	got, err := execute(t, c, "layout", input)
	if err != nil {
		t.Fatalf("second layout: %v", err)
	}
	if !strings.Contains(got, "cached") {
		t.Errorf("second run should hit the cache:\n%s", got)
	}
}

func TestLayoutCommandErrors(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"ascendant": "Ophiuchus", "placements": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := [][]string{
		{"layout", filepath.Join(dir, "missing.yaml")},
		{"layout", filepath.Join(dir, "chart.txt")},
		{"layout", bad},
		{"layout", writeRequestFile(t, "chart.json"), "--mode", "navamsa"},
		{"layout"},
	}
	for _, args := range tests {
		if _, err := execute(t, c, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	c := newTestCLI(t)
	input := writeRequestFile(t, "chart.json")
	base := strings.TrimSuffix(input, ".json")

	got, err := execute(t, c, "render", input, "-f", "svg,dot,json", "--degrees", "--title", "Example", "--theme", "dark")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, ext := range []string{"svg", "dot", "json"} {
		path := base + "." + ext
		if !strings.Contains(got, path) {
			t.Errorf("output should list %s:\n%s", path, got)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s missing or empty: %v", path, err)
		}
	}

	svg, _ := os.ReadFile(base + ".svg")
	if !bytes.Contains(svg, []byte("<svg")) || !bytes.Contains(svg, []byte("Example")) {
		t.Errorf("unexpected svg:\n%s", svg)
	}
}

func TestRenderCommandFromLayout(t *testing.T) {
	c := newTestCLI(t)
	input := writeRequestFile(t, "natal.yaml")
	if _, err := execute(t, c, "layout", input); err != nil {
		t.Fatalf("layout: %v", err)
	}
	layoutFile := strings.TrimSuffix(input, ".yaml") + ".layout.json"
	outPath := filepath.Join(t.TempDir(), "out.svg")

	if _, err := execute(t, c, "render", layoutFile, "-o", outPath); err != nil {
		t.Fatalf("render layout: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`data-planet="Saturn"`)) {
		t.Error("rendered layout should contain Saturn")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	c := newTestCLI(t)
	input := writeRequestFile(t, "chart.json")

	for _, args := range [][]string{
		{"render", input, "-f", "gif"},
		{"render", input, "--theme", "neon"},
		{"render", input, "--size", "-5"},
	} {
		if _, err := execute(t, c, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestShowCommand(t *testing.T) {
	c := newTestCLI(t)
	input := writeRequestFile(t, "chart.yaml")

	got, err := execute(t, c, "show", input, "--degrees")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Example", "ascendant chart", "House", "Capricorn", "Sa 11°", "Mo 17°↓", "Ju 5°↑", "(Shravana 1)"} {
		if !strings.Contains(got, want) {
			t.Errorf("show output missing %q:\n%s", want, got)
		}
	}

	got, err = execute(t, c, "show", input, "--mode", "sun")
	if err != nil {
		t.Fatalf("show --mode sun: %v", err)
	}
	if !strings.Contains(got, "sun chart · Taurus in house 1") {
		t.Errorf("sun chart heading missing:\n%s", got)
	}
}

func TestExampleCommand(t *testing.T) {
	c := newTestCLI(t)

	for _, format := range []string{"json", "yaml", "toml"} {
		got, err := execute(t, c, "example", "-f", format)
		if err != nil {
			t.Fatalf("example -f %s: %v", format, err)
		}
		f, _ := kio.ParseFormat(format)
		req, err := kio.ReadRequest(strings.NewReader(got), f)
		if err != nil {
			t.Fatalf("example -f %s does not read back: %v", format, err)
		}
		if req.Ascendant != "Capricorn" || len(req.Placements) != 9 {
			t.Errorf("example -f %s = %+v", format, req)
		}
	}

	if _, err := execute(t, c, "example", "-f", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestCacheCommands(t *testing.T) {
	c := newTestCLI(t)

	got, err := execute(t, c, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if strings.TrimSpace(got) != c.Config.CacheDir {
		t.Errorf("cache path = %q, want %q", got, c.Config.CacheDir)
	}

	input := writeRequestFile(t, "chart.yaml")
	if _, err := execute(t, c, "render", input, "-f", "svg"); err != nil {
		t.Fatalf("render: %v", err)
	}
	got, err = execute(t, c, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(got, "Cleared 2 cached entries") {
		t.Errorf("cache clear output:\n%s", got)
	}
}

func TestCacheClearMissingDir(t *testing.T) {
	c := newTestCLI(t)
	c.Config.CacheDir = filepath.Join(t.TempDir(), "never-created")

	got, err := execute(t, c, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(got, "Cache is empty") {
		t.Errorf("output = %q", got)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg, png", []string{"svg", "png"}},
		{"json,,dot", []string{"json", "dot"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.input)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "charts/natal.yaml", "charts/natal"},
		{"", "charts/natal.layout.json", "charts/natal"},
		{"", "-", "chart"},
		{"out/chart.svg", "natal.yaml", "out/chart"},
		{"out/chart.PNG", "natal.yaml", "out/chart"},
		{"out/chart", "natal.yaml", "out/chart"},
		{"out/chart.v2", "natal.yaml", "out/chart.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestCacheDirFallback(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	c := &CLI{}

	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}
