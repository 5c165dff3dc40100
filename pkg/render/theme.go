package render

import (
	"sort"

	"github.com/matzehuels/kundali/pkg/errors"
)

// Theme holds the colors used by the SVG and DOT renderers.
type Theme struct {
	Name       string
	Background string
	Frame      string
	SignNumber string
	Title      string

	// One color per base state.
	Direct       string
	Retrograde   string
	Combust      string
	RetroCombust string
}

var (
	// ThemeLight is the default: dark ink on a warm paper background.
	ThemeLight = Theme{
		Name:         "light",
		Background:   "#fffaf0",
		Frame:        "#8b4513",
		SignNumber:   "#a0522d",
		Title:        "#3e2723",
		Direct:       "#1a1a1a",
		Retrograde:   "#c62828",
		Combust:      "#ef6c00",
		RetroCombust: "#6a1b9a",
	}

	ThemeDark = Theme{
		Name:         "dark",
		Background:   "#1e1e2e",
		Frame:        "#f5c2e7",
		SignNumber:   "#f9e2af",
		Title:        "#cdd6f4",
		Direct:       "#cdd6f4",
		Retrograde:   "#f38ba8",
		Combust:      "#fab387",
		RetroCombust: "#cba6f7",
	}
)

var themes = map[string]Theme{
	ThemeLight.Name: ThemeLight,
	ThemeDark.Name:  ThemeDark,
}

// ThemeByName looks up a built-in theme. The empty name is the light theme.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return ThemeLight, nil
	}
	if t, ok := themes[name]; ok {
		return t, nil
	}
	return Theme{}, errors.New(errors.ErrCodeInvalidInput, "unknown theme %q (available: %v)", name, ThemeNames())
}

// ThemeNames lists the built-in themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
