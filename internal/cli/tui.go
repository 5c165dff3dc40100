package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/kundali/pkg/chart"
)

var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ModeViewModel - switch between ascendant, moon and sun charts
// =============================================================================

// ModeViewModel is the bubbletea model behind `show --interactive`.
type ModeViewModel struct {
	Name    string
	Modes   []chart.Mode
	Layouts map[chart.Mode]chart.Layout
	Cursor  int
	Degrees bool
}

// newModeViewModel keeps the modes present in layouts, in display order.
func newModeViewModel(name string, layouts map[chart.Mode]chart.Layout, degrees bool) ModeViewModel {
	m := ModeViewModel{Name: name, Layouts: layouts, Degrees: degrees}
	for _, mode := range chart.Modes {
		if _, ok := layouts[mode]; ok {
			m.Modes = append(m.Modes, mode)
		}
	}
	return m
}

// Current returns the mode on screen.
func (m ModeViewModel) Current() chart.Mode {
	if len(m.Modes) == 0 {
		return ""
	}
	return m.Modes[m.Cursor]
}

func (m ModeViewModel) Init() tea.Cmd {
	return nil
}

func (m ModeViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Modes) == 0 {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", "tab":
		m.Cursor = (m.Cursor + 1) % len(m.Modes)
	case "left", "h", "shift+tab":
		m.Cursor = (m.Cursor + len(m.Modes) - 1) % len(m.Modes)
	case "d":
		m.Degrees = !m.Degrees
	}
	return m, nil
}

func (m ModeViewModel) View() string {
	if len(m.Modes) == 0 {
		return "no charts\n"
	}
	var b strings.Builder

	tabs := make([]string, len(m.Modes))
	for i, mode := range m.Modes {
		if i == m.Cursor {
			tabs[i] = tabActiveStyle.Render(string(mode))
		} else {
			tabs[i] = tabInactiveStyle.Render(string(mode))
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n\n")

	l := m.Layouts[m.Current()]
	b.WriteString(chartHeading(m.Name, l))
	b.WriteString("\n")
	b.WriteString(chartTable(l, m.Degrees))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("←/→ switch chart  d degrees  q quit  [%d/%d]", m.Cursor+1, len(m.Modes))))
	b.WriteString("\n")

	return b.String()
}
