package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Red      = lipgloss.Color("#f38ba8")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Bad   = lipgloss.NewStyle().Foreground(Red)
)

// CategoryColors maps a color tag to its display color. Tags without an
// entry use the "general" color.
type CategoryColors map[string]string

func (c CategoryColors) Color(tag string) lipgloss.Color {
	if hex, ok := c[strings.ToLower(tag)]; ok && hex != "" {
		return lipgloss.Color(hex)
	}
	if hex, ok := c["general"]; ok && hex != "" {
		return lipgloss.Color(hex)
	}
	return Peach
}

func (c CategoryColors) Style(tag string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Color(tag))
}

// Badge styles a streak badge name.
func Badge(name string) lipgloss.Style {
	switch name {
	case "gold":
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	case "bronze":
		return lipgloss.NewStyle().Foreground(Peach).Bold(true)
	}
	return Muted
}
