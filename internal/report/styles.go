// pattern: Functional Core

package report

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	flavor catppuccin.Flavor
}

func NewStyles(themeName string) *Styles {
	return &Styles{flavor: flavorFromName(themeName)}
}

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	case "mocha":
		return catppuccin.Mocha
	default:
		return catppuccin.Mocha
	}
}

func (s *Styles) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(s.flavor.Mauve().Hex))
}

func (s *Styles) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(s.flavor.Subtext0().Hex)).
		Padding(0, 1)
}

func (s *Styles) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Surface1().Hex))
}

func (s *Styles) CellStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Text().Hex)).
		Padding(0, 1)
}

// GlyphStyle colors the Status cell: green for clean, yellow for the
// warning states, red for dirty and error.
func (s *Styles) GlyphStyle(g Glyph) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch g {
	case GlyphClean:
		return base.Foreground(lipgloss.Color(s.flavor.Green().Hex))
	case GlyphAhead, GlyphNoUpstream:
		return base.Foreground(lipgloss.Color(s.flavor.Yellow().Hex))
	default:
		return base.Foreground(lipgloss.Color(s.flavor.Red().Hex))
	}
}
