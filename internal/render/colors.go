package render

import "github.com/charmbracelet/lipgloss"

// Palette maps session types to display colors. It is configuration, not
// derived state: unknown types always fall back to the default color rather
// than registering a new one.
type Palette struct {
	colors   map[string]lipgloss.Color
	fallback lipgloss.Color
}

// DefaultPalette returns the built-in type color table.
func DefaultPalette() Palette {
	return Palette{
		colors: map[string]lipgloss.Color{
			"Biology":  lipgloss.Color("#A6E3A1"), // green
			"Math":     lipgloss.Color("#89B4FA"), // blue
			"History":  lipgloss.Color("#F9E2AF"), // yellow
			"Language": lipgloss.Color("#F5C2E7"), // pink
			"Reading":  lipgloss.Color("#CBA6F7"), // mauve
		},
		fallback: lipgloss.Color("#94E2D5"), // teal
	}
}

// WithOverrides returns a copy of the palette with per-type colors replaced
// or added from the given hex values. The "Default" key replaces the
// fallback color.
func (p Palette) WithOverrides(overrides map[string]string) Palette {
	out := Palette{
		colors:   make(map[string]lipgloss.Color, len(p.colors)+len(overrides)),
		fallback: p.fallback,
	}
	for typ, c := range p.colors {
		out.colors[typ] = c
	}
	for typ, hex := range overrides {
		if hex == "" {
			continue
		}
		if typ == "Default" {
			out.fallback = lipgloss.Color(hex)
			continue
		}
		out.colors[typ] = lipgloss.Color(hex)
	}
	return out
}

// Color returns the display color for a session type.
func (p Palette) Color(typ string) lipgloss.Color {
	if c, ok := p.colors[typ]; ok {
		return c
	}
	return p.fallback
}
