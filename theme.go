package chartview

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin palettes — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

// Latte (light)
const (
	latteBase     lipgloss.Color = "#eff1f5"
	latteCrust    lipgloss.Color = "#dce0e8"
	latteText     lipgloss.Color = "#4c4f69"
	latteSubtext0 lipgloss.Color = "#6c6f85"
	lattePink     lipgloss.Color = "#ea76cb"
	latteMauve    lipgloss.Color = "#8839ef"
	latteBlue     lipgloss.Color = "#1e66f5"
	latteSapphire lipgloss.Color = "#209fb5"
	latteOverlay0 lipgloss.Color = "#9ca0b0"
)

// Mocha (dark)
const (
	mochaBase     lipgloss.Color = "#1e1e2e"
	mochaCrust    lipgloss.Color = "#11111b"
	mochaText     lipgloss.Color = "#cdd6f4"
	mochaSubtext0 lipgloss.Color = "#a6adc8"
	mochaPink     lipgloss.Color = "#f5c2e7"
	mochaMauve    lipgloss.Color = "#cba6f7"
	mochaBlue     lipgloss.Color = "#89b4fa"
	mochaSapphire lipgloss.Color = "#74c7ec"
	mochaOverlay0 lipgloss.Color = "#6c7086"
)

// ---------------------------------------------------------------------------
// Theme
// ---------------------------------------------------------------------------

// Scheme is the active color scheme signal. It is supplied by the caller
// (terminal background, user preference) rather than read from ambient state,
// which keeps resolution independently testable.
type Scheme int

const (
	SchemeLight Scheme = iota
	SchemeDark
)

// Toggle returns the opposite scheme.
func (s Scheme) Toggle() Scheme {
	if s == SchemeDark {
		return SchemeLight
	}
	return SchemeDark
}

// Theme is one chart palette. Dark optionally nests the palette to switch to
// under SchemeDark; when nil, resolution substitutes DefaultDarkTheme so a
// palette is never absent at render time.
type Theme struct {
	Background    lipgloss.Color
	Text          lipgloss.Color
	Accent        lipgloss.Color
	LegendText    lipgloss.Color
	GradientStart lipgloss.Color
	GradientEnd   lipgloss.Color
	DropShadow    lipgloss.Color

	Dark *Theme
}

// DefaultLightTheme returns the built-in Latte palette.
func DefaultLightTheme() Theme {
	return Theme{
		Background:    latteBase,
		Text:          latteText,
		Accent:        lattePink,
		LegendText:    latteSubtext0,
		GradientStart: latteBlue,
		GradientEnd:   latteMauve,
		DropShadow:    latteCrust,
	}
}

// DefaultDarkTheme returns the built-in Mocha palette, substituted whenever a
// style carries no explicit dark variant.
func DefaultDarkTheme() Theme {
	return Theme{
		Background:    mochaBase,
		Text:          mochaText,
		Accent:        mochaPink,
		LegendText:    mochaSubtext0,
		GradientStart: mochaBlue,
		GradientEnd:   mochaMauve,
		DropShadow:    mochaCrust,
	}
}

// ResolveTheme returns the palette to render with for the given scheme. Light
// returns the style as supplied; dark returns its nested variant when present
// and the built-in default dark palette otherwise. Callers re-resolve every
// render pass since the scheme signal can change at any time.
func ResolveTheme(scheme Scheme, style Theme) Theme {
	if scheme == SchemeDark {
		if style.Dark != nil {
			return *style.Dark
		}
		return DefaultDarkTheme()
	}
	return style
}
