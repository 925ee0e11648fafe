package chartview

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Size classes
// ---------------------------------------------------------------------------

// SizeClass is the discrete viewport size category controlling layout width
// and which secondary elements (legend vs floating label) may appear.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
	SizeExtraLarge
)

var sizeClassNames = map[string]SizeClass{
	"small":      SizeSmall,
	"medium":     SizeMedium,
	"large":      SizeLarge,
	"extralarge": SizeExtraLarge,
}

// ParseSizeClass maps a configuration string onto a SizeClass.
func ParseSizeClass(s string) (SizeClass, error) {
	if c, ok := sizeClassNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return SizeSmall, fmt.Errorf("unknown size class %q", s)
}

func (c SizeClass) String() string {
	switch c {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeExtraLarge:
		return "extralarge"
	}
	return fmt.Sprintf("SizeClass(%d)", int(c))
}

// AllowsFullWidth reports whether the chart may span the full viewport width.
func (c SizeClass) AllowsFullWidth() bool {
	return c == SizeLarge || c == SizeExtraLarge
}

// ShowsFloatingLabel reports whether the class ever shows the floating value
// overlay during interaction. Only medium does; wider classes surface the
// value inline in the headline instead, and small shows neither.
func (c SizeClass) ShowsFloatingLabel() bool {
	return c == SizeMedium
}

// ShowsInlineValue reports whether the headline swaps from title to the
// formatted value while an interaction is active.
func (c SizeClass) ShowsInlineValue() bool {
	return c == SizeLarge || c == SizeExtraLarge
}

// ShowsLegend reports whether a static legend line renders while no
// interaction is active.
func (c SizeClass) ShowsLegend() bool {
	return c != SizeSmall
}

// ---------------------------------------------------------------------------
// Chart options
// ---------------------------------------------------------------------------

// ChartOptions is the caller-facing configuration for one chart instance.
// Constructed once and immutable thereafter.
type ChartOptions struct {
	Title  string
	Legend string

	// Style is the light palette; its Dark field optionally overrides the
	// built-in dark fallback.
	Style Theme

	SizeClass  SizeClass
	DropShadow bool

	// ValueFormat is the fmt verb used to render the resolved value, e.g.
	// "%.1f" or "$%.2f".
	ValueFormat string

	// Overlay holds the floating-label geometry; zero value means defaults.
	Overlay OverlayLayout
}

// NewChartOptions fills defaults and validates. The zero OverlayLayout and an
// empty ValueFormat are replaced with the nominal values.
func NewChartOptions(opts ChartOptions) (ChartOptions, error) {
	if opts.ValueFormat == "" {
		opts.ValueFormat = "%.1f"
	}
	if opts.Overlay == (OverlayLayout{}) {
		opts.Overlay = DefaultOverlayLayout()
	}
	if err := opts.Overlay.validate(); err != nil {
		return ChartOptions{}, fmt.Errorf("chart options: %w", err)
	}
	if opts.SizeClass < SizeSmall || opts.SizeClass > SizeExtraLarge {
		return ChartOptions{}, fmt.Errorf("chart options: unknown size class %d", int(opts.SizeClass))
	}
	return opts, nil
}
