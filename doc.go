// Package chartview renders an interactive single-row bar chart.
//
// The core is pure and UI-agnostic:
//   - Normalize scales values against the dataset maximum
//   - ResolvePointer maps a pointer fraction to a bar index and clamped
//     floating-label offsets
//   - InteractionState tracks one drag and emits value-changed events
//   - ResolveTheme picks the light or dark palette per render pass
//
// Model wraps the core in a Bubble Tea widget with mouse-drag interaction;
// cmd/chartview is a runnable demo.
package chartview
