// Package style holds the colors and icons of keydiff's terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Roles map report and log elements to the palette.
var (
	Clean      = Green  // no drift
	Drift      = Red    // drift header, errors
	MissingKey = Yellow // "- key" lines, warnings
	FilePath   = Iris
	Muted      = Slate
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)
