// Package detector inspects the environment to decide how output is styled.
package detector

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/keydiff/internal/ui/output"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

// ColorProfile returns the color profile to use when writing to w.
// NO_COLOR disables colors, FORCE_COLOR enables ANSI colors for any writer,
// otherwise colors are used only when w is a terminal.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return termenv.ANSI
	}
	if !IsTerminal(w) {
		return termenv.Ascii
	}
	return output.ColorProfile()
}
