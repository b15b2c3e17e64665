package dock

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode controls whether help is rendered with color.
type ColorMode int

const (
	// ColorAuto colors output only when stdout is a terminal. NO_COLOR disables color and
	// FORCE_COLOR enables it regardless of the terminal check; NO_COLOR wins when both are set.
	ColorAuto ColorMode = iota
	// ColorAlways always renders colored help.
	ColorAlways
	// ColorNever always renders plain help.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// useColor resolves the mode against the output writer and the environment.
func (m ColorMode) useColor(w io.Writer, getenv func(string) string) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	if getenv("FORCE_COLOR") != "" {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// palette decorates the parts of the default help text.
type palette struct {
	header  func(string) string
	command func(string) string
}

func paint(c termenv.Color) func(string) string {
	return func(s string) string {
		return termenv.ANSI.String(s).Foreground(c).String()
	}
}

var defaultPalette = palette{
	header:  paint(termenv.ANSIBlue),
	command: paint(termenv.ANSIGreen),
}
