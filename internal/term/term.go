// Package term provides ANSI color state and terminal detection.
//
// Colors are package-level [color.Color] values because multiple packages
// (logging, display) need them for output formatting. [Configure] resolves
// the color mode once during startup; disabling colors flips the global
// color.NoColor switch so every Sprint call degrades to plain text.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/voxprep/voxprep/internal/config"
)

// Level colors shared by logging and display.
var (
	Red     = color.New(color.FgHiRed, color.Bold)
	Green   = color.New(color.FgHiGreen, color.Bold)
	Yellow  = color.New(color.FgHiYellow, color.Bold)
	Blue    = color.New(color.FgHiBlue, color.Bold)
	Cyan    = color.New(color.FgHiCyan, color.Bold)
	Magenta = color.New(color.FgHiMagenta, color.Bold)
)

// Configure resolves the color mode and sets the global color switch.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	color.NoColor = !resolve(mode)
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return !color.NoColor }

// resolve determines whether colors should be enabled based on the
// configured mode, TTY detection, and the NO_COLOR env var
// (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
