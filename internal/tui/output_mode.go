package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how the dashboard is presented.
type OutputMode int

const (
	// OutputModePlain writes uncoloured text suitable for pipes and logs.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes a coloured static render.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// EnvNoColor disables colour output when set to any non-empty value.
const EnvNoColor = "NO_COLOR"

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the output mode for stdout. plain and noColor (or
// NO_COLOR) always win; forceColor yields a styled render when stdout is not a
// terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain || noColor || os.Getenv(EnvNoColor) != "" {
		return OutputModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	return OutputModeInteractive
}
