package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorTermVar is the environment variable consulted for color support.
const ColorTermVar = "COLORTERM"

// SupportsColor reports whether a COLORTERM value announces a 24-bit capable terminal.
func SupportsColor(colorTerm string) bool {
	switch colorTerm {
	case "truecolor", "24bit":
		return true
	default:
		return false
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for an *os.File attached to a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd())) //nolint:gosec // fd fits in int on supported platforms
}
