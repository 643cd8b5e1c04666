package mdcat

import (
	"strconv"

	"pkt.systems/mdcat/internal/palette"
)

// Format identifies an inline format toggled by a Markdown marker.
type Format uint8

const (
	// FormatReset is the mode after a span closes. Never pushed.
	FormatReset Format = iota
	// FormatBold is toggled by "**".
	FormatBold
	// FormatCode is toggled by a run of one to three backticks.
	FormatCode
	// FormatItalic is toggled by a single "*".
	FormatItalic
	// FormatList marks bullet substitution. Never pushed.
	FormatList
	// FormatUnderline is toggled by "___".
	FormatUnderline
)

var formatNames = [...]string{
	FormatReset:     "RESET",
	FormatBold:      "BOLD",
	FormatCode:      "CODE",
	FormatItalic:    "ITALIC",
	FormatList:      "LIST",
	FormatUnderline: "UNDERLINE",
}

var formatEscapes = [...]string{
	FormatReset:     palette.Reset,
	FormatBold:      palette.Bold,
	FormatCode:      palette.Magenta,
	FormatItalic:    palette.Italic,
	FormatList:      "",
	FormatUnderline: palette.Underline,
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Escape returns the ANSI sequence that opens f. FormatReset yields the
// reset sequence and FormatList yields nothing.
func (f Format) Escape() string {
	if int(f) < len(formatEscapes) {
		return formatEscapes[f]
	}
	return ""
}
