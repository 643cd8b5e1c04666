// Package palette holds the raw ANSI SGR sequences emitted by mdcat.
package palette

const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Magenta   = "\x1b[35m"
)

// Bold foreground colors. The doubled bold parameter matches what existing
// mdcat output has always carried.
const (
	BoldYellow  = "\x1b[33;1;1m"
	BoldBlue    = "\x1b[34;1;1m"
	BoldMagenta = "\x1b[35;1;1m"
)

// Heading maps heading levels 1-3 to their prefix.
var Heading = [3]string{BoldBlue, BoldYellow, BoldMagenta}

// Bullet is the default list marker glyph.
const Bullet = "•"
