package mdcat

import (
	"fmt"

	"pkt.systems/mdcat/internal/palette"
)

const (
	strongMarkerLen    = 2
	underlineMarkerLen = 3
	maxCodeMarkerLen   = 3
)

func (c *RenderContext) appendInline(dst, line []byte) ([]byte, error) {
	for i := 0; i < len(line); {
		f, n := c.markerAt(line, i)
		if n == 0 {
			dst = append(dst, line[i])
			i++
			continue
		}
		var err error
		dst, err = c.toggle(dst, f)
		if err != nil {
			return dst, err
		}
		i += n
	}
	return dst, nil
}

// markerAt returns the format toggled by the marker starting at line[i] and
// the marker length, or a zero length for literal text. Emphasis markers are
// inert while a code span is the current mode.
func (c *RenderContext) markerAt(line []byte, i int) (Format, int) {
	switch line[i] {
	case '*':
		if c.mode == FormatCode {
			return FormatReset, 0
		}
		if runLen(line, i, '*', strongMarkerLen) == strongMarkerLen {
			return FormatBold, strongMarkerLen
		}
		return FormatItalic, 1
	case '_':
		if c.mode == FormatCode {
			return FormatReset, 0
		}
		if runLen(line, i, '_', underlineMarkerLen) == underlineMarkerLen {
			return FormatUnderline, underlineMarkerLen
		}
	case '`':
		return FormatCode, runLen(line, i, '`', maxCodeMarkerLen)
	}
	return FormatReset, 0
}

func runLen(line []byte, i int, ch byte, limit int) int {
	n := 0
	for i+n < len(line) && n < limit && line[i+n] == ch {
		n++
	}
	return n
}

// toggle closes f when it is the innermost open format and opens it
// otherwise. Spans closed out of order are not matched: a marker only ever
// compares against the top of the stack.
func (c *RenderContext) toggle(dst []byte, f Format) ([]byte, error) {
	if top, err := c.stack.Peek(); err == nil && top == f {
		got, err := c.stack.Pop()
		if err == nil && got != f {
			err = fmt.Errorf("popped %s", got)
		}
		if err != nil {
			return dst, &ContractError{Op: "close", Format: f, Err: err}
		}
		c.mode = FormatReset
		return append(dst, palette.Reset...), nil
	}
	if err := c.stack.Push(f); err != nil {
		return dst, &ContractError{Op: "open", Format: f, Err: err}
	}
	c.mode = f
	return append(dst, f.Escape()...), nil
}
