package mdcat

import "pkt.systems/mdcat/internal/palette"

// RenderContext carries inline state between the lines of one input: the
// open formats and the mode of the last marker seen. A RenderContext is not
// safe for concurrent use.
type RenderContext struct {
	stack  FormatStack
	mode   Format
	cfg    renderConfig
	bullet string
}

// NewRenderContext returns an empty context.
func NewRenderContext(opts ...RenderOption) *RenderContext {
	c := &RenderContext{}
	c.resetWithConfig(resolveConfig(opts))
	return c
}

func (c *RenderContext) resetWithConfig(cfg renderConfig) {
	c.cfg = cfg
	c.bullet = cfg.bullet
	if c.bullet == "" {
		c.bullet = palette.Bullet
	}
	c.reset()
}

// Reset closes every open format and leaves code mode.
func (c *RenderContext) Reset() error {
	if c == nil {
		return ErrStackInit
	}
	c.reset()
	return nil
}

func (c *RenderContext) reset() {
	c.mode = FormatReset
	c.stack.n = 0
}

// Stack exposes the open formats.
func (c *RenderContext) Stack() *FormatStack {
	return &c.stack
}

// Mode returns the format of the last marker opened, or FormatReset if the
// last marker closed a span.
func (c *RenderContext) Mode() Format {
	return c.mode
}

// RenderLine renders one line, without its newline, into a new buffer.
func (c *RenderContext) RenderLine(line []byte) ([]byte, error) {
	return c.AppendLine(make([]byte, 0, 2*len(line)), line)
}

// AppendLine renders line and appends the result to dst. Headers and list
// items are rendered whole; anything else goes through the inline scanner.
// dst grows as needed, so its capacity is only a hint.
func (c *RenderContext) AppendLine(dst, line []byte) ([]byte, error) {
	if c.cfg.resetPerLine {
		if err := c.Reset(); err != nil {
			return dst, err
		}
	}
	if out, ok := appendHeader(dst, line); ok {
		return out, nil
	}
	if out, ok := c.appendList(dst, line); ok {
		return out, nil
	}
	return c.appendInline(dst, line)
}

// RenderLine renders a single line with a fresh context.
func RenderLine(line string, opts ...RenderOption) (string, error) {
	out, err := NewRenderContext(opts...).RenderLine([]byte(line))
	return string(out), err
}
