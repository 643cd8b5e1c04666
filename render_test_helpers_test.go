package mdcat

import (
	"bytes"
	"regexp"
	"testing"

	"pkt.systems/mdcat/internal/palette"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func renderString(t *testing.T, src string, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  bytes.NewBufferString(src),
		Writer:  &out,
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func renderLine(t *testing.T, rc *RenderContext, line string) string {
	t.Helper()
	out, err := rc.RenderLine([]byte(line))
	if err != nil {
		t.Fatalf("render line %q: %v", line, err)
	}
	return string(out)
}

const (
	reset     = palette.Reset
	bold      = palette.Bold
	italic    = palette.Italic
	underline = palette.Underline
	code      = palette.Magenta
)
