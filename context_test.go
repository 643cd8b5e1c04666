package mdcat

import (
	"errors"
	"strings"
	"testing"
)

func TestStatePersistsAcrossLines(t *testing.T) {
	rc := NewRenderContext()
	if got := renderLine(t, rc, "**bold starts"); got != bold+"bold starts" {
		t.Fatalf("line 1: %q", got)
	}
	if rc.Stack().IsEmpty() {
		t.Fatalf("expected open bold at start of line 2")
	}
	if got := renderLine(t, rc, "ends**"); got != "ends"+reset {
		t.Fatalf("line 2: %q", got)
	}
	if !rc.Stack().IsEmpty() {
		t.Fatalf("expected empty stack, got %s", rc.Stack())
	}
}

func TestOverflowAcrossLines(t *testing.T) {
	rc := NewRenderContext()
	for i := 0; i < StackCapacity/2; i++ {
		if _, err := rc.RenderLine([]byte("*a**")); err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
	}
	if !rc.Stack().IsFull() {
		t.Fatalf("expected full stack, got %s", rc.Stack())
	}
	if _, err := rc.RenderLine([]byte("*a**")); !errors.Is(err, ErrStackFull) {
		t.Fatalf("expected ErrStackFull on line %d, got %v", StackCapacity/2+1, err)
	}
}

func TestResetPerLine(t *testing.T) {
	rc := NewRenderContext(WithResetPerLine(true))
	if got := renderLine(t, rc, "**open"); got != bold+"open" {
		t.Fatalf("line 1: %q", got)
	}
	if got := renderLine(t, rc, "**again"); got != bold+"again" {
		t.Fatalf("line 2 should open a fresh span: %q", got)
	}
	if got := renderLine(t, rc, "`code"); got != code+"code" {
		t.Fatalf("line 3: %q", got)
	}
	if got := renderLine(t, rc, "- bullet"); got != "• bullet" {
		t.Fatalf("code mode leaked into line 4: %q", got)
	}
	for i := 0; i < 2*StackCapacity; i++ {
		if _, err := rc.RenderLine([]byte("*a**")); err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
	}
}

func TestContextReset(t *testing.T) {
	rc := NewRenderContext()
	_ = renderLine(t, rc, "`**x")
	if err := rc.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !rc.Stack().IsEmpty() || rc.Mode() != FormatReset {
		t.Fatalf("reset left stack=%s mode=%s", rc.Stack(), rc.Mode())
	}
	rc.resetWithConfig(resolveConfig([]RenderOption{WithBullet("-")}))
	if !rc.Stack().IsEmpty() || rc.Mode() != FormatReset {
		t.Fatalf("reconfigure left stack=%s mode=%s", rc.Stack(), rc.Mode())
	}
	if got := renderLine(t, rc, "* y"); got != "- y" {
		t.Fatalf("reconfigured bullet: %q", got)
	}
	var nilCtx *RenderContext
	if err := nilCtx.Reset(); !errors.Is(err, ErrStackInit) {
		t.Fatalf("nil reset: %v", err)
	}
}

func TestAppendLineReusesBuffer(t *testing.T) {
	rc := NewRenderContext()
	buf := make([]byte, 0, 64)
	buf = append(buf, "> "...)
	out, err := rc.AppendLine(buf, []byte("**x**"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if want := "> " + bold + "x" + reset; string(out) != want {
		t.Fatalf("want %q got %q", want, string(out))
	}
	if &out[0] != &buf[0] {
		t.Fatalf("expected dst to be reused when capacity allows")
	}
}

func TestContractErrorMessage(t *testing.T) {
	err := &ContractError{Op: "close", Format: FormatBold, Err: ErrStackEmpty}
	if got := err.Error(); !strings.Contains(got, "close BOLD") || !strings.Contains(got, "empty") {
		t.Fatalf("message %q", got)
	}
}
