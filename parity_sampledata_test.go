package mdcat

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderSampledataParity(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.md"))
	if err != nil {
		t.Fatalf("glob testdata: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no markdown files found under testdata")
	}
	for _, path := range paths {
		path := path
		t.Run(path, func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			goldenPath := strings.TrimSuffix(path, ".md") + ".golden"
			want, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("read golden %s: %v", goldenPath, err)
			}
			var out bytes.Buffer
			if err := Render(RenderRequest{Reader: bytes.NewReader(src), Writer: &out}); err != nil {
				t.Fatalf("render %s: %v", path, err)
			}
			if got := out.String(); got != string(want) {
				t.Fatalf("parity mismatch %s\n%s", path, firstDiffContext(string(want), got, 2))
			}
		})
	}
}

func firstDiffContext(want, got string, context int) string {
	wantLines := strings.Split(want, "\n")
	gotLines := strings.Split(got, "\n")
	n := len(wantLines)
	if len(gotLines) > n {
		n = len(gotLines)
	}
	for i := 0; i < n; i++ {
		var w, g string
		if i < len(wantLines) {
			w = wantLines[i]
		}
		if i < len(gotLines) {
			g = gotLines[i]
		}
		if w == g {
			continue
		}
		var b strings.Builder
		start := i - context
		if start < 0 {
			start = 0
		}
		for j := start; j < i; j++ {
			if j < len(wantLines) {
				fmt.Fprintf(&b, "  %d: %q\n", j+1, wantLines[j])
			}
		}
		fmt.Fprintf(&b, "- %d: %q\n+ %d: %q\n", i+1, w, i+1, g)
		return b.String()
	}
	return "outputs differ only in length"
}
