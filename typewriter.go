package mdcat

import (
	"io"
	"time"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
)

// DefaultTypewriterDelay is the pause after each printed character.
const DefaultTypewriterDelay = 3 * time.Millisecond

// Typewriter forwards writes to Writer one character at a time, pausing
// Delay after every printable rune. Escape sequences and newlines are
// forwarded without a pause. The bytes reaching Writer are exactly the bytes
// written.
type Typewriter struct {
	Writer io.Writer
	Delay  time.Duration
	// Sleep replaces time.Sleep when set.
	Sleep func(time.Duration)

	inEscape bool
}

// NewTypewriter returns a Typewriter writing to w.
func NewTypewriter(w io.Writer, delay time.Duration) *Typewriter {
	return &Typewriter{Writer: w, Delay: delay}
}

func (t *Typewriter) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, printable := t.next(p[written:])
		m, err := t.Writer.Write(p[written : written+n])
		written += m
		if err != nil {
			return written, err
		}
		if m < n {
			return written, io.ErrShortWrite
		}
		if printable && t.Delay > 0 {
			t.sleep(t.Delay)
		}
	}
	return written, nil
}

func (t *Typewriter) sleep(d time.Duration) {
	if t.Sleep != nil {
		t.Sleep(d)
		return
	}
	time.Sleep(d)
}

// next returns the length of the unit at the start of p and whether it
// prints. An escape sequence split across writes continues where it left off.
func (t *Typewriter) next(p []byte) (int, bool) {
	i := 0
	if !t.inEscape {
		if p[0] != ansi.Marker {
			if p[0] == '\n' {
				return 1, false
			}
			_, size := utf8.DecodeRune(p)
			return size, true
		}
		t.inEscape = true
		i = 1
	}
	for ; i < len(p); i++ {
		if ansi.IsTerminator(rune(p[i])) {
			t.inEscape = false
			return i + 1, false
		}
	}
	return len(p), false
}
