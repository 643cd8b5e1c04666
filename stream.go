package mdcat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

var contextPool = sync.Pool{
	New: func() any {
		return &RenderContext{}
	},
}

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []RenderOption
}

// ParseRequest configures Parse.
type ParseRequest struct {
	Reader  io.Reader
	Sink    Sink
	Options []RenderOption
}

// Render renders Markdown from Reader to Writer, one output line per input
// line.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	return Parse(ParseRequest{
		Reader:  req.Reader,
		Sink:    NewWriterSink(req.Writer),
		Options: req.Options,
	})
}

// RenderFile renders the file at path to w. A file that cannot be opened
// yields an *OpenError.
func RenderFile(path string, w io.Writer, opts ...RenderOption) error {
	f, err := os.Open(path)
	if err != nil {
		return &OpenError{Name: path, Err: err}
	}
	defer f.Close()
	return Render(RenderRequest{Reader: f, Writer: w, Options: opts})
}

// Parse renders every line from Reader and hands the results to Sink. All
// lines share a single RenderContext, so one call corresponds to one input
// file.
func Parse(req ParseRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("parse: reader is nil")
	}
	if req.Sink == nil {
		return fmt.Errorf("parse: sink is nil")
	}
	rc := contextPool.Get().(*RenderContext)
	rc.resetWithConfig(resolveConfig(req.Options))
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)

	var (
		lineArr [256]byte
		outArr  [512]byte
		line    = lineArr[:0]
		out     = outArr[:0]
		lineNo  int
		retErr  error
	)
	for {
		var err error
		line, err = readLine(reader, line[:0])
		if err != nil && err != io.EOF {
			retErr = fmt.Errorf("parse: read: %w", err)
			break
		}
		if len(line) == 0 && err == io.EOF {
			break
		}
		lineNo++
		text := trimEOL(line)
		if cap(out) < 2*len(text) {
			out = make([]byte, 0, 2*len(text))
		}
		var rerr error
		out, rerr = rc.AppendLine(out[:0], text)
		if rerr != nil {
			retErr = fmt.Errorf("parse: line %d: %w", lineNo, rerr)
			break
		}
		if werr := req.Sink.WriteLine(out); werr != nil {
			retErr = fmt.Errorf("parse: write: %w", werr)
			break
		}
		if err == io.EOF {
			break
		}
	}
	// Lines rendered before a failure are still flushed.
	if err := req.Sink.Flush(); err != nil && retErr == nil {
		retErr = fmt.Errorf("parse: flush: %w", err)
	}
	reader.Reset(nil)
	readerPool.Put(reader)
	contextPool.Put(rc)
	return retErr
}

// readLine appends the next line, newline included, to buf.
func readLine(r *bufio.Reader, buf []byte) ([]byte, error) {
	for {
		frag, err := r.ReadSlice('\n')
		buf = append(buf, frag...)
		if err == bufio.ErrBufferFull {
			continue
		}
		return buf, err
	}
}

func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
