package mdcat

import "io"

// Sink receives rendered lines from Parse. The line slice is reused after
// WriteLine returns and must not be retained.
type Sink interface {
	WriteLine(line []byte) error
	Flush() error
}

type flusher interface {
	Flush() error
}

type writerSink struct {
	w io.Writer
}

// NewWriterSink returns a Sink writing each line followed by a newline to w.
// Flush is forwarded when w has a Flush method, as bufio.Writer does.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) WriteLine(line []byte) error {
	if _, err := s.w.Write(line); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, "\n")
	return err
}

func (s *writerSink) Flush() error {
	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
