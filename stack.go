package mdcat

import "strings"

// StackCapacity is the number of inline formats that may be open at once.
const StackCapacity = 10

// FormatStack is a bounded LIFO of open inline formats. The zero value is
// an empty stack. Failed operations leave the stack unchanged.
type FormatStack struct {
	n     int
	elems [StackCapacity]Format
}

// Init empties the stack. It returns ErrStackInit on a nil receiver.
func (s *FormatStack) Init() error {
	if s == nil {
		return ErrStackInit
	}
	s.n = 0
	return nil
}

// IsEmpty reports whether no format is open.
func (s *FormatStack) IsEmpty() bool {
	return s.n == 0
}

// IsFull reports whether a Push would fail.
func (s *FormatStack) IsFull() bool {
	return s.n == StackCapacity
}

// Len returns the number of open formats.
func (s *FormatStack) Len() int {
	return s.n
}

// Top returns the cursor of the topmost element, -1 when empty.
func (s *FormatStack) Top() int {
	return s.n - 1
}

// Push opens f.
func (s *FormatStack) Push(f Format) error {
	if s.IsFull() {
		return ErrStackFull
	}
	s.elems[s.n] = f
	s.n++
	return nil
}

// Pop removes and returns the topmost format.
func (s *FormatStack) Pop() (Format, error) {
	if s.IsEmpty() {
		return FormatReset, ErrStackEmpty
	}
	s.n--
	return s.elems[s.n], nil
}

// Peek returns the topmost format without removing it.
func (s *FormatStack) Peek() (Format, error) {
	if s.IsEmpty() {
		return FormatReset, ErrStackEmpty
	}
	return s.elems[s.n-1], nil
}

// String lists the open formats bottom to top.
func (s *FormatStack) String() string {
	var b strings.Builder
	b.WriteString("Stack elements:")
	for i := 0; i < s.n; i++ {
		b.WriteByte(' ')
		b.WriteString(s.elems[i].String())
	}
	return b.String()
}
