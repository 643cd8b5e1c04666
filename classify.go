package mdcat

import "pkt.systems/mdcat/internal/palette"

const maxHeadingLevel = 3

// headingLevel returns 1-3 for a line opening with that many '#' and a
// space, 0 otherwise.
func headingLevel(line []byte) int {
	n := 0
	for n < len(line) && n <= maxHeadingLevel && line[n] == '#' {
		n++
	}
	if n == 0 || n > maxHeadingLevel {
		return 0
	}
	if n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}

func appendHeader(dst, line []byte) ([]byte, bool) {
	level := headingLevel(line)
	if level == 0 {
		return dst, false
	}
	dst = append(dst, palette.Heading[level-1]...)
	dst = append(dst, line[level+1:]...)
	dst = append(dst, palette.Reset...)
	return dst, true
}

// listMarker returns the index of a leading "- " or "* " marker after
// optional blanks, or -1.
func listMarker(line []byte) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i+1 >= len(line) || line[i+1] != ' ' {
		return -1
	}
	if line[i] != '-' && line[i] != '*' {
		return -1
	}
	return i
}

func (c *RenderContext) appendList(dst, line []byte) ([]byte, bool) {
	if c.mode == FormatCode {
		return dst, false
	}
	i := listMarker(line)
	if i < 0 {
		return dst, false
	}
	dst = append(dst, line[:i]...)
	dst = append(dst, c.bullet...)
	dst = append(dst, line[i+1:]...)
	return dst, true
}
