package analysis

import "strings"

// Cursor reads a fixed list of lines with an explicit position.
type Cursor struct {
	lines []string
	pos   int
}

// NewCursor returns a cursor positioned before the first line.
func NewCursor(lines []string) *Cursor {
	return &Cursor{lines: lines}
}

// NewCursorFromText splits text on newlines (accepting CRLF) and returns a
// cursor over the result.
func NewCursorFromText(text string) *Cursor {
	return NewCursor(SplitLines(text))
}

// SplitLines splits text into lines without their terminators. A trailing
// newline does not produce an empty final line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Next returns the line at the current position and advances past it.
// It reports false once every line has been read.
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

// Pos returns the index of the next line to be read. After a successful
// Next it is also the 1-based number of the line just returned.
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek moves the read position, clamped to the line range.
func (c *Cursor) Seek(pos int) {
	switch {
	case pos < 0:
		c.pos = 0
	case pos > len(c.lines):
		c.pos = len(c.lines)
	default:
		c.pos = pos
	}
}

// Done reports whether every line has been read.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.lines)
}

// Len returns the total number of lines.
func (c *Cursor) Len() int {
	return len(c.lines)
}
