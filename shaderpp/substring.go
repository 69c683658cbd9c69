package shaderpp

import "strings"

// none is the sentinel returned by Find and FindFirstOf when no match exists,
// matching Go's strings.Index convention rather than a separate "NONE" type.
const none = -1

// SubString is a non-owning view into an immutable Buffer: a pair of byte
// offsets (start, end) with start <= end <= len(buffer). Two SubStrings may
// reference the same Buffer without aliasing its bytes; slicing never
// copies.
type SubString struct {
	buffer *string
	start  int
	end    int
}

// newSubString returns a view over buffer starting at start and running to
// the end of the buffer.
func newSubString(buffer *string, start int) SubString {
	return SubString{buffer: buffer, start: start, end: len(*buffer)}
}

// newSubStringRange returns a view over buffer[start:end].
func newSubStringRange(buffer *string, start, end int) SubString {
	return SubString{buffer: buffer, start: start, end: end}
}

// Text returns the bytes this view covers, as a string.
func (s SubString) Text() string {
	return (*s.buffer)[s.start:s.end]
}

// Size returns the number of bytes in the view.
func (s SubString) Size() int {
	return s.end - s.start
}

// Start returns the absolute offset of the view's first byte.
func (s SubString) Start() int {
	return s.start
}

// End returns the absolute offset just past the view's last byte.
func (s SubString) End() int {
	return s.end
}

// SetStart moves the view's start to an absolute offset into the buffer.
func (s *SubString) SetStart(start int) {
	s.start = start
}

// SetEnd moves the view's end to an absolute offset into the buffer.
func (s *SubString) SetEnd(end int) {
	s.end = end
}

// Find returns the offset (relative to the view's start) of the first
// occurrence of needle at or after from, or none.
func (s SubString) Find(needle string, from int) int {
	if from > s.Size() {
		return none
	}
	idx := strings.Index(s.Text()[from:], needle)
	if idx == none {
		return none
	}
	return idx + from
}

// FindFirstOf returns the offset (relative to the view's start) of the
// first byte at or after from that appears in charset, or none.
func (s SubString) FindFirstOf(charset string, from int) int {
	if from > s.Size() {
		return none
	}
	idx := strings.IndexAny(s.Text()[from:], charset)
	if idx == none {
		return none
	}
	return idx + from
}

// MatchEqual reports whether the view's text equals literal exactly.
func (s SubString) MatchEqual(literal string) bool {
	return s.Text() == literal
}

// slice returns a new view covering [start, start+length) of the same
// buffer, both relative to this view's start.
func (s SubString) slice(start, length int) SubString {
	return newSubStringRange(s.buffer, s.start+start, s.start+start+length)
}
