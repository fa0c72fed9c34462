package arith

import "strings"

// scanner is the only mutation point of parse state: a fixed input string
// and a monotonically non-decreasing offset. Each match method either
// consumes the matched text and reports success, or leaves the offset
// unchanged. Grammar rules above it rely on that invariant to backtrack
// for free.
type scanner struct {
	input string
	pos   int
}

// eof reports whether the entire input has been consumed.
func (s *scanner) eof() bool { return s.pos >= len(s.input) }

// offset returns the current scan position.
func (s *scanner) offset() int { return s.pos }

// rest returns the unconsumed remainder of the input.
func (s *scanner) rest() string { return s.input[s.pos:] }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// space consumes a run of whitespace and reports whether any was consumed.
func (s *scanner) space() bool {
	start := s.pos
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}

	return s.pos > start
}

// digits consumes a run of decimal digits and returns the matched text.
func (s *scanner) digits() (string, bool) {
	start := s.pos
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		s.pos++
	}

	if s.pos == start {
		return "", false
	}

	return s.input[start:s.pos], true
}

// char consumes c if it is the next input byte.
func (s *scanner) char(c byte) bool {
	if s.pos < len(s.input) && s.input[s.pos] == c {
		s.pos++

		return true
	}

	return false
}

// oneOf consumes the next input byte if it is a member of set, returning
// the consumed byte.
func (s *scanner) oneOf(set string) (byte, bool) {
	if s.pos < len(s.input) && strings.IndexByte(set, s.input[s.pos]) >= 0 {
		c := s.input[s.pos]
		s.pos++

		return c, true
	}

	return 0, false
}
