// File: cursor.go
// Title: Byte Cursor
// Description: Forward-only cursor over a byte buffer used by the date codecs.
//              Every consuming method reports "no match" with a boolean and
//              leaves the cursor where it was.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package scan provides the byte cursor shared by the text parsers.
package scan

// EOF is returned by Peek and Next at the end of input.
const EOF byte = 0

// Cursor consumes a byte buffer from left to right. It never backtracks.
type Cursor struct {
	input []byte
	pos   int
}

// New returns a cursor positioned at the start of input.
func New(input []byte) *Cursor {
	return &Cursor{input: input}
}

// NewString returns a cursor over s.
func NewString(s string) *Cursor {
	return New([]byte(s))
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.pos }

// Done reports whether all input has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.input) }

// Rest returns the unconsumed input.
func (c *Cursor) Rest() []byte { return c.input[c.pos:] }

// Input returns the whole buffer.
func (c *Cursor) Input() []byte { return c.input }

// Peek returns the next byte without consuming it, or EOF.
func (c *Cursor) Peek() byte {
	if c.pos >= len(c.input) {
		return EOF
	}
	return c.input[c.pos]
}

// PeekDigit reports whether the next byte is an ASCII digit.
func (c *Cursor) PeekDigit() bool {
	return isDigit(c.Peek())
}

// Next consumes and returns the next byte, or EOF without advancing.
func (c *Cursor) Next() byte {
	if c.pos >= len(c.input) {
		return EOF
	}
	b := c.input[c.pos]
	c.pos++
	return b
}

// Match consumes b if it is the next byte.
func (c *Cursor) Match(b byte) bool {
	if c.pos < len(c.input) && c.input[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

// MatchFold consumes b if the next byte equals it ignoring ASCII case.
func (c *Cursor) MatchFold(b byte) bool {
	if c.pos < len(c.input) && lower(c.input[c.pos]) == lower(b) {
		c.pos++
		return true
	}
	return false
}

// MatchAny consumes the next byte if it is one of set and returns it.
func (c *Cursor) MatchAny(set string) (byte, bool) {
	if c.pos >= len(c.input) {
		return EOF, false
	}
	b := c.input[c.pos]
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			c.pos++
			return b, true
		}
	}
	return EOF, false
}

// MatchString consumes s if the input continues with it.
func (c *Cursor) MatchString(s string) bool {
	if len(c.input)-c.pos < len(s) || string(c.input[c.pos:c.pos+len(s)]) != s {
		return false
	}
	c.pos += len(s)
	return true
}

// MatchStringFold is MatchString ignoring ASCII case.
func (c *Cursor) MatchStringFold(s string) bool {
	if len(c.input)-c.pos < len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if lower(c.input[c.pos+i]) != lower(s[i]) {
			return false
		}
	}
	c.pos += len(s)
	return true
}

// Take consumes exactly n bytes and returns them.
func (c *Cursor) Take(n int) ([]byte, bool) {
	if n < 0 || len(c.input)-c.pos < n {
		return nil, false
	}
	b := c.input[c.pos : c.pos+n]
	c.pos += n
	return b, true
}

// Digits consumes between min and max ASCII digits and returns their value.
// It stops early at the first non-digit. When fewer than min digits are
// available nothing is consumed.
func (c *Cursor) Digits(min, max int) (int, bool) {
	value, n := 0, 0
	for n < max && c.pos+n < len(c.input) && isDigit(c.input[c.pos+n]) {
		value = value*10 + int(c.input[c.pos+n]-'0')
		n++
	}
	if n < min || n == 0 {
		return 0, false
	}
	c.pos += n
	return value, true
}

// FixedDigits consumes exactly n digits.
func (c *Cursor) FixedDigits(n int) (int, bool) {
	return c.Digits(n, n)
}

// SkipAll consumes zero or more occurrences of b and returns the count.
func (c *Cursor) SkipAll(b byte) int {
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] == b {
		c.pos++
	}
	return c.pos - start
}

// SkipSome consumes one or more occurrences of b.
func (c *Cursor) SkipSome(b byte) bool {
	return c.SkipAll(b) > 0
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
