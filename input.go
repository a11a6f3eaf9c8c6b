package pcomb

import (
	"fmt"
	"unicode/utf8"
)

///////////////////////////////////////////////////////////////////////////////
// Input
///////////////////////////////////////////////////////////////////////////////

// Input is an immutable view into a source string. Every parser receives
// an Input and hands back a narrower one; the backing string is never
// copied or mutated, only the offset moves forward.
//
// The zero Input is an empty input.
type Input struct {
	src string // full source, owned by the top-level caller
	off int    // byte offset of the first unconsumed byte
}

// Position is a human readable location inside the source.
// Line and Column are 1-based, Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// NewInput returns an Input positioned at the start of s.
func NewInput(s string) Input {
	return Input{src: s}
}

// String returns the unconsumed text.
func (in Input) String() string {
	return in.src[in.off:]
}

// Offset returns the number of bytes consumed so far.
func (in Input) Offset() int {
	return in.off
}

// Len returns the number of unconsumed bytes.
func (in Input) Len() int {
	return len(in.src) - in.off
}

// Empty reports whether nothing is left to consume.
func (in Input) Empty() bool {
	return in.off >= len(in.src)
}

// Source returns the full source the view was created from.
func (in Input) Source() string {
	return in.src
}

// Consumed returns the text before the current offset.
func (in Input) Consumed() string {
	return in.src[:in.off]
}

// Since returns the text consumed between start and in. Both must be
// views into the same source with start not ahead of in.
func (in Input) Since(start Input) string {
	return in.src[start.off:in.off]
}

// Position computes the line and column of the current offset.
func (in Input) Position() Position {
	pos := Position{Offset: in.off, Line: 1, Column: 1}
	for _, r := range in.src[:in.off] {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
			continue
		}
		pos.Column++
	}
	return pos
}

// advance moves the view n bytes forward. n never exceeds Len() for
// callers in this package.
func (in Input) advance(n int) Input {
	return Input{src: in.src, off: in.off + n}
}

// peekRune decodes the next rune without consuming it. width is 0 at the
// end of input.
func (in Input) peekRune() (r rune, width int) {
	if in.Empty() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(in.src[in.off:])
}
