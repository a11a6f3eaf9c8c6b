package pcomb

import (
	"errors"
	"fmt"
)

var (
	ErrNoMatch         = errors.New("no match")
	ErrUnconsumedInput = errors.New("unconsumed input")
)

// MatchError reports where a parse stopped matching.
type MatchError struct {
	At Input
}

// Error implements the error interface
func (me *MatchError) Error() string {
	pos := me.At.Position()
	if me.At.Empty() {
		return fmt.Sprintf("%s at %s (end of input)", ErrNoMatch, pos)
	}
	return fmt.Sprintf("%s at %s near %q", ErrNoMatch, pos, excerpt(me.At.String(), 16))
}

func (me *MatchError) Unwrap() error {
	return ErrNoMatch
}

// excerpt truncates s to at most n runes for error messages.
func excerpt(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + "..."
		}
		i++
	}
	return s
}
