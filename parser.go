package pcomb

import "fmt"

///////////////////////////////////////////////////////////////////////////////
// Parser Interface
///////////////////////////////////////////////////////////////////////////////

// Parser is anything that can attempt to consume a prefix of an Input.
//
// Parse must be deterministic and free of side effects: the same Input
// always yields the same Result. Not matching is reported through the
// Result, never by panicking.
type Parser[T any] interface {
	Parse(in Input) Result[T]
}

// Func lifts a plain function into a Parser. Primitives are declared as
// Func values and every combinator returns one, so a combinator's output
// can be passed straight into another combinator or called directly.
type Func[T any] func(in Input) Result[T]

// Parse implements Parser.
func (f Func[T]) Parse(in Input) Result[T] {
	return f(in)
}

// ParseString runs f from the start of s.
func (f Func[T]) ParseString(s string) Result[T] {
	return f(NewInput(s))
}

///////////////////////////////////////////////////////////////////////////////
// Entry points
///////////////////////////////////////////////////////////////////////////////

// Run parses s with p and returns the value together with the leftover
// text. Leftover input is not an error here; callers decide whether it
// matters. On failure the error is a *MatchError.
func Run[T any](p Parser[T], s string) (T, string, error) {
	res := p.Parse(NewInput(s))
	if !res.Ok() {
		var zero T
		return zero, res.Remainder.String(), res.Err()
	}
	return res.Value, res.Remainder.String(), nil
}

// RunAll is Run for callers that require the whole input to be consumed.
func RunAll[T any](p Parser[T], s string) (T, error) {
	res := p.Parse(NewInput(s))
	if !res.Ok() {
		var zero T
		return zero, res.Err()
	}
	if !res.Remainder.Empty() {
		var zero T
		return zero, fmt.Errorf(
			"%w at %s: %q",
			ErrUnconsumedInput, res.Remainder.Position(), excerpt(res.Remainder.String(), 16),
		)
	}
	return res.Value, nil
}
