package pcomb

///////////////////////////////////////////////////////////////////////////////
// Result
///////////////////////////////////////////////////////////////////////////////

// Result is the outcome of a single parse step.
//
// On success, Remainder is the unconsumed input after the match and Value
// holds the parsed value. On failure, Value is the zero value and
// Remainder is the exact position where matching could not proceed.
type Result[T any] struct {
	Remainder Input
	Value     T
	ok        bool
}

// Unit is the value of parsers that only gate on input, such as
// MatchLiteral.
type Unit struct{}

// Tuple holds the values of two parsers run in sequence.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Success builds a successful Result.
func Success[T any](rest Input, value T) Result[T] {
	return Result[T]{Remainder: rest, Value: value, ok: true}
}

// Failure builds a failed Result positioned at at.
func Failure[T any](at Input) Result[T] {
	return Result[T]{Remainder: at}
}

// Ok reports whether the parse succeeded.
func (r Result[T]) Ok() bool {
	return r.ok
}

// Err returns nil on success and a *MatchError describing the failure
// position otherwise.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &MatchError{At: r.Remainder}
}

// propagate re-types a failed Result without touching its position.
func propagate[B, A any](r Result[A]) Result[B] {
	return Failure[B](r.Remainder)
}
