package pcomb

import "sync"

///////////////////////////////////////////////////////////////////////////////
// Core combinators
///////////////////////////////////////////////////////////////////////////////

// Identity wraps p without changing its behavior. It is mostly useful to
// turn an arbitrary Parser implementation into a Func.
func Identity[T any](p Parser[T]) Func[T] {
	return func(in Input) Result[T] {
		return p.Parse(in)
	}
}

// Pair runs p1 and then p2 on what p1 left over.
//
// If p1 fails, p2 is never run. If p2 fails, its failure is returned as
// is, even though p1 already consumed input: there is no rollback.
func Pair[A, B any](p1 Parser[A], p2 Parser[B]) Func[Tuple[A, B]] {
	return func(in Input) Result[Tuple[A, B]] {
		r1 := p1.Parse(in)
		if !r1.Ok() {
			return propagate[Tuple[A, B]](r1)
		}
		r2 := p2.Parse(r1.Remainder)
		if !r2.Ok() {
			return propagate[Tuple[A, B]](r2)
		}
		return Success(r2.Remainder, Tuple[A, B]{First: r1.Value, Second: r2.Value})
	}
}

// Map transforms the value of a successful parse with f. The remainder
// and any failure pass through untouched.
func Map[A, B any](p Parser[A], f func(A) B) Func[B] {
	return func(in Input) Result[B] {
		res := p.Parse(in)
		if !res.Ok() {
			return propagate[B](res)
		}
		return Success(res.Remainder, f(res.Value))
	}
}

// Left runs p1 then p2 and keeps the value of p1.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Func[A] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) A { return t.First })
}

// Right runs p1 then p2 and keeps the value of p2.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Func[B] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) B { return t.Second })
}

///////////////////////////////////////////////////////////////////////////////
// Extended combinators
///////////////////////////////////////////////////////////////////////////////

// Pred succeeds only when p succeeds and its value satisfies predicate.
// A rejected value fails at the original input.
func Pred[T any](p Parser[T], predicate func(T) bool) Func[T] {
	return func(in Input) Result[T] {
		res := p.Parse(in)
		if !res.Ok() {
			return res
		}
		if !predicate(res.Value) {
			return Failure[T](in)
		}
		return res
	}
}

// AndThen runs p and then the parser chosen by f from p's value.
// Failures propagate the same way as in Pair.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Func[B] {
	return func(in Input) Result[B] {
		res := p.Parse(in)
		if !res.Ok() {
			return propagate[B](res)
		}
		return f(res.Value).Parse(res.Remainder)
	}
}

// Either tries p1 and falls back to p2 on the same input. When both fail
// the failure is reported at the original input.
func Either[T any](p1, p2 Parser[T]) Func[T] {
	return func(in Input) Result[T] {
		if res := p1.Parse(in); res.Ok() {
			return res
		}
		if res := p2.Parse(in); res.Ok() {
			return res
		}
		return Failure[T](in)
	}
}

// ZeroOrMore applies p as many times as it matches and collects the
// values. It never fails.
func ZeroOrMore[T any](p Parser[T]) Func[[]T] {
	return func(in Input) Result[[]T] {
		values, rest := repeat(p, in)
		return Success(rest, values)
	}
}

// OneOrMore is ZeroOrMore that requires at least one match. It fails at
// the original input otherwise.
func OneOrMore[T any](p Parser[T]) Func[[]T] {
	return func(in Input) Result[[]T] {
		values, rest := repeat(p, in)
		if len(values) == 0 {
			return Failure[[]T](in)
		}
		return Success(rest, values)
	}
}

// repeat stops at the first failure or at the first match that consumed
// nothing, so it terminates whenever p does. A match that consumed
// nothing is not collected.
func repeat[T any](p Parser[T], in Input) ([]T, Input) {
	var values []T
	for {
		res := p.Parse(in)
		if !res.Ok() || res.Remainder.Offset() <= in.Offset() {
			return values, in
		}
		values = append(values, res.Value)
		in = res.Remainder
	}
}

// Lazy defers building a parser until it is first used. This is how a
// rule refers to itself, directly or through other rules.
func Lazy[T any](build func() Parser[T]) Func[T] {
	var (
		once sync.Once
		p    Parser[T]
	)
	return func(in Input) Result[T] {
		once.Do(func() { p = build() })
		return p.Parse(in)
	}
}
