// Package pcomb (Parser COMBinators) provides a small, generic foundation
// for building parsers out of functions.
//
// A parser is anything implementing [Parser]: given an [Input], it either
// succeeds with a value and the remaining input, or fails and reports the
// position where it stopped. Any function with the shape
// func(Input) Result[T] becomes a Parser by converting it to [Func].
//
// The package provides the following primitives:
//   - TakeFirstChar: one rune, using its full UTF-8 width.
//   - MatchLiteral: a fixed string, value discarded.
//   - Identifier: a letter followed by letters, numbers and dashes.
//   - TakeWhile, WhitespaceChar, QuotedString.
//   - UUID and JSONValue for embedded values.
//
// and the following combinators:
//   - Pair: run two parsers in sequence, keep both values.
//   - Map: transform the value of a successful parse.
//   - Left / Right: run two parsers, keep one value. Both are built from
//     Pair and Map.
//   - Identity: wrap a parser without changing it.
//   - Pred, AndThen, Either, ZeroOrMore, OneOrMore, Lazy, Trace.
//
// Every combinator returns a Func, so its output can be fed straight into
// another combinator:
//
//	tagOpener := pcomb.Right(pcomb.MatchLiteral("<"), pcomb.Identifier)
//	name, rest, err := pcomb.Run(tagOpener, "<hello/>")
//	// name == "hello", rest == "/>"
//
// # Failure
//
// Not matching is a normal Result, not an error and never a panic. A
// combinator whose sub-parser fails returns that failure position
// unchanged; there is no rollback inside Pair. Either, ZeroOrMore and
// OneOrMore are the only combinators that try again, and when they give
// up they report the input they started with. Run and RunAll turn a
// failed Result into a *MatchError wrapping ErrNoMatch.
//
// # Concurrency
//
// Parsers hold no state between calls and may be shared between
// goroutines. The input is a read-only view into a string owned by the
// caller.
//
// # Grammars
//
// Recursive or larger grammars can name their rules in a [Grammar] and
// refer to them with [Ref] before they are defined. [Grammar.Verify]
// reports references that are still undefined.
package pcomb
