package pcomb

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

///////////////////////////////////////////////////////////////////////////////
// Primitive parsers
///////////////////////////////////////////////////////////////////////////////

var (
	// TakeFirstChar consumes one rune using its full UTF-8 width.
	// An invalid byte is returned as utf8.RuneError and consumes one byte.
	TakeFirstChar = Func[rune](takeFirstChar)

	// Identifier matches an alphabetic rune followed by any run of
	// alphabetic runes, numbers and dashes, e.g. "name", "n1ame-", "na-2me-".
	Identifier = Func[string](identifier)
)

func takeFirstChar(in Input) Result[rune] {
	r, width := in.peekRune()
	if width == 0 {
		return Failure[rune](in)
	}
	return Success(in.advance(width), r)
}

// MatchLiteral returns a parser that gates on expected being an exact,
// case-sensitive prefix of the input. The matched text is discarded.
func MatchLiteral(expected string) Func[Unit] {
	return func(in Input) Result[Unit] {
		if !strings.HasPrefix(in.String(), expected) {
			return Failure[Unit](in)
		}
		return Success(in.advance(len(expected)), Unit{})
	}
}

func identifier(in Input) Result[string] {
	first, width := in.peekRune()
	if width == 0 || !isAlphabetic(first) {
		return Failure[string](in)
	}

	rest := in.String()
	end := width
	for end < len(rest) {
		r, w := utf8.DecodeRuneInString(rest[end:])
		if !isIdentifierRune(r) {
			break
		}
		end += w
	}

	return Success(in.advance(end), rest[:end])
}

// isAlphabetic reports whether r has the Unicode Alphabetic property.
func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

func isIdentifierRune(r rune) bool {
	return isAlphabetic(r) || unicode.IsNumber(r) || r == '-'
}

// TakeWhile consumes the longest run of runes satisfying pred. It always
// succeeds, possibly with an empty string and the input untouched.
func TakeWhile(pred func(rune) bool) Func[string] {
	return func(in Input) Result[string] {
		rest := in.String()
		end := 0
		for end < len(rest) {
			r, w := utf8.DecodeRuneInString(rest[end:])
			if !pred(r) {
				break
			}
			end += w
		}
		return Success(in.advance(end), rest[:end])
	}
}

///////////////////////////////////////////////////////////////////////////////
// Whitespace and strings
///////////////////////////////////////////////////////////////////////////////

var (
	WhitespaceChar = Pred(TakeFirstChar, unicode.IsSpace)

	Space0 = ZeroOrMore(WhitespaceChar)
	Space1 = OneOrMore(WhitespaceChar)

	// QuotedString matches "..." and yields the text between the quotes.
	// Escapes are not interpreted.
	QuotedString = Map(
		Right(
			MatchLiteral(`"`),
			Left(
				ZeroOrMore(Pred(TakeFirstChar, func(r rune) bool { return r != '"' })),
				MatchLiteral(`"`),
			),
		),
		func(runes []rune) string { return string(runes) },
	)
)

// WhitespaceWrap runs p with optional whitespace on either side.
func WhitespaceWrap[T any](p Parser[T]) Func[T] {
	return Right(Space0, Left(p, Space0))
}
