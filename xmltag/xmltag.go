// Package xmltag is a small grammar for self-closing XML-like tags, built
// entirely from pcomb primitives and combinators:
//
//	<div class="float" id="main"/>
//
// Only identifiers, double-quoted attribute values and the "/>"
// terminator are understood. Namespaces, entities, CDATA and comments are
// not supported, and nested elements are not parsed.
package xmltag

import (
	"fmt"

	"github.com/SimonDaKappa/go-pcomb"
)

// Element is a parsed tag. Attributes keep their source order and
// duplicate names are not rejected.
type Element struct {
	Name       string
	Attributes []Attribute
	Children   []Element
}

type Attribute struct {
	Name  string
	Value string
}

var (
	// TagOpener matches "<" followed by the tag name.
	TagOpener = pcomb.Right(pcomb.MatchLiteral("<"), pcomb.Identifier)

	// AttributePair matches name="value".
	AttributePair = pcomb.Map(
		pcomb.Pair(
			pcomb.Identifier,
			pcomb.Right(pcomb.MatchLiteral("="), pcomb.QuotedString),
		),
		func(t pcomb.Tuple[string, string]) Attribute {
			return Attribute{Name: t.First, Value: t.Second}
		},
	)

	// Attributes matches any number of whitespace-separated attribute pairs.
	Attributes = pcomb.ZeroOrMore(pcomb.Right(pcomb.Space1, AttributePair))

	// ElementStart matches the tag name and its attributes.
	ElementStart = pcomb.Pair(TagOpener, Attributes)

	// SingleElement matches a complete self-closing tag. Whitespace is
	// allowed before the closing "/>".
	SingleElement = pcomb.Map(
		pcomb.Left(ElementStart, pcomb.Right(pcomb.Space0, pcomb.MatchLiteral("/>"))),
		func(t pcomb.Tuple[string, []Attribute]) Element {
			return Element{Name: t.First, Attributes: t.Second}
		},
	)

	document = pcomb.WhitespaceWrap(SingleElement)
)

// Parse parses s as a single self-closing element, optionally surrounded
// by whitespace. Anything else left over is an error.
func Parse(s string) (Element, error) {
	el, err := pcomb.RunAll(document, s)
	if err != nil {
		return Element{}, fmt.Errorf("parse element: %w", err)
	}
	return el, nil
}

// Attr returns the value of the first attribute called name.
func (e Element) Attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
