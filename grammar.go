package pcomb

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

var (
	ErrEmptyRuleName      = errors.New("rule name cannot be empty")
	ErrRuleAlreadyDefined = errors.New("a rule with this name is already defined")
	ErrRuleNotFound       = errors.New("no rule defined with this name")
	ErrRuleTypeMismatch   = errors.New("rule value type does not match reference")
)

///////////////////////////////////////////////////////////////////////////////
// Grammar
///////////////////////////////////////////////////////////////////////////////

// Grammar is a table of named rules. Rules can refer to each other by
// name before they are defined, which is how recursive grammars are
// written without initialization cycles.
//
// A Grammar is safe for concurrent use. Once all rules are defined, any
// number of goroutines may parse with parsers built from it.
type Grammar struct {
	name  string
	mu    sync.RWMutex
	rules map[string]rule
	refs  map[ref]struct{} // every (name, type) pair handed out by Ref
}

type rule struct {
	parser Func[any]
	typ    reflect.Type
}

type ref struct {
	name string
	typ  reflect.Type
}

type GrammarOpts struct {
	// Name is used in error messages only.
	Name string
}

// NewGrammar returns an empty Grammar.
func NewGrammar(opts GrammarOpts) *Grammar {
	return &Grammar{
		name:  opts.Name,
		rules: make(map[string]rule),
		refs:  make(map[ref]struct{}),
	}
}

// Define adds p to g under name.
func Define[T any](g *Grammar, name string, p Parser[T]) error {
	if name == "" {
		return ErrEmptyRuleName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.rules[name]; exists {
		return fmt.Errorf("%w: %s", ErrRuleAlreadyDefined, name)
	}

	g.rules[name] = rule{
		parser: Map(p, func(v T) any { return v }),
		typ:    reflect.TypeOf((*T)(nil)).Elem(),
	}
	return nil
}

// Ref returns a parser that runs the rule called name, looked up at parse
// time. The rule must be defined with value type T by then; a missing or
// mistyped rule is a bug in the grammar and panics. Call Verify after
// building the grammar to catch those early.
func Ref[T any](g *Grammar, name string) Func[T] {
	g.mu.Lock()
	g.refs[ref{name: name, typ: reflect.TypeOf((*T)(nil)).Elem()}] = struct{}{}
	g.mu.Unlock()

	return func(in Input) Result[T] {
		r, err := g.lookup(name, reflect.TypeOf((*T)(nil)).Elem())
		if err != nil {
			panic(err)
		}

		res := r.parser(in)
		if !res.Ok() {
			return propagate[T](res)
		}
		// The type was checked by lookup; a nil interface value stays zero.
		v, _ := res.Value.(T)
		return Success(res.Remainder, v)
	}
}

// Rule returns the type-erased parser defined under name.
func (g *Grammar) Rule(name string) (Parser[any], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r, ok := g.rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRuleNotFound, name)
	}
	return r.parser, nil
}

// Names returns the defined rule names in sorted order.
func (g *Grammar) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Verify checks every Ref taken so far against the defined rules and
// reports all references that are undefined or have the wrong type.
func (g *Grammar) Verify() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	refs := make([]ref, 0, len(g.refs))
	for r := range g.refs {
		refs = append(refs, r)
	}
	slices.SortFunc(refs, func(a, b ref) int {
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		return strings.Compare(a.typ.String(), b.typ.String())
	})

	var errs []error
	for _, r := range refs {
		if _, err := g.lookupLocked(r.name, r.typ); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	if g.name != "" {
		return fmt.Errorf("grammar %s: %w", g.name, errors.Join(errs...))
	}
	return errors.Join(errs...)
}

func (g *Grammar) lookup(name string, typ reflect.Type) (rule, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lookupLocked(name, typ)
}

func (g *Grammar) lookupLocked(name string, typ reflect.Type) (rule, error) {
	r, ok := g.rules[name]
	if !ok {
		return rule{}, fmt.Errorf("%w: %s", ErrRuleNotFound, name)
	}
	if r.typ != typ {
		return rule{}, fmt.Errorf("%w: %s is %s, referenced as %s", ErrRuleTypeMismatch, name, r.typ, typ)
	}
	return r, nil
}
