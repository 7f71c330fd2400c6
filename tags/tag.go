package tags

import (
	"fmt"

	errs "github.com/c360studio/semstreams/errors"
)

// Kind identifies the concrete variant of a Tag. The order of the constants
// is the order used when sorting mixed tag sets.
type Kind int

const (
	KindString Kind = iota
	KindSemantics
	KindSubpart
	KindFromGenerator
	KindVariable
	KindSpecificObject
	KindNegated
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "StringTag"
	case KindSemantics:
		return "Semantics"
	case KindSubpart:
		return "Subpart"
	case KindFromGenerator:
		return "FromGenerator"
	case KindVariable:
		return "Variable"
	case KindSpecificObject:
		return "SpecificObject"
	case KindNegated:
		return "Negated"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Tag is an atomic predicate about a graph node. The set of implementations
// is closed to this package.
//
// Tags are comparable values: two tags are equal iff they are of the same
// kind and carry equal fields, which makes them usable as map keys.
type Tag interface {
	// Kind reports the concrete variant.
	Kind() Kind
	// Negate returns the negated form. Negating a Negated returns the
	// wrapped tag.
	Negate() Tag

	String() string
	GoString() string

	isTag()
}

// Negate returns the negated form of t. It never produces a double negative.
func Negate(t Tag) Tag {
	return t.Negate()
}

// StringTag is a free-form description not drawn from a closed vocabulary.
type StringTag struct {
	Desc string
}

func (StringTag) Kind() Kind { return KindString }
func (s StringTag) Negate() Tag { return Negated{inner: s} }
func (s StringTag) String() string { return s.Desc }
func (s StringTag) GoString() string { return fmt.Sprintf("StringTag(%q)", s.Desc) }
func (StringTag) isTag() {}

// Generator is the opaque identity of a generator or factory. FromGenerator
// equality is handle equality, so implementations must be comparable;
// pointer handles are the expected form.
type Generator interface {
	// GeneratorName is the display name used for text lookup and
	// presentation.
	GeneratorName() string
}

// FromGenerator asserts that a node was produced by a specific generator.
type FromGenerator struct {
	Generator Generator
}

func (FromGenerator) Kind() Kind { return KindFromGenerator }
func (f FromGenerator) Negate() Tag { return Negated{inner: f} }
func (FromGenerator) isTag() {}

// String returns FromGenerator(Name).
func (f FromGenerator) String() string {
	return "FromGenerator(" + f.generatorName() + ")"
}

// GoString is identical to String.
func (f FromGenerator) GoString() string {
	return f.String()
}

func (f FromGenerator) generatorName() string {
	if f.Generator == nil {
		return "<nil>"
	}
	return f.Generator.GeneratorName()
}

// Variable is a named placeholder for an unbound reference.
type Variable struct {
	Name string
}

func (Variable) Kind() Kind { return KindVariable }
func (v Variable) Negate() Tag { return Negated{inner: v} }
func (v Variable) String() string { return v.Name }
func (v Variable) GoString() string { return "Variable(" + v.Name + ")" }
func (Variable) isTag() {}

// SpecificObject references one already-materialized instance by name.
type SpecificObject struct {
	Name string
}

func (SpecificObject) Kind() Kind { return KindSpecificObject }
func (o SpecificObject) Negate() Tag { return Negated{inner: o} }
func (o SpecificObject) String() string { return "SpecificObject(" + o.Name + ")" }
func (o SpecificObject) GoString() string { return o.String() }
func (SpecificObject) isTag() {}

// Negated is the logical negation of another tag. The wrapped tag is never
// itself a Negated; use Negate or NewNegated to build one. The zero Negated
// wraps nothing and is its own negation.
type Negated struct {
	inner Tag
}

// NewNegated wraps t in a Negated. It fails with ErrDoubleNegation when t is
// already negated: callers wanting the involution should call Negate instead.
func NewNegated(t Tag) (Negated, error) {
	switch inner := t.(type) {
	case nil:
		return Negated{}, errs.WrapInvalid(ErrIllegalOperation, "tags", "NewNegated", "negate nil tag")
	case Negated:
		return Negated{}, errs.WrapFatal(ErrDoubleNegation, "tags", "NewNegated", "wrap "+inner.GoString())
	default:
		return Negated{inner: t}, nil
	}
}

// Inner returns the negated tag.
func (n Negated) Inner() Tag { return n.inner }

func (Negated) Kind() Kind { return KindNegated }
func (n Negated) Negate() Tag {
	if n.inner == nil {
		return n
	}
	return n.inner
}
func (Negated) isTag() {}

// String returns the wrapped tag's String prefixed with "-".
func (n Negated) String() string {
	if n.inner == nil {
		return "-<nil>"
	}
	return "-" + n.inner.String()
}

// GoString returns the wrapped tag's GoString prefixed with "-".
func (n Negated) GoString() string {
	if n.inner == nil {
		return "-<nil>"
	}
	return "-" + n.inner.GoString()
}
