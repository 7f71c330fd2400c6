package tags

import (
	"fmt"
	"reflect"
	"strings"

	errs "github.com/c360studio/semstreams/errors"
)

// GeneratorContext is the generator registry consulted when canonicalizing
// generator references. The tags package only reads it.
type GeneratorContext interface {
	// Len returns the number of known generators.
	Len() int
	// Contains reports whether g is known.
	Contains(g Generator) bool
	// LookupName returns the generator registered under a display name.
	LookupName(name string) (Generator, bool)
}

// ToTag converts input into a canonical Tag.
//
//   - A Tag is returned unchanged.
//   - A Generator must be present in a non-empty ctx and becomes a
//     FromGenerator tag; otherwise ErrUnresolvedReference is returned.
//   - Text with a leading "-" is the negation of the remainder. Otherwise,
//     when ctx is non-nil the text is first matched against generator
//     display names; then surrounding quotes are stripped and the text is
//     looked up by member name in Semantics and then Subpart. Text matching
//     neither yields an *UnresolvedTagNameError.
func ToTag(input any, ctx GeneratorContext) (Tag, error) {
	switch v := input.(type) {
	case Tag:
		return v, nil
	case Generator:
		return resolveGenerator(v, ctx)
	case string:
		return parseTag(v, ctx)
	default:
		return nil, errs.WrapInvalid(
			fmt.Errorf("%w: cannot convert %T to a tag", ErrIllegalOperation, input),
			"tags", "ToTag", "convert input")
	}
}

func resolveGenerator(g Generator, ctx GeneratorContext) (Tag, error) {
	if ctx == nil || ctx.Len() == 0 {
		return nil, errs.WrapInvalid(
			fmt.Errorf("%w: %s given without a generator context", ErrUnresolvedReference, g.GeneratorName()),
			"tags", "ToTag", "resolve generator")
	}
	if !ctx.Contains(g) {
		return nil, errs.WrapInvalid(
			fmt.Errorf("%w: %s is not in the generator context", ErrUnresolvedReference, g.GeneratorName()),
			"tags", "ToTag", "resolve generator")
	}
	return FromGenerator{Generator: g}, nil
}

func parseTag(s string, ctx GeneratorContext) (Tag, error) {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		inner, err := parseTag(rest, ctx)
		if err != nil {
			return nil, err
		}
		n, err := NewNegated(inner)
		if err != nil {
			return nil, err
		}
		return n, nil
	}

	if ctx != nil {
		if g, ok := ctx.LookupName(s); ok {
			return FromGenerator{Generator: g}, nil
		}
	}

	name := strings.Trim(s, `"'`)
	if t, ok := LookupSemantics(name); ok {
		return t, nil
	}
	if t, ok := LookupSubpart(name); ok {
		return t, nil
	}

	return nil, errs.WrapInvalid(&UnresolvedTagNameError{
		Input:        name,
		Vocabularies: []string{VocabularySemantics, VocabularySubpart},
	}, "tags", "ToTag", "resolve tag name")
}

// ToString returns the canonical single-token text of t: the vocabulary
// value of an enum tag, the description of a StringTag or the display name of
// a FromGenerator's generator. Negated tags have no such form and fail with
// ErrIllegalOperation, as do Variable and SpecificObject tags.
func ToString(t Tag) (string, error) {
	switch v := t.(type) {
	case Semantics:
		return string(v), nil
	case Subpart:
		return string(v), nil
	case StringTag:
		return v.Desc, nil
	case FromGenerator:
		if v.Generator == nil {
			return "", errs.WrapInvalid(
				fmt.Errorf("%w: FromGenerator without a generator", ErrIllegalOperation),
				"tags", "ToString", "format tag")
		}
		return v.Generator.GeneratorName(), nil
	case Negated:
		return "", errs.WrapInvalid(
			fmt.Errorf("%w: negated tag %s is not allowed here", ErrIllegalOperation, v.GoString()),
			"tags", "ToString", "format tag")
	default:
		return "", errs.WrapInvalid(
			fmt.Errorf("%w: unhandled tag %#v", ErrIllegalOperation, t),
			"tags", "ToString", "format tag")
	}
}

// ToTagSet converts x into a Set. Nil yields the empty set. A Set, or a
// slice or array of any element type, yields the set of its converted
// elements. Any other value yields a singleton.
func ToTagSet(x any, ctx GeneratorContext) (Set, error) {
	switch v := x.(type) {
	case nil:
		return make(Set), nil
	case Set:
		return collect(v.Sorted(), ctx)
	case []Tag:
		return collect(v, ctx)
	case []string:
		return collect(v, ctx)
	case []Generator:
		return collect(v, ctx)
	case []any:
		return collect(v, ctx)
	}

	if rv := reflect.ValueOf(x); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make(Set, rv.Len())
		for i := range rv.Len() {
			t, err := ToTag(rv.Index(i).Interface(), ctx)
			if err != nil {
				return nil, err
			}
			out.Add(t)
		}
		return out, nil
	}

	t, err := ToTag(x, ctx)
	if err != nil {
		return nil, err
	}
	return NewSet(t), nil
}

func collect[E any](items []E, ctx GeneratorContext) (Set, error) {
	out := make(Set, len(items))
	for _, item := range items {
		t, err := ToTag(item, ctx)
		if err != nil {
			return nil, err
		}
		out.Add(t)
	}
	return out, nil
}
