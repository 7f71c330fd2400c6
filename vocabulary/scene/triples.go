package scene

import (
	"fmt"
	"time"

	errs "github.com/c360studio/semstreams/errors"
	"github.com/c360studio/semstreams/message"

	"github.com/c360studio/semtags/tags"
)

// Source identifies triples produced by this package.
const Source = "semtags"

// Fact returns the predicate and object encoding a single tag.
func Fact(t tags.Tag) (predicate, object string, err error) {
	negated := false
	if n, ok := t.(tags.Negated); ok {
		negated = true
		t = n.Inner()
	}

	var pos, neg string
	switch v := t.(type) {
	case tags.Semantics:
		pos, neg, object = TagSemantics, NotSemantics, string(v)
	case tags.Subpart:
		pos, neg, object = TagSubpart, NotSubpart, string(v)
	case tags.FromGenerator:
		if v.Generator == nil {
			return "", "", errs.WrapInvalid(
				fmt.Errorf("%w: FromGenerator without a generator", tags.ErrIllegalOperation),
				"scene", "Fact", "encode tag")
		}
		pos, neg, object = TagGenerator, NotGenerator, v.Generator.GeneratorName()
	case tags.StringTag:
		pos, neg, object = TagDescription, NotDescription, v.Desc
	case tags.Variable:
		pos, neg, object = TagVariable, NotVariable, v.Name
	case tags.SpecificObject:
		pos, neg, object = TagObject, NotObject, v.Name
	default:
		return "", "", errs.WrapInvalid(
			fmt.Errorf("%w: unhandled tag %#v", tags.ErrIllegalOperation, t),
			"scene", "Fact", "encode tag")
	}

	if negated {
		return neg, object, nil
	}
	return pos, object, nil
}

// Triples encodes a node's tag set, one triple per tag, in the set's sorted
// order.
func Triples(nodeID string, s tags.Set, at time.Time) ([]message.Triple, error) {
	sorted := s.Sorted()
	out := make([]message.Triple, 0, len(sorted))
	for _, t := range sorted {
		predicate, object, err := Fact(t)
		if err != nil {
			return nil, err
		}
		out = append(out, message.Triple{
			Subject:    nodeID,
			Predicate:  predicate,
			Object:     object,
			Source:     Source,
			Timestamp:  at,
			Confidence: 1.0,
		})
	}
	return out, nil
}

// TagsFromTriples decodes the tag set of subject from triples. Triples about
// other subjects or with non-scene predicates are ignored. Generator names
// resolve through ctx.
func TagsFromTriples(subject string, triples []message.Triple, ctx tags.GeneratorContext) (tags.Set, error) {
	out := make(tags.Set)
	for _, triple := range triples {
		if triple.Subject != subject {
			continue
		}
		object, ok := triple.Object.(string)
		if !ok {
			continue
		}

		t, negated, err := decode(triple.Predicate, object, ctx)
		if err != nil {
			return nil, err
		}
		if t == nil {
			continue
		}
		if negated {
			t = tags.Negate(t)
		}
		out.Add(t)
	}
	return out, nil
}

func decode(predicate, object string, ctx tags.GeneratorContext) (tags.Tag, bool, error) {
	switch predicate {
	case TagSemantics, NotSemantics:
		s := tags.Semantics(object)
		if !s.Valid() {
			return nil, false, unknownValue(object, tags.VocabularySemantics)
		}
		return s, predicate == NotSemantics, nil
	case TagSubpart, NotSubpart:
		s := tags.Subpart(object)
		if !s.Valid() {
			return nil, false, unknownValue(object, tags.VocabularySubpart)
		}
		return s, predicate == NotSubpart, nil
	case TagGenerator, NotGenerator:
		var g tags.Generator
		found := false
		if ctx != nil {
			g, found = ctx.LookupName(object)
		}
		if !found {
			return nil, false, errs.WrapInvalid(
				fmt.Errorf("%w: generator %q", tags.ErrUnresolvedReference, object),
				"scene", "TagsFromTriples", "resolve generator")
		}
		return tags.FromGenerator{Generator: g}, predicate == NotGenerator, nil
	case TagDescription, NotDescription:
		return tags.StringTag{Desc: object}, predicate == NotDescription, nil
	case TagVariable, NotVariable:
		return tags.Variable{Name: object}, predicate == NotVariable, nil
	case TagObject, NotObject:
		return tags.SpecificObject{Name: object}, predicate == NotObject, nil
	default:
		return nil, false, nil
	}
}

func unknownValue(value, vocab string) error {
	return errs.WrapInvalid(&tags.UnresolvedTagNameError{
		Input:        value,
		Vocabularies: []string{vocab},
	}, "scene", "TagsFromTriples", "decode value")
}
