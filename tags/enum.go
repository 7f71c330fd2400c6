package tags

import (
	"slices"
	"strings"
)

// Vocabulary names, reported by EnumTag.Vocabulary and attached to
// UnresolvedTagNameError.
const (
	VocabularySemantics = "Semantics"
	VocabularySubpart   = "Subpart"
)

// EnumTag is a tag whose value is drawn from one of the closed vocabularies.
// Members are totally ordered by Name.
type EnumTag interface {
	Tag
	// Vocabulary names the owning vocabulary.
	Vocabulary() string
	// Name is the member name, e.g. "Kitchen".
	Name() string
	// Value is the canonical vocabulary string, e.g. "kitchen".
	Value() string
}

type member[T ~string] struct {
	name  string
	value T
}

// vocabulary indexes a closed enumeration. It is built once during package
// initialization and only read afterwards.
type vocabulary[T ~string] struct {
	name    string
	byName  map[string]T
	nameOf  map[T]string
	ordered []T
}

// newVocabulary indexes members in declaration order. A member whose value
// repeats an earlier one is a name alias: it resolves by name but is not
// enumerated, and the earlier name stays canonical.
func newVocabulary[T ~string](name string, members []member[T]) *vocabulary[T] {
	v := &vocabulary[T]{
		name:   name,
		byName: make(map[string]T, len(members)),
		nameOf: make(map[T]string, len(members)),
	}
	for _, m := range members {
		v.byName[m.name] = m.value
		if _, seen := v.nameOf[m.value]; seen {
			continue
		}
		v.nameOf[m.value] = m.name
		v.ordered = append(v.ordered, m.value)
	}
	slices.SortFunc(v.ordered, func(a, b T) int {
		return strings.Compare(v.nameOf[a], v.nameOf[b])
	})
	return v
}

func (v *vocabulary[T]) lookup(name string) (T, bool) {
	t, ok := v.byName[name]
	return t, ok
}

func (v *vocabulary[T]) memberName(t T) string {
	return v.nameOf[t]
}

func (v *vocabulary[T]) valid(t T) bool {
	_, ok := v.nameOf[t]
	return ok
}

func (v *vocabulary[T]) values() []T {
	out := make([]T, len(v.ordered))
	copy(out, v.ordered)
	return out
}

// sortedByName returns the members of set sorted by member name.
func sortedByName[T ~string](v *vocabulary[T], set []T) []T {
	out := make([]T, len(set))
	copy(out, set)
	slices.SortFunc(out, func(a, b T) int {
		return strings.Compare(v.memberName(a), v.memberName(b))
	})
	return out
}
