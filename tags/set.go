package tags

import (
	"cmp"
	"slices"
	"strings"
)

// Set is an unordered, unique-by-value collection of tags. It represents the
// conjunction of its members as a predicate about one node.
//
// Set operations never modify their operands; they return new sets. A nil
// Set is a valid empty set for every read operation.
type Set map[Tag]struct{}

// NewSet returns a set holding ts. Nil tags are skipped.
func NewSet(ts ...Tag) Set {
	s := make(Set, len(ts))
	for _, t := range ts {
		s.Add(t)
	}
	return s
}

// Add inserts t. It is meant for sets the caller is still constructing.
// Nil tags are skipped.
func (s Set) Add(t Tag) {
	if t == nil {
		return
	}
	s[t] = struct{}{}
}

// Has reports whether t is a member.
func (s Set) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Clone returns a copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// Union returns s ∪ other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Intersect returns s ∩ other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for t := range small {
		if large.Has(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// Minus returns s − other.
func (s Set) Minus(other Set) Set {
	out := make(Set, len(s))
	for t := range s {
		if !other.Has(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// SupersetOf reports whether s ⊇ other.
func (s Set) SupersetOf(other Set) bool {
	if len(other) > len(s) {
		return false
	}
	for t := range other {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// Disjoint reports whether s and other share no member.
func (s Set) Disjoint(other Set) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for t := range small {
		if large.Has(t) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other hold the same members.
func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.SupersetOf(other)
}

// Sorted returns the members in deterministic order: by kind, then by
// member name, description or generator name. Negated tags sort last,
// ordered by the tag they wrap.
func (s Set) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.SortFunc(out, CompareTags)
	return out
}

// String renders the sorted members, e.g. {Semantics(kitchen), -Semantics(door)}.
func (s Set) String() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, t := range sorted {
		parts[i] = t.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// CompareTags is the ordering used by Set.Sorted.
func CompareTags(a, b Tag) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	if na, ok := a.(Negated); ok {
		nb := b.(Negated)
		switch {
		case na.inner == nil && nb.inner == nil:
			return 0
		case na.inner == nil:
			return -1
		case nb.inner == nil:
			return 1
		}
		return CompareTags(na.inner, nb.inner)
	}
	return cmp.Compare(sortKey(a), sortKey(b))
}

func sortKey(t Tag) string {
	switch v := t.(type) {
	case Semantics:
		return v.Name() + "\x00" + string(v)
	case Subpart:
		return v.Name() + "\x00" + string(v)
	case StringTag:
		return v.Desc
	case FromGenerator:
		return v.generatorName()
	case Variable:
		return v.Name
	case SpecificObject:
		return v.Name
	default:
		return t.String()
	}
}
