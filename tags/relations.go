package tags

// Decompose splits s into the tags asserted present (positive) and the tags
// asserted absent (negative). Each Negated member contributes its wrapped
// tag to negative; every other member contributes itself to positive.
func Decompose(s Set) (positive, negative Set) {
	positive, negative = make(Set), make(Set)
	for t := range s {
		if n, ok := t.(Negated); ok {
			negative.Add(n.inner)
			continue
		}
		positive.Add(t)
	}
	return positive, negative
}

// Contradiction reports whether s cannot hold. A set is contradictory when
//   - some tag is asserted both present and absent,
//   - more than one FromGenerator tag is asserted present, or
//   - more than one Variable or SpecificObject tag appears, counting both
//     polarities, since each binds the node's identity.
//
// The empty set is never contradictory.
func Contradiction(s Set) bool {
	pos, neg := Decompose(s)

	if !pos.Disjoint(neg) {
		return true
	}

	generators := 0
	for t := range pos {
		if t.Kind() == KindFromGenerator {
			generators++
		}
	}
	if generators > 1 {
		return true
	}

	bindings := 0
	for t := range s {
		if isIdentityBinding(t) {
			bindings++
		}
	}
	return bindings > 1
}

func isIdentityBinding(t Tag) bool {
	if n, ok := t.(Negated); ok {
		t = n.inner
	}
	switch t.(type) {
	case Variable, SpecificObject:
		return true
	default:
		return false
	}
}

// Implies reports whether t1 is at least as specific as t2: t1 is consistent
// and carries every positive and every negative tag of t2. The consistency of
// t2 is irrelevant.
func Implies(t1, t2 Set) bool {
	p1, n1 := Decompose(t1)
	p2, n2 := Decompose(t2)

	return !Contradiction(t1) && p1.SupersetOf(p2) && n1.SupersetOf(n2)
}

// Satisfies reports whether t1 carries every positive tag of t2 without a
// direct conflict: nothing t1 negates is demanded by t2, and nothing t2
// negates is asserted by t1.
//
// Unlike Implies it does not require t1 to carry t2's negative tags, nor t1
// to be consistent.
func Satisfies(t1, t2 Set) bool {
	p1, n1 := Decompose(t1)
	p2, n2 := Decompose(t2)

	return p1.SupersetOf(p2) && n1.Disjoint(p2) && n2.Disjoint(p1)
}

// Difference returns the residual predicate describing what must hold in
// addition to t2 to reach t1:
//
//	positive = p1 ∪ (n2 − n1)
//	negative = n1 ∪ (p2 − p1)
//
// When t1 and t2 are equal and non-empty there is no residual, and the result
// is contradictory: every tag of t1 is asserted both directly and negated.
// Callers must check the result with Contradiction and treat a contradictory
// difference as "no meaningful difference", never as a usable predicate.
func Difference(t1, t2 Set) Set {
	p1, n1 := Decompose(t1)
	if t1.Len() > 0 && t1.Equal(t2) {
		return bothPolarities(p1.Union(n1))
	}
	p2, n2 := Decompose(t2)

	pos := p1.Union(n2.Minus(n1))
	neg := n1.Union(p2.Minus(p1))

	out := pos.Clone()
	for t := range neg {
		out.Add(t.Negate())
	}
	return out
}

// bothPolarities asserts every tag of s and its negation.
func bothPolarities(s Set) Set {
	out := make(Set, 2*len(s))
	for t := range s {
		out.Add(t)
		out.Add(t.Negate())
	}
	return out
}
