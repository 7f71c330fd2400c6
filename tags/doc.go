// Package tags provides the tag algebra used to describe and compare facts
// about nodes in a procedural generation graph.
//
// A Tag is an atomic predicate about one node ("this node is a Kitchen",
// "this node was produced by generator G", "this node is NOT a Door"). A Set
// of tags is a conjunction of such predicates. The package offers a closed
// family of tag kinds and pure relation operators over sets:
//
//	Decompose      split a set into positive and negative parts
//	Contradiction  detect sets that cannot hold simultaneously
//	Implies        t1 is at least as specific as t2
//	Satisfies      t1 covers t2's positive demands without direct conflicts
//	Difference     residual predicate between two sets
//
// # Tag Kinds
//
//   - StringTag: free-form description
//   - Semantics, Subpart: members of the two closed vocabularies (EnumTag)
//   - FromGenerator: produced by a specific generator
//   - Negated: logical negation of another tag, never nested
//   - Variable: named unbound reference
//   - SpecificObject: reference to one materialized instance
//
// # Negation
//
// Negate is an involution. Negating a Negated returns the wrapped tag, so a
// double negative is never represented:
//
//	tags.Negate(tags.Kitchen)              // -Semantics(kitchen)
//	tags.Negate(tags.Negate(tags.Kitchen)) // Semantics(kitchen)
//
// NewNegated is the strict constructor; it refuses to wrap a Negated.
//
// # Implies vs Satisfies
//
// The two relations are intentionally different. Implies requires t1 to be
// consistent and to carry every positive and negative tag of t2. Satisfies
// only requires t1 to carry t2's positive tags and forbids direct
// positive/negative conflicts in either direction.
//
// # Canonicalization
//
// ToTag, ToTagSet and ToString translate between text, generator handles and
// canonical tags:
//
//	t, err := tags.ToTag("-Kitchen", nil) // -Semantics(kitchen)
//	s, err := tags.ToString(tags.Kitchen) // "kitchen"
//
// All values are immutable and every operation is a pure function, so the
// package is safe for concurrent use without locking.
package tags
