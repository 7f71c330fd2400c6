package tags_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semtags/tags"
)

func TestDecompose(t *testing.T) {
	pos, neg := tags.Decompose(nil)
	assert.Equal(t, 0, pos.Len())
	assert.Equal(t, 0, neg.Len())

	pos, neg = tags.Decompose(tags.NewSet(
		tags.Kitchen,
		tags.SubpartTop,
		tags.Negate(tags.Door),
		tags.Negate(tags.Variable{Name: "x"}),
	))
	assert.True(t, pos.Equal(tags.NewSet(tags.Kitchen, tags.SubpartTop)))
	assert.True(t, neg.Equal(tags.NewSet(tags.Door, tags.Variable{Name: "x"})))
}

func TestContradiction(t *testing.T) {
	genA := &fakeGenerator{name: "A"}
	genB := &fakeGenerator{name: "B"}

	cases := []struct {
		name string
		set  tags.Set
		want bool
	}{
		{"empty", tags.NewSet(), false},
		{"nil", nil, false},
		{"single negated", tags.NewSet(tags.Negate(tags.Kitchen)), false},
		{"tag and its negation", tags.NewSet(tags.Kitchen, tags.Negate(tags.Kitchen)), true},
		{"string tag and its negation", tags.NewSet(tags.StringTag{Desc: "x"}, tags.Negate(tags.StringTag{Desc: "x"})), true},
		{"two generators", tags.NewSet(tags.FromGenerator{Generator: genA}, tags.FromGenerator{Generator: genB}), true},
		{"one generator", tags.NewSet(tags.FromGenerator{Generator: genA}, tags.Kitchen), false},
		{"one generator and a negated one", tags.NewSet(tags.FromGenerator{Generator: genA}, tags.Negate(tags.FromGenerator{Generator: genB})), false},
		{"variable and specific object", tags.NewSet(tags.Variable{Name: "x"}, tags.SpecificObject{Name: "y"}), true},
		{"two variables", tags.NewSet(tags.Variable{Name: "x"}, tags.Variable{Name: "y"}), true},
		{"variable and negated specific object", tags.NewSet(tags.Variable{Name: "x"}, tags.Negate(tags.SpecificObject{Name: "y"})), true},
		{"one variable", tags.NewSet(tags.Variable{Name: "x"}, tags.Bed), false},
		{"unrelated tags", tags.NewSet(tags.Kitchen, tags.Negate(tags.Door), tags.SubpartTop), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tags.Contradiction(tc.set))
		})
	}
}

func TestImplies(t *testing.T) {
	a, b := tags.Tag(tags.Kitchen), tags.Tag(tags.SubpartTop)

	assert.True(t, tags.Implies(tags.NewSet(a), tags.NewSet(a)))
	assert.True(t, tags.Implies(tags.NewSet(a, b), tags.NewSet(a)))
	assert.False(t, tags.Implies(tags.NewSet(a), tags.NewSet(a, b)))
	assert.True(t, tags.Implies(tags.NewSet(a), tags.NewSet()))

	// negative requirements must be carried
	assert.False(t, tags.Implies(tags.NewSet(a), tags.NewSet(tags.Negate(tags.Door))))
	assert.True(t, tags.Implies(tags.NewSet(a, tags.Negate(tags.Door)), tags.NewSet(tags.Negate(tags.Door))))

	// a contradictory t1 implies nothing, even itself
	bad := tags.NewSet(a, tags.Negate(a))
	assert.False(t, tags.Implies(bad, tags.NewSet()))
	assert.False(t, tags.Implies(bad, bad))
}

func TestImpliesReflexive(t *testing.T) {
	gen := &fakeGenerator{name: "G"}
	sets := []tags.Set{
		tags.NewSet(),
		tags.NewSet(tags.Kitchen),
		tags.NewSet(tags.Kitchen, tags.Negate(tags.Door), tags.FromGenerator{Generator: gen}),
		tags.NewSet(tags.Variable{Name: "v"}, tags.SubpartInterior),
	}
	for _, s := range sets {
		require.False(t, tags.Contradiction(s))
		assert.True(t, tags.Implies(s, s), "%s should imply itself", s)
	}
}

func TestSatisfies(t *testing.T) {
	a, b := tags.Tag(tags.Kitchen), tags.Tag(tags.Bed)

	cases := []struct {
		name   string
		t1, t2 tags.Set
		want   bool
	}{
		{"anything satisfies empty", tags.NewSet(a), tags.NewSet(), true},
		{"direct negation", tags.NewSet(a), tags.NewSet(tags.Negate(a)), false},
		{"reverse negation", tags.NewSet(tags.Negate(a)), tags.NewSet(a), false},
		{"missing positive", tags.NewSet(a), tags.NewSet(a, b), false},
		{"superset", tags.NewSet(a, b), tags.NewSet(a), true},
		// satisfies does not require t1 to carry t2's negatives
		{"unrelated negative in t2", tags.NewSet(a), tags.NewSet(a, tags.Negate(tags.Door)), true},
		{"extra negative in t1", tags.NewSet(a, tags.Negate(tags.Door)), tags.NewSet(a), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tags.Satisfies(tc.t1, tc.t2))
		})
	}
}

func TestImpliesAndSatisfiesDiffer(t *testing.T) {
	t1 := tags.NewSet(tags.Kitchen)
	t2 := tags.NewSet(tags.Kitchen, tags.Negate(tags.Door))

	assert.False(t, tags.Implies(t1, t2))
	assert.True(t, tags.Satisfies(t1, t2))
}

func TestDifference(t *testing.T) {
	cases := []struct {
		name   string
		t1, t2 tags.Set
		want   tags.Set
	}{
		{
			name: "t1 adds a positive",
			t1:   tags.NewSet(tags.Kitchen, tags.Bed),
			t2:   tags.NewSet(tags.Kitchen),
			want: tags.NewSet(tags.Kitchen, tags.Bed),
		},
		{
			name: "t2 demands more than t1",
			t1:   tags.NewSet(tags.Kitchen),
			t2:   tags.NewSet(tags.Kitchen, tags.Bed),
			want: tags.NewSet(tags.Kitchen, tags.Negate(tags.Bed)),
		},
		{
			name: "t2 negates what t1 does not mention",
			t1:   tags.NewSet(tags.Kitchen),
			t2:   tags.NewSet(tags.Negate(tags.Door)),
			want: tags.NewSet(tags.Kitchen, tags.Door),
		},
		{
			name: "shared negative stays negative",
			t1:   tags.NewSet(tags.Negate(tags.Door)),
			t2:   tags.NewSet(tags.Negate(tags.Door), tags.Bed),
			want: tags.NewSet(tags.Negate(tags.Door), tags.Negate(tags.Bed)),
		},
		{
			name: "both empty",
			t1:   tags.NewSet(),
			t2:   tags.NewSet(),
			want: tags.NewSet(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tags.Difference(tc.t1, tc.t2)
			if diff := cmp.Diff(sortedStrings(tc.want), sortedStrings(got)); diff != "" {
				t.Errorf("Difference() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDifferenceOfEqualSetsIsContradictory(t *testing.T) {
	gen := &fakeGenerator{name: "G"}
	sets := []tags.Set{
		tags.NewSet(tags.Kitchen),
		tags.NewSet(tags.Kitchen, tags.Negate(tags.Door)),
		tags.NewSet(tags.FromGenerator{Generator: gen}, tags.SubpartTop, tags.Variable{Name: "x"}),
	}
	for _, s := range sets {
		got := tags.Difference(s, s.Clone())
		assert.True(t, tags.Contradiction(got), "Difference(%s, %s) = %s", s, s, got)
	}
}

func TestDifferenceDoesNotModifyOperands(t *testing.T) {
	t1 := tags.NewSet(tags.Kitchen)
	t2 := tags.NewSet(tags.Bed, tags.Negate(tags.Door))

	_ = tags.Difference(t1, t2)

	assert.True(t, t1.Equal(tags.NewSet(tags.Kitchen)))
	assert.True(t, t2.Equal(tags.NewSet(tags.Bed, tags.Negate(tags.Door))))
}

func TestRelationsEndToEnd(t *testing.T) {
	counter := &fakeGenerator{name: "CounterGen"}
	t1 := tags.NewSet(tags.Kitchen, tags.FromGenerator{Generator: counter})
	t2 := tags.NewSet(tags.Kitchen)

	assert.True(t, tags.Implies(t1, t2))
	assert.False(t, tags.Implies(t2, t1))
	assert.True(t, tags.Satisfies(t1, t2))
	assert.False(t, tags.Satisfies(t2, t1))
}

func TestSetOperations(t *testing.T) {
	a := tags.NewSet(tags.Kitchen, tags.Bed)
	b := tags.NewSet(tags.Bed, tags.Door)

	assert.True(t, a.Union(b).Equal(tags.NewSet(tags.Kitchen, tags.Bed, tags.Door)))
	assert.True(t, a.Intersect(b).Equal(tags.NewSet(tags.Bed)))
	assert.True(t, a.Minus(b).Equal(tags.NewSet(tags.Kitchen)))
	assert.False(t, a.Disjoint(b))
	assert.True(t, a.Disjoint(tags.NewSet(tags.Door)))
	assert.True(t, a.SupersetOf(tags.NewSet(tags.Bed)))
	assert.False(t, a.SupersetOf(b))

	var empty tags.Set
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Has(tags.Kitchen))
	assert.True(t, a.SupersetOf(empty))
	assert.Equal(t, 2, tags.NewSet(tags.Kitchen, nil, tags.Bed).Len())
}

func TestSetSorted(t *testing.T) {
	gen := &fakeGenerator{name: "Zeta"}
	s := tags.NewSet(
		tags.Negate(tags.Bed),
		tags.SubpartTop,
		tags.Kitchen,
		tags.FromGenerator{Generator: gen},
		tags.Bathroom,
		tags.StringTag{Desc: "loft"},
		tags.Negate(tags.Bathroom),
	)

	want := []string{
		`StringTag("loft")`,
		"Semantics.Bathroom",
		"Semantics.Kitchen",
		"Subpart.Top",
		"FromGenerator(Zeta)",
		"-Semantics.Bathroom",
		"-Semantics.Bed",
	}
	if diff := cmp.Diff(want, sortedStrings(s)); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "{loft, Semantics(bathroom), Semantics(kitchen), Subpart(top), FromGenerator(Zeta), -Semantics(bathroom), -Semantics(bed)}", s.String())
}
