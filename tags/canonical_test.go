package tags_test

import (
	"errors"
	"testing"

	errs "github.com/c360studio/semstreams/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semtags/tags"
)

func TestToTag(t *testing.T) {
	cases := []struct {
		input string
		want  tags.Tag
	}{
		{"Kitchen", tags.Kitchen},
		{"-Kitchen", tags.Negate(tags.Kitchen)},
		{`"Bedroom"`, tags.Bedroom},
		{`"Kitchen"`, tags.Kitchen},
		{"'Door'", tags.Door},
		{"'Bed'", tags.Bed},
		{`-"Door"`, tags.Negate(tags.Door)},
		{"Top", tags.SubpartTop},
		{"-SupportSurface", tags.Negate(tags.SubpartSupportSurface)},
		{"AccessSit", tags.AccessStandingNear},
		{"New", tags.NewNode},
		{"Exterior", tags.Exterior},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := tags.ToTag(tc.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToTagQuotedNegationIsAName(t *testing.T) {
	// Quotes are stripped after the negation prefix is checked, so a
	// quoted "-Kitchen" is looked up as the literal name -Kitchen.
	for _, input := range []string{`"-Kitchen"`, "'-Kitchen'"} {
		_, err := tags.ToTag(input, nil)
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, tags.ErrUnresolvedTagName), input)

		var nameErr *tags.UnresolvedTagNameError
		require.True(t, errors.As(err, &nameErr))
		assert.Equal(t, "-Kitchen", nameErr.Input)
	}
}

func TestToTagNegationMatchesNegate(t *testing.T) {
	kitchen, err := tags.ToTag("Kitchen", nil)
	require.NoError(t, err)
	negKitchen, err := tags.ToTag("-Kitchen", nil)
	require.NoError(t, err)

	assert.Equal(t, tags.Negate(kitchen), negKitchen)
}

func TestToTagErrors(t *testing.T) {
	_, err := tags.ToTag("not_a_real_tag", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tags.ErrUnresolvedTagName))
	assert.True(t, errs.IsInvalid(err))

	var nameErr *tags.UnresolvedTagNameError
	require.True(t, errors.As(err, &nameErr))
	assert.Equal(t, "not_a_real_tag", nameErr.Input)
	assert.Equal(t, []string{tags.VocabularySemantics, tags.VocabularySubpart}, nameErr.Vocabularies)

	// values are not names
	_, err = tags.ToTag("kitchen", nil)
	assert.True(t, errors.Is(err, tags.ErrUnresolvedTagName))

	_, err = tags.ToTag("--Kitchen", nil)
	assert.True(t, errors.Is(err, tags.ErrDoubleNegation))

	_, err = tags.ToTag(42, nil)
	assert.True(t, errors.Is(err, tags.ErrIllegalOperation))
}

func TestToTagPassesTagsThrough(t *testing.T) {
	in := tags.Negate(tags.StringTag{Desc: "anything"})
	got, err := tags.ToTag(in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestToTagGenerators(t *testing.T) {
	counter := &fakeGenerator{name: "CounterGen"}
	stranger := &fakeGenerator{name: "Stranger"}
	ctx := newFakeContext(counter)

	got, err := tags.ToTag(counter, ctx)
	require.NoError(t, err)
	assert.Equal(t, tags.FromGenerator{Generator: counter}, got)

	got, err = tags.ToTag("CounterGen", ctx)
	require.NoError(t, err)
	assert.Equal(t, tags.FromGenerator{Generator: counter}, got)

	got, err = tags.ToTag("-CounterGen", ctx)
	require.NoError(t, err)
	assert.Equal(t, tags.Negate(tags.FromGenerator{Generator: counter}), got)

	// vocabulary lookup still applies with a context
	got, err = tags.ToTag("Kitchen", ctx)
	require.NoError(t, err)
	assert.Equal(t, tags.Tag(tags.Kitchen), got)

	_, err = tags.ToTag(stranger, ctx)
	assert.True(t, errors.Is(err, tags.ErrUnresolvedReference))

	_, err = tags.ToTag(counter, nil)
	assert.True(t, errors.Is(err, tags.ErrUnresolvedReference))

	_, err = tags.ToTag(counter, newFakeContext())
	assert.True(t, errors.Is(err, tags.ErrUnresolvedReference))

	_, err = tags.ToTag("CounterGen", nil)
	assert.True(t, errors.Is(err, tags.ErrUnresolvedTagName))
}

func TestToString(t *testing.T) {
	gen := &fakeGenerator{name: "CounterGen"}

	kitchen, err := tags.ToTag("Kitchen", nil)
	require.NoError(t, err)
	s, err := tags.ToString(kitchen)
	require.NoError(t, err)
	assert.Equal(t, "kitchen", s)

	cases := []struct {
		tag  tags.Tag
		want string
	}{
		{tags.SubpartSupportSurface, "support"},
		{tags.Seating, "seatng"},
		{tags.StringTag{Desc: "cozy corner"}, "cozy corner"},
		{tags.FromGenerator{Generator: gen}, "CounterGen"},
	}
	for _, tc := range cases {
		got, err := tags.ToString(tc.tag)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []tags.Tag{
		tags.Negate(kitchen),
		tags.Variable{Name: "x"},
		tags.SpecificObject{Name: "y"},
		tags.FromGenerator{},
		nil,
	} {
		_, err := tags.ToString(bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, tags.ErrIllegalOperation), "ToString(%v)", bad)
	}
}

func TestToTagSet(t *testing.T) {
	got, err := tags.ToTagSet([]string{"Kitchen", "-Bedroom"}, nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(tags.NewSet(tags.Kitchen, tags.Negate(tags.Bedroom))), "got %s", got)

	got, err = tags.ToTagSet(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())

	got, err = tags.ToTagSet("Door", nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(tags.NewSet(tags.Door)))

	gen := &fakeGenerator{name: "G"}
	got, err = tags.ToTagSet([]any{"Kitchen", tags.SubpartTop, gen}, newFakeContext(gen))
	require.NoError(t, err)
	assert.True(t, got.Equal(tags.NewSet(tags.Kitchen, tags.SubpartTop, tags.FromGenerator{Generator: gen})))

	got, err = tags.ToTagSet(tags.NewSet(tags.Bed), nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(tags.NewSet(tags.Bed)))

	_, err = tags.ToTagSet([]string{"Kitchen", "Nope"}, nil)
	assert.True(t, errors.Is(err, tags.ErrUnresolvedTagName))
}

func TestToTagSetTypedCollections(t *testing.T) {
	gen := &fakeGenerator{name: "G"}
	other := &fakeGenerator{name: "H"}
	ctx := newFakeContext(gen, other)

	cases := []struct {
		name  string
		input any
		want  tags.Set
	}{
		{"room types", tags.RoomTypes(), tags.NewSet(asTags(tags.RoomTypes())...)},
		{"semantics slice", []tags.Semantics{tags.Kitchen, tags.Door}, tags.NewSet(tags.Kitchen, tags.Door)},
		{"subpart slice", []tags.Subpart{tags.SubpartTop}, tags.NewSet(tags.SubpartTop)},
		{"string array", [2]string{"Kitchen", "Bed"}, tags.NewSet(tags.Kitchen, tags.Bed)},
		{"negated slice", []tags.Negated{tags.Negate(tags.Door).(tags.Negated)}, tags.NewSet(tags.Negate(tags.Door))},
		{"generator handles", []*fakeGenerator{gen, other},
			tags.NewSet(tags.FromGenerator{Generator: gen}, tags.FromGenerator{Generator: other})},
		{"nil typed slice", []tags.Semantics(nil), tags.NewSet()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tags.ToTagSet(tc.input, ctx)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %s want %s", got, tc.want)
		})
	}

	_, err := tags.ToTagSet([]int{1}, nil)
	assert.True(t, errors.Is(err, tags.ErrIllegalOperation))

	_, err = tags.ToTagSet([]*fakeGenerator{gen}, nil)
	assert.True(t, errors.Is(err, tags.ErrUnresolvedReference))
}

func asTags[T tags.Tag](items []T) []tags.Tag {
	out := make([]tags.Tag, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
