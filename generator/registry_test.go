package generator

import (
	"errors"
	"sync"
	"testing"

	errs "github.com/c360studio/semstreams/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semtags/tags"
)

func TestRegister(t *testing.T) {
	r := NewRegistry(nil)

	counter, err := r.Register("CounterGen")
	require.NoError(t, err)
	assert.Equal(t, "CounterGen", counter.GeneratorName())
	assert.NotEqual(t, counter.ID().String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, 1, r.Len())

	_, err = r.Register("CounterGen")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateName))
	assert.True(t, errs.IsInvalid(err))

	_, err = r.Register("   ")
	assert.True(t, errors.Is(err, ErrEmptyName))
}

func TestHandlesCompareByIdentity(t *testing.T) {
	a := NewRegistry(nil)
	b := NewRegistry(nil)

	ga, err := a.Register("BedFactory")
	require.NoError(t, err)
	gb, err := b.Register("BedFactory")
	require.NoError(t, err)

	assert.True(t, tags.Tag(ga.Tag()) == tags.Tag(ga.Tag()))
	assert.False(t, tags.Tag(ga.Tag()) == tags.Tag(gb.Tag()))

	assert.True(t, a.Contains(ga))
	assert.False(t, a.Contains(gb), "same name from another registry is a different generator")
}

func TestRegistryAsGeneratorContext(t *testing.T) {
	r, err := NewRegistryFromNames([]string{"CounterGen", "SinkGen"}, nil)
	require.NoError(t, err)
	counter, ok := r.Lookup("CounterGen")
	require.True(t, ok)

	got, err := tags.ToTag("CounterGen", r)
	require.NoError(t, err)
	assert.Equal(t, tags.Tag(counter.Tag()), got)

	got, err = tags.ToTag(counter, r)
	require.NoError(t, err)
	assert.Equal(t, tags.Tag(counter.Tag()), got)

	set, err := tags.ToTagSet([]string{"Kitchen", "CounterGen"}, r)
	require.NoError(t, err)
	assert.True(t, tags.Implies(set, tags.NewSet(tags.Kitchen)))
	assert.False(t, tags.Implies(tags.NewSet(tags.Kitchen), set))

	s, err := tags.ToString(counter.Tag())
	require.NoError(t, err)
	assert.Equal(t, "CounterGen", s)
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.All())
	_, ok := r.LookupName("x")
	assert.False(t, ok)

	g := &Generator{name: "x"}
	_, err := tags.ToTag(g, r)
	assert.True(t, errors.Is(err, tags.ErrUnresolvedReference))
}

func TestAllSorted(t *testing.T) {
	r, err := NewRegistryFromNames([]string{"Zed", "Alpha", "Mid"}, nil)
	require.NoError(t, err)

	names := make([]string, 0, 3)
	for _, g := range r.All() {
		names = append(names, g.GeneratorName())
	}
	assert.Equal(t, []string{"Alpha", "Mid", "Zed"}, names)

	_, err = NewRegistryFromNames([]string{"A", "A"}, nil)
	assert.True(t, errors.Is(err, ErrDuplicateName))
}

func TestConcurrentReads(t *testing.T) {
	r, err := NewRegistryFromNames([]string{"CounterGen"}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := tags.ToTag("CounterGen", r); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
