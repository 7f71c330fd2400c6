package tags_test

import (
	"github.com/c360studio/semtags/tags"
)

// fakeGenerator is a pointer handle, so identity is pointer equality.
type fakeGenerator struct {
	name string
}

func (g *fakeGenerator) GeneratorName() string { return g.name }

// fakeContext is a minimal generator context keyed by display name.
type fakeContext map[string]*fakeGenerator

func newFakeContext(gens ...*fakeGenerator) fakeContext {
	ctx := make(fakeContext, len(gens))
	for _, g := range gens {
		ctx[g.name] = g
	}
	return ctx
}

func (c fakeContext) Len() int { return len(c) }

func (c fakeContext) Contains(g tags.Generator) bool {
	fg, ok := g.(*fakeGenerator)
	if !ok {
		return false
	}
	return c[fg.name] == fg
}

func (c fakeContext) LookupName(name string) (tags.Generator, bool) {
	g, ok := c[name]
	if !ok {
		return nil, false
	}
	return g, true
}

func sortedStrings(s tags.Set) []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, t := range sorted {
		out[i] = t.GoString()
	}
	return out
}
