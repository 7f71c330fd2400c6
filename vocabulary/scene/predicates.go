package scene

import "github.com/c360studio/semstreams/vocabulary"

// Positive tag predicates.
const (
	// TagSemantics asserts a Semantics vocabulary member.
	// Values: Semantics vocabulary values ("kitchen", "bed", ...)
	TagSemantics = "scene.tag.semantics"

	// TagSubpart asserts a Subpart vocabulary member.
	// Values: Subpart vocabulary values ("top", "interior", ...)
	TagSubpart = "scene.tag.subpart"

	// TagGenerator asserts the generator that produced the node.
	// Values: generator display names
	TagGenerator = "scene.tag.generator"

	// TagDescription asserts a free-form description.
	TagDescription = "scene.tag.description"

	// TagVariable binds the node to a named variable.
	TagVariable = "scene.tag.variable"

	// TagObject binds the node to a specific materialized object.
	TagObject = "scene.tag.object"
)

// Negated tag predicates. Each asserts the absence of the corresponding
// positive fact.
const (
	NotSemantics   = "scene.not.semantics"
	NotSubpart     = "scene.not.subpart"
	NotGenerator   = "scene.not.generator"
	NotDescription = "scene.not.description"
	NotVariable    = "scene.not.variable"
	NotObject      = "scene.not.object"
)

func init() {
	vocabulary.Register(TagSemantics,
		vocabulary.WithDescription("Semantics vocabulary member asserted for the node"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropSemantics))

	vocabulary.Register(TagSubpart,
		vocabulary.WithDescription("Subpart vocabulary member asserted for the node"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropSubpart))

	vocabulary.Register(TagGenerator,
		vocabulary.WithDescription("Generator that produced the node"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.ProvWasAttributedTo))

	vocabulary.Register(TagDescription,
		vocabulary.WithDescription("Free-form description of the node"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropDescription))

	vocabulary.Register(TagVariable,
		vocabulary.WithDescription("Variable the node is bound to"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropVariable))

	vocabulary.Register(TagObject,
		vocabulary.WithDescription("Materialized object the node refers to"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropObject))

	vocabulary.Register(NotSemantics,
		vocabulary.WithDescription("Semantics vocabulary member asserted absent"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropNotSemantics))

	vocabulary.Register(NotSubpart,
		vocabulary.WithDescription("Subpart vocabulary member asserted absent"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropNotSubpart))

	vocabulary.Register(NotGenerator,
		vocabulary.WithDescription("Generator that did not produce the node"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropNotGenerator))

	vocabulary.Register(NotDescription,
		vocabulary.WithDescription("Free-form description asserted absent"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropNotDescription))

	vocabulary.Register(NotVariable,
		vocabulary.WithDescription("Variable the node is not bound to"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropNotVariable))

	vocabulary.Register(NotObject,
		vocabulary.WithDescription("Materialized object the node does not refer to"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropNotObject))
}

// Predicates returns every scene predicate, positive ones first.
func Predicates() []string {
	return []string{
		TagSemantics, TagSubpart, TagGenerator, TagDescription, TagVariable, TagObject,
		NotSemantics, NotSubpart, NotGenerator, NotDescription, NotVariable, NotObject,
	}
}

// PredicateIRI returns the registered IRI for a predicate, falling back to
// the scene namespace for unregistered ones.
func PredicateIRI(predicate string) string {
	if meta := vocabulary.GetPredicateMetadata(predicate); meta != nil && meta.StandardIRI != "" {
		return meta.StandardIRI
	}
	return Namespace + predicate
}
