package scene

// Namespace is the base IRI prefix for scene vocabulary terms.
const Namespace = "https://semtags.dev/ontology/scene/"

// EntityNamespace is the base IRI for scene node instances.
const EntityNamespace = "https://semtags.dev/entity/scene/"

// Class IRIs.
const (
	// ClassNode represents a node of the procedural generation graph.
	ClassNode = Namespace + "Node"

	// ClassGenerator represents a generator that produces nodes.
	ClassGenerator = Namespace + "Generator"
)

// Property IRIs for tag facts.
const (
	PropSemantics   = Namespace + "semantics"
	PropSubpart     = Namespace + "subpart"
	PropGenerator   = Namespace + "generatedBy"
	PropDescription = Namespace + "description"
	PropVariable    = Namespace + "variable"
	PropObject      = Namespace + "specificObject"

	PropNotSemantics   = Namespace + "notSemantics"
	PropNotSubpart     = Namespace + "notSubpart"
	PropNotGenerator   = Namespace + "notGeneratedBy"
	PropNotDescription = Namespace + "notDescription"
	PropNotVariable    = Namespace + "notVariable"
	PropNotObject      = Namespace + "notSpecificObject"
)
