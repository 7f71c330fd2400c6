// Package export renders scene node tag sets as RDF.
package export

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/c360studio/semtags/tags"
	"github.com/c360studio/semtags/vocabulary/scene"
)

// Profile determines which tag facts are included in the export.
type Profile string

const (
	// ProfileFull exports positive and negated tag facts.
	ProfileFull Profile = "full"

	// ProfilePositive exports positive tag facts only.
	ProfilePositive Profile = "positive"
)

// Node is a scene node with its tag set.
type Node struct {
	ID   string
	Tags tags.Set
}

// statement is a resolved predicate/object pair for one node.
type statement struct {
	predicateIRI string
	object       any
}

// Exporter exports scene nodes to RDF.
type Exporter struct {
	profile  Profile
	baseIRI  string
	nodes    []Node
	prefixes map[string]string
}

// NewExporter creates an exporter. An empty baseIRI selects
// scene.EntityNamespace.
func NewExporter(profile Profile, baseIRI string) *Exporter {
	if profile == "" {
		profile = ProfileFull
	}
	if baseIRI == "" {
		baseIRI = scene.EntityNamespace
	}
	if !strings.HasSuffix(baseIRI, "/") && !strings.HasSuffix(baseIRI, "#") {
		baseIRI += "/"
	}
	return &Exporter{
		profile:  profile,
		baseIRI:  baseIRI,
		prefixes: defaultPrefixes(baseIRI),
	}
}

// defaultPrefixes returns the namespace prefixes declared in every export.
func defaultPrefixes(baseIRI string) map[string]string {
	return map[string]string{
		"rdf":    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"xsd":    "http://www.w3.org/2001/XMLSchema#",
		"prov":   "http://www.w3.org/ns/prov#",
		"scene":  scene.Namespace,
		"entity": baseIRI,
	}
}

// AddNode adds a node to be exported.
func (e *Exporter) AddNode(node Node) {
	e.nodes = append(e.nodes, node)
}

// AddTags creates and adds a node from an ID and its tags.
func (e *Exporter) AddTags(id string, ts ...tags.Tag) {
	e.AddNode(Node{ID: id, Tags: tags.NewSet(ts...)})
}

// Len returns the number of nodes added.
func (e *Exporter) Len() int {
	return len(e.nodes)
}

// Export serializes all nodes to the specified format. Nodes are written in
// ID order and each node's facts in tag order, so output is deterministic.
func (e *Exporter) Export(format Format) (string, error) {
	nodes, err := e.resolve()
	if err != nil {
		return "", err
	}

	switch format {
	case FormatTurtle:
		return e.toTurtle(nodes), nil
	case FormatNTriples:
		return e.toNTriples(nodes), nil
	case FormatJSONLD:
		return e.toJSONLD(nodes)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

type resolvedNode struct {
	iri        string
	statements []statement
}

func (e *Exporter) resolve() ([]resolvedNode, error) {
	nodes := slices.Clone(e.nodes)
	slices.SortStableFunc(nodes, func(a, b Node) int {
		return strings.Compare(a.ID, b.ID)
	})

	out := make([]resolvedNode, 0, len(nodes))
	for _, node := range nodes {
		triples, err := scene.Triples(node.ID, node.Tags, time.Time{})
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", node.ID, err)
		}

		rn := resolvedNode{iri: e.NodeIRI(node.ID)}
		for _, triple := range triples {
			if e.profile == ProfilePositive && strings.HasPrefix(triple.Predicate, "scene.not.") {
				continue
			}
			rn.statements = append(rn.statements, statement{
				predicateIRI: scene.PredicateIRI(triple.Predicate),
				object:       e.objectFor(triple.Predicate, triple.Object),
			})
		}
		out = append(out, rn)
	}
	return out, nil
}

// objectFor turns generator names into generator IRIs and leaves other
// objects as literals.
func (e *Exporter) objectFor(predicate string, object any) any {
	name, ok := object.(string)
	if !ok {
		return object
	}
	if predicate == scene.TagGenerator || predicate == scene.NotGenerator {
		return iri(e.GeneratorIRI(name))
	}
	return name
}

// NodeIRI converts a dotted node ID to an IRI under the base IRI.
// Example: "house.floor1.kitchen" -> "<base>house/floor1/kitchen"
func (e *Exporter) NodeIRI(nodeID string) string {
	parts := strings.Split(nodeID, ".")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return e.baseIRI + strings.Join(parts, "/")
}

// GeneratorIRI returns the IRI identifying a generator by display name.
func (e *Exporter) GeneratorIRI(name string) string {
	return e.baseIRI + "generator/" + url.PathEscape(name)
}

// toTurtle serializes to Turtle format.
func (e *Exporter) toTurtle(nodes []resolvedNode) string {
	w := NewTurtleWriter()
	for prefix, ns := range e.prefixes {
		w.SetPrefix(prefix, ns)
	}
	w.WritePrefixes()

	for _, node := range nodes {
		w.WriteSubject(node.iri)
		w.WriteType(scene.ClassNode, len(node.statements) == 0)
		for i, st := range node.statements {
			w.WritePredicate(st.predicateIRI, st.object, i == len(node.statements)-1)
		}
		w.WriteBlank()
	}
	return w.String()
}

// toNTriples serializes to N-Triples format.
func (e *Exporter) toNTriples(nodes []resolvedNode) string {
	w := NewNTriplesWriter()
	for _, node := range nodes {
		w.WriteTypeTriple(node.iri, scene.ClassNode)
		for _, st := range node.statements {
			w.WriteTriple(node.iri, st.predicateIRI, st.object)
		}
	}
	return w.String()
}

// toJSONLD serializes to JSON-LD format. Repeated predicates collapse into
// one array-valued property.
func (e *Exporter) toJSONLD(nodes []resolvedNode) (string, error) {
	w := NewJSONLDWriter()
	w.SetContext(e.prefixes)

	for _, node := range nodes {
		props := make(map[string]any)
		for _, st := range node.statements {
			values, _ := props[st.predicateIRI].([]any)
			props[st.predicateIRI] = append(values, formatObjectJSONLD(st.object))
		}
		w.AddNode(node.iri, []string{scene.ClassNode}, props)
	}
	return w.Marshal()
}

// iri marks an object that is a resource reference rather than a literal.
type iri string

// formatObject formats an object value for Turtle output.
func formatObject(obj any) string {
	switch v := obj.(type) {
	case iri:
		return fmt.Sprintf("<%s>", v)
	case string:
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^xsd:integer", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^xsd:boolean", v)
	default:
		return fmt.Sprintf("\"%s\"", escapeString(fmt.Sprint(v)))
	}
}

// formatObjectNTriples formats an object value for N-Triples output.
func formatObjectNTriples(obj any) string {
	switch v := obj.(type) {
	case iri:
		return fmt.Sprintf("<%s>", v)
	case string:
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^<http://www.w3.org/2001/XMLSchema#integer>", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^<http://www.w3.org/2001/XMLSchema#boolean>", v)
	default:
		return fmt.Sprintf("\"%s\"", escapeString(fmt.Sprint(v)))
	}
}

// formatObjectJSONLD converts an object value to its JSON-LD form.
func formatObjectJSONLD(obj any) any {
	switch v := obj.(type) {
	case iri:
		return map[string]string{"@id": string(v)}
	case string, int, int32, int64, bool:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
