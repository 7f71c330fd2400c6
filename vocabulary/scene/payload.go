package scene

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"

	"github.com/c360studio/semtags/tags"
)

func init() {
	err := component.RegisterPayload(&component.PayloadRegistration{
		Domain:      "scene",
		Category:    "node",
		Version:     "v1",
		Description: "Scene node tag set as triples",
		Factory:     func() any { return &NodePayload{} },
	})
	if err != nil {
		panic("failed to register NodePayload: " + err.Error())
	}
}

// NodeType is the message type for scene node payloads.
var NodeType = message.Type{Domain: "scene", Category: "node", Version: "v1"}

// NodePayload carries a node's tag set as triples. It implements
// message.Payload and message.Graphable.
type NodePayload struct {
	NodeID     string           `json:"id"`
	TripleData []message.Triple `json:"triples"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// NewNodePayload encodes s as the payload of nodeID.
func NewNodePayload(nodeID string, s tags.Set, at time.Time) (*NodePayload, error) {
	triples, err := Triples(nodeID, s, at)
	if err != nil {
		return nil, err
	}
	return &NodePayload{NodeID: nodeID, TripleData: triples, UpdatedAt: at}, nil
}

func (p *NodePayload) EntityID() string          { return p.NodeID }
func (p *NodePayload) Triples() []message.Triple { return p.TripleData }
func (p *NodePayload) Schema() message.Type      { return NodeType }

// Tags decodes the payload's tag set, resolving generators through ctx.
func (p *NodePayload) Tags(ctx tags.GeneratorContext) (tags.Set, error) {
	return TagsFromTriples(p.NodeID, p.TripleData, ctx)
}

func (p *NodePayload) Validate() error {
	if p.NodeID == "" {
		return errors.New("node ID is required")
	}
	for _, t := range p.TripleData {
		if t.Subject != p.NodeID {
			return errors.New("triple subject " + t.Subject + " does not match node " + p.NodeID)
		}
	}
	return nil
}

func (p *NodePayload) MarshalJSON() ([]byte, error) {
	type Alias NodePayload
	return json.Marshal((*Alias)(p))
}

func (p *NodePayload) UnmarshalJSON(data []byte) error {
	type Alias NodePayload
	return json.Unmarshal(data, (*Alias)(p))
}
