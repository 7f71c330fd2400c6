package scene_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semtags/generator"
	"github.com/c360studio/semtags/tags"
	"github.com/c360studio/semtags/vocabulary/scene"
)

var (
	_ message.Payload   = (*scene.NodePayload)(nil)
	_ message.Graphable = (*scene.NodePayload)(nil)
)

func TestNodePayloadRoundTrip(t *testing.T) {
	reg, err := generator.NewRegistryFromNames([]string{"BedFactory"}, nil)
	require.NoError(t, err)
	bed, _ := reg.Lookup("BedFactory")

	in := tags.NewSet(tags.Bed, bed.Tag(), tags.Negate(tags.SubpartTop))
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	payload, err := scene.NewNodePayload("house.bedroom.bed", in, at)
	require.NoError(t, err)
	require.NoError(t, payload.Validate())
	assert.Equal(t, "house.bedroom.bed", payload.EntityID())
	assert.Equal(t, scene.NodeType, payload.Schema())
	assert.Len(t, payload.Triples(), 3)

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	created := component.CreatePayload("scene", "node", "v1")
	decoded, ok := created.(*scene.NodePayload)
	require.True(t, ok, "payload factory should be registered")
	require.NoError(t, json.Unmarshal(data, decoded))

	out, err := decoded.Tags(reg)
	require.NoError(t, err)
	assert.True(t, in.Equal(out), "got %s want %s", out, in)
}

func TestNodePayloadValidate(t *testing.T) {
	assert.Error(t, (&scene.NodePayload{}).Validate())

	p := &scene.NodePayload{
		NodeID:     "a",
		TripleData: []message.Triple{{Subject: "b", Predicate: scene.TagSemantics, Object: "bed"}},
	}
	assert.Error(t, p.Validate())
}
