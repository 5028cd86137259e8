package rsc

import (
	"encoding/json"
	"testing"

	"github.com/nextgo-dev/core/elements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSimpleElementToPayload(t *testing.T) {
	el := elements.Div().Class("container").Text("Hello World")
	payload := RenderToPayload(el.IntoNode())

	wire := payload.ToWireFormat()
	assert.Contains(t, wire, "div")
	assert.Contains(t, wire, "Hello World")
}

func TestRenderNestedElementsToPayload(t *testing.T) {
	el := elements.Div().Class("app").
		Child(elements.NodeValue(elements.H1().Text("Title").IntoNode())).
		Child(elements.NodeValue(elements.P().Text("Content").IntoNode()))

	payload := RenderToPayload(el.IntoNode())
	require.Len(t, payload.Nodes, 1)
	assert.Len(t, payload.Nodes[0].Children, 2)
}

func TestRegisterClientComponent(t *testing.T) {
	r := NewRenderer()
	node := r.RegisterClientComponent("./Counter.js", "Counter", json.RawMessage(`{"initial":0}`))

	require.Equal(t, NodeClient, node.Type)
	assert.Equal(t, "client_0", node.ID)
	assert.Len(t, r.payload.ClientReferences, 1)
}

func TestRenderFragmentToPayload(t *testing.T) {
	frag := elements.Fragment(
		elements.Span().Text("First").IntoNode(),
		elements.Span().Text("Second").IntoNode(),
	)

	payload := RenderToPayload(frag)
	require.Len(t, payload.Nodes, 1)
	assert.Equal(t, "fragment", payload.Nodes[0].Tag)
	assert.Len(t, payload.Nodes[0].Children, 2)
}

func TestRenderConditionalResolvesOnceInPayload(t *testing.T) {
	calls := 0
	cond := elements.Dynamic(func() bool {
		calls++
		return true
	})
	els := elements.Text("no")
	node := elements.Conditional(cond, elements.Text("yes"), &els)

	payload := RenderToPayload(node)
	require.Len(t, payload.Nodes, 1)
	assert.Equal(t, "yes", payload.Nodes[0].Value)
	assert.Equal(t, 1, calls)
}
