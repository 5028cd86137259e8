package rsc

import (
	"encoding/json"
	"fmt"

	"github.com/nextgo-dev/core/elements"
)

// Renderer walks an elements.Node tree and accumulates it into a Payload,
// assigning fresh ids to client components registered through
// RegisterClientComponent (the tree walk itself never emits one). Grounded
// on next-rsc/src/renderer.rs's RscRenderer.
type Renderer struct {
	payload         *Payload
	clientIDCounter int
}

// NewRenderer creates an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{payload: New()}
}

// RenderToPayload renders node and returns the accumulated payload; the
// node itself becomes payload.Nodes[0].
func RenderToPayload(node elements.Node) *Payload {
	r := NewRenderer()
	r.payload.AddNode(r.renderNode(node))
	return r.payload
}

// RegisterClientComponent records a client-module reference and returns
// the RSC node that points at it, per markers.rs's ClientMarker.
func (r *Renderer) RegisterClientComponent(module, export string, props json.RawMessage) Node {
	id := fmt.Sprintf("client_%d", r.clientIDCounter)
	r.clientIDCounter++
	r.payload.AddClientReference(id, module, export)
	return ClientRefNode(id, props)
}

func (r *Renderer) renderNode(node elements.Node) Node {
	switch node.Kind {
	case elements.KindElement:
		return r.renderElement(*node.Element)
	case elements.KindText:
		return TextNode(node.Text)
	case elements.KindReactiveText:
		return TextNode(node.ReactiveText.Get())
	case elements.KindFragment:
		children := make([]Node, 0, len(node.Fragment))
		for _, child := range node.Fragment {
			children = append(children, r.renderNode(child))
		}
		return ElementNode("fragment", json.RawMessage(`{}`), children)
	case elements.KindConditional:
		c := node.Conditional
		if c.Cond.Get() {
			return r.renderNode(c.Then)
		}
		if c.Else != nil {
			return r.renderNode(*c.Else)
		}
		return ElementNode("fragment", json.RawMessage(`{}`), nil)
	case elements.KindReactiveList:
		items := node.List.Produce()
		children := make([]Node, 0, len(items))
		for _, item := range items {
			children = append(children, r.renderNode(item))
		}
		return ElementNode("fragment", json.RawMessage(`{}`), children)
	case elements.KindSuspense:
		s := node.Suspense
		fallback := r.renderNode(s.Fallback)
		if s.IsLoading() {
			return SuspenseNode("suspense", fallback, nil)
		}
		return SuspenseNode("suspense", fallback, []Node{r.renderNode(s.Children)})
	case elements.KindErrorBoundary:
		e := node.ErrorBound
		if msg, hasErr := e.Err(); hasErr {
			return r.renderNode(e.Fallback(msg))
		}
		return r.renderNode(e.Children)
	case elements.KindHead:
		return r.renderHead(*node.Head)
	default:
		return ElementNode("fragment", json.RawMessage(`{}`), nil)
	}
}

func (r *Renderer) renderElement(el elements.Element) Node {
	props := r.collectProps(el)
	rawChildren := el.Children()
	children := make([]Node, 0, len(rawChildren))
	for _, child := range rawChildren {
		children = append(children, r.renderNode(child))
	}
	return ElementNode(el.Tag(), props, children)
}

func (r *Renderer) collectProps(el elements.Element) json.RawMessage {
	props := make(map[string]string)
	for _, attr := range el.Attributes() {
		props[attr.Name] = attr.ToStaticValue()
	}
	encoded, err := json.Marshal(props)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return encoded
}

func (r *Renderer) renderHead(h elements.Head) Node {
	props, _ := json.Marshal(map[string]any{"title": h.Title})
	return ElementNode("head", props, nil)
}
