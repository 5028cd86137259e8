package rsc

import "github.com/nextgo-dev/core/elements"

// ServerComponent wraps a render function that runs only on the server;
// its output is flattened directly into the payload. Grounded on
// next-rsc/src/markers.rs's Component<Server, F>.
type ServerComponent struct {
	id       string
	renderFn func() elements.Element
}

// NewServerComponent creates a named server component.
func NewServerComponent(id string, renderFn func() elements.Element) *ServerComponent {
	return &ServerComponent{id: id, renderFn: renderFn}
}

func (c *ServerComponent) ID() string { return c.id }

// Render invokes the component's render function.
func (c *ServerComponent) Render() elements.Element {
	return c.renderFn()
}

// RenderToPayload renders the component and wraps the result in a payload.
func (c *ServerComponent) RenderToPayload() *Payload {
	return RenderToPayload(c.Render().IntoNode())
}

// ClientComponent marks a component boundary whose real implementation
// ships as client-side JavaScript; the server only needs its id, module
// path, and a fallback to render until hydration. Grounded on
// next-rsc/src/markers.rs's ClientMarker.
type ClientComponent struct {
	id       string
	module   string
	renderFn func() elements.Element
}

// NewClientComponent creates a client component boundary.
func NewClientComponent(id, module string, renderFn func() elements.Element) *ClientComponent {
	return &ClientComponent{id: id, module: module, renderFn: renderFn}
}

func (c *ClientComponent) ID() string     { return c.id }
func (c *ClientComponent) Module() string { return c.module }

// RenderFallback renders the server-side placeholder shown before the
// client module hydrates.
func (c *ClientComponent) RenderFallback() elements.Element {
	return c.renderFn()
}

// ToRscReference builds the Node a parent server component embeds in its
// own tree in place of this component's real output.
func (c *ClientComponent) ToRscReference(props []byte) Node {
	return ClientRefNode(c.id, props)
}
