package elements

// Event carries the event type that triggered an EventHandler. Client-side
// DOM binding (out of core scope, §1) is expected to populate richer event
// data; the core only needs to route by type.
type Event struct {
	Type string
}

// EventHandler pairs an event type with its callback, stored per-element in
// registration order per §3/§4.B.
type EventHandler struct {
	Type    string
	Handler func(Event)
}
