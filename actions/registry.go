package actions

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Handler is the type-erased form every registered action reduces to: it
// receives the raw JSON payload and returns a raw JSON result or an action
// error. Typed handlers added with Register are wrapped in a Handler that
// does the JSON decode and encode itself when Execute calls it.
type Handler func(payload json.RawMessage) (json.RawMessage, *Error)

// Registry maps action ids to handlers. Grounded on
// next-actions/src/registry.rs's ActionRegistry; synchronous rather than
// future-returning since the core has no async handler contract (§4.E
// treats each action dispatch as a bounded synchronous call within its
// goroutine, same as a page render).
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// RegisterRaw registers a handler that operates directly on JSON bytes.
func (r *Registry) RegisterRaw(actionID string, handler Handler) {
	r.handlers[actionID] = handler
}

// Register registers a typed handler: input is JSON-decoded before the
// call, output is JSON-encoded after. This is the generic convenience
// wrapper next-actions/src/registry.rs's register<F, Fut, I, O> provides.
func Register[I any, O any](r *Registry, actionID string, handler func(I) (O, *Error)) {
	r.RegisterRaw(actionID, func(payload json.RawMessage) (json.RawMessage, *Error) {
		var input I
		if err := json.Unmarshal(payload, &input); err != nil {
			return nil, NewErrorWithCode(fmt.Sprintf("invalid input: %v", err), "INVALID_INPUT")
		}

		output, actionErr := handler(input)
		if actionErr != nil {
			return nil, actionErr
		}

		encoded, err := json.Marshal(output)
		if err != nil {
			return nil, NewError(fmt.Sprintf("serialization error: %v", err))
		}
		return encoded, nil
	})
}

// Has reports whether actionID is registered.
func (r *Registry) Has(actionID string) bool {
	_, ok := r.handlers[actionID]
	return ok
}

// Execute dispatches request to its handler and wraps the result in a
// Response envelope, or an ACTION_NOT_FOUND error if no handler is
// registered for the id.
func (r *Registry) Execute(request Request) Response {
	handler, ok := r.handlers[request.ActionID]
	if !ok {
		return Failure(NewErrorWithCode(
			fmt.Sprintf("action %q not found", request.ActionID),
			"ACTION_NOT_FOUND",
		))
	}

	data, actionErr := handler(request.Payload)
	if actionErr != nil {
		return Failure(actionErr)
	}
	return Response{Success: true, Data: data, InvocationID: uuid.NewString()}
}

// ActionIDs returns every registered action id, in no particular order.
func (r *Registry) ActionIDs() []string {
	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	return ids
}
