// Package actions implements the server-action registry of §3/§4.E/§7:
// named RPC handlers invoked by id with a JSON payload, returning a JSON
// envelope. Ported from
// _examples/original_source/crates/next-actions/src/{action,registry}.rs.
package actions

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Error is an action failure: a message plus an optional machine-readable
// code (ACTION_NOT_FOUND, INVALID_INPUT, or a handler-chosen code).
type Error struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// NewError creates a code-less action error.
func NewError(message string) *Error {
	return &Error{Message: message}
}

// NewErrorWithCode creates an action error carrying a machine-readable code.
func NewErrorWithCode(message, code string) *Error {
	return &Error{Message: message, Code: code}
}

func (e *Error) Error() string { return e.Message }

// Request is a decoded `/_action/<id>` POST body paired with its action id.
type Request struct {
	ActionID string
	Payload  json.RawMessage
}

// Response is the `{success, data?, error?}` envelope §6 specifies, plus an
// InvocationID correlating a response with the server-side log line that
// recorded its dispatch.
type Response struct {
	Success      bool            `json:"success"`
	Data         json.RawMessage `json:"data,omitempty"`
	Err          *Error          `json:"error,omitempty"`
	InvocationID string          `json:"invocationId"`
}

// Success builds a successful response, JSON-encoding data.
func Success(data any) Response {
	encoded, err := json.Marshal(data)
	if err != nil {
		return Response{Success: false, Err: NewError("serialization error: " + err.Error()), InvocationID: uuid.NewString()}
	}
	return Response{Success: true, Data: encoded, InvocationID: uuid.NewString()}
}

// Failure builds a failed response carrying err.
func Failure(err *Error) Response {
	return Response{Success: false, Err: err, InvocationID: uuid.NewString()}
}
