// Package rsc implements the server-component payload of §3/§4.E/§6: a
// structural snapshot of a rendered elements.Node tree plus whichever
// client-module references it references, serialized to the
// newline-delimited wire format §6 specifies. Ported from
// _examples/original_source/crates/next-rsc/src/{payload,renderer,markers}.rs.
package rsc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NodeType is the RSC node's wire discriminant (the JSON "type" field).
type NodeType string

const (
	NodeElement  NodeType = "element"
	NodeText     NodeType = "text"
	NodeClient   NodeType = "client"
	NodeSuspense NodeType = "suspense"
)

// Node is one entry in a Payload's node list. Only the fields relevant to
// Type are populated; this mirrors the tagged-union RscNode enum with a
// single flattened Go struct since Go has no sum types.
type Node struct {
	Type     NodeType        `json:"type"`
	Tag      string          `json:"tag,omitempty"`
	Props    json.RawMessage `json:"props,omitempty"`
	Children []Node          `json:"children,omitempty"`
	Value    string          `json:"value,omitempty"`
	ID       string          `json:"id,omitempty"`
	Fallback *Node           `json:"fallback,omitempty"`
}

// ElementNode builds an element-kind RSC node.
func ElementNode(tag string, props json.RawMessage, children []Node) Node {
	return Node{Type: NodeElement, Tag: tag, Props: props, Children: children}
}

// TextNode builds a text-kind RSC node.
func TextNode(value string) Node {
	return Node{Type: NodeText, Value: value}
}

// ClientRefNode builds a client-reference node pointing at a registered
// client module by id.
func ClientRefNode(id string, props json.RawMessage) Node {
	return Node{Type: NodeClient, ID: id, Props: props}
}

// SuspenseNode builds a suspense boundary node: fallback shown until
// children resolves.
func SuspenseNode(id string, fallback Node, children []Node) Node {
	return Node{Type: NodeSuspense, ID: id, Fallback: &fallback, Children: children}
}

// Ref is a client-module reference: which component module and export a
// ClientRefNode's id names.
type Ref struct {
	ID     string
	Module string
	Export string
}

// Hint is an out-of-band `H:` wire line: a preload/prefetch hint the client
// can act on before the full payload finishes streaming.
type Hint struct {
	Type string
	Data string
}

// ErrorChunk is an `E:` wire line: an error tied to a specific node id,
// used when a suspended subtree fails instead of resolving.
type ErrorChunk struct {
	ID   string
	Data json.RawMessage
}

// Resolution is a `$` wire line: the resolved payload for a suspended node
// id, streamed after the initial response once its data is ready.
type Resolution struct {
	ID   string
	Data json.RawMessage
}

// Payload is the full server-component response: an ordered node list plus
// every client reference, hint, error, and resolution accumulated while
// rendering it.
type Payload struct {
	Nodes            []Node
	ClientReferences []Ref
	Hints            []Hint
	Errors           []ErrorChunk
	Resolutions      []Resolution
}

// New creates an empty payload.
func New() *Payload {
	return &Payload{}
}

func (p *Payload) AddNode(n Node) {
	p.Nodes = append(p.Nodes, n)
}

func (p *Payload) AddClientReference(id, module, export string) {
	p.ClientReferences = append(p.ClientReferences, Ref{ID: id, Module: module, Export: export})
}

func (p *Payload) AddHint(typ, data string) {
	p.Hints = append(p.Hints, Hint{Type: typ, Data: data})
}

func (p *Payload) AddError(id string, data json.RawMessage) {
	p.Errors = append(p.Errors, ErrorChunk{ID: id, Data: data})
}

func (p *Payload) AddResolution(id string, data json.RawMessage) {
	p.Resolutions = append(p.Resolutions, Resolution{ID: id, Data: data})
}

// ToWireFormat renders the payload as the newline-delimited wire format §6
// defines: one `<idx>:<json>` line per node, then `M:` lines for client
// references, `H:` lines for hints, `E:` lines for errors, and `$` lines
// for suspense resolutions, in that order.
func (p *Payload) ToWireFormat() string {
	var lines []string

	for i, node := range p.Nodes {
		nodeJSON, err := json.Marshal(node)
		if err != nil {
			nodeJSON = []byte("null")
		}
		lines = append(lines, fmt.Sprintf("%d:%s", i, nodeJSON))
	}

	for _, ref := range p.ClientReferences {
		lines = append(lines, fmt.Sprintf("M:%s:%s:%s", ref.ID, ref.Module, ref.Export))
	}

	for _, hint := range p.Hints {
		lines = append(lines, fmt.Sprintf("H:%s:%s", hint.Type, hint.Data))
	}

	for _, errChunk := range p.Errors {
		lines = append(lines, fmt.Sprintf("E:%s:%s", errChunk.ID, errChunk.Data))
	}

	for _, res := range p.Resolutions {
		lines = append(lines, fmt.Sprintf("$%s:%s", res.ID, res.Data))
	}

	return strings.Join(lines, "\n")
}

// parseLineIndex reports whether s is a plain non-negative integer, the
// form a node index line's prefix takes before its ':'.
func parseLineIndex(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
