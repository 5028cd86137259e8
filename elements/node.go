// Package elements implements the declarative node tree of §3/§4.B: an
// immutable-after-construction description of a DOM subtree built with
// chainable constructors, ported from
// _examples/original_source/crates/react-elements.
package elements

// Node is the sum type §3 describes. Exactly one field is meaningful,
// selected by Kind; this mirrors the Rust enum (node.rs) as a Go tagged
// struct rather than an interface hierarchy, since the render package needs
// to switch over every variant exhaustively and a closed set of fields is
// simpler to exhaustively match than a type-switch over nine interface
// implementations.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindReactiveText
	KindFragment
	KindConditional
	KindReactiveList
	KindSuspense
	KindErrorBoundary
	KindHead
)

type Node struct {
	Kind Kind

	Element *Element
	Text    string

	ReactiveText ReactiveValue[string]

	Fragment []Node

	Conditional *ConditionalNode
	List        *ReactiveListNode
	Suspense    *SuspenseNode
	ErrorBound  *ErrorBoundaryNode
	Head        *Head
}

// ConditionalNode renders Then when Cond reads true, otherwise Else (if
// present) or nothing.
type ConditionalNode struct {
	Cond ReactiveValue[bool]
	Then Node
	Else *Node
}

// ReactiveListNode's Produce is called fresh on every render/mount to
// derive the current item nodes; §4.B explicitly allows full replacement
// instead of keyed diffing.
type ReactiveListNode struct {
	Produce func() []Node
}

// SuspenseNode resolves once at render time on the server (§4.B); IsLoading
// selects between Children and Fallback.
type SuspenseNode struct {
	IsLoading func() bool
	Fallback  Node
	Children  Node
}

// ErrorBoundaryNode resolves once at render time on the server; Err
// returns a message if an error is present, selecting Fallback(message).
type ErrorBoundaryNode struct {
	Err      func() (string, bool)
	Fallback func(message string) Node
	Children Node
}

// IntoNode constructs a Node from a higher-level builder value, mirroring
// the Rust IntoNode trait's impls for Element/String/Vec<T>/Node itself.
type IntoNode interface {
	IntoNode() Node
}

func Text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// TextReactive renders a value that is recomputed once per render (server)
// or reapplied by an installed effect on every dependency change (client);
// see §4.B "Reactive bindings".
func TextReactive(v ReactiveValue[string]) Node {
	return Node{Kind: KindReactiveText, ReactiveText: v}
}

func Fragment(nodes ...Node) Node {
	return Node{Kind: KindFragment, Fragment: nodes}
}

// Conditional builds the Conditional node variant from §3.
func Conditional(cond ReactiveValue[bool], then Node, els *Node) Node {
	return Node{Kind: KindConditional, Conditional: &ConditionalNode{Cond: cond, Then: then, Else: els}}
}

// Each is the `each(signal, f)` builder of §4.B: producer reads the list
// signal and maps items to nodes on every call.
func Each[T any](list func() []T, f func(item T, idx int) Node) Node {
	produce := func() []Node {
		items := list()
		nodes := make([]Node, len(items))
		for i, item := range items {
			nodes[i] = f(item, i)
		}
		return nodes
	}
	return Node{Kind: KindReactiveList, List: &ReactiveListNode{Produce: produce}}
}

func Suspense(isLoading func() bool, fallback, children Node) Node {
	return Node{Kind: KindSuspense, Suspense: &SuspenseNode{IsLoading: isLoading, Fallback: fallback, Children: children}}
}

func ErrorBoundary(err func() (string, bool), fallback func(string) Node, children Node) Node {
	return Node{Kind: KindErrorBoundary, ErrorBound: &ErrorBoundaryNode{Err: err, Fallback: fallback, Children: children}}
}

func HeadNode(h Head) Node {
	return Node{Kind: KindHead, Head: &h}
}
