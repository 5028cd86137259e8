package elements

import "strings"

// Element is `Element { tag, attributes, children, event_handlers }` from
// §3, built with a chainable, copy-on-write builder API ported from
// react-elements/src/element.rs. Each builder method returns a modified
// copy so call chains read left to right without aliasing concerns.
type Element struct {
	tag            string
	attributes     []Attribute
	children       []Node
	eventHandlers  []EventHandler
}

// NewElement starts a builder for the given tag name.
func NewElement(tag string) Element {
	return Element{tag: tag}
}

func (e Element) Tag() string                    { return e.tag }
func (e Element) Attributes() []Attribute         { return e.attributes }
func (e Element) Children() []Node                { return e.children }
func (e Element) EventHandlers() []EventHandler    { return e.eventHandlers }

func (e Element) IntoNode() Node {
	return Node{Kind: KindElement, Element: &e}
}

func (e Element) Attr(name, value string) Element {
	e.attributes = append(slicesClone(e.attributes), NewAttr(name, value))
	return e
}

func (e Element) BoolAttr(name string, value bool) Element {
	e.attributes = append(slicesClone(e.attributes), NewBoolAttr(name, value))
	return e
}

func (e Element) ReactiveAttr(name string, value ReactiveValue[string]) Element {
	e.attributes = append(slicesClone(e.attributes), NewReactiveStringAttr(name, value))
	return e
}

func (e Element) ReactiveBoolAttr(name string, value ReactiveValue[bool]) Element {
	e.attributes = append(slicesClone(e.attributes), NewReactiveBoolAttr(name, value))
	return e
}

func (e Element) Class(class string) Element    { return e.Attr("class", class) }
func (e Element) ID(id string) Element          { return e.Attr("id", id) }
func (e Element) Style(style string) Element    { return e.Attr("style", style) }
func (e Element) Href(href string) Element      { return e.Attr("href", href) }
func (e Element) Src(src string) Element        { return e.Attr("src", src) }
func (e Element) Alt(alt string) Element        { return e.Attr("alt", alt) }
func (e Element) Type(t string) Element         { return e.Attr("type", t) }
func (e Element) Name(name string) Element      { return e.Attr("name", name) }
func (e Element) Value(value string) Element    { return e.Attr("value", value) }
func (e Element) Placeholder(p string) Element  { return e.Attr("placeholder", p) }
func (e Element) Disabled(disabled bool) Element { return e.BoolAttr("disabled", disabled) }

func (e Element) ClassReactive(class ReactiveValue[string]) Element {
	return e.ReactiveAttr("class", class)
}

func (e Element) ValueReactive(value ReactiveValue[string]) Element {
	return e.ReactiveAttr("value", value)
}

// HasClass reports whether the element's static "class" attribute
// contains className as a substring (matching element.rs's has_class, used
// by tests rather than production rendering).
func (e Element) HasClass(className string) bool {
	for _, a := range e.attributes {
		if a.Name == "class" && a.Kind == AttrString && strings.Contains(a.str, className) {
			return true
		}
	}
	return false
}

func (e Element) Text(text string) Element {
	e.children = append(slicesClone(e.children), Text(text))
	return e
}

func (e Element) TextReactive(text ReactiveValue[string]) Element {
	e.children = append(slicesClone(e.children), TextReactive(text))
	return e
}

func (e Element) Child(child IntoNode) Element {
	e.children = append(slicesClone(e.children), child.IntoNode())
	return e
}

func (e Element) ChildNode(n Node) Element {
	e.children = append(slicesClone(e.children), n)
	return e
}

func (e Element) ChildrenOf(nodes ...IntoNode) Element {
	cloned := slicesClone(e.children)
	for _, n := range nodes {
		cloned = append(cloned, n.IntoNode())
	}
	e.children = cloned
	return e
}

func (e Element) On(eventType string, handler func(Event)) Element {
	e.eventHandlers = append(slicesClone(e.eventHandlers), EventHandler{Type: eventType, Handler: handler})
	return e
}

func (e Element) OnClick(handler func(Event)) Element  { return e.On("click", handler) }
func (e Element) OnInput(handler func(Event)) Element  { return e.On("input", handler) }
func (e Element) OnSubmit(handler func(Event)) Element { return e.On("submit", handler) }
func (e Element) OnChange(handler func(Event)) Element { return e.On("change", handler) }

func slicesClone[T any](s []T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return out
}

// TextValue implements IntoNode for plain strings, matching node.rs's impl for
// String/&str.
type TextValue string

func (t TextValue) IntoNode() Node { return Text(string(t)) }

// NodeValue lets a ready-made Node satisfy IntoNode directly (node.rs's
// impl IntoNode for Node).
type NodeValue Node

func (n NodeValue) IntoNode() Node { return Node(n) }
