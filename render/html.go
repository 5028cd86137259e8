// Package render implements the HTML serializer of §4.C: a pure function
// from an elements.Node tree to an HTML string, ported from
// _examples/original_source/crates/react-dom/src/render.rs.
package render

import (
	"strings"

	"github.com/nextgo-dev/core/elements"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// ToString renders node to an HTML string. Pure: no reactive side effects
// beyond reading each reactive value exactly once (§4.C contract); no
// effects are installed, matching "on the server no effects are
// installed" for the resolvable node kinds.
func ToString(node elements.Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

func writeNode(b *strings.Builder, node elements.Node) {
	switch node.Kind {
	case elements.KindElement:
		writeElement(b, *node.Element)
	case elements.KindText:
		b.WriteString(escapeHTML(node.Text))
	case elements.KindReactiveText:
		b.WriteString(escapeHTML(node.ReactiveText.Get()))
	case elements.KindFragment:
		for _, child := range node.Fragment {
			writeNode(b, child)
		}
	case elements.KindConditional:
		c := node.Conditional
		if c.Cond.Get() {
			writeNode(b, c.Then)
		} else if c.Else != nil {
			writeNode(b, *c.Else)
		}
	case elements.KindReactiveList:
		for _, child := range node.List.Produce() {
			writeNode(b, child)
		}
	case elements.KindSuspense:
		s := node.Suspense
		if s.IsLoading() {
			writeNode(b, s.Fallback)
		} else {
			writeNode(b, s.Children)
		}
	case elements.KindErrorBoundary:
		e := node.ErrorBound
		if msg, hasErr := e.Err(); hasErr {
			writeNode(b, e.Fallback(msg))
		} else {
			writeNode(b, e.Children)
		}
	case elements.KindHead:
		writeHead(b, *node.Head)
	}
}

func writeElement(b *strings.Builder, el elements.Element) {
	tag := el.Tag()
	b.WriteByte('<')
	b.WriteString(tag)
	writeAttributes(b, el.Attributes())

	if voidElements[tag] {
		b.WriteString(" />")
		return
	}

	b.WriteByte('>')
	for _, child := range el.Children() {
		writeNode(b, child)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

func writeAttributes(b *strings.Builder, attrs []elements.Attribute) {
	for _, attr := range attrs {
		switch attr.Kind {
		case elements.AttrString, elements.AttrReactiveString:
			b.WriteByte(' ')
			b.WriteString(attr.Name)
			b.WriteString(`="`)
			b.WriteString(escapeAttr(attr.ToStaticValue()))
			b.WriteByte('"')
		case elements.AttrBool, elements.AttrReactiveBool:
			if attr.BoolValue() {
				b.WriteByte(' ')
				b.WriteString(attr.Name)
			}
		}
	}
}

// writeHead renders document metadata as a sequence of head-level tags;
// the element tree itself decides where to place the resulting fragment
// (typically as a child of <head>).
func writeHead(b *strings.Builder, h elements.Head) {
	if h.Title != "" {
		b.WriteString("<title>")
		b.WriteString(escapeHTML(h.Title))
		b.WriteString("</title>")
	}
	for _, m := range h.Metas {
		b.WriteString(`<meta name="`)
		b.WriteString(escapeAttr(m.Name))
		b.WriteString(`" content="`)
		b.WriteString(escapeAttr(m.Content))
		b.WriteString(`" />`)
	}
	for _, l := range h.Links {
		b.WriteString(`<link rel="`)
		b.WriteString(escapeAttr(l.Rel))
		b.WriteString(`" href="`)
		b.WriteString(escapeAttr(l.Href))
		b.WriteString(`" />`)
	}
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
