package render

import (
	"testing"

	"github.com/nextgo-dev/core/elements"
	"github.com/stretchr/testify/assert"
)

func TestRenderSimpleElement(t *testing.T) {
	el := elements.Div().Class("container").Text("Hello")
	assert.Equal(t, `<div class="container">Hello</div>`, ToString(el.IntoNode()))
}

func TestRenderNestedElements(t *testing.T) {
	el := elements.Div().Class("app").
		Child(elements.NodeValue(elements.H1().Text("Title").IntoNode())).
		Child(elements.NodeValue(elements.P().Text("Content").IntoNode()))

	assert.Equal(t, `<div class="app"><h1>Title</h1><p>Content</p></div>`, ToString(el.IntoNode()))
}

// Scenario 4 from §8.
func TestRenderVoidVsNormal(t *testing.T) {
	input := elements.Input().Type("text")
	assert.Equal(t, `<input type="text" />`, ToString(input.IntoNode()))

	div := elements.Div().Text("<x>")
	assert.Equal(t, `<div>&lt;x&gt;</div>`, ToString(div.IntoNode()))
}

func TestRenderBooleanAttribute(t *testing.T) {
	enabled := elements.Input().Disabled(true)
	assert.Contains(t, ToString(enabled.IntoNode()), " disabled")

	disabled := elements.Input().Disabled(false)
	assert.NotContains(t, ToString(disabled.IntoNode()), "disabled")
}

func TestRenderFragment(t *testing.T) {
	frag := elements.Fragment(
		elements.Span().Text("A").IntoNode(),
		elements.Span().Text("B").IntoNode(),
	)
	assert.Equal(t, `<span>A</span><span>B</span>`, ToString(frag))
}

func TestRenderReactiveTextReadsOnce(t *testing.T) {
	calls := 0
	reactive := elements.Dynamic(func() string {
		calls++
		return "hi"
	})
	node := elements.TextReactive(reactive)
	out := ToString(node)
	assert.Equal(t, "hi", out)
	assert.Equal(t, 1, calls)
}

func TestRenderConditionalResolvesOnce(t *testing.T) {
	cond := elements.Static(true)
	els := elements.Text("no")
	node := elements.Conditional(cond, elements.Text("yes"), &els)
	assert.Equal(t, "yes", ToString(node))
}

func TestRenderEachProducesAllItems(t *testing.T) {
	items := []string{"a", "b", "c"}
	node := elements.Each(func() []string { return items }, func(item string, idx int) elements.Node {
		return elements.Li().Text(item).IntoNode()
	})
	assert.Equal(t, "<li>a</li><li>b</li><li>c</li>", ToString(node))
}

func TestRenderSuspenseAndErrorBoundary(t *testing.T) {
	loading := elements.Suspense(func() bool { return true }, elements.Text("loading"), elements.Text("ready"))
	assert.Equal(t, "loading", ToString(loading))

	ready := elements.Suspense(func() bool { return false }, elements.Text("loading"), elements.Text("ready"))
	assert.Equal(t, "ready", ToString(ready))

	withErr := elements.ErrorBoundary(
		func() (string, bool) { return "boom", true },
		func(msg string) elements.Node { return elements.Text("error: " + msg) },
		elements.Text("content"),
	)
	assert.Equal(t, "error: boom", ToString(withErr))

	noErr := elements.ErrorBoundary(
		func() (string, bool) { return "", false },
		func(msg string) elements.Node { return elements.Text("error: " + msg) },
		elements.Text("content"),
	)
	assert.Equal(t, "content", ToString(noErr))
}

func TestRenderHead(t *testing.T) {
	head := elements.NewHead().WithTitle("Home").WithDescription("desc").WithStylesheet("/app.css")
	out := ToString(elements.HeadNode(head))
	assert.Contains(t, out, "<title>Home</title>")
	assert.Contains(t, out, `name="description"`)
	assert.Contains(t, out, `rel="stylesheet"`)
}

func TestRenderComplexStructure(t *testing.T) {
	view := elements.Html().
		Child(elements.NodeValue(elements.Head_().Child(elements.NodeValue(elements.Title().Text("My App").IntoNode())).IntoNode())).
		Child(elements.NodeValue(elements.Body().Child(
			elements.NodeValue(elements.Div().ID("root").
				Child(elements.NodeValue(elements.Header().Child(elements.NodeValue(elements.Nav().Child(elements.NodeValue(elements.A().Href("/").Text("Home").IntoNode())).IntoNode())).IntoNode())).
				Child(elements.NodeValue(elements.Main().Child(elements.NodeValue(elements.H1().Text("Welcome").IntoNode())).IntoNode())).
				Child(elements.NodeValue(elements.Footer().Text("2024").IntoNode())).
				IntoNode()),
		).IntoNode()))

	out := ToString(view.IntoNode())
	assert.Contains(t, out, "<html>")
	assert.Contains(t, out, "<title>My App</title>")
	assert.Contains(t, out, `<div id="root">`)
	assert.Contains(t, out, `<a href="/">Home</a>`)
	assert.Contains(t, out, "</html>")
}
