package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementBuilderChaining(t *testing.T) {
	el := Div().Class("container").Child(H1().Text("Hello"))

	assert.Equal(t, "div", el.Tag())
	assert.True(t, el.HasClass("container"))
	require.Len(t, el.Children(), 1)
	assert.Equal(t, KindElement, el.Children()[0].Kind)
}

func TestNestedElements(t *testing.T) {
	view := Div().Class("app").
		Child(Nav().Class("sidebar").Child(Ul().ChildrenOf(
			NodeValue(Li().Child(A().Href("/").Text("Home")).IntoNode()),
			NodeValue(Li().Child(A().Href("/about").Text("About")).IntoNode()),
		))).
		Child(Main().Class("content").Child(H1().Text("Welcome")))

	assert.Equal(t, "div", view.Tag())
	assert.True(t, view.HasClass("app"))
	require.Len(t, view.Children(), 2)
}

func TestBuilderIsImmutableAfterBranching(t *testing.T) {
	base := Div().Class("base")
	a := base.Child(NodeValue(P().IntoNode()))
	b := base.Child(NodeValue(Span().IntoNode()))

	assert.Len(t, base.Children(), 0, "branching off base must not mutate it")
	assert.Len(t, a.Children(), 1)
	assert.Len(t, b.Children(), 1)
}

func TestEventHandlersStoredInOrder(t *testing.T) {
	var order []string
	el := Button().
		OnClick(func(Event) { order = append(order, "click") }).
		OnInput(func(Event) { order = append(order, "input") })

	require.Len(t, el.EventHandlers(), 2)
	el.EventHandlers()[0].Handler(Event{Type: "click"})
	el.EventHandlers()[1].Handler(Event{Type: "input"})
	assert.Equal(t, []string{"click", "input"}, order)
}

func TestAttributeStaticValueResolution(t *testing.T) {
	s := NewAttr("type", "text")
	assert.Equal(t, "text", s.ToStaticValue())

	b := NewBoolAttr("disabled", true)
	assert.Equal(t, "true", b.ToStaticValue())

	reactive := NewReactiveStringAttr("class", Dynamic(func() string { return "active" }))
	assert.Equal(t, "active", reactive.ToStaticValue())
}

func TestReactiveValueStaticAndDynamic(t *testing.T) {
	static := Static("fixed")
	assert.False(t, static.IsDynamic())
	assert.Equal(t, "fixed", static.Get())

	n := 0
	dyn := Dynamic(func() int {
		n++
		return n
	})
	assert.True(t, dyn.IsDynamic())
	assert.Equal(t, 1, dyn.Get())
	assert.Equal(t, 2, dyn.Get(), "each Get call re-evaluates the producer")
}

func TestEachMapsEveryItemToANode(t *testing.T) {
	items := []string{"a", "b", "c"}
	node := Each(func() []string { return items }, func(item string, idx int) Node {
		return Text(item)
	})

	require.Equal(t, KindReactiveList, node.Kind)
	nodes := node.List.Produce()
	require.Len(t, nodes, 3)
	assert.Equal(t, "b", nodes[1].Text)
}

func TestConditionalNode(t *testing.T) {
	cond := Dynamic(func() bool { return true })
	els := Text("else-branch")
	node := Conditional(cond, Text("then-branch"), &els)

	require.Equal(t, KindConditional, node.Kind)
	assert.True(t, node.Conditional.Cond.Get())
	assert.Equal(t, "then-branch", node.Conditional.Then.Text)
	assert.Equal(t, "else-branch", node.Conditional.Else.Text)
}

func TestSuspenseAndErrorBoundaryNodes(t *testing.T) {
	loading := false
	suspense := Suspense(func() bool { return loading }, Text("loading"), Text("ready"))
	require.Equal(t, KindSuspense, suspense.Kind)
	assert.False(t, suspense.Suspense.IsLoading())

	boundary := ErrorBoundary(
		func() (string, bool) { return "boom", true },
		func(msg string) Node { return Text("error: " + msg) },
		Text("content"),
	)
	require.Equal(t, KindErrorBoundary, boundary.Kind)
	msg, hasErr := boundary.ErrorBound.Err()
	assert.True(t, hasErr)
	assert.Equal(t, "boom", msg)
}

func TestHeadBuilder(t *testing.T) {
	h := NewHead().
		WithTitle("Home").
		WithDescription("desc").
		WithOGTitle("OG Home").
		WithStylesheet("/app.css")

	assert.Equal(t, "Home", h.Title)
	require.Len(t, h.Metas, 2)
	assert.Equal(t, "description", h.Metas[0].Name)
	assert.Equal(t, "og:title", h.Metas[1].Name)
	require.Len(t, h.Links, 1)
	assert.Equal(t, "stylesheet", h.Links[0].Rel)
}
