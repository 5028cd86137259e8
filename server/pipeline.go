package server

import (
	"fmt"

	"github.com/nextgo-dev/core/render"
	"github.com/nextgo-dev/core/router"
)

// renderRouteHTML runs the nested-layout render pipeline §4.E point 6
// describes: resolve route's layout chain, render the page, then wrap it
// from the innermost layout outward, finally serializing with
// render.ToString. Used by StaticGenerator, whose build-time renders need
// no per-request reactive scope; the live dispatcher has its own
// renderNodeTree for that reason.
func renderRouteHTML(resolver *router.LayoutResolver, registry *PageRegistry, route router.Route, params map[string]string) (string, error) {
	pageRender, ok := registry.Page(route.Path)
	if !ok {
		return "", fmt.Errorf("server: no page registered for route %q", route.Path)
	}

	node := pageRender(params)

	layoutTree := resolver.Resolve(route)
	for i := len(layoutTree.Layouts) - 1; i >= 0; i-- {
		layout := layoutTree.Layouts[i]
		if layoutRender, ok := registry.Layout(layout.Path); ok {
			node = layoutRender(node, params)
		}
	}

	return render.ToString(node), nil
}

func renderNotFoundHTML(registry *PageRegistry) string {
	return render.ToString(registry.NotFound()(nil))
}
