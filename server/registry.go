package server

import "github.com/nextgo-dev/core/elements"

// PageRenderer builds a page's element tree from its route params. Routes
// are discovered on disk by router.Scanner, but Go has no runtime
// equivalent of dynamically importing a scanned page.rs file, so the
// application registers the callable behind each discovered path
// explicitly at startup; the registry is the seam between "what routes
// exist" (router.Router) and "how to render them" (this map).
type PageRenderer func(params map[string]string) elements.Node

// LayoutRenderer wraps children in a layout's chrome.
type LayoutRenderer func(children elements.Node, params map[string]string) elements.Node

// ErrorRenderer builds the fallback tree an error.go boundary shows when
// rendering panics below it.
type ErrorRenderer func(message string, params map[string]string) elements.Node

// PageRegistry maps route paths to their page and layout renderers, built
// once at startup and read-only for the lifetime of the process (§5: no
// writer ever runs concurrently with request handling).
type PageRegistry struct {
	pages       map[string]PageRenderer
	layouts     map[string]LayoutRenderer
	errors      map[string]ErrorRenderer
	notFound    PageRenderer
	apiHandlers map[string]bool
}

// NewPageRegistry creates an empty registry.
func NewPageRegistry() *PageRegistry {
	return &PageRegistry{
		pages:       make(map[string]PageRenderer),
		layouts:     make(map[string]LayoutRenderer),
		errors:      make(map[string]ErrorRenderer),
		apiHandlers: make(map[string]bool),
	}
}

// RegisterPage binds a page renderer to a route path.
func (r *PageRegistry) RegisterPage(routePath string, render PageRenderer) {
	r.pages[routePath] = render
}

// RegisterLayout binds a layout renderer to the directory path it was
// found at (the same Path a router.Layout carries).
func (r *PageRegistry) RegisterLayout(layoutPath string, render LayoutRenderer) {
	r.layouts[layoutPath] = render
}

// RegisterNotFound binds the renderer used for the 404 page.
func (r *PageRegistry) RegisterNotFound(render PageRenderer) {
	r.notFound = render
}

// RegisterError binds an error boundary's fallback renderer to the
// directory path router.BoundaryResolver found it at.
func (r *PageRegistry) RegisterError(boundaryPath string, render ErrorRenderer) {
	r.errors[boundaryPath] = render
}

// Page looks up the renderer for a route path.
func (r *PageRegistry) Page(routePath string) (PageRenderer, bool) {
	render, ok := r.pages[routePath]
	return render, ok
}

// Layout looks up the renderer for a layout path.
func (r *PageRegistry) Layout(layoutPath string) (LayoutRenderer, bool) {
	render, ok := r.layouts[layoutPath]
	return render, ok
}

// Error looks up the renderer for an error boundary path.
func (r *PageRegistry) Error(boundaryPath string) (ErrorRenderer, bool) {
	render, ok := r.errors[boundaryPath]
	return render, ok
}

// NotFound returns the registered not-found renderer, or a minimal
// built-in fallback if none was registered.
func (r *PageRegistry) NotFound() PageRenderer {
	if r.notFound != nil {
		return r.notFound
	}
	return func(map[string]string) elements.Node {
		return elements.Text("404 Not Found")
	}
}
