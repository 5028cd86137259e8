package router

// Router owns the full scanned route table and answers path-matching
// queries against it. Grounded on next-router/src/lib.rs's Router.
type Router struct {
	Routes []Route
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{}
}

// FromRoutes wraps an already-scanned route slice.
func FromRoutes(routes []Route) *Router {
	return &Router{Routes: routes}
}

// AddRoute appends a route to the table.
func (r *Router) AddRoute(route Route) {
	r.Routes = append(r.Routes, route)
}

// MatchPath finds the best-matching route for path.
func (r *Router) MatchPath(path string) (MatchedRoute, bool) {
	return NewMatcher(r.Routes).MatchPath(path)
}

// StaticRoutes returns every route with no dynamic segment.
func (r *Router) StaticRoutes() []Route {
	var out []Route
	for _, route := range r.Routes {
		if !route.IsDynamic() {
			out = append(out, route)
		}
	}
	return out
}

// DynamicRoutes returns every route with at least one dynamic segment.
func (r *Router) DynamicRoutes() []Route {
	var out []Route
	for _, route := range r.Routes {
		if route.IsDynamic() {
			out = append(out, route)
		}
	}
	return out
}
