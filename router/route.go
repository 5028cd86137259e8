package router

// Route is one scanned leaf of the app directory: a URL path plus whichever
// special files were found alongside it. Grounded on
// next-router/src/lib.rs's Route struct.
type Route struct {
	Path         string
	PageFile     string
	LayoutFile   string
	LoadingFile  string
	ErrorFile    string
	NotFoundFile string
	RouteFile    string
}

// NewRoute creates an empty route for the given URL path.
func NewRoute(path string) Route {
	return Route{Path: path}
}

// Segments parses the route's own path into matchable segments.
func (r Route) Segments() []Segment {
	return ParseSegments(r.Path)
}

// IsAPI reports whether this route is a route handler (route.ts-equivalent)
// rather than a page.
func (r Route) IsAPI() bool {
	return r.RouteFile != ""
}

// IsDynamic reports whether any segment of the route binds a parameter.
func (r Route) IsDynamic() bool {
	for _, seg := range r.Segments() {
		if seg.Kind != SegmentStatic {
			return true
		}
	}
	return false
}
