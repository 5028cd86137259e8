package router

import (
	"path/filepath"
	"strings"
)

// Layout is one layout.go found along a route's path, outermost first once
// collected into a LayoutTree.
type Layout struct {
	File string
	Path string
}

// LayoutTree is the ordered chain of layouts wrapping a route's page,
// outermost (root) layout first so a renderer can nest page inside
// tree.Layouts[len-1] inside ... inside tree.Layouts[0].
type LayoutTree struct {
	Page    string
	Layouts []Layout
}

// NewLayoutTree creates an empty tree for the given page file.
func NewLayoutTree(page string) LayoutTree {
	return LayoutTree{Page: page}
}

func (t *LayoutTree) addLayout(l Layout) {
	t.Layouts = append(t.Layouts, l)
}

// LayoutResolver walks from the app root down to a route, collecting every
// layout.go along the way. Grounded on next-router/src/layout.rs's
// LayoutResolver.
type LayoutResolver struct {
	appDir string
}

// NewLayoutResolver creates a resolver rooted at appDir.
func NewLayoutResolver(appDir string) *LayoutResolver {
	return &LayoutResolver{appDir: appDir}
}

// Resolve builds the layout chain for route. Panics if route has no page
// file, mirroring the original's documented precondition that only
// page-bearing routes are resolved for rendering.
func (r *LayoutResolver) Resolve(route Route) LayoutTree {
	if route.PageFile == "" {
		panic("router: Resolve called on a route with no page file")
	}

	tree := NewLayoutTree(route.PageFile)

	// Directory traversal needs the literal path components (e.g.
	// "[slug]"), not the parsed param names Segments() would yield.
	var segments []string
	for _, part := range strings.Split(route.Path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}

	if rootLayout, ok := r.findLayout(r.appDir); ok {
		tree.addLayout(Layout{File: rootLayout, Path: "/"})
	}

	currentDir := r.appDir
	routePath := ""
	for _, segment := range segments {
		currentDir = filepath.Join(currentDir, segment)
		routePath = routePath + "/" + segment
		if layoutFile, ok := r.findLayout(currentDir); ok {
			tree.addLayout(Layout{File: layoutFile, Path: routePath})
		}
	}

	return tree
}

func (r *LayoutResolver) findLayout(dir string) (string, bool) {
	path := filepath.Join(dir, "layout.go")
	if fileExists(path) {
		return path, true
	}
	return "", false
}

// RouteMetadata summarizes which special-case handling a route has
// available, supplemented from layout.rs's RouteMetadata for callers (the
// dispatcher in server/) that need to know without re-walking the tree.
type RouteMetadata struct {
	LoadingFile  string
	ErrorFile    string
	NotFoundFile string
}

// RouteMetadataFrom extracts the metadata already captured on route by the
// scanner.
func RouteMetadataFrom(route Route) RouteMetadata {
	return RouteMetadata{
		LoadingFile:  route.LoadingFile,
		ErrorFile:    route.ErrorFile,
		NotFoundFile: route.NotFoundFile,
	}
}

func (m RouteMetadata) HasLoading() bool       { return m.LoadingFile != "" }
func (m RouteMetadata) HasErrorBoundary() bool { return m.ErrorFile != "" }
func (m RouteMetadata) HasNotFound() bool      { return m.NotFoundFile != "" }
