package router

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLayoutTree(t *testing.T) string {
	t.Helper()
	app := t.TempDir()

	writeFile(t, filepath.Join(app, "layout.go"))
	writeFile(t, filepath.Join(app, "page.go"))

	writeFile(t, filepath.Join(app, "blog", "layout.go"))
	writeFile(t, filepath.Join(app, "blog", "page.go"))

	writeFile(t, filepath.Join(app, "blog", "[slug]", "page.go"))

	return app
}

func TestResolveRootLayout(t *testing.T) {
	app := buildLayoutTree(t)
	resolver := NewLayoutResolver(app)

	route := NewRoute("/")
	route.PageFile = filepath.Join(app, "page.go")
	tree := resolver.Resolve(route)

	require.Len(t, tree.Layouts, 1)
	assert.Equal(t, "/", tree.Layouts[0].Path)
}

func TestResolveNestedLayouts(t *testing.T) {
	app := buildLayoutTree(t)
	resolver := NewLayoutResolver(app)

	route := NewRoute("/blog")
	route.PageFile = filepath.Join(app, "blog", "page.go")
	tree := resolver.Resolve(route)

	require.Len(t, tree.Layouts, 2)
	assert.Equal(t, "/", tree.Layouts[0].Path)
	assert.Equal(t, "/blog", tree.Layouts[1].Path)
}

func TestResolveDynamicRouteLayouts(t *testing.T) {
	app := buildLayoutTree(t)
	resolver := NewLayoutResolver(app)

	route := NewRoute("/blog/[slug]")
	route.PageFile = filepath.Join(app, "blog", "[slug]", "page.go")
	tree := resolver.Resolve(route)

	require.Len(t, tree.Layouts, 2)
	assert.Equal(t, "/", tree.Layouts[0].Path)
	assert.Equal(t, "/blog", tree.Layouts[1].Path)
}

func TestRouteMetadata(t *testing.T) {
	route := NewRoute("/")
	route.LoadingFile = "loading.go"
	route.ErrorFile = "error.go"

	metadata := RouteMetadataFrom(route)

	assert.True(t, metadata.HasLoading())
	assert.True(t, metadata.HasErrorBoundary())
	assert.False(t, metadata.HasNotFound())
}
