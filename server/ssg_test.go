package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nextgo-dev/core/elements"
	"github.com/nextgo-dev/core/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStub(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("package app\n"), 0o644))
}

func buildSsgTestApp(t *testing.T) string {
	t.Helper()
	app := t.TempDir()

	writeStub(t, filepath.Join(app, "page.go"))
	writeStub(t, filepath.Join(app, "about", "page.go"))
	writeStub(t, filepath.Join(app, "blog", "page.go"))
	writeStub(t, filepath.Join(app, "blog", "[slug]", "page.go"))

	return app
}

func stubPageRegistry() *PageRegistry {
	registry := NewPageRegistry()
	text := func(s string) PageRenderer {
		return func(map[string]string) elements.Node { return elements.Text(s) }
	}
	registry.RegisterPage("/", text("home"))
	registry.RegisterPage("/about", text("about"))
	registry.RegisterPage("/blog", text("blog"))
	registry.RegisterPage("/blog/[slug]", text("post"))
	registry.RegisterNotFound(text("not found"))
	return registry
}

func TestStaticGeneration(t *testing.T) {
	appDir := buildSsgTestApp(t)
	outputDir := filepath.Join(t.TempDir(), "dist")

	routes := router.NewScanner(appDir).Scan()
	r := router.FromRoutes(routes)
	registry := stubPageRegistry()

	generator := NewStaticGenerator(r, appDir, outputDir, registry)
	result, err := generator.Generate()
	require.NoError(t, err)

	assert.Equal(t, 4, result.PagesGenerated)

	assert.FileExists(t, filepath.Join(outputDir, "index.html"))
	assert.FileExists(t, filepath.Join(outputDir, "about", "index.html"))
	assert.FileExists(t, filepath.Join(outputDir, "blog", "index.html"))
	assert.FileExists(t, filepath.Join(outputDir, "404.html"))
	assert.FileExists(t, filepath.Join(outputDir, "manifest.json"))
}

func TestRouteToFilePath(t *testing.T) {
	assert.Equal(t, "index.html", routeToFilePath("/"))
	assert.Equal(t, filepath.Join("about", "index.html"), routeToFilePath("/about"))
	assert.Equal(t, filepath.Join("blog", "posts", "index.html"), routeToFilePath("/blog/posts"))
}

func TestStaticParamsFromSlugs(t *testing.T) {
	params := FromSlugs("slug", []string{"hello", "world", "test"})
	assert.Len(t, params.Params, 3)
	assert.Equal(t, "hello", params.Params[0]["slug"])
}
