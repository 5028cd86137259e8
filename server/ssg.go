package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nextgo-dev/core/router"
	"github.com/oklog/ulid/v2"
)

// StaticGenerator renders every static (non-dynamic, non-API) route to an
// output directory, supplementing the distillation's "Out of scope: Build
// orchestration" framing per §6's "Output filesystem (SSG)" requirement.
// Grounded on next-server/src/ssg.rs's StaticGenerator.
type StaticGenerator struct {
	router    *router.Router
	appDir    string
	outputDir string
	registry  *PageRegistry
}

// NewStaticGenerator creates a generator that renders r's static routes
// into outputDir using registry's page/layout renderers.
func NewStaticGenerator(r *router.Router, appDir, outputDir string, registry *PageRegistry) *StaticGenerator {
	return &StaticGenerator{router: r, appDir: appDir, outputDir: outputDir, registry: registry}
}

// GeneratedFile records one file StaticGenerator wrote.
type GeneratedFile struct {
	Route     string
	FilePath  string
	SizeBytes uint64
}

// GenerationResult summarizes a Generate run.
type GenerationResult struct {
	PagesGenerated int
	TotalSizeBytes uint64
	Files          []GeneratedFile
	BuildID        string
	GeneratedAt    time.Time
}

// Generate renders every static route plus the 404 page, and writes a
// manifest.json recording the build id and timestamp so repeated builds
// are distinguishable without relying on filesystem mtimes.
func (g *StaticGenerator) Generate() (GenerationResult, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return GenerationResult{}, fmt.Errorf("server: creating output dir: %w", err)
	}

	result := GenerationResult{
		BuildID:     ulid.Make().String(),
		GeneratedAt: time.Now(),
	}

	resolver := router.NewLayoutResolver(g.appDir)

	for _, route := range g.router.StaticRoutes() {
		if route.IsAPI() {
			continue
		}

		html, err := renderRouteHTML(resolver, g.registry, route, map[string]string{})
		if err != nil {
			return GenerationResult{}, err
		}

		relPath := routeToFilePath(route.Path)
		fullPath := filepath.Join(g.outputDir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return GenerationResult{}, fmt.Errorf("server: creating page dir: %w", err)
		}
		if err := os.WriteFile(fullPath, []byte(html), 0o644); err != nil {
			return GenerationResult{}, fmt.Errorf("server: writing page: %w", err)
		}

		size := uint64(len(html))
		result.PagesGenerated++
		result.TotalSizeBytes += size
		result.Files = append(result.Files, GeneratedFile{
			Route:     route.Path,
			FilePath:  fullPath,
			SizeBytes: size,
		})
	}

	if err := g.generateNotFound(&result); err != nil {
		return GenerationResult{}, err
	}
	if err := g.writeManifest(result); err != nil {
		return GenerationResult{}, err
	}

	return result, nil
}

func routeToFilePath(routePath string) string {
	if routePath == "/" {
		return "index.html"
	}
	clean := strings.TrimPrefix(routePath, "/")
	return filepath.Join(clean, "index.html")
}

func (g *StaticGenerator) generateNotFound(result *GenerationResult) error {
	html := renderNotFoundHTML(g.registry)
	fullPath := filepath.Join(g.outputDir, "404.html")
	if err := os.WriteFile(fullPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("server: writing 404 page: %w", err)
	}

	size := uint64(len(html))
	result.PagesGenerated++
	result.TotalSizeBytes += size
	result.Files = append(result.Files, GeneratedFile{
		Route:     "404",
		FilePath:  fullPath,
		SizeBytes: size,
	})
	return nil
}

func (g *StaticGenerator) writeManifest(result GenerationResult) error {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"build_id\": %q,\n", result.BuildID)
	fmt.Fprintf(&b, "  \"generated_at\": %q,\n", result.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "  \"pages_generated\": %d,\n", result.PagesGenerated)
	b.WriteString("  \"routes\": [")
	for i, f := range result.Files {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", f.Route)
	}
	b.WriteString("]\n}\n")

	path := filepath.Join(g.outputDir, "manifest.json")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("server: writing manifest: %w", err)
	}
	return nil
}

// StaticParams is a set of pre-rendered param combinations for a dynamic
// route, e.g. every known blog slug. Grounded on next-server/src/ssg.rs's
// StaticParams.
type StaticParams struct {
	Params []map[string]string
}

// NewStaticParams creates an empty set.
func NewStaticParams() *StaticParams {
	return &StaticParams{}
}

// Add appends one param combination.
func (p *StaticParams) Add(params map[string]string) {
	p.Params = append(p.Params, params)
}

// FromSlugs builds one param set per slug, all under paramName.
func FromSlugs(paramName string, slugs []string) *StaticParams {
	params := NewStaticParams()
	for _, slug := range slugs {
		params.Add(map[string]string{paramName: slug})
	}
	return params
}
