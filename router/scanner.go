package router

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SpecialFile names a recognized convention file within a route directory.
type SpecialFile int

const (
	FilePage SpecialFile = iota
	FileLayout
	FileLoading
	FileError
	FileNotFound
	FileRoute
)

// specialFileFromName classifies a Go source filename by its convention
// name, mirroring the page.tsx/layout.tsx/... set from scanner.rs adapted
// to this module's .go sources.
func specialFileFromName(name string) (SpecialFile, bool) {
	switch name {
	case "page.go":
		return FilePage, true
	case "layout.go":
		return FileLayout, true
	case "loading.go":
		return FileLoading, true
	case "error.go":
		return FileError, true
	case "not_found.go":
		return FileNotFound, true
	case "route.go":
		return FileRoute, true
	default:
		return 0, false
	}
}

// Scanner walks an app directory tree, producing one Route per directory
// that contains a page or route handler. Grounded on
// next-router/src/scanner.rs's RouteScanner.
type Scanner struct {
	appDir string
}

// NewScanner creates a scanner rooted at appDir.
func NewScanner(appDir string) *Scanner {
	return &Scanner{appDir: appDir}
}

// Scan walks the app directory and returns all discovered routes sorted by
// path.
func (s *Scanner) Scan() []Route {
	var routes []Route
	s.scanDir(s.appDir, "", &routes)
	sort.Slice(routes, func(i, j int) bool { return routes[i].Path < routes[j].Path })
	return routes
}

func (s *Scanner) scanDir(dir string, routePath string, routes *[]Route) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	path := routePath
	if path == "" {
		path = "/"
	}
	route := NewRoute(path)

	hasPage := false
	var subdirs []struct{ path, name string }

	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		if !entry.IsDir() {
			special, ok := specialFileFromName(name)
			if !ok {
				continue
			}
			switch special {
			case FilePage:
				route.PageFile = full
				hasPage = true
			case FileLayout:
				route.LayoutFile = full
			case FileLoading:
				route.LoadingFile = full
			case FileError:
				route.ErrorFile = full
			case FileNotFound:
				route.NotFoundFile = full
			case FileRoute:
				route.RouteFile = full
				hasPage = true
			}
			continue
		}
		subdirs = append(subdirs, struct{ path, name string }{full, name})
	}

	if hasPage {
		*routes = append(*routes, route)
	}

	for _, sub := range subdirs {
		segment := dirNameToSegment(sub.name)
		var newPath string
		switch {
		case routePath == "" && segment == "":
			newPath = ""
		case routePath == "":
			newPath = "/" + segment
		case segment == "":
			newPath = routePath
		default:
			newPath = routePath + "/" + segment
		}
		s.scanDir(sub.path, newPath, routes)
	}
}

// dirNameToSegment strips route groups: a directory named "(group)" is
// transparent to the URL path and contributes no segment.
func dirNameToSegment(name string) string {
	if strings.HasPrefix(name, "(") && strings.HasSuffix(name, ")") {
		return ""
	}
	return name
}
