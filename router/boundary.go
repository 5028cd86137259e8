package router

import (
	"os"
	"path/filepath"
	"strings"
)

// LoadingBoundary records a loading.go found along the path to a route.
type LoadingBoundary struct {
	File      string
	RoutePath string
}

// ErrorBoundary records an error.go found along the path to a route.
type ErrorBoundary struct {
	File      string
	RoutePath string
}

// NotFoundBoundary records a not_found.go found along the path to a route.
type NotFoundBoundary struct {
	File      string
	RoutePath string
}

// BoundaryStack accumulates the loading/error/not-found boundaries
// encountered while walking from the app root down to a route, nearest
// last. Grounded on next-router/src/boundary.rs's BoundaryStack.
type BoundaryStack struct {
	Loading  []LoadingBoundary
	Error    []ErrorBoundary
	NotFound *NotFoundBoundary
}

func (s *BoundaryStack) addLoading(file, routePath string) {
	s.Loading = append(s.Loading, LoadingBoundary{File: file, RoutePath: routePath})
}

func (s *BoundaryStack) addError(file, routePath string) {
	s.Error = append(s.Error, ErrorBoundary{File: file, RoutePath: routePath})
}

func (s *BoundaryStack) setNotFound(file, routePath string) {
	s.NotFound = &NotFoundBoundary{File: file, RoutePath: routePath}
}

// ClosestLoading returns the nearest-to-the-route loading boundary, or nil.
func (s *BoundaryStack) ClosestLoading() *LoadingBoundary {
	if len(s.Loading) == 0 {
		return nil
	}
	return &s.Loading[len(s.Loading)-1]
}

// ClosestError returns the nearest-to-the-route error boundary, or nil.
func (s *BoundaryStack) ClosestError() *ErrorBoundary {
	if len(s.Error) == 0 {
		return nil
	}
	return &s.Error[len(s.Error)-1]
}

// BoundaryResolver walks the app directory tree along a route's path,
// collecting every boundary file it passes. Grounded on
// next-router/src/boundary.rs's BoundaryResolver.
type BoundaryResolver struct {
	appDir string
}

// NewBoundaryResolver creates a resolver rooted at appDir.
func NewBoundaryResolver(appDir string) *BoundaryResolver {
	return &BoundaryResolver{appDir: appDir}
}

// Resolve walks from the app root to routePath, gathering boundaries at
// every level.
func (b *BoundaryResolver) Resolve(routePath string) BoundaryStack {
	var stack BoundaryStack

	var segments []string
	for _, part := range strings.Split(routePath, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}

	b.checkBoundaries(b.appDir, "/", &stack)

	currentDir := b.appDir
	currentPath := ""
	for _, segment := range segments {
		currentDir = filepath.Join(currentDir, segment)
		currentPath = currentPath + "/" + segment
		b.checkBoundaries(currentDir, currentPath, &stack)
	}

	return stack
}

func (b *BoundaryResolver) checkBoundaries(dir, routePath string, stack *BoundaryStack) {
	if path := filepath.Join(dir, "loading.go"); fileExists(path) {
		stack.addLoading(path, routePath)
	}
	if path := filepath.Join(dir, "error.go"); fileExists(path) {
		stack.addError(path, routePath)
	}
	if path := filepath.Join(dir, "not_found.go"); fileExists(path) {
		stack.setNotFound(path, routePath)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
