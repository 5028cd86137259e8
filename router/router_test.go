package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteCreationIsDynamic(t *testing.T) {
	route := NewRoute("/blog/[slug]")
	assert.Equal(t, "/blog/[slug]", route.Path)
	assert.True(t, route.IsDynamic())
}

func TestStaticRouteIsNotDynamic(t *testing.T) {
	route := NewRoute("/about")
	assert.False(t, route.IsDynamic())
}

func TestRouterAddRouteAndClassify(t *testing.T) {
	r := NewRouter()
	r.AddRoute(NewRoute("/"))
	r.AddRoute(NewRoute("/about"))
	r.AddRoute(NewRoute("/blog/[slug]"))

	assert.Len(t, r.Routes, 3)
	assert.Len(t, r.StaticRoutes(), 2)
	assert.Len(t, r.DynamicRoutes(), 1)
}

func TestRouterMatchPathDelegatesToMatcher(t *testing.T) {
	r := FromRoutes([]Route{NewRoute("/"), NewRoute("/blog/[slug]")})
	matched, ok := r.MatchPath("/blog/hello")
	assert.True(t, ok)
	assert.Equal(t, "hello", matched.Params["slug"])
}
