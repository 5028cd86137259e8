package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiResponseJson(t *testing.T) {
	type user struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	resp := Json(user{ID: 1, Name: "Alice"})

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Contains(t, resp.Body, "Alice")
}

func TestApiResponseNotFound(t *testing.T) {
	resp := NotFound("User not found")
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Contains(t, resp.Body, "User not found")
}

func TestApiResponseWithHeader(t *testing.T) {
	resp := Ok().WithHeader("X-Custom", "value").WithHeader("Cache-Control", "no-cache")
	assert.Equal(t, "value", resp.Headers["X-Custom"])
}

func TestParseQueryString(t *testing.T) {
	query := parseQueryString("foo=bar&baz=qux&empty=")
	assert.Equal(t, "bar", query["foo"])
	assert.Equal(t, "qux", query["baz"])
	assert.Equal(t, "", query["empty"])
}

func TestApiRouteHandlerRegistration(t *testing.T) {
	handler := NewApiRouteHandler()
	handler.RegisterGet("/api/users", func(ApiRequest) ApiResponse {
		return Json([]string{"user1", "user2"})
	})
	handler.RegisterPost("/api/users", func(ApiRequest) ApiResponse {
		return Created(map[string]int{"id": 1})
	})

	assert.True(t, handler.HasRoute("/api/users"))
	assert.False(t, handler.HasRoute("/api/posts"))
}

func TestApiRequestParams(t *testing.T) {
	req := ApiRequest{
		Method:  http.MethodGet,
		Path:    "/api/users/123",
		Params:  map[string]string{"id": "123"},
		Query:   map[string]string{"page": "1"},
		Headers: map[string]string{},
	}

	id, ok := req.Param("id")
	assert.True(t, ok)
	assert.Equal(t, "123", id)

	page, ok := req.QueryParam("page")
	assert.True(t, ok)
	assert.Equal(t, "1", page)
}

func TestApiMethodNotAllowed(t *testing.T) {
	handler := NewApiRouteHandler()
	handler.RegisterGet("/api/readonly", func(ApiRequest) ApiResponse { return Ok() })

	req := ApiRequest{Method: http.MethodPost, Path: "/api/readonly"}
	resp := handler.Handle("/api/readonly", req)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Status)
}

func TestApiOptionsResponse(t *testing.T) {
	handler := NewApiRouteHandler()
	handler.RegisterGet("/api/users", func(ApiRequest) ApiResponse { return Ok() })
	handler.RegisterPost("/api/users", func(ApiRequest) ApiResponse { return Ok() })

	req := ApiRequest{Method: http.MethodOptions, Path: "/api/users"}
	resp := handler.Handle("/api/users", req)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Contains(t, resp.Headers["Allow"], "GET")
	assert.Contains(t, resp.Headers["Allow"], "POST")
}
