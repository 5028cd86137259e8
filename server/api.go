package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ApiRequest is a normalized `/api/...` request, decoupled from net/http so
// handlers stay testable without a live server. Grounded on
// next-server/src/api.rs's ApiRequest.
type ApiRequest struct {
	Method  string
	Path    string
	Params  map[string]string
	Query   map[string]string
	Headers map[string]string
	Body    []byte
}

// Param returns a route param, if present.
func (r ApiRequest) Param(key string) (string, bool) {
	v, ok := r.Params[key]
	return v, ok
}

// QueryParam returns a query string value, if present.
func (r ApiRequest) QueryParam(key string) (string, bool) {
	v, ok := r.Query[key]
	return v, ok
}

// Header returns a request header, if present.
func (r ApiRequest) Header(key string) (string, bool) {
	v, ok := r.Headers[key]
	return v, ok
}

// parseQueryString splits "a=b&c=d" pairs, same semantics as
// next-server/src/api.rs's parse_query_string: a key with no '=' gets an
// empty value, not a dropped entry.
func parseQueryString(query string) map[string]string {
	result := make(map[string]string)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		key := parts[0]
		value := ""
		if len(parts) == 2 {
			value = parts[1]
		}
		result[key] = value
	}
	return result
}

// ApiResponse is a normalized API response: a status, a header set, and a
// body, converted to an http.ResponseWriter write at the dispatcher edge.
type ApiResponse struct {
	Status  int
	Headers map[string]string
	Body    string
}

func newApiResponse(status int, body string) ApiResponse {
	return ApiResponse{
		Status:  status,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	}
}

// Ok builds a 200 response with an empty JSON object body.
func Ok() ApiResponse { return newApiResponse(http.StatusOK, "{}") }

// Json marshals data to JSON as the body of a 200 response.
func Json(data any) ApiResponse {
	body, err := json.Marshal(data)
	if err != nil {
		body = []byte("{}")
	}
	return newApiResponse(http.StatusOK, string(body))
}

// Created marshals data to JSON as the body of a 201 response.
func Created(data any) ApiResponse {
	body, err := json.Marshal(data)
	if err != nil {
		body = []byte("{}")
	}
	return newApiResponse(http.StatusCreated, string(body))
}

// NoContent builds an empty 204 response.
func NoContent() ApiResponse { return newApiResponse(http.StatusNoContent, "") }

// BadRequest builds a 400 response with a JSON {"error": message} body.
func BadRequest(message string) ApiResponse {
	return jsonError(http.StatusBadRequest, message)
}

// NotFound builds a 404 response with a JSON {"error": message} body.
func NotFound(message string) ApiResponse {
	return jsonError(http.StatusNotFound, message)
}

// InternalError builds a 500 response with a JSON {"error": message} body.
func InternalError(message string) ApiResponse {
	return jsonError(http.StatusInternalServerError, message)
}

// MethodNotAllowed builds a 405 response.
func MethodNotAllowed() ApiResponse {
	return jsonError(http.StatusMethodNotAllowed, "Method not allowed")
}

func jsonError(status int, message string) ApiResponse {
	body, _ := json.Marshal(map[string]string{"error": message})
	return newApiResponse(status, string(body))
}

// WithHeader sets a header on the response, returning it for chaining.
func (r ApiResponse) WithHeader(key, value string) ApiResponse {
	headers := make(map[string]string, len(r.Headers)+1)
	for k, v := range r.Headers {
		headers[k] = v
	}
	headers[key] = value
	r.Headers = headers
	return r
}

// WithStatus overrides the response status, returning it for chaining.
func (r ApiResponse) WithStatus(status int) ApiResponse {
	r.Status = status
	return r
}

func (r ApiResponse) writeTo(w http.ResponseWriter) {
	for k, v := range r.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(r.Status)
	w.Write([]byte(r.Body))
}

// ApiHandlerFunc handles one HTTP method on one API route.
type ApiHandlerFunc func(req ApiRequest) ApiResponse

// routeHandlers holds up to one handler per HTTP method for a single path.
type routeHandlers struct {
	get, post, put, patch, delete, head, options ApiHandlerFunc
}

func (h *routeHandlers) handle(method string, req ApiRequest) ApiResponse {
	var handler ApiHandlerFunc
	switch method {
	case http.MethodGet:
		handler = h.get
	case http.MethodPost:
		handler = h.post
	case http.MethodPut:
		handler = h.put
	case http.MethodPatch:
		handler = h.patch
	case http.MethodDelete:
		handler = h.delete
	case http.MethodHead:
		handler = h.head
	case http.MethodOptions:
		handler = h.options
	}

	if handler != nil {
		return handler(req)
	}
	if method == http.MethodOptions {
		return h.handleOptions()
	}
	return MethodNotAllowed().WithHeader("Allow", h.handleOptions().Headers["Allow"])
}

func (h *routeHandlers) handleOptions() ApiResponse {
	methods := []string{"OPTIONS"}
	if h.get != nil {
		methods = append(methods, "GET")
	}
	if h.post != nil {
		methods = append(methods, "POST")
	}
	if h.put != nil {
		methods = append(methods, "PUT")
	}
	if h.patch != nil {
		methods = append(methods, "PATCH")
	}
	if h.delete != nil {
		methods = append(methods, "DELETE")
	}
	if h.head != nil {
		methods = append(methods, "HEAD")
	}

	allow := strings.Join(methods, ", ")
	return Ok().WithHeader("Allow", allow).WithHeader("Access-Control-Allow-Methods", allow)
}

// ApiRouteHandler dispatches `/api/...` requests to per-path, per-method
// handlers. Grounded on next-server/src/api.rs's ApiRouteHandler.
type ApiRouteHandler struct {
	handlers map[string]*routeHandlers
}

// NewApiRouteHandler creates an empty route handler.
func NewApiRouteHandler() *ApiRouteHandler {
	return &ApiRouteHandler{handlers: make(map[string]*routeHandlers)}
}

func (h *ApiRouteHandler) entry(path string) *routeHandlers {
	rh, ok := h.handlers[path]
	if !ok {
		rh = &routeHandlers{}
		h.handlers[path] = rh
	}
	return rh
}

// RegisterGet registers a GET handler for path.
func (h *ApiRouteHandler) RegisterGet(path string, fn ApiHandlerFunc) { h.entry(path).get = fn }

// RegisterPost registers a POST handler for path.
func (h *ApiRouteHandler) RegisterPost(path string, fn ApiHandlerFunc) { h.entry(path).post = fn }

// RegisterPut registers a PUT handler for path.
func (h *ApiRouteHandler) RegisterPut(path string, fn ApiHandlerFunc) { h.entry(path).put = fn }

// RegisterPatch registers a PATCH handler for path.
func (h *ApiRouteHandler) RegisterPatch(path string, fn ApiHandlerFunc) { h.entry(path).patch = fn }

// RegisterDelete registers a DELETE handler for path.
func (h *ApiRouteHandler) RegisterDelete(path string, fn ApiHandlerFunc) { h.entry(path).delete = fn }

// RegisterHead registers a HEAD handler for path.
func (h *ApiRouteHandler) RegisterHead(path string, fn ApiHandlerFunc) { h.entry(path).head = fn }

// Handle dispatches req to the registered handler for its path and method.
func (h *ApiRouteHandler) Handle(path string, req ApiRequest) ApiResponse {
	rh, ok := h.handlers[path]
	if !ok {
		return NotFound("API route not found")
	}
	return rh.handle(req.Method, req)
}

// HasRoute reports whether any handler is registered for path.
func (h *ApiRouteHandler) HasRoute(path string) bool {
	_, ok := h.handlers[path]
	return ok
}
