package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nextgo-dev/core/actions"
	"github.com/nextgo-dev/core/elements"
	"github.com/nextgo-dev/core/reactive"
	"github.com/nextgo-dev/core/render"
	"github.com/nextgo-dev/core/router"
	"github.com/nextgo-dev/core/rsc"
)

const (
	rscPrefix    = "/_rsc"
	actionPrefix = "/_action/"
	apiPrefix    = "/api"
	wsPrefix     = "/ws"
)

// Dispatcher implements http.Handler, classifying and routing every
// incoming request per §4.E's ordered list. Internally a chi router
// (buildRouter), grounded on 2389-research-mammoth/web/server.go's
// buildRouter method, which this dispatcher mirrors in shape (middleware
// stack, then one mount per concern) though every concern below it is
// this module's own domain rather than mammoth's wizard flow.
type Dispatcher struct {
	cfg        Config
	router     *router.Router
	layouts    *router.LayoutResolver
	boundaries *router.BoundaryResolver
	registry   *PageRegistry
	actions    *actions.Registry
	api        *ApiRouteHandler
	ws         *WsRegistry
	cache      *IncrementalCache
	isr        IsrConfig
	chiRouter  chi.Router
}

// NewDispatcher wires every collaborator together and builds the chi
// router. routes is typically the result of router.NewScanner(cfg.AppDir).Scan().
func NewDispatcher(cfg Config, routes []router.Route, registry *PageRegistry, actionRegistry *actions.Registry, api *ApiRouteHandler, ws *WsRegistry) *Dispatcher {
	cfg = cfg.withDefaults()
	d := &Dispatcher{
		cfg:        cfg,
		router:     router.FromRoutes(routes),
		layouts:    router.NewLayoutResolver(cfg.AppDir),
		boundaries: router.NewBoundaryResolver(cfg.AppDir),
		registry:   registry,
		actions:    actionRegistry,
		api:        api,
		ws:         ws,
		cache:      NewIncrementalCache(DefaultIsrConfig().RevalidateSeconds),
		isr:        DefaultIsrConfig(),
	}
	d.chiRouter = d.buildRouter()
	return d
}

// ServeHTTP delegates to the chi router.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.chiRouter.ServeHTTP(w, r)
}

func (d *Dispatcher) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	for prefix, dir := range d.staticMounts() {
		handler := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
		r.Handle(prefix+"*", cacheHeaders(handler))
	}

	r.Get(wsPrefix+"*", d.handleWsUpgrade)

	r.Post(actionPrefix+"*", d.handleAction)

	r.Get(rscPrefix+"*", d.handleRsc)

	r.HandleFunc(apiPrefix+"/*", d.handleAPI)

	r.NotFound(d.handleCatchAll)

	return r
}

// StaticDir returns the directory static assets are served from: always
// "public".
func (c Config) StaticDir() string {
	return "public"
}

// staticMounts lists every URL-prefix-to-directory mapping §4.E point 1
// serves: the app's own public/ assets plus the two build-output
// directories a bundler would populate (.next/static, pkg).
func (d *Dispatcher) staticMounts() map[string]string {
	return map[string]string{
		"/public/":       d.cfg.StaticDir(),
		"/.next/static/": filepath.Join(d.cfg.OutputDir, ".next", "static"),
		"/pkg/":          filepath.Join(d.cfg.OutputDir, "pkg"),
	}
}

func cacheHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ext := filepath.Ext(r.URL.Path)
		if ct := mime.TypeByExtension(ext); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		if ext == ".html" || ext == "" {
			w.Header().Set("Cache-Control", "no-cache")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		}
		next.ServeHTTP(w, r)
	})
}

func (d *Dispatcher) handleWsUpgrade(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	handler, ok := d.ws.GetHandler(path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := d.ws.HandleUpgrade(w, r, handler); err != nil {
		slog.Warn("websocket upgrade failed", "path", path, "error", err)
	}
}

func (d *Dispatcher) handleAction(w http.ResponseWriter, r *http.Request) {
	actionID := strings.TrimPrefix(r.URL.Path, actionPrefix)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeActionEnvelope(w, actions.Failure(actions.NewErrorWithCode("failed to read request body", "IO_ERROR")))
		return
	}

	resp := d.actions.Execute(actions.Request{ActionID: actionID, Payload: body})
	writeActionEnvelope(w, resp)
}

func writeActionEnvelope(w http.ResponseWriter, resp actions.Response) {
	status := http.StatusOK
	if !resp.Success {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func (d *Dispatcher) handleRsc(w http.ResponseWriter, r *http.Request) {
	routePath := strings.TrimPrefix(r.URL.Path, rscPrefix)
	if routePath == "" {
		routePath = "/"
	}
	d.renderRsc(w, routePath)
}

func (d *Dispatcher) renderRsc(w http.ResponseWriter, routePath string) {
	w.Header().Set("Content-Type", "text/x-component; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")

	matched, ok := d.router.MatchPath(routePath)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `0:{"type":"text","value":"404 Not Found"}`)
		return
	}

	node, err := d.renderNodeTree(matched.Route, matched.Params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `0:{"type":"text","value":"render error"}`)
		return
	}

	payload := rsc.RenderToPayload(node)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, payload.ToWireFormat())
}

func (d *Dispatcher) handleAPI(w http.ResponseWriter, r *http.Request) {
	matched, ok := d.router.MatchPath(r.URL.Path)
	if !ok || !matched.Route.IsAPI() {
		NotFound("API route not found").writeTo(w)
		return
	}

	body, _ := io.ReadAll(r.Body)
	req := ApiRequest{
		Method:  r.Method,
		Path:    r.URL.Path,
		Params:  matched.Params,
		Query:   parseQueryString(r.URL.RawQuery),
		Headers: flattenHeaders(r.Header),
		Body:    body,
	}

	d.api.Handle(r.URL.Path, req).writeTo(w)
}

func flattenHeaders(h http.Header) map[string]string {
	flat := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			flat[k] = v[0]
		}
	}
	return flat
}

// handleCatchAll is the HTML page path (§4.E point 6), also handling the
// `Accept: text/x-component` content-negotiation case that sends an
// otherwise-HTML navigation through the RSC pipeline instead.
func (d *Dispatcher) handleCatchAll(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "text/x-component") {
		d.renderRsc(w, r.URL.Path)
		return
	}
	d.handleHTML(w, r)
}

func (d *Dispatcher) handleHTML(w http.ResponseWriter, r *http.Request) {
	matched, ok := d.router.MatchPath(r.URL.Path)
	if !ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, renderNotFoundHTML(d.registry))
		return
	}

	if cached, fresh := d.cache.GetIfFresh(matched.Route.Path); fresh {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, cached.HTML)
		return
	}

	node, err := d.renderNodeTree(matched.Route, matched.Params)
	if err != nil {
		slog.Error("render failed", "route", matched.Route.Path, "error", err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, render.ToString(d.renderErrorFallback(matched.Route.Path, err.Error())))
		return
	}
	html := render.ToString(node)

	d.cache.SetWithRevalidate(matched.Route.Path, html, d.isr.RevalidateSeconds)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, html)
}

// renderNodeTree runs a route's page+layout pipeline inside a fresh
// reactive scope, created on the request goroutine and disposed before
// renderNodeTree returns (so before the response is written).
func (d *Dispatcher) renderNodeTree(route router.Route, params map[string]string) (node elements.Node, err error) {
	pageRender, ok := d.registry.Page(route.Path)
	if !ok {
		return node, NewDispatchError(RouteNotFound, "no page registered for "+route.Path, nil)
	}

	scope := reactive.NewScope()
	defer func() {
		if rec := recover(); rec != nil {
			err = NewDispatchError(RenderError, fmt.Sprintf("panic: %v\n%s", rec, reactive.DumpTree(scope)), nil)
		}
		scope.Dispose()
	}()

	scope.Run(func() {
		node = pageRender(params)

		layoutTree := d.layouts.Resolve(route)
		for i := len(layoutTree.Layouts) - 1; i >= 0; i-- {
			layout := layoutTree.Layouts[i]
			if layoutRender, ok := d.registry.Layout(layout.Path); ok {
				node = layoutRender(node, params)
			}
		}
	})

	return node, nil
}

// renderErrorFallback finds the closest error.go boundary above routePath
// per §4.D's "closest (deepest) error" rule and invokes its registered
// renderer; falls back to a bare diagnostic text node if none is
// registered.
func (d *Dispatcher) renderErrorFallback(routePath, message string) elements.Node {
	stack := d.boundaries.Resolve(routePath)
	if eb := stack.ClosestError(); eb != nil {
		if render, ok := d.registry.Error(eb.RoutePath); ok {
			return render(message, nil)
		}
	}
	return elements.Text(message)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: 0}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		slog.Info("request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", time.Since(start).Round(time.Microsecond).String(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
