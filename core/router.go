package core

import (
	"net/http"
	"strings"
)

// RuntimeContext carries the per-process values the server hands the router
// at startup.
type RuntimeContext struct {
	Env         string
	EnableWatch bool
	OnReload    func()
	Secret      SigningKey
}

type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Router dispatches by method and path over a fixed route table.
type Router struct {
	config   Config
	env      string
	renderer *PageRenderer
	secret   SigningKey
	routes   []Route
}

var routerLog = GetLogger("router")

var NewRouter = func(config Config, ctx RuntimeContext) http.Handler {
	r := &Router{
		config:   config,
		env:      ctx.Env,
		renderer: NewPageRenderer(config, ctx.Env),
		secret:   ctx.Secret,
	}
	r.loadRoutes()

	if ctx.EnableWatch && ctx.OnReload != nil {
		StartWatcher([]string{config.TemplatesDir, config.StaticDir}, ctx.OnReload)
	}

	return r
}

func (r *Router) loadRoutes() {
	r.routes = []Route{
		{Method: http.MethodGet, Path: "/", Handler: r.handleIndex},
		{Method: http.MethodPost, Path: "/submit", Handler: r.handleSubmit},
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var allowed []string

	for _, route := range r.routes {
		if route.Path != req.URL.Path {
			continue
		}
		if req.Method == route.Method ||
			(route.Method == http.MethodGet && req.Method == http.MethodHead) {
			route.Handler(w, req)
			return
		}
		if route.Method == http.MethodGet {
			allowed = append(allowed, http.MethodGet, http.MethodHead)
		} else {
			allowed = append(allowed, route.Method)
		}
	}

	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	http.NotFound(w, req)
}

func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) {
	html, err := r.renderer.Render("index.html", nil)
	if err != nil {
		routerLog.Errorf("render index.html: %v", err)
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if r.config.DebugHeaders {
		w.Header().Set("X-Parrot-Route", "index.html")
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write(html)
}
