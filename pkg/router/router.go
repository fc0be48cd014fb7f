package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// Router is a small method-aware mux with trailing-wildcard routes
// ("/api/v1/download/*") and colored request logging.
type Router struct {
	exact    map[string]HandlerFunc // key = METHOD:PATH
	prefixes map[string]HandlerFunc // key = METHOD:PREFIX, from "PREFIX/*" routes
	paths    map[string]bool
}

func New() *Router {
	return &Router{
		exact:    make(map[string]HandlerFunc),
		prefixes: make(map[string]HandlerFunc),
		paths:    make(map[string]bool),
	}
}

func (r *Router) register(method, path string, handler HandlerFunc) {
	r.paths[path] = true
	if strings.HasSuffix(path, "/*") {
		r.prefixes[method+":"+strings.TrimSuffix(path, "*")] = handler
		return
	}
	r.exact[method+":"+path] = handler
}

func (r *Router) GET(path string, handler HandlerFunc)   { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)  { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)   { r.register(http.MethodPut, path, handler) }
func (r *Router) PATCH(path string, handler HandlerFunc) { r.register(http.MethodPatch, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

// lookup resolves a request to a handler. Exact routes win over
// wildcard prefixes.
func (r *Router) lookup(method, path string) (HandlerFunc, bool) {
	key := method + ":" + path
	if h, ok := r.exact[key]; ok {
		return h, true
	}
	for prefix, h := range r.prefixes {
		if strings.HasPrefix(key, prefix) {
			return h, true
		}
	}
	return nil, false
}

// pathKnown reports whether any method is registered for the path, so
// 405 can be distinguished from 404.
func (r *Router) pathKnown(path string) bool {
	if r.paths[path] {
		return true
	}
	for registered := range r.paths {
		if strings.HasSuffix(registered, "/*") && strings.HasPrefix(path, strings.TrimSuffix(registered, "*")) {
			return true
		}
	}
	return false
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	if h, ok := r.lookup(req.Method, req.URL.Path); ok {
		h(lrw, req)
	} else if r.pathKnown(req.URL.Path) {
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	} else {
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	duration := time.Since(start)
	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
	)
}

// --- Start server ---
func (r *Router) Start(addr string) {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	log.Fatal(http.ListenAndServe(addr, r))
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut, http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
