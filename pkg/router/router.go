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

// Router is a small method-aware mux with single-segment wildcards ("*")
// and per-request logging. Routes register as METHOD:PATTERN.
type Router struct {
	routes map[string]HandlerFunc
	order  []string // patterns in registration order, most specific first
}

func New() *Router {
	return &Router{routes: make(map[string]HandlerFunc)}
}

func (r *Router) register(method, pattern string, handler HandlerFunc) {
	key := method + ":" + pattern
	if _, exists := r.routes[key]; !exists {
		r.order = append(r.order, key)
	}
	r.routes[key] = handler
}

func (r *Router) GET(pattern string, handler HandlerFunc)    { r.register(http.MethodGet, pattern, handler) }
func (r *Router) POST(pattern string, handler HandlerFunc)   { r.register(http.MethodPost, pattern, handler) }
func (r *Router) PUT(pattern string, handler HandlerFunc)    { r.register(http.MethodPut, pattern, handler) }
func (r *Router) DELETE(pattern string, handler HandlerFunc) { r.register(http.MethodDelete, pattern, handler) }

// ServeHTTP resolves the first registered pattern matching the request,
// logging every request with its status and duration
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	handler, pathKnown := r.resolve(req.Method, req.URL.Path)
	switch {
	case handler != nil:
		handler(lrw, req)
	case pathKnown:
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	default:
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

// resolve finds the handler for a method+path. The second return reports
// whether the path matches any route at all, so callers can distinguish
// 404 from 405.
func (r *Router) resolve(method, path string) (HandlerFunc, bool) {
	pathKnown := false
	for _, key := range r.order {
		sep := strings.Index(key, ":")
		keyMethod, pattern := key[:sep], key[sep+1:]
		if !matchPattern(path, pattern) {
			continue
		}
		pathKnown = true
		if keyMethod == method {
			return r.routes[key], true
		}
	}
	return nil, pathKnown
}

// matchPattern compares path segments against a pattern where "*" matches
// exactly one segment, except a trailing "*" which matches the rest
func matchPattern(path, pattern string) bool {
	pathSegments := strings.Split(strings.Trim(path, "/"), "/")
	patternSegments := strings.Split(strings.Trim(pattern, "/"), "/")

	last := len(patternSegments) - 1
	if last >= 0 && patternSegments[last] == "*" && len(pathSegments) >= last {
		pathSegments = pathSegments[:last]
		patternSegments = patternSegments[:last]
	}

	if len(pathSegments) != len(patternSegments) {
		return false
	}
	for i, seg := range patternSegments {
		if seg != "*" && seg != pathSegments[i] {
			return false
		}
	}
	return true
}

// PathParam extracts the path segment at the position a "*" occupies in the
// pattern, e.g. PathParam("/api/v1/sessions/abc/view", "/api/v1/sessions/*/view") -> "abc"
func PathParam(path, pattern string) string {
	pathSegments := strings.Split(strings.Trim(path, "/"), "/")
	patternSegments := strings.Split(strings.Trim(pattern, "/"), "/")
	for i, seg := range patternSegments {
		if seg == "*" && i < len(pathSegments) {
			return pathSegments[i]
		}
	}
	return ""
}

// Start runs the HTTP server on addr
func (r *Router) Start(addr string) error {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	return http.ListenAndServe(addr, r)
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
	case http.MethodPut:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
