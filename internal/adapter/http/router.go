package adapthttp

import (
	"net/http"
	"strings"
)

// Params holds the values bound to :name segments of the matched pattern.
type Params map[string]string

// HandlerFunc handles a request together with the path parameters extracted
// by the router.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, params Params)

type route struct {
	method   string
	segments []string
	handler  HandlerFunc
}

// Router dispatches requests by method and path pattern. Patterns are
// /-delimited literals where a segment starting with ':' binds any single
// non-empty path segment. The route table is built once at startup; the first
// registered route that matches wins.
type Router struct {
	routes []route
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Handle registers handler for the given method and pattern.
func (rt *Router) Handle(method, pattern string, handler HandlerFunc) {
	rt.routes = append(rt.routes, route{
		method:   method,
		segments: splitPath(pattern),
		handler:  handler,
	})
}

// Get registers a GET route.
func (rt *Router) Get(pattern string, handler HandlerFunc) {
	rt.Handle(http.MethodGet, pattern, handler)
}

// Post registers a POST route.
func (rt *Router) Post(pattern string, handler HandlerFunc) {
	rt.Handle(http.MethodPost, pattern, handler)
}

// ServeHTTP dispatches to the first route whose method and pattern match,
// answering a plain-text 404 when none does.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	segments := splitPath(r.URL.Path)
	for i := range rt.routes {
		rte := &rt.routes[i]
		if rte.method != r.Method {
			continue
		}
		params, ok := match(rte.segments, segments)
		if !ok {
			continue
		}
		rte.handler(w, r, params)
		return
	}
	http.NotFound(w, r)
}

// match compares pattern and path segment-for-segment. Segment counts must be
// equal; a ':name' segment binds any non-empty path segment verbatim, with no
// URL decoding beyond what the transport already applied.
func match(pattern, path []string) (Params, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}

	var params Params
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			if path[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(Params)
			}
			params[seg[1:]] = path[i]
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}
