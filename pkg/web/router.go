package web

import "net/http"

// Router maps page routes to handlers. Requests that match no registered
// pattern go to the not-found handler instead of the ServeMux 404 text.
type Router struct {
	mux      *http.ServeMux
	notFound http.Handler
}

// NewRouter creates a Router that renders unmatched requests with notFound.
// A nil notFound keeps the ServeMux default.
func NewRouter(notFound http.Handler) *Router {
	return &Router{
		mux:      http.NewServeMux(),
		notFound: notFound,
	}
}

// Get registers handler for GET requests to path.
func (r *Router) Get(path string, handler http.HandlerFunc) {
	r.mux.HandleFunc(http.MethodGet+" "+path, handler)
}

// Post registers handler for POST requests to path.
func (r *Router) Post(path string, handler http.HandlerFunc) {
	r.mux.HandleFunc(http.MethodPost+" "+path, handler)
}

// Handle registers handler for a full ServeMux pattern.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.notFound != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" {
			r.notFound.ServeHTTP(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}
