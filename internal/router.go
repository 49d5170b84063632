package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the interface handlers use to declare routes. Route-level
// middleware wraps only its own handler, first registered outermost.
type Router interface {
	GET(path string, h HandlerFunc, mw ...Middleware)
	POST(path string, h HandlerFunc, mw ...Middleware)
	PUT(path string, h HandlerFunc, mw ...Middleware)
	PATCH(path string, h HandlerFunc, mw ...Middleware)
	DELETE(path string, h HandlerFunc, mw ...Middleware)
	HEAD(path string, h HandlerFunc, mw ...Middleware)
	OPTIONS(path string, h HandlerFunc, mw ...Middleware)

	// Group opens an inline group with its own middleware stack and no
	// shared pattern prefix; Route shares a prefix as well.
	Group(fn func(r Router))
	Route(pattern string, fn func(r Router))

	// Use appends middleware to this router's stack.
	Use(mw ...Middleware)

	// Mount attaches a plain http.Handler at the given pattern. Static
	// bundle directories and third-party routers go in through here.
	Mount(pattern string, h http.Handler)
}

// routerAdapter implements Router on top of chi.Router.
type routerAdapter struct {
	router chi.Router
	app    *App
}

func (r *routerAdapter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodGet, path, h, mw)
}
func (r *routerAdapter) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPost, path, h, mw)
}
func (r *routerAdapter) PUT(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPut, path, h, mw)
}
func (r *routerAdapter) PATCH(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPatch, path, h, mw)
}
func (r *routerAdapter) DELETE(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodDelete, path, h, mw)
}
func (r *routerAdapter) HEAD(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodHead, path, h, mw)
}
func (r *routerAdapter) OPTIONS(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodOptions, path, h, mw)
}

func (r *routerAdapter) Group(fn func(Router)) {
	r.router.Group(func(cr chi.Router) { fn(r.child(cr)) })
}

func (r *routerAdapter) Route(pattern string, fn func(Router)) {
	r.router.Route(pattern, func(cr chi.Router) { fn(r.child(cr)) })
}

func (r *routerAdapter) Use(mw ...Middleware) {
	for _, m := range mw {
		r.router.Use(r.app.adaptMiddleware(m))
	}
}

func (r *routerAdapter) Mount(pattern string, h http.Handler) { r.router.Mount(pattern, h) }

func (r *routerAdapter) child(cr chi.Router) Router {
	return &routerAdapter{router: cr, app: r.app}
}

func (r *routerAdapter) handle(method, path string, h HandlerFunc, mw []Middleware) {
	// Wrap back to front so the first registered middleware runs first.
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	r.router.Method(method, path, r.app.wrapHandler(h))
}

// adaptMiddleware converts a Middleware to chi's http.Handler form so
// Context-based middleware can sit in chi's stack.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passthrough := func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			}
			c := newContext(w, r, a)
			if err := mw(passthrough)(c); err != nil {
				a.handleError(c, err)
			}
		})
	}
}
