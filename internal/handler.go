package internal

// Handler declares routes on a router.
//
// Example:
//
//	type PagesHandler struct {
//	    binder *binder.Binder
//	}
//
//	func (h *PagesHandler) Routes(r rosetta.Router) {
//	    r.GET("/", h.showHome)
//	    r.POST("/lang/{code}", h.switchLanguage)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers. Returning a non-nil
// error hands control to the application's error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect or modify the request, short-circuit processing,
// or wrap the response.
//
// Example:
//
//	func RequireHTMX(next rosetta.HandlerFunc) rosetta.HandlerFunc {
//	    return func(c rosetta.Context) error {
//	        if !c.IsHTMX() {
//	            return c.Redirect(http.StatusSeeOther, "/")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers.
type ErrorHandler func(Context, error) error
