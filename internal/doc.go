// Package internal carries the framework core behind the rosetta facade.
//
// Applications should not import this package directly. The root package
// "github.com/dmitrymomot/rosetta" re-exports everything public here.
//
// # Core Types
//
// The types applications touch day to day:
//
//   - App: owns the HTTP server, the routing table, and graceful shutdown
//   - Context: the per-request surface, from raw request access to the language helpers
//   - Router: route declaration with HTTP verbs, groups, and per-route middleware
//   - Handler: implemented by types that register their own routes
//   - HandlerFunc: a single route handler returning an error
//   - Middleware: wraps a HandlerFunc with concerns like locale resolution or logging
//   - ErrorHandler: turns handler errors into responses
//
// # Context as context.Context
//
// Context embeds context.Context and forwards Deadline, Done, Err, and
// Value to the request context. Handlers can therefore hand their Context
// to anything that wants a plain context:
//
//	func (h *Handler) showPage(c rosetta.Context) error {
//	    // Pass c directly to loaders, HTTP clients, etc.
//	    doc, err := h.origin.FetchPage(c, "index")
//	    if err != nil {
//	        return err
//	    }
//	    return c.HTML(200, doc)
//	}
//
// # Application Structure
//
// New builds an App from functional options:
//
//	app := internal.New(
//	    internal.WithHandlers(pagesHandler, switcherHandler),
//	    internal.WithMiddleware(localeMiddleware, panicMiddleware),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("i18n_origin", originCheck)),
//	)
//
// # Handler Pattern
//
// A Handler declares its routes on the Router it is given:
//
//	type PagesHandler struct {
//	    binder *binder.Binder
//	}
//
//	func (h *PagesHandler) Routes(r internal.Router) {
//	    r.GET("/", h.showIndex)
//	    r.POST("/lang/{code}", h.switchLanguage)
//	}
//
// Dependencies come in through the constructor, never out of the context.
// Handlers stay plain structs that are easy to build in tests.
//
// # Language Resolution
//
// The locale middleware resolves a language for each request and stores a
// translation manager in request-scoped storage. Context exposes the result
// through convenience methods that degrade to safe defaults when the
// middleware is not installed:
//
//   - T(key, ...): Translates a key, falling back to the key itself
//   - Lang() string: Returns the active language code, or empty string
//   - Dir(): Returns the writing direction of the active language
//   - IsRTL() bool: Reports whether the active language runs right to left
//
// Example:
//
//	func (h *Handler) showGreeting(c internal.Context) error {
//	    return c.String(200, c.T("home.greeting", i18n.M{"name": name}))
//	}
//
// The visitor's explicit choice persists through the preference cookie,
// written by the manager as part of a successful switch:
//
//	func (h *Handler) switchLanguage(c internal.Context) error {
//	    code := c.Param("code")
//	    if !h.langs.Supported(code) {
//	        return internal.ErrBadRequest("unknown language")
//	    }
//	    if err := c.Manager().SetLanguage(c, code); err != nil {
//	        return err
//	    }
//	    return c.Redirect(303, "/")
//	}
//
// # Request Handling
//
// Response helpers on Context cover the usual exits:
//
//	func (h *PagesHandler) showIndex(c internal.Context) error {
//	    page, err := h.binder.BindHTML(h.template(), c.Manager())
//	    if err != nil {
//	        return err
//	    }
//	    return c.HTML(http.StatusOK, page)
//	}
//
// # Middleware
//
// A Middleware takes the next HandlerFunc and returns a replacement. It can
// reject the request before the handler runs, decorate the response after,
// or both:
//
//	func ContentLanguage(next internal.HandlerFunc) internal.HandlerFunc {
//	    return func(c internal.Context) error {
//	        if lang := c.Lang(); lang != "" {
//	            c.SetHeader("Content-Language", lang)
//	        }
//	        return next(c)
//	    }
//	}
//
// Middleware registered on the App applies to every route; middleware passed
// to a route method applies to that route alone.
//
// # Error Handling
//
// Errors returned from handlers trigger the ErrorHandler:
//
//	func customErrorHandler(c internal.Context, err error) error {
//	    if he := internal.AsHTTPError(err); he != nil {
//	        return c.String(he.Code, c.T("errors."+he.ErrorCode))
//	    }
//	    c.LogError("unhandled error", "error", err)
//	    return c.Error(http.StatusInternalServerError, "internal server error")
//	}
//
// # Server Runtime
//
// Start the server with Run() or use the package-level Run() for
// multi-domain deployments:
//
//	// Single app
//	err := app.Run(":8080", internal.Logger(log))
//
//	// Language per host
//	err := internal.Run(
//	    internal.Domain("ar.example.com", arabicApp),
//	    internal.Fallback(siteApp),
//	    internal.Address(":8080"),
//	)
//
// # Features
//
// Beyond routing, Context bundles the request-handling staples:
//
//   - JSON, plain text, and raw HTML responses
//   - Translation lookup with the active language (T, Lang, Dir, IsRTL)
//   - Language preference persistence (Preference, SavePreference)
//   - Cookie management
//   - Standard library context.Context compatibility
//   - HTMX-aware response rendering
//   - Structured logging with request-scoped values
//   - Domain and subdomain extraction
//   - Custom context values
//
// # Design Principles
//
//   - Explicit over clever: no reflection, no service container, no magic registration
//   - Handlers own their logic; shared services appear once two handlers need them
//   - Dependencies arrive through constructors and are all visible in main.go
//   - pkg code never digs values out of a context; callers pass them in as parameters
//   - The framework supplies plumbing and stays out of page content
//
// See the rosetta package documentation for the public API and usage examples.
package internal
