// Package rosetta provides an opinionated framework for building
// multilingual web applications in Go.
//
// Rosetta wraps a translation engine (pkg/i18n) in a thin HTTP layer: a
// language registry loaded from a manifest, per-request translation
// managers with cookie-persisted preferences, HTML localization via the
// binder, and a server runtime with per-host composition so each language
// can live on its own subdomain.
//
// # Quick Start
//
// Point a source at your translation directory, build a registry, and wire
// the Locale middleware:
//
//	source, err := i18n.NewFSSource(os.DirFS("./i18n"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry, err := rosetta.NewRegistry(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	app := rosetta.New(
//	    rosetta.WithLogger("site"),
//	    rosetta.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.Locale(registry, source),
//	    ),
//	    rosetta.WithHandlers(handlers.NewPages()),
//	)
//
//	if err := app.Run(":8080", rosetta.StartupHook(func(ctx context.Context) error {
//	    registry.Load(ctx)
//	    return nil
//	})); err != nil {
//	    log.Fatal(err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes. Inside a
// handler the context carries the resolved language:
//
//	type PagesHandler struct {
//	    index []byte
//	    bind  *binder.Binder
//	    langs *rosetta.Registry
//	}
//
//	func NewPages(bind *binder.Binder, langs *rosetta.Registry) *PagesHandler {
//	    return &PagesHandler{index: mustReadFile("index.html"), bind: bind, langs: langs}
//	}
//
//	func (h *PagesHandler) Routes(r rosetta.Router) {
//	    r.GET("/", h.showIndex)
//	    r.POST("/lang/{code}", h.switchLanguage)
//	}
//
//	func (h *PagesHandler) showIndex(c rosetta.Context) error {
//	    page, err := h.bind.BindHTML(bytes.NewReader(h.index), c.Manager())
//	    if err != nil {
//	        return err
//	    }
//	    return c.HTML(200, page)
//	}
//
//	func (h *PagesHandler) switchLanguage(c rosetta.Context) error {
//	    code := rosetta.Param[string](c, "code")
//	    if !h.langs.Supported(code) {
//	        return rosetta.ErrBadRequest("unknown language")
//	    }
//	    if err := c.Manager().SetLanguage(c, code); err != nil {
//	        return err
//	    }
//	    return c.Redirect(303, "/")
//	}
//
// # Translations in Handlers
//
//	func (h *PagesHandler) showGreeting(c rosetta.Context) error {
//	    return c.String(200, c.T("home.greeting", rosetta.M{"name": "Omar"}))
//	}
//
// T, Lang, Dir, and IsRTL degrade to safe defaults when the Locale
// middleware is not installed, so partial adoption stays possible.
//
// # Language Per Host
//
// Compose one App per language under Run for subdomain deployments:
//
//	arabic := rosetta.New(rosetta.WithHandlers(pages("ar")))
//	site := rosetta.New(rosetta.WithHandlers(pages("")))
//
//	err := rosetta.Run(
//	    rosetta.Domain("ar.acme.com", arabic),
//	    rosetta.Fallback(site),
//	    rosetta.Address(":8080"),
//	)
//
// # Shutdown
//
// The runtime handles SIGINT/SIGTERM for graceful shutdown. Register
// cleanup with ShutdownHook and preload work with StartupHook:
//
//	err := rosetta.Run(
//	    rosetta.Fallback(app),
//	    rosetta.StartupHook(func(ctx context.Context) error {
//	        registry.Load(ctx)
//	        return nil
//	    }),
//	    rosetta.ShutdownHook(watcher.Stop),
//	)
//
// # Going Lower
//
// The engine works without the HTTP layer. Use
// [github.com/dmitrymomot/rosetta/pkg/i18n] directly in CLIs, workers, or
// other frameworks; this package only adds the request plumbing around it.
package rosetta
