// A multi-language university landing page: one static HTML document,
// translated per request from JSON bundles, with a locale-aware news
// ticker and a cookie-persisted language preference.
//
// Run it and open http://localhost:8080. Point TRANSLATIONS_URL at any
// origin serving languages.json to load bundles over HTTP instead of
// the embedded files; this server exposes its own copy under /i18n/
// for exactly that purpose.
package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/rosetta"
	"github.com/dmitrymomot/rosetta/example/handlers"
	"github.com/dmitrymomot/rosetta/middlewares"
	"github.com/dmitrymomot/rosetta/pkg/binder"
	"github.com/dmitrymomot/rosetta/pkg/i18n"
	"github.com/dmitrymomot/rosetta/pkg/logger"
)

//go:embed static
var staticFS embed.FS

//go:embed translations
var translationsFS embed.FS

// Config is parsed from the environment, with an optional .env file for
// development. Sentry stays off until SENTRY_DSN is set.
type Config struct {
	Port            int    `env:"PORT" envDefault:"8080"`
	Environment     string `env:"ENVIRONMENT" envDefault:"development"`
	TranslationsURL string `env:"TRANSLATIONS_URL"`
	Sentry          logger.SentryConfig
}

func main() {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry,
		logger.WithService("university-site", cfg.Environment),
		logger.WithContextValue("request_id", middlewares.RequestIDKey),
	)

	manifests, bundles, err := translationSources(cfg)
	if err != nil {
		log.Error("translation source setup failed", logger.Error(err))
		os.Exit(1)
	}

	registry, err := i18n.NewRegistry(manifests, i18n.WithRegistryLogger(log))
	if err != nil {
		log.Error("registry setup failed", logger.Error(err))
		os.Exit(1)
	}

	bind, err := binder.New(
		binder.WithSwitchURL(func(code string) string { return "/lang/" + code }),
		binder.WithFlagBase("/assets/flags"),
		binder.WithLogger(log),
	)
	if err != nil {
		log.Error("binder setup failed", logger.Error(err))
		os.Exit(1)
	}

	index, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		log.Error("index document missing", logger.Error(err))
		os.Exit(1)
	}

	app := rosetta.New(
		rosetta.WithCustomLogger(log),
		rosetta.WithMiddleware(
			middlewares.CORS(),
			middlewares.RequestID(),
			middlewares.Logging(),
			middlewares.Recover(),
			middlewares.Locale(registry, bundles),
			visitorCookie,
		),
		rosetta.WithHandlers(handlers.NewPages(index, bind, registry)),
		rosetta.WithStaticFiles("/assets/", staticFS, "static"),
		rosetta.WithStaticFiles("/i18n/", translationsFS, "translations"),
		rosetta.WithPreferences(rosetta.WithPreferenceMaxAge(180*24*3600)),
		rosetta.WithErrorHandler(renderError),
		rosetta.WithNotFoundHandler(renderNotFound),
		rosetta.WithHealthChecks(
			rosetta.WithReadinessCheck("translations", func(ctx context.Context) error {
				_, err := manifests.Manifest(ctx)
				return err
			}),
		),
	)

	err = app.Run(fmt.Sprintf(":%d", cfg.Port),
		rosetta.Logger(log),
		rosetta.ShutdownTimeout(10*time.Second),
		rosetta.StartupHook(func(ctx context.Context) error {
			registry.Load(ctx)
			return nil
		}),
	)
	if err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

// translationSources picks where manifests and bundles come from: the
// configured HTTP origin, or the embedded files next to this binary.
func translationSources(cfg Config) (i18n.ManifestSource, i18n.Loader, error) {
	if cfg.TranslationsURL != "" {
		src, err := i18n.NewHTTPSource(cfg.TranslationsURL)
		if err != nil {
			return nil, nil, err
		}
		return src, src, nil
	}

	sub, err := fs.Sub(translationsFS, "translations")
	if err != nil {
		return nil, nil, err
	}
	src, err := i18n.NewFSSource(sub)
	if err != nil {
		return nil, nil, err
	}
	return src, src, nil
}

// visitorCookie tags first-time visitors with a random id so the access
// log can tell sessions apart without any account system.
func visitorCookie(next rosetta.HandlerFunc) rosetta.HandlerFunc {
	return func(c rosetta.Context) error {
		if _, err := c.Cookie("visitor_id"); err != nil {
			c.SetCookie("visitor_id", uuid.NewString(), 365*24*3600)
		}
		return next(c)
	}
}

// renderError translates errors that carry a translation code and falls
// back to the raw message for those that don't.
func renderError(c rosetta.Context, err error) error {
	he := rosetta.AsHTTPError(err)
	if he == nil {
		he = rosetta.ErrInternal("unexpected error",
			rosetta.WithErrorCode("errors.internal"))
	}

	msg := he.Message
	if he.ErrorCode != "" {
		msg = c.T(he.ErrorCode)
	}
	return c.String(he.Code, msg)
}

func renderNotFound(c rosetta.Context) error {
	return c.String(http.StatusNotFound, c.T("errors.not_found"))
}
