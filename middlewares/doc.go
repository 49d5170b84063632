// Package middlewares provides HTTP middleware for Rosetta applications.
//
// # Locale
//
// Locale is the integration point between the translation engine and the
// request cycle. It resolves the visitor's language, builds a per-request
// manager, and stores it where Context.T, Lang, Dir, and the binder find it.
//
//	registry, _ := rosetta.NewRegistry(source)
//	app := rosetta.New(
//	    rosetta.WithMiddleware(
//	        middlewares.Locale(registry, source),
//	    ),
//	)
//
// Resolution starts from the visitor's saved cookie preference, then walks
// the candidate chain: the lang query parameter, then Accept-Language
// matched against the registry. Replace the chain for other deployments:
//
//	middlewares.Locale(registry, source,
//	    middlewares.WithLocaleExtractor(rosetta.NewExtractor(
//	        middlewares.FromSubdomain(),            // ar.example.com
//	        rosetta.FromQuery("lang"),
//	        middlewares.FromAcceptLanguage(registry),
//	    )),
//	)
//
// # Request ID
//
// RequestID middleware assigns a unique ID to each request for tracing and
// debugging. It checks incoming headers for existing IDs or generates new
// ones using ULID.
//
//	app := rosetta.New(
//	    rosetta.WithMiddleware(
//	        middlewares.RequestID(),
//	    ),
//	)
//
// Use RequestIDExtractor() with WithLogger for automatic request_id in all logs:
//
//	app := rosetta.New(
//	    rosetta.WithLogger("site", middlewares.RequestIDExtractor()),
//	    rosetta.WithMiddleware(
//	        middlewares.RequestID(),
//	    ),
//	)
//
// # Logging
//
// Logging writes one structured line per request with method, path, status,
// duration, and the resolved language. Health probes are usually skipped:
//
//	middlewares.Logging(
//	    middlewares.WithLoggingSkipPaths("/health/live", "/health/ready"),
//	)
//
// # Recover
//
// Recover middleware catches panics and converts them to typed errors.
// The PanicError can be handled by the global ErrorHandler.
//
//	app := rosetta.New(
//	    rosetta.WithMiddleware(
//	        middlewares.Recover(),
//	    ),
//	    rosetta.WithErrorHandler(func(c rosetta.Context, err error) error {
//	        if middlewares.IsPanicError(err) {
//	            return c.Error(500, c.T("errors.internal"))
//	        }
//	        return c.Error(500, err.Error())
//	    }),
//	)
//
// # Timeout
//
// Timeout middleware enforces request timeouts and returns typed
// TimeoutError, capping how long a request can wait on a slow translation
// origin. The handler goroutine continues after timeout; use context.Done()
// for early termination.
//
//	app := rosetta.New(
//	    rosetta.WithMiddleware(
//	        middlewares.Timeout(5*time.Second),
//	    ),
//	    rosetta.WithErrorHandler(func(c rosetta.Context, err error) error {
//	        if middlewares.IsTimeoutError(err) {
//	            return c.Error(504, c.T("errors.timeout"))
//	        }
//	        return c.Error(500, err.Error())
//	    }),
//	)
//
// # CORS
//
// CORS middleware handles Cross-Origin Resource Sharing headers. Needed
// when one app serves the manifest and bundles that sibling apps on other
// hosts fetch.
//
//	app := rosetta.New(
//	    rosetta.WithMiddleware(
//	        middlewares.CORS(
//	            middlewares.WithAllowOrigins("https://ar.example.com", "https://en.example.com"),
//	        ),
//	    ),
//	)
//
// # Recommended Middleware Order
//
//	rosetta.WithMiddleware(
//	    middlewares.CORS(),       // First: handle preflight before other processing
//	    middlewares.RequestID(),  // Second: assign ID for all subsequent logging
//	    middlewares.Logging(),    // Third: one line per request, ID attached
//	    middlewares.Recover(),    // Fourth: catch panics from handlers below
//	    middlewares.Timeout(5*time.Second),
//	    middlewares.Locale(registry, source), // Last: language for handlers
//	)
//
// # Complete Example
//
//	import (
//	    "github.com/dmitrymomot/rosetta"
//	    "github.com/dmitrymomot/rosetta/middlewares"
//	)
//
//	app := rosetta.New(
//	    rosetta.WithLogger("site", middlewares.RequestIDExtractor()),
//	    rosetta.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Logging(),
//	        middlewares.Recover(),
//	        middlewares.Locale(registry, source),
//	    ),
//	    rosetta.WithErrorHandler(func(c rosetta.Context, err error) error {
//	        switch {
//	        case middlewares.IsPanicError(err):
//	            return c.Error(500, c.T("errors.internal"))
//	        case middlewares.IsTimeoutError(err):
//	            return c.Error(504, c.T("errors.timeout"))
//	        default:
//	            return c.Error(500, err.Error())
//	        }
//	    }),
//	)
package middlewares
