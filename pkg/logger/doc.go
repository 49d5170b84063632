// Package logger builds slog loggers with context-extracted attributes and
// optional Sentry fan-out.
//
// Every constructor wraps the handler so registered ContextExtractors run on
// each log call. Request-scoped values like request ids then appear on every
// record written through a context-aware method, and call sites never pass
// them explicitly.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithService("rosetta", cfg.Env),
//		logger.WithContextValue("request_id", middlewares.RequestIDKey),
//	)
//
//	log.InfoContext(ctx, "language activated", logger.Lang("ar"))
//
// Defaults are production-safe: JSON to stdout at info level. WithDevelopment
// switches to text output at debug level for local work.
//
// # Sentry
//
//	log := logger.NewWithSentry(cfg.Sentry,
//		logger.WithService("rosetta", cfg.Env),
//	)
//
// With a DSN set, errors open Sentry issues and warnings ship as searchable
// logs next to the local output. An empty DSN falls back to local-only
// logging, so development and production share one construction path.
//
// # Attribute Helpers
//
// The attr helpers keep log keys consistent across the codebase:
//
//	log.WarnContext(ctx, "translation missing",
//		logger.Lang(m.Lang()),
//		logger.Key("hero.title"),
//	)
//
// Components that treat logging as optional default to NewNope and stay
// silent until handed a real logger.
package logger
