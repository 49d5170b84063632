package internal

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/rosetta/pkg/hostrouter"
)

// Run starts a multi-domain HTTP server and blocks until shutdown.
// Use this for composing multiple Apps under different domain patterns,
// such as serving a dedicated app per language host.
//
// Example:
//
//	arabic := rosetta.New(
//	    rosetta.WithHandlers(handlers.NewSiteHandler("ar")),
//	)
//
//	site := rosetta.New(
//	    rosetta.WithHandlers(handlers.NewSiteHandler("")),
//	)
//
//	err := rosetta.Run(
//	    rosetta.Domain("ar.acme.com", arabic),
//	    rosetta.Fallback(site),
//	    rosetta.Address(":8080"),
//	    rosetta.Logger(slog),
//	)
func Run(opts ...RunOption) error {
	cfg := buildRunConfig(opts...)

	var handler http.Handler
	switch {
	case len(cfg.hosts) > 0:
		routes := make(hostrouter.Routes, len(cfg.hosts))
		for pattern, app := range cfg.hosts {
			routes[pattern] = app.Router()
		}
		var fallback http.Handler = http.NotFoundHandler()
		if cfg.fallback != nil {
			fallback = cfg.fallback.Router()
		}
		handler = hostrouter.New(routes, fallback)
	case cfg.fallback != nil:
		// No domains at all: the fallback is the whole server.
		handler = cfg.fallback.Router()
	default:
		return errors.New("rosetta.Run: no domains or fallback configured")
	}

	return runServer(handler, cfg.addr, cfg)
}
