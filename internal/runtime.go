package internal

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// runServer binds addr, runs the startup hooks, serves h until a signal
// or server error arrives, then drains within the shutdown timeout. Both
// App.Run and the multi-domain Run end up here.
func runServer(h http.Handler, addr string, cfg *runConfig) error {
	if addr == "" {
		addr = ":8080"
	}
	log := cfg.log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	base := cfg.base
	if base == nil {
		base = context.Background()
	}
	ctx, stop := signal.NotifyContext(base, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bind before the hooks run so ":0" callers can read the real address,
	// and a failed translation preload keeps the port from taking traffic.
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	for _, hook := range cfg.onStart {
		if err := hook(ctx); err != nil {
			log.Error("startup hook failed", slog.Any("error", err))
			ln.Close()
			return err
		}
	}

	srv := &http.Server{
		Handler:           h,
		Addr:              addr,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	return drain(srv, cfg, log)
}

// drain stops the server and runs the shutdown hooks, collecting every
// failure rather than bailing at the first one.
func drain(srv *http.Server, cfg *runConfig, log *slog.Logger) error {
	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.drainTimeout)
	defer cancel()

	failures := []error{srv.Shutdown(ctx)}
	for _, hook := range cfg.onStop {
		if err := hook(ctx); err != nil {
			log.Error("shutdown hook failed", slog.Any("error", err))
			failures = append(failures, err)
		}
	}

	if err := errors.Join(failures...); err != nil {
		log.Error("shutdown completed with errors")
		return err
	}
	log.Info("shutdown completed")
	return nil
}
