// Package server exposes the surd transform over HTTP: encode and decode
// endpoints plus the journal of past encodes.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"surd/internal/ctxlog"

	"golang.org/x/sync/errgroup"
)

type Server struct {
	addr            string
	handler         http.Handler
	certs           *certLoader
	shutdownTimeout time.Duration
}

func New(config Config) *Server {
	if config.Port == 0 {
		panic("server: port is required")
	}
	if config.RateBuckets == 0 {
		panic("server: rateBuckets is required")
	}
	if config.RatePeriod == 0 {
		panic("server: ratePeriod is required")
	}
	if config.RateMaxPending == 0 {
		panic("server: rateMaxPending is required")
	}
	if config.ShutdownTimeout == 0 {
		panic("server: shutdownTimeout is required")
	}

	limit := newLimiter(config.RateBuckets, config.RatePeriod, config.RateMaxPending)

	mux := http.NewServeMux()

	slog.Info("registering handler", "path", "POST /encode")
	mux.Handle("POST /encode", limit.middleware(encodeHandler()))

	slog.Info("registering handler", "path", "POST /decode")
	mux.Handle("POST /decode", limit.middleware(decodeHandler()))

	slog.Info("registering handler", "path", "GET /records")
	mux.Handle("GET /records", limit.middleware(recordsHandler()))

	mux.Handle("/", notFoundHandler())

	handler := http.Handler(mux)
	handler = newRecover(handler)
	handler = logMiddleware(handler)

	var certs *certLoader
	if config.TLS.CertFile != "" {
		certs = newCertLoader(config.TLS.CertFile, config.TLS.KeyFile, config.TLS.ReloadInterval)
	}

	return &Server{
		addr:            fmt.Sprintf("0.0.0.0:%d", config.Port),
		handler:         handler,
		certs:           certs,
		shutdownTimeout: config.ShutdownTimeout,
	}
}

func (s *Server) Run(ctx context.Context) error {
	logger := ctxlog.Get(ctx)

	srv := &http.Server{
		Addr:        s.addr,
		Handler:     s.handler,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	if s.certs != nil {
		srv.TLSConfig = &tls.Config{GetCertificate: s.certs.getCertificate}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server is running", "addr", s.addr, "tls", s.certs != nil)

		var err error
		if s.certs != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	if s.certs != nil {
		g.Go(func() error {
			s.certs.reloadLoop(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("server is shutting down")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer stopCancel()

		err := srv.Shutdown(stopCtx)
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Error("server shutdown timeout exceeded")
		} else if err == nil {
			logger.Info("all clients closed successfully")
		}
		return err
	})

	return g.Wait()
}
