package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync/atomic"
	"time"

	"surd/internal/ctxlog"
)

// certLoader serves the current certificate and re-reads the key pair from
// disk on an interval, so renewed certs are picked up without a restart.
type certLoader struct {
	certFile string
	keyFile  string
	interval time.Duration

	cert atomic.Pointer[tls.Certificate]
}

func newCertLoader(certFile, keyFile string, interval time.Duration) *certLoader {
	if interval == 0 {
		panic("server: tls reloadInterval is required")
	}

	l := &certLoader{
		certFile: certFile,
		keyFile:  keyFile,
		interval: interval,
	}

	err := l.load()
	if err != nil {
		panic(err)
	}

	return l
}

func (l *certLoader) load() error {
	c, err := tls.LoadX509KeyPair(l.certFile, l.keyFile)
	if err != nil {
		return fmt.Errorf("load tls cert: %w", err)
	}

	l.cert.Store(&c)
	return nil
}

func (l *certLoader) getCertificate(clientHello *tls.ClientHelloInfo) (*tls.Certificate, error) {
	return l.cert.Load(), nil
}

func (l *certLoader) reloadLoop(ctx context.Context) {
	logger := ctxlog.Get(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			err := l.load()
			if err != nil {
				logger.Error("reload tls cert", "error", err)
			} else {
				logger.Info("reloaded tls cert")
			}
		}
	}
}
