package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"StockSignal/pkg/config"
	xhttp "StockSignal/pkg/http"
	applogger "StockSignal/pkg/logger"
)

// Closer is anything holding a connection the app must release on shutdown.
type Closer interface {
	Close() error
}

// App encapsulates the application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	handler    xhttp.Handler
	httpServer *xhttp.Server
	closers    []Closer
}

// New creates a new App instance.
func New(cfg *config.Config, log *applogger.Logger, handler xhttp.Handler, closers ...Closer) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		handler: handler,
		closers: closers,
	}
}

// Run starts the HTTP server and blocks until interrupted.
func (a *App) Run() error {
	a.httpServer = xhttp.NewServer(a.handler, a.log,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the server and releases held connections.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn("close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
