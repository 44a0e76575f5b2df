// Package app wires configuration, routes and middleware into a running
// game server.
package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/avansint/minesweeper/internal/config"
	"github.com/avansint/minesweeper/internal/middleware"
	"github.com/avansint/minesweeper/internal/session"
)

type App struct {
	log      *logrus.Logger
	router   *http.ServeMux
	sessions *session.Registry
	tokens   *config.Tokens
	ws       *config.WebSocket
}

func New(log *logrus.Logger) *App {
	return &App{
		log:      log,
		router:   http.NewServeMux(),
		sessions: session.NewRegistry(),
	}
}

func (a *App) Start(ctx context.Context) error {
	tokens, err := config.NewTokens()
	if err != nil {
		return err
	}
	a.tokens = tokens

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	a.loadRoutes()

	server := &http.Server{
		Addr: config.Addr(),
		Handler: middleware.Wrap(
			a.router,
			middleware.Cors(),
			middleware.Session(a.log, tokens),
			middleware.Logging(a.log),
		),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.Infof("ready to serve @ %s", server.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	return g.Wait()
}
