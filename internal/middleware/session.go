package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/avansint/minesweeper/internal/config"
)

type CtxKey int

const (
	CtxSessionClaims CtxKey = iota
)

// Session attaches verified session claims to the request context. A
// request without a valid token proceeds anonymously; its stale cookie,
// if any, is cleared.
func Session(log *logrus.Logger, tokens *config.Tokens) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := tokens.ParseSessionClaims(r)
			if err != nil {
				tokens.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxSessionClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
