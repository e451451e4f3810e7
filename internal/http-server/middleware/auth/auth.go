// Package auth resolves the acting household member from the session token
// and hands it to handlers through the request context.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/session"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// TokenHeader carries the session token for clients without cookies.
const TokenHeader = "X-Session-Token"

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionResolver
type SessionResolver interface {
	Resolve(token string) (int64, error)
}

// WithActor returns a context carrying the acting user id.
func WithActor(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func ActorFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok
}

// TokenFromRequest reads the session cookie, falling back to TokenHeader.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	return r.Header.Get(TokenHeader)
}

func New(log *slog.Logger, sessions SessionResolver, cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r, cookieName)
			if token == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("login required"))
				return
			}

			userID, err := sessions.Resolve(token)
			if err != nil {
				if !errors.Is(err, session.ErrSessionNotFound) && !errors.Is(err, session.ErrSessionExpired) {
					log.Error("failed to resolve session",
						sl.Err(err),
						slog.String("request_id", middleware.GetReqID(r.Context())),
					)
				}
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("session is invalid or expired"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), userID)))
		}

		return http.HandlerFunc(fn)
	}
}
