package logout

import (
	"log/slog"
	"net/http"

	"houseBooker/internal/http-server/middleware/auth"
	"houseBooker/internal/lib/api/response"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionDeleter
type SessionDeleter interface {
	Delete(token string)
}

// New ends the caller's session. It succeeds even without one.
func New(log *slog.Logger, sessions SessionDeleter, cookie auth.Cookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		if token := auth.TokenFromRequest(r, cookie.Name); token != "" {
			sessions.Delete(token)
			log.Info("user logged out", slog.String("op", op))
		}

		cookie.Clear(w)

		render.JSON(w, r, response.OK())
	}
}
