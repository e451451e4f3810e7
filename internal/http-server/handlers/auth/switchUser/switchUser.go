package switchUser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"houseBooker/internal/http-server/middleware/auth"
	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/models"
	"houseBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	User(ctx context.Context, id int64) (models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionSwitcher
type SessionSwitcher interface {
	Create(userID int64) (string, error)
	Delete(token string)
}

// New replaces the caller's session with one for the member named in the
// path, for households sharing one device.
func New(log *slog.Logger, users UserProvider, sessions SessionSwitcher, cookie auth.Cookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.switchUser.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("login required"))
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			log.Info("invalid user id", slog.String("id", chi.URLParam(r, "id")))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id"))
			return
		}

		user, err := users.User(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to switch user"))
			return
		}

		token, err := sessions.Create(user.ID)
		if err != nil {
			log.Error("failed to create session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to switch user"))
			return
		}

		if old := auth.TokenFromRequest(r, cookie.Name); old != "" {
			sessions.Delete(old)
		}

		cookie.Set(w, token)

		log.Info("user switched", slog.Int64("from", actor), slog.Int64("to", user.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			User:     user,
			Token:    token,
		})
	}
}
