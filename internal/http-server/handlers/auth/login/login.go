package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"houseBooker/internal/http-server/middleware/auth"
	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/models"
	"houseBooker/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type Response struct {
	response.Response
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	User(ctx context.Context, id int64) (models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionCreator
type SessionCreator interface {
	Create(userID int64) (string, error)
}

// New logs a household member in by picking their name; there is no password.
func New(log *slog.Logger, users UserProvider, sessions SessionCreator, cookie auth.Cookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Info("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		user, err := users.User(r.Context(), req.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("unknown user", slog.Int64("user_id", req.UserID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		token, err := sessions.Create(user.ID)
		if err != nil {
			log.Error("failed to create session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		cookie.Set(w, token)

		log.Info("user logged in", slog.Int64("user_id", user.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			User:     user,
			Token:    token,
		})
	}
}
