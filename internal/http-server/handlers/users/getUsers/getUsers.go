package getUsers

import (
	"context"
	"log/slog"
	"net/http"

	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Users []models.User `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersGetter
type UsersGetter interface {
	Users(ctx context.Context) ([]models.User, error)
}

func New(log *slog.Logger, usersGetter UsersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.getUsers.New"

		log := log.With(slog.String("op", op))

		users, err := usersGetter.Users(r.Context())
		if err != nil {
			log.Error("failed to get users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get users"))
			return
		}

		log.Debug("users retrieved", slog.Int("count", len(users)))

		responseOK(w, r, users)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, users []models.User) {
	if users == nil {
		users = []models.User{}
	}

	render.JSON(w, r, Response{
		Response: response.OK(),
		Users:    users,
	})
}
